package usecase

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-library-management/internal/converter"
	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/delivery/http/middleware"
	"go-library-management/internal/domain/entity"
	"go-library-management/internal/domain/repository"
	"go-library-management/internal/service"
	"go-library-management/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrTokenRevoked          = errors.New("token has been revoked")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidOTP            = errors.New("invalid or expired OTP")
)

const otpTTL = 10 * time.Minute

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	CreateLibrarian(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	GetLibrarians(ctx context.Context) (*dto.UserListResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	mailer      *service.MailService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	mailer *service.MailService,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
		mailer:      mailer,
	}
}

// Register signs up an anonymous visitor. New accounts always get the USER
// role; librarians are created by admins through CreateLibrarian.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return u.registerWithRole(ctx, req, entity.RoleUser)
}

// CreateLibrarian registers an account holding the LIBRARIAN role.
func (u *authUsecase) CreateLibrarian(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return u.registerWithRole(ctx, req, entity.RoleLibrarian)
}

func (u *authUsecase) registerWithRole(ctx context.Context, req *dto.RegisterRequest, roleName string) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	role, err := u.roleRepo.FindByName(db, roleName)
	if err != nil {
		u.log.Warnf("Failed to find role %s: %+v", roleName, err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Roles:    []entity.Role{*role},
	}

	if err := u.userRepo.Create(db, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	u.log.Infof("User registered: id=%s, role=%s", user.ID, roleName)

	return converter.UserToResponse(user), nil
}

// GetLibrarians lists all accounts holding the LIBRARIAN role.
func (u *authUsecase) GetLibrarians(ctx context.Context) (*dto.UserListResponse, error) {
	librarians, err := u.userRepo.FindByRole(u.db.WithContext(ctx), entity.RoleLibrarian)
	if err != nil {
		u.log.Warnf("Failed to find librarians: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(librarians),
		Total: len(librarians),
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	roles := user.RoleNames()

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, roles)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, roles)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	// Store both tokens in Redis so logout can revoke them.
	accessKey := fmt.Sprintf("access_token:%s:%s", user.ID, accessTokenID)
	if err := u.redisClient.Set(ctx, accessKey, "1", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", user.ID, refreshTokenID)
	if err := u.redisClient.Set(ctx, refreshKey, "1", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// Logout revokes the caller's access token and, when the refresh token is
// supplied, that one too.
func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshToken string) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	keys := []string{fmt.Sprintf("access_token:%s:%s", userID, accessTokenID)}
	if refreshToken != "" {
		if claims, err := u.jwtService.ValidateToken(refreshToken); err == nil && claims.TokenType == jwt.RefreshToken {
			keys = append(keys, fmt.Sprintf("refresh_token:%s:%s", userID, claims.TokenID))
		}
	}

	if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
		u.log.Warnf("Failed to revoke tokens for user %s: %+v", userID, err)
		return err
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", claims.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Rotate: the old refresh token is single-use.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to rotate refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// ForgotPassword mails a short-lived OTP that authorizes a password reset.
func (u *authUsecase) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	otp := generateOTP()
	otpKey := fmt.Sprintf("password_otp:%s", user.Email)
	if err := u.redisClient.Set(ctx, otpKey, otp, otpTTL).Err(); err != nil {
		u.log.Warnf("Failed to store OTP for %s: %+v", user.Email, err)
		return err
	}

	u.mailer.SendOTPMail(user.Email, otp)

	return nil
}

// ResetPassword verifies the OTP and replaces the account password.
func (u *authUsecase) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	otpKey := fmt.Sprintf("password_otp:%s", req.Email)
	stored, err := u.redisClient.Get(ctx, otpKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrInvalidOTP
		}
		u.log.Warnf("Failed to read OTP for %s: %+v", req.Email, err)
		return err
	}
	if stored != req.OTP {
		return ErrInvalidOTP
	}

	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	if err := u.userRepo.UpdatePassword(u.db.WithContext(ctx), user.ID, string(hashedPassword)); err != nil {
		u.log.Warnf("Failed to update password for user %s: %+v", user.ID, err)
		return err
	}

	// OTP is single-use.
	if err := u.redisClient.Del(ctx, otpKey).Err(); err != nil {
		u.log.Warnf("Failed to delete OTP for %s (non-fatal): %+v", req.Email, err)
	}

	u.mailer.SendPasswordChangedMail(user)
	u.log.Infof("Password reset: user=%s", user.ID)

	return nil
}

// generateOTP returns a 6-digit one-time password.
func generateOTP() string {
	randomBytes := make([]byte, 4)
	rand.Read(randomBytes)
	return fmt.Sprintf("%06d", binary.BigEndian.Uint32(randomBytes)%1000000)
}

func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
