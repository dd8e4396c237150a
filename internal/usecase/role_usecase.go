package usecase

import (
	"context"
	"errors"

	"go-library-management/internal/converter"
	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/domain/entity"
	"go-library-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleAlreadyExists = errors.New("role already exists")
)

type RoleUsecase interface {
	GetRoles(ctx context.Context) (*dto.RoleListResponse, error)
	GetRole(ctx context.Context, roleID int) (*dto.RoleResponse, error)
	CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error)
	UpdateRole(ctx context.Context, roleID int, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error)
	DeleteRole(ctx context.Context, roleID int) error
}

type roleUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	roleRepo repository.RoleRepository
}

func NewRoleUsecase(db *gorm.DB, log *logrus.Logger, roleRepo repository.RoleRepository) RoleUsecase {
	return &roleUsecase{
		db:       db,
		log:      log,
		roleRepo: roleRepo,
	}
}

func (u *roleUsecase) GetRoles(ctx context.Context) (*dto.RoleListResponse, error) {
	roles, err := u.roleRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find roles: %+v", err)
		return nil, err
	}

	return &dto.RoleListResponse{
		Roles: converter.RolesToResponses(roles),
		Total: len(roles),
	}, nil
}

func (u *roleUsecase) GetRole(ctx context.Context, roleID int) (*dto.RoleResponse, error) {
	role, err := u.roleRepo.FindByID(u.db.WithContext(ctx), roleID)
	if err != nil {
		u.log.Warnf("Failed to find role %d: %+v", roleID, err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	return converter.RoleToResponse(role), nil
}

func (u *roleUsecase) CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	role := &entity.Role{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := u.roleRepo.Create(u.db.WithContext(ctx), role); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrRoleAlreadyExists
		}
		u.log.Warnf("Failed to create role: %+v", err)
		return nil, err
	}

	u.log.Infof("Role created: id=%d, name=%s", role.ID, role.Name)

	return converter.RoleToResponse(role), nil
}

func (u *roleUsecase) UpdateRole(ctx context.Context, roleID int, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	db := u.db.WithContext(ctx)

	role, err := u.roleRepo.FindByID(db, roleID)
	if err != nil {
		u.log.Warnf("Failed to find role %d: %+v", roleID, err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	if req.Name != "" {
		role.Name = req.Name
	}
	if req.Description != "" {
		role.Description = req.Description
	}

	if err := u.roleRepo.Update(db, role); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrRoleAlreadyExists
		}
		u.log.Warnf("Failed to update role %d: %+v", roleID, err)
		return nil, err
	}

	return converter.RoleToResponse(role), nil
}

func (u *roleUsecase) DeleteRole(ctx context.Context, roleID int) error {
	db := u.db.WithContext(ctx)

	role, err := u.roleRepo.FindByID(db, roleID)
	if err != nil {
		u.log.Warnf("Failed to find role %d: %+v", roleID, err)
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}

	if err := u.roleRepo.Delete(db, roleID); err != nil {
		u.log.Warnf("Failed to delete role %d: %+v", roleID, err)
		return err
	}

	u.log.Infof("Role deleted: id=%d", roleID)

	return nil
}
