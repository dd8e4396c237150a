package usecase

import (
	"context"
	"errors"
	"time"

	"go-library-management/internal/converter"
	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/delivery/http/middleware"
	"go-library-management/internal/domain/entity"
	"go-library-management/internal/domain/repository"
	"go-library-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLoanNotFound      = errors.New("loan not found")
	ErrLoanLimitReached  = errors.New("you have already requested 3 books")
	ErrBookNotAvailable  = errors.New("the book is not available")
	ErrInvalidLoanStatus = errors.New("request status is not valid")
	ErrIllegalTransition = errors.New("loan status transition is not allowed")
)

type LoanUsecase interface {
	GetLoans(ctx context.Context) (*dto.LoanListResponse, error)
	GetLoan(ctx context.Context, loanID uuid.UUID) (*dto.LoanResponse, error)
	RequestLoan(ctx context.Context, req *dto.CreateLoanRequest) (*dto.LoanResponse, error)
	UpdateLoanStatus(ctx context.Context, loanID uuid.UUID, req *dto.UpdateLoanStatusRequest) (*dto.LoanResponse, error)
}

type loanUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	loanRepo repository.BookRequestRepository
	bookRepo repository.BookRepository
	userRepo repository.UserRepository
	mailer   *service.MailService
}

func NewLoanUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loanRepo repository.BookRequestRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
	mailer *service.MailService,
) LoanUsecase {
	return &loanUsecase{
		db:       db,
		log:      log,
		loanRepo: loanRepo,
		bookRepo: bookRepo,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

// GetLoans returns all loans for librarians and only the caller's own loans
// for everyone else.
func (u *loanUsecase) GetLoans(ctx context.Context) (*dto.LoanListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	var (
		loans []entity.BookRequest
		err   error
	)
	if middleware.HasRole(ctx, entity.RoleLibrarian) {
		loans, err = u.loanRepo.FindAll(u.db.WithContext(ctx))
	} else {
		loans, err = u.loanRepo.FindByUserID(u.db.WithContext(ctx), userID)
	}
	if err != nil {
		u.log.Warnf("Failed to find loans for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.LoanListResponse{
		Loans: converter.LoansToResponses(loans),
		Total: len(loans),
	}, nil
}

func (u *loanUsecase) GetLoan(ctx context.Context, loanID uuid.UUID) (*dto.LoanResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	loan, err := u.loanRepo.FindByID(u.db.WithContext(ctx), loanID)
	if err != nil {
		u.log.Warnf("Failed to find loan %s: %+v", loanID, err)
		return nil, err
	}
	if loan == nil {
		return nil, ErrLoanNotFound
	}

	// Non-librarians only ever see their own loans.
	if !middleware.HasRole(ctx, entity.RoleLibrarian) && loan.UserID != userID {
		return nil, ErrLoanNotFound
	}

	return converter.LoanToResponse(loan), nil
}

// RequestLoan creates a pending loan for the caller.
//
// Flow:
// 1. Validate the book exists
// 2. Enforce the issued-loan limit (max 3 per user)
// 3. Check availability (inventory is only consumed at issue time,
//    but requesting an out-of-stock book is pointless)
// 4. Create the pending request
// 5. Notify the operator (fire-and-forget)
func (u *loanUsecase) RequestLoan(ctx context.Context, req *dto.CreateLoanRequest) (*dto.LoanResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	// Step 1: Validate the book exists
	book, err := u.bookRepo.FindByID(db, req.BookID)
	if err != nil {
		u.log.Warnf("Failed to find book %d: %+v", req.BookID, err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	// Step 2: Enforce the issued-loan limit
	issuedCount, err := u.loanRepo.CountIssuedByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to count issued loans for user %s: %+v", userID, err)
		return nil, err
	}
	if issuedCount >= entity.MaxIssuedLoans {
		return nil, ErrLoanLimitReached
	}

	// Step 3: Availability check
	if !book.IsAvailable() {
		return nil, ErrBookNotAvailable
	}

	// Step 4: Create the pending request
	loan := &entity.BookRequest{
		UserID:        userID,
		BookID:        book.ID,
		Status:        entity.RequestStatusPending,
		RequestedDate: time.Now().UTC(),
	}
	if err := u.loanRepo.Create(db, loan); err != nil {
		u.log.Warnf("Failed to create loan for user %s: %+v", userID, err)
		return nil, err
	}

	// Step 5: Notify the operator
	user, err := u.userRepo.FindByID(db, userID)
	if err == nil && user != nil {
		u.mailer.SendLoanRequestedMail(book, user)
	}

	u.log.Infof("Loan requested: id=%s, book=%d, user=%s", loan.ID, book.ID, userID)

	// Reload with book/user detail for the response
	full, err := u.loanRepo.FindByID(db, loan.ID)
	if err != nil || full == nil {
		return converter.LoanToResponse(loan), nil
	}
	return converter.LoanToResponse(full), nil
}

// UpdateLoanStatus moves a loan through its lifecycle:
// pending -> issued | rejected, issued -> returned. Rejected and returned
// are terminal. Issue and return adjust the book's inventory through atomic
// relative updates, inside the same transaction as the status change.
func (u *loanUsecase) UpdateLoanStatus(ctx context.Context, loanID uuid.UUID, req *dto.UpdateLoanStatusRequest) (*dto.LoanResponse, error) {
	target := entity.RequestStatus(req.Status)
	if !target.IsValid() || target == entity.RequestStatusPending {
		return nil, ErrInvalidLoanStatus
	}

	db := u.db.WithContext(ctx)

	loan, err := u.loanRepo.FindByID(db, loanID)
	if err != nil {
		u.log.Warnf("Failed to find loan %s: %+v", loanID, err)
		return nil, err
	}
	if loan == nil {
		return nil, ErrLoanNotFound
	}

	if !loan.Status.CanTransitionTo(target) {
		return nil, ErrIllegalTransition
	}

	now := time.Now().UTC()
	err = db.Transaction(func(tx *gorm.DB) error {
		fields := map[string]interface{}{"status": target}
		switch target {
		case entity.RequestStatusIssued:
			fields["issued_date"] = now
		case entity.RequestStatusReturned:
			fields["returned_date"] = now
		}

		// The status update is guarded by the source status, so a concurrent
		// transition on the same loan loses exactly one of the two races.
		rows, err := u.loanRepo.TransitionStatus(tx, loan.ID, loan.Status, fields)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrIllegalTransition
		}

		switch target {
		case entity.RequestStatusIssued:
			affected, err := u.bookRepo.DecrementInventory(tx, loan.BookID)
			if err != nil {
				return err
			}
			if affected == 0 {
				// Out of stock: roll back the whole transition.
				return ErrBookNotAvailable
			}
		case entity.RequestStatusReturned:
			if err := u.bookRepo.IncrementInventory(tx, loan.BookID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrIllegalTransition) || errors.Is(err, ErrBookNotAvailable) {
			return nil, err
		}
		u.log.Warnf("Failed to update loan %s to %s: %+v", loanID, target, err)
		return nil, err
	}

	u.log.Infof("Loan updated: id=%s, %s -> %s", loanID, loan.Status, target)

	full, err := u.loanRepo.FindByID(db, loanID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload loan %s: %+v", loanID, err)
		return converter.LoanToResponse(loan), nil
	}
	return converter.LoanToResponse(full), nil
}
