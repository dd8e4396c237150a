package usecase

import (
	"context"
	"errors"

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
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrTicketNotOwned        = errors.New("ticket does not belong to you")
	ErrTicketAlreadyResolved = errors.New("ticket has already been resolved")
	ErrInvalidTicketStatus   = errors.New("ticket status is not valid")
	ErrFieldNotAllowed       = errors.New("you are not authorized to update that field")
)

type TicketUsecase interface {
	GetTickets(ctx context.Context) (*dto.TicketListResponse, error)
	GetTicket(ctx context.Context, ticketID uuid.UUID) (*dto.TicketResponse, error)
	SubmitTicket(ctx context.Context, req *dto.CreateTicketRequest) (*dto.TicketResponse, error)
	UpdateTicket(ctx context.Context, ticketID uuid.UUID, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error)
}

type ticketUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	ticketRepo repository.TicketRepository
	userRepo   repository.UserRepository
	mailer     *service.MailService
}

func NewTicketUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ticketRepo repository.TicketRepository,
	userRepo repository.UserRepository,
	mailer *service.MailService,
) TicketUsecase {
	return &ticketUsecase{
		db:         db,
		log:        log,
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		mailer:     mailer,
	}
}

// GetTickets returns all tickets for librarians and only the caller's own
// tickets for everyone else.
func (u *ticketUsecase) GetTickets(ctx context.Context) (*dto.TicketListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	var (
		tickets []entity.Ticket
		err     error
	)
	if middleware.HasRole(ctx, entity.RoleLibrarian) {
		tickets, err = u.ticketRepo.FindAll(u.db.WithContext(ctx))
	} else {
		tickets, err = u.ticketRepo.FindByUserID(u.db.WithContext(ctx), userID)
	}
	if err != nil {
		u.log.Warnf("Failed to find tickets for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.TicketListResponse{
		Tickets: converter.TicketsToResponses(tickets),
		Total:   len(tickets),
	}, nil
}

func (u *ticketUsecase) GetTicket(ctx context.Context, ticketID uuid.UUID) (*dto.TicketResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	ticket, err := u.ticketRepo.FindByID(u.db.WithContext(ctx), ticketID)
	if err != nil {
		u.log.Warnf("Failed to find ticket %s: %+v", ticketID, err)
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}

	if !middleware.HasRole(ctx, entity.RoleLibrarian) && ticket.UserID != userID {
		return nil, ErrTicketNotFound
	}

	return converter.TicketToResponse(ticket), nil
}

// SubmitTicket files a book-addition request from the caller and forwards it
// to the operator by mail. The mail is fire-and-forget; a delivery failure
// never fails the submission.
func (u *ticketUsecase) SubmitTicket(ctx context.Context, req *dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	ticket := &entity.Ticket{
		UserID:         userID,
		RequestMessage: req.RequestMessage,
		Status:         entity.TicketStatusPending,
	}

	u.mailer.SendTicketMail(ticket, user)

	if err := u.ticketRepo.Create(db, ticket); err != nil {
		u.log.Warnf("Failed to create ticket for user %s: %+v", userID, err)
		return nil, err
	}

	u.log.Infof("Ticket submitted: id=%s, user=%s", ticket.ID, userID)

	ticket.User = *user
	return converter.TicketToResponse(ticket), nil
}

// UpdateTicket applies a role-dependent partial update:
//   - a librarian supplying a status resolves the ticket (accepted/rejected,
//     pending tickets only) and the owner is mailed the response;
//   - a user supplying a request message edits their own ticket's message;
//   - anything else is rejected.
func (u *ticketUsecase) UpdateTicket(ctx context.Context, ticketID uuid.UUID, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	ticket, err := u.ticketRepo.FindByID(db, ticketID)
	if err != nil {
		u.log.Warnf("Failed to find ticket %s: %+v", ticketID, err)
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}

	if req.Status != "" && middleware.HasRole(ctx, entity.RoleLibrarian) {
		status := entity.TicketStatus(req.Status)
		if !status.IsResolution() {
			return nil, ErrInvalidTicketStatus
		}
		if !ticket.IsPending() {
			return nil, ErrTicketAlreadyResolved
		}

		ticket.Status = status
		ticket.ResponseMessage = &req.ResponseMessage
		if err := u.ticketRepo.Update(db, ticket); err != nil {
			u.log.Warnf("Failed to resolve ticket %s: %+v", ticketID, err)
			return nil, err
		}

		u.mailer.SendTicketResolvedMail(ticket)
		u.log.Infof("Ticket resolved: id=%s, status=%s", ticketID, status)

		return converter.TicketToResponse(ticket), nil
	}

	if req.RequestMessage != "" && middleware.HasRole(ctx, entity.RoleUser) {
		if ticket.UserID != userID {
			return nil, ErrTicketNotOwned
		}

		ticket.RequestMessage = req.RequestMessage
		if err := u.ticketRepo.Update(db, ticket); err != nil {
			u.log.Warnf("Failed to update ticket %s: %+v", ticketID, err)
			return nil, err
		}

		return converter.TicketToResponse(ticket), nil
	}

	return nil, ErrFieldNotAllowed
}
