package usecase

import (
	"context"

	"go-library-management/internal/converter"
	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/domain/entity"
	"go-library-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthorUsecase interface {
	GetAuthors(ctx context.Context) (*dto.AuthorListResponse, error)
	GetAuthor(ctx context.Context, authorID int) (*dto.AuthorResponse, error)
	CreateAuthor(ctx context.Context, req *dto.CreateAuthorRequest) (*dto.AuthorResponse, error)
	UpdateAuthor(ctx context.Context, authorID int, req *dto.UpdateAuthorRequest) (*dto.AuthorResponse, error)
	DeleteAuthor(ctx context.Context, authorID int) error
}

type authorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	authorRepo repository.AuthorRepository
}

func NewAuthorUsecase(db *gorm.DB, log *logrus.Logger, authorRepo repository.AuthorRepository) AuthorUsecase {
	return &authorUsecase{
		db:         db,
		log:        log,
		authorRepo: authorRepo,
	}
}

func (u *authorUsecase) GetAuthors(ctx context.Context) (*dto.AuthorListResponse, error) {
	authors, err := u.authorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find authors: %+v", err)
		return nil, err
	}

	return &dto.AuthorListResponse{
		Authors: converter.AuthorsToResponses(authors),
		Total:   len(authors),
	}, nil
}

func (u *authorUsecase) GetAuthor(ctx context.Context, authorID int) (*dto.AuthorResponse, error) {
	author, err := u.authorRepo.FindByID(u.db.WithContext(ctx), authorID)
	if err != nil {
		u.log.Warnf("Failed to find author %d: %+v", authorID, err)
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	return converter.AuthorToResponse(author), nil
}

func (u *authorUsecase) CreateAuthor(ctx context.Context, req *dto.CreateAuthorRequest) (*dto.AuthorResponse, error) {
	author := &entity.Author{
		Name:   req.Name,
		Gender: req.Gender,
		Email:  req.Email,
	}
	if author.Gender == "" {
		author.Gender = entity.GenderMale
	}

	if err := u.authorRepo.Create(u.db.WithContext(ctx), author); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create author: %+v", err)
		return nil, err
	}

	u.log.Infof("Author created: id=%d, name=%s", author.ID, author.Name)

	return converter.AuthorToResponse(author), nil
}

func (u *authorUsecase) UpdateAuthor(ctx context.Context, authorID int, req *dto.UpdateAuthorRequest) (*dto.AuthorResponse, error) {
	db := u.db.WithContext(ctx)

	author, err := u.authorRepo.FindByID(db, authorID)
	if err != nil {
		u.log.Warnf("Failed to find author %d: %+v", authorID, err)
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	if req.Name != "" {
		author.Name = req.Name
	}
	if req.Gender != "" {
		author.Gender = req.Gender
	}
	if req.Email != "" {
		author.Email = req.Email
	}

	if err := u.authorRepo.Update(db, author); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update author %d: %+v", authorID, err)
		return nil, err
	}

	return converter.AuthorToResponse(author), nil
}

func (u *authorUsecase) DeleteAuthor(ctx context.Context, authorID int) error {
	db := u.db.WithContext(ctx)

	author, err := u.authorRepo.FindByID(db, authorID)
	if err != nil {
		u.log.Warnf("Failed to find author %d: %+v", authorID, err)
		return err
	}
	if author == nil {
		return ErrAuthorNotFound
	}

	if err := u.authorRepo.Delete(db, authorID); err != nil {
		u.log.Warnf("Failed to delete author %d: %+v", authorID, err)
		return err
	}

	u.log.Infof("Author deleted: id=%d", authorID)

	return nil
}
