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
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("author not found")
)

type BookUsecase interface {
	GetBooks(ctx context.Context, search string) (*dto.BookListResponse, error)
	GetBook(ctx context.Context, bookID int) (*dto.BookResponse, error)
	CreateBook(ctx context.Context, req *dto.CreateBookRequest) (*dto.BookResponse, error)
	UpdateBook(ctx context.Context, bookID int, req *dto.UpdateBookRequest) (*dto.BookResponse, error)
	DeleteBook(ctx context.Context, bookID int) error
}

type bookUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	bookRepo   repository.BookRepository
	authorRepo repository.AuthorRepository
}

func NewBookUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookRepo repository.BookRepository,
	authorRepo repository.AuthorRepository,
) BookUsecase {
	return &bookUsecase{
		db:         db,
		log:        log,
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
	}
}

// GetBooks lists the catalog, optionally filtered by a name substring.
func (u *bookUsecase) GetBooks(ctx context.Context, search string) (*dto.BookListResponse, error) {
	books, err := u.bookRepo.FindAll(u.db.WithContext(ctx), search)
	if err != nil {
		u.log.Warnf("Failed to find books: %+v", err)
		return nil, err
	}

	return &dto.BookListResponse{
		Books: converter.BooksToResponses(books),
		Total: len(books),
	}, nil
}

func (u *bookUsecase) GetBook(ctx context.Context, bookID int) (*dto.BookResponse, error) {
	book, err := u.bookRepo.FindByID(u.db.WithContext(ctx), bookID)
	if err != nil {
		u.log.Warnf("Failed to find book %d: %+v", bookID, err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	return converter.BookToResponse(book), nil
}

// CreateBook adds a title to the catalog. Every referenced author must
// already exist.
func (u *bookUsecase) CreateBook(ctx context.Context, req *dto.CreateBookRequest) (*dto.BookResponse, error) {
	db := u.db.WithContext(ctx)

	authors, err := u.resolveAuthors(db, req.AuthorIDs)
	if err != nil {
		return nil, err
	}

	book := &entity.Book{
		Name:      req.Name,
		Publisher: req.Publisher,
		Image:     req.Image,
		Inventory: req.Inventory,
		Authors:   authors,
	}
	if book.Image == "" {
		book.Image = entity.DefaultBookImage
	}

	if err := u.bookRepo.Create(db, book); err != nil {
		u.log.Warnf("Failed to create book: %+v", err)
		return nil, err
	}

	u.log.Infof("Book created: id=%d, name=%s", book.ID, book.Name)

	return converter.BookToResponse(book), nil
}

// UpdateBook applies a partial update. A nil inventory leaves the counter
// untouched; a non-nil one sets it absolutely (restocking is a librarian
// action, not a loan-driven one).
func (u *bookUsecase) UpdateBook(ctx context.Context, bookID int, req *dto.UpdateBookRequest) (*dto.BookResponse, error) {
	db := u.db.WithContext(ctx)

	book, err := u.bookRepo.FindByID(db, bookID)
	if err != nil {
		u.log.Warnf("Failed to find book %d: %+v", bookID, err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	if req.Name != "" {
		book.Name = req.Name
	}
	if req.Publisher != "" {
		book.Publisher = req.Publisher
	}
	if req.Image != "" {
		book.Image = req.Image
	}
	if req.Inventory != nil {
		book.Inventory = *req.Inventory
	}

	if err := u.bookRepo.Update(db, book); err != nil {
		u.log.Warnf("Failed to update book %d: %+v", bookID, err)
		return nil, err
	}

	if len(req.AuthorIDs) > 0 {
		authors, err := u.resolveAuthors(db, req.AuthorIDs)
		if err != nil {
			return nil, err
		}
		if err := u.bookRepo.ReplaceAuthors(db, book, authors); err != nil {
			u.log.Warnf("Failed to replace authors for book %d: %+v", bookID, err)
			return nil, err
		}
		book.Authors = authors
	}

	u.log.Infof("Book updated: id=%d", bookID)

	return converter.BookToResponse(book), nil
}

func (u *bookUsecase) DeleteBook(ctx context.Context, bookID int) error {
	db := u.db.WithContext(ctx)

	book, err := u.bookRepo.FindByID(db, bookID)
	if err != nil {
		u.log.Warnf("Failed to find book %d: %+v", bookID, err)
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}

	if err := u.bookRepo.Delete(db, bookID); err != nil {
		u.log.Warnf("Failed to delete book %d: %+v", bookID, err)
		return err
	}

	u.log.Infof("Book deleted: id=%d", bookID)

	return nil
}

func (u *bookUsecase) resolveAuthors(db *gorm.DB, ids []int) ([]entity.Author, error) {
	authors, err := u.authorRepo.FindByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to find authors %v: %+v", ids, err)
		return nil, err
	}
	if len(authors) != len(ids) {
		return nil, ErrAuthorNotFound
	}
	return authors, nil
}
