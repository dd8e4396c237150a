package http

import (
	"net/http"

	"go-library-management/internal/delivery/http/handler"
	"go-library-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	librarianHandler *handler.LibrarianHandler
	roleHandler      *handler.RoleHandler
	authorHandler    *handler.AuthorHandler
	bookHandler      *handler.BookHandler
	loanHandler      *handler.LoanHandler
	ticketHandler    *handler.TicketHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	librarianHandler *handler.LibrarianHandler,
	roleHandler *handler.RoleHandler,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	loanHandler *handler.LoanHandler,
	ticketHandler *handler.TicketHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		userHandler:      userHandler,
		librarianHandler: librarianHandler,
		roleHandler:      roleHandler,
		authorHandler:    authorHandler,
		bookHandler:      bookHandler,
		loanHandler:      loanHandler,
		ticketHandler:    ticketHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public). Signup is for anonymous visitors only.
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Handle("/register", r.authMiddleware.RejectAuthenticated(http.HandlerFunc(r.authHandler.Register))).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", r.authHandler.ForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Catalog reads are public
	api.HandleFunc("/books", r.bookHandler.GetBooks).Methods(http.MethodGet)
	api.HandleFunc("/books/{id}", r.bookHandler.GetBook).Methods(http.MethodGet)
	api.HandleFunc("/authors", r.authorHandler.GetAuthors).Methods(http.MethodGet)
	api.HandleFunc("/authors/{id}", r.authorHandler.GetAuthor).Methods(http.MethodGet)

	// Catalog management (librarian)
	books := api.PathPrefix("/books").Subrouter()
	books.Use(r.authMiddleware.Authenticate)
	books.Use(middleware.RequireLibrarian)
	books.HandleFunc("", r.bookHandler.CreateBook).Methods(http.MethodPost)
	books.HandleFunc("/{id}", r.bookHandler.UpdateBook).Methods(http.MethodPatch)
	books.HandleFunc("/{id}", r.bookHandler.DeleteBook).Methods(http.MethodDelete)

	authors := api.PathPrefix("/authors").Subrouter()
	authors.Use(r.authMiddleware.Authenticate)
	authors.Use(middleware.RequireLibrarian)
	authors.HandleFunc("", r.authorHandler.CreateAuthor).Methods(http.MethodPost)
	authors.HandleFunc("/{id}", r.authorHandler.UpdateAuthor).Methods(http.MethodPatch)
	authors.HandleFunc("/{id}", r.authorHandler.DeleteAuthor).Methods(http.MethodDelete)

	// Profile routes (any authenticated caller)
	profile := api.PathPrefix("/users").Subrouter()
	profile.Use(r.authMiddleware.Authenticate)
	profile.HandleFunc("/me", r.userHandler.GetProfile).Methods(http.MethodGet)
	profile.HandleFunc("/me", r.userHandler.UpdateProfile).Methods(http.MethodPatch)
	profile.HandleFunc("/me", r.userHandler.DeleteAccount).Methods(http.MethodDelete)

	// Loan routes. Listing and reads are role-scoped inside the usecase;
	// creation is for users, status transitions for librarians.
	loans := api.PathPrefix("/loans").Subrouter()
	loans.Use(r.authMiddleware.Authenticate)
	loans.Use(middleware.RequireUserOrLibrarian)
	loans.HandleFunc("", r.loanHandler.GetLoans).Methods(http.MethodGet)
	loans.HandleFunc("/{id}", r.loanHandler.GetLoan).Methods(http.MethodGet)

	loanCreate := api.PathPrefix("/loans").Subrouter()
	loanCreate.Use(r.authMiddleware.Authenticate)
	loanCreate.Use(middleware.RequireUser)
	loanCreate.HandleFunc("", r.loanHandler.RequestLoan).Methods(http.MethodPost)

	loanStatus := api.PathPrefix("/loans").Subrouter()
	loanStatus.Use(r.authMiddleware.Authenticate)
	loanStatus.Use(middleware.RequireLibrarian)
	loanStatus.HandleFunc("/{id}/status", r.loanHandler.UpdateLoanStatus).Methods(http.MethodPatch)

	// Ticket routes. Updates are role-sensitive inside the usecase.
	tickets := api.PathPrefix("/tickets").Subrouter()
	tickets.Use(r.authMiddleware.Authenticate)
	tickets.Use(middleware.RequireUserOrLibrarian)
	tickets.HandleFunc("", r.ticketHandler.GetTickets).Methods(http.MethodGet)
	tickets.HandleFunc("/{id}", r.ticketHandler.GetTicket).Methods(http.MethodGet)
	tickets.HandleFunc("/{id}", r.ticketHandler.UpdateTicket).Methods(http.MethodPatch)

	ticketCreate := api.PathPrefix("/tickets").Subrouter()
	ticketCreate.Use(r.authMiddleware.Authenticate)
	ticketCreate.Use(middleware.RequireUser)
	ticketCreate.HandleFunc("", r.ticketHandler.SubmitTicket).Methods(http.MethodPost)

	// Admin routes (admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Librarian account management (admin)
	admin.HandleFunc("/librarians", r.librarianHandler.CreateLibrarian).Methods(http.MethodPost)
	admin.HandleFunc("/librarians", r.librarianHandler.GetLibrarians).Methods(http.MethodGet)

	// Role management (admin)
	admin.HandleFunc("/roles", r.roleHandler.CreateRole).Methods(http.MethodPost)
	admin.HandleFunc("/roles", r.roleHandler.GetRoles).Methods(http.MethodGet)
	admin.HandleFunc("/roles/{id}", r.roleHandler.GetRole).Methods(http.MethodGet)
	admin.HandleFunc("/roles/{id}", r.roleHandler.UpdateRole).Methods(http.MethodPut)
	admin.HandleFunc("/roles/{id}", r.roleHandler.DeleteRole).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
