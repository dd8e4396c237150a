package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-library-management/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRoles(roles []string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if roles != nil {
		ctx := context.WithValue(req.Context(), RolesKey, roles)
		req = req.WithContext(ctx)
	}
	return req
}

func runMiddleware(mw func(http.Handler) http.Handler, req *http.Request) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)
	return rec, reached
}

func TestRequireRoleAdmitsMatchingRole(t *testing.T) {
	rec, reached := runMiddleware(RequireRole(entity.RoleLibrarian), requestWithRoles([]string{entity.RoleLibrarian}))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleAdmitsAnyOfSeveral(t *testing.T) {
	req := requestWithRoles([]string{entity.RoleUser, entity.RoleAdmin})
	rec, reached := runMiddleware(RequireRole(entity.RoleAdmin), req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	rec, reached := runMiddleware(RequireRole(entity.RoleAdmin), requestWithRoles([]string{entity.RoleUser}))

	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsNoContext(t *testing.T) {
	rec, reached := runMiddleware(RequireRole(entity.RoleUser), requestWithRoles(nil))

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireUserOrLibrarian(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		expected int
	}{
		{"user passes", []string{entity.RoleUser}, http.StatusOK},
		{"librarian passes", []string{entity.RoleLibrarian}, http.StatusOK},
		{"admin alone is rejected", []string{entity.RoleAdmin}, http.StatusForbidden},
		{"admin with user passes", []string{entity.RoleAdmin, entity.RoleUser}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := runMiddleware(RequireUserOrLibrarian, requestWithRoles(tt.roles))
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestHasRole(t *testing.T) {
	ctx := context.WithValue(context.Background(), RolesKey, []string{entity.RoleUser, entity.RoleLibrarian})

	assert.True(t, HasRole(ctx, entity.RoleUser))
	assert.True(t, HasRole(ctx, entity.RoleLibrarian))
	assert.False(t, HasRole(ctx, entity.RoleAdmin))
	assert.False(t, HasRole(context.Background(), entity.RoleUser))
}
