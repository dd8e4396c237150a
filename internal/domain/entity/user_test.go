package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserHasRole(t *testing.T) {
	user := &User{
		Roles: []Role{
			{ID: RoleIDUser, Name: RoleUser},
			{ID: RoleIDLibrarian, Name: RoleLibrarian},
		},
	}

	assert.True(t, user.HasRole(RoleUser))
	assert.True(t, user.HasRole(RoleLibrarian))
	assert.False(t, user.HasRole(RoleAdmin))

	nobody := &User{}
	assert.False(t, nobody.HasRole(RoleUser))
}

func TestUserRoleNames(t *testing.T) {
	user := &User{
		Roles: []Role{
			{ID: RoleIDUser, Name: RoleUser},
			{ID: RoleIDAdmin, Name: RoleAdmin},
		},
	}

	assert.Equal(t, []string{RoleUser, RoleAdmin}, user.RoleNames())
	assert.Empty(t, (&User{}).RoleNames())
}
