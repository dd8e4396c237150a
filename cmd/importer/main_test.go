package main

import (
	"testing"

	"go-library-management/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	book, err := parseRow([]string{"Clean Code", "images/clean-code.png", "Prentice Hall", "5", "Robert Martin"})
	require.NoError(t, err)
	assert.Equal(t, "Clean Code", book.Name)
	assert.Equal(t, "images/clean-code.png", book.Image)
	assert.Equal(t, "Prentice Hall", book.Publisher)
	assert.Equal(t, 5, book.Inventory)
}

func TestParseRowDefaultsImage(t *testing.T) {
	book, err := parseRow([]string{"Clean Code", "", "Prentice Hall", "5", "Robert Martin"})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultBookImage, book.Image)
}

func TestParseRowRejectsBadRows(t *testing.T) {
	tests := []struct {
		name   string
		record []string
	}{
		{"too few columns", []string{"Clean Code", "", "Prentice Hall"}},
		{"missing name", []string{"", "", "Prentice Hall", "5", "Robert Martin"}},
		{"missing publisher", []string{"Clean Code", "", "", "5", "Robert Martin"}},
		{"non-numeric inventory", []string{"Clean Code", "", "Prentice Hall", "five", "Robert Martin"}},
		{"negative inventory", []string{"Clean Code", "", "Prentice Hall", "-1", "Robert Martin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRow(tt.record)
			assert.Error(t, err)
		})
	}
}
