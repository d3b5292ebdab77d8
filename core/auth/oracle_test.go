package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowList(t *testing.T) {
	list := FromConfig(Config{AdminEmails: " Admin@Example.com, ops@example.com,,"})

	assert.Equal(t, 2, list.Len())

	tests := []struct {
		identity string
		want     bool
	}{
		{"admin@example.com", true},
		{"ADMIN@EXAMPLE.COM ", true},
		{"ops@example.com", true},
		{"intruder@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, list.IsAuthorized(tt.identity), tt.identity)
	}
}

func TestAllowList_Empty(t *testing.T) {
	list := FromConfig(Config{})
	assert.Equal(t, 0, list.Len())
	assert.False(t, list.IsAuthorized("anyone@example.com"))
}
