package api

import (
	"testing"

	"github.com/bloglist-app/backend/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerRequiresTokenSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "")

	_, err := NewServer(database.Database{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_SECRET")
}

func TestNewServerWithTokenSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")
	t.Setenv("PORT", "9090")

	server, err := NewServer(database.Database{})
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", server.Addr)
}
