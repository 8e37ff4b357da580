package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSnapshotsEnvironment(t *testing.T) {
	t.Setenv("BLOGLIST_TEST_KEY", "value")

	c := New()
	assert.Equal(t, "value", c["BLOGLIST_TEST_KEY"])
}

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(c, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "30", "BAD": "thirty"}

	assert.Equal(t, 30, GetInt(c, "TIMEOUT", 180))
	assert.Equal(t, 180, GetInt(c, "BAD", 180))
	assert.Equal(t, 180, GetInt(c, "MISSING", 180))
	assert.Equal(t, 180, GetInt(nil, "TIMEOUT", 180))
}
