package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	t.Setenv("CFG_TEST_STR", "value")
	assert.Equal(t, "value", GetString("CFG_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetString("CFG_TEST_STR_MISSING", "fallback"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("CFG_TEST_INT", "42")
	assert.Equal(t, 42, GetInt("CFG_TEST_INT", 7))

	t.Setenv("CFG_TEST_INT_BAD", "forty-two")
	assert.Equal(t, 7, GetInt("CFG_TEST_INT_BAD", 7))
}

func TestGetDuration(t *testing.T) {
	t.Setenv("CFG_TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetDuration("CFG_TEST_DUR", time.Minute))

	t.Setenv("CFG_TEST_DUR_BAD", "soon")
	assert.Equal(t, time.Minute, GetDuration("CFG_TEST_DUR_BAD", time.Minute))
}
