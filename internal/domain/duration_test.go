package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceDuration(t *testing.T) {
	assert.Equal(t, Duration(30), CoerceDuration("30"))
	assert.Equal(t, Duration(12.5), CoerceDuration("12.5"))
	assert.True(t, math.IsNaN(float64(CoerceDuration("a while"))))
	assert.True(t, math.IsNaN(float64(CoerceDuration(""))))
}

func TestDurationMarshalsNaNAsNull(t *testing.T) {
	raw, err := json.Marshal(Exercise{
		Description: "walk",
		Duration:    CoerceDuration("a while"),
	})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"duration":null`)
}

func TestDurationRoundTrip(t *testing.T) {
	raw, err := json.Marshal(Duration(42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(raw))

	var d Duration
	require.NoError(t, json.Unmarshal([]byte("42"), &d))
	assert.Equal(t, Duration(42), d)

	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, math.IsNaN(float64(d)))
}
