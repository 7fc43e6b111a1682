package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-08-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 15, got.Day())

	got, err = ParseDate("2026-08-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	got, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseDate("next tuesday")
	assert.Error(t, err)
}

func TestParseFloat(t *testing.T) {
	got, err := ParseFloat("66.67")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 66.67, *got)

	got, err = ParseFloat("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseFloat("high")
	assert.Error(t, err)
}

func TestParseDateRangeEnd(t *testing.T) {
	// a date-only bound covers the whole day
	got, err := ParseDateRangeEnd("2026-08-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 15, got.Day())

	// an explicit timestamp is kept as given, midnight included
	got, err = ParseDateRangeEnd("2026-08-15T00:00:00Z")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), *got)

	got, err = ParseDateRangeEnd("2026-08-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	got, err = ParseDateRangeEnd("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseDateRangeEnd("yesterday")
	assert.Error(t, err)
}
