package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	loc, err := Resolve("Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestResolveInvalid(t *testing.T) {
	_, err := Resolve("Invalid/Zone")
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestConvert(t *testing.T) {
	utc := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	got, err := Convert(utc, "Asia/Kolkata")
	require.NoError(t, err)

	// IST is UTC+5:30 with no DST.
	assert.Equal(t, 17, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.True(t, got.Equal(utc), "conversion must not change the instant")
}

func TestConvertInvalidZone(t *testing.T) {
	_, err := Convert(time.Now(), "Invalid/Zone")
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestConvertIsIdempotent(t *testing.T) {
	utc := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	once, err := Convert(utc, "America/New_York")
	require.NoError(t, err)
	twice, err := Convert(once, "America/New_York")
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestParseInHomeZone(t *testing.T) {
	// 18:00 IST is 12:30 UTC.
	got, err := ParseInHomeZone("2006-01-02 15:04:05", "2025-06-10 18:00:00")
	require.NoError(t, err)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 12, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestParseInHomeZoneBadInput(t *testing.T) {
	_, err := ParseInHomeZone("2006-01-02 15:04:05", "not-a-time")
	assert.Error(t, err)
}
