package timezone_test

import (
	"testing"
	"time"

	"arena/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUsesAppLocation(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2025-06-01")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2025-06-01 00:00", timezone.Format(parsed, "2006-01-02 15:04"))

	_, err = timezone.Parse("2006-01-02", "01/06/2025")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	in := timezone.Date(2025, time.March, 9, 17, 45)
	got := timezone.StartOfDay(in)

	assert.Equal(t, timezone.Date(2025, time.March, 9, 0, 0), got)
	assert.True(t, timezone.StartOfDay(got).Equal(got))
}
