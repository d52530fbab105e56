package timezone_test

import (
	"testing"
	"time"

	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	loc := timezone.GetLocation()

	require.NotNil(t, loc)
	assert.Equal(t, loc, timezone.Now().Location())
	assert.Equal(t, loc, timezone.ToAppTime(time.Now().UTC()).Location())
}

func TestParseDate(t *testing.T) {
	date, err := timezone.ParseDate("2026-06-01")

	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", timezone.Format(date, time.DateOnly))
	assert.Equal(t, 0, date.Hour())

	_, err = timezone.ParseDate("01/06/2026")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	late, err := timezone.Parse(time.DateTime, "2026-06-01 23:45:10")
	require.NoError(t, err)

	midnight := timezone.StartOfDay(late)

	assert.Equal(t, "2026-06-01 00:00:00", timezone.Format(midnight, time.DateTime))
	assert.Equal(t, midnight, timezone.StartOfDay(midnight))
}
