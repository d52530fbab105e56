package timezone

import (
	"sync"
	"time"

	"hotel/config"

	"github.com/rs/zerolog/log"
)

var (
	once     sync.Once
	location = time.UTC
)

func load() {
	once.Do(func() {
		name := config.Get().App.Timezone
		if name == "" {
			log.Warn().Msg("no timezone configured, using UTC")

			return
		}

		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Error().Err(err).Str("timezone", name).Msg("unknown timezone, using UTC")

			return
		}

		location = loc
	})
}

// GetLocation returns the hotel's zone.
func GetLocation() *time.Location {
	load()

	return location
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value as wall-clock time at the hotel.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDate reads a YYYY-MM-DD calendar date as midnight at the hotel.
func ParseDate(value string) (time.Time, error) {
	return Parse(time.DateOnly, value)
}

// StartOfDay truncates t to midnight at the hotel.
func StartOfDay(t time.Time) time.Time {
	local := ToAppTime(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
