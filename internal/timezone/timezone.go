package timezone

import "time"

const (
	DefaultTimezone = "America/Sao_Paulo"
	DateLayout      = "2006-01-02"
)

// Location resolves tz, falling back to the clinic default and then UTC.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Clock returns a now-func bound to tz, suitable for gorm.Config.NowFunc.
func Clock(tz string) func() time.Time {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// ParseDay parses a YYYY-MM-DD string as midnight in tz.
func ParseDay(value, tz string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, Location(tz))
}
