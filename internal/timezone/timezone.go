package timezone

import (
	"errors"
	"time"
)

// HomeZone is the studio's home timezone. Timestamps that arrive without
// zone information (seed files, admin input) are interpreted in this zone.
const HomeZone = "Asia/Kolkata"

var ErrInvalidTimezone = errors.New("invalid timezone specified")

// Resolve looks a zone name up in the IANA catalog.
func Resolve(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

// Convert returns t expressed in the wall clock of the named zone.
func Convert(t time.Time, name string) (time.Time, error) {
	loc, err := Resolve(name)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// ParseInHomeZone parses a naive timestamp (no zone suffix) as a wall-clock
// time in the home zone and returns the instant in UTC, which is the stored
// form.
func ParseInHomeZone(layout, value string) (time.Time, error) {
	loc, err := time.LoadLocation(HomeZone)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
