// Package window parses and validates the area and lookback of a flights query.
package window

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// MaxDurationSeconds is the longest lookback a caller may request
	MaxDurationSeconds = 60.0

	// DefaultMaxDiagonalMeters is the largest diagonal a standard query may cover
	DefaultMaxDiagonalMeters = 7_000.0
)

var (
	// ErrInvalidInput marks malformed or out-of-range caller input
	ErrInvalidInput = errors.New("invalid input")

	// ErrAreaTooLarge marks a valid window whose diagonal exceeds the allowed maximum
	ErrAreaTooLarge = errors.New("requested area too large")
)

// Window is an area of interest given by two opposite corners
type Window struct {
	Lat1 float64
	Lon1 float64
	Lat2 float64
	Lon2 float64
}

// Parse reads a view string of the form "lat1,lon1,lat2,lon2"
func Parse(view string) (Window, error) {
	values := strings.Split(view, ",")
	if len(values) != 4 {
		return Window{}, fmt.Errorf("%w: view must be of format 'lat1,lon1,lat2,lon2', got %d values", ErrInvalidInput, len(values))
	}

	var w Window
	var err error
	if w.Lat1, err = parseCoordinate(values[0], true); err != nil {
		return Window{}, err
	}
	if w.Lon1, err = parseCoordinate(values[1], false); err != nil {
		return Window{}, err
	}
	if w.Lat2, err = parseCoordinate(values[2], true); err != nil {
		return Window{}, err
	}
	if w.Lon2, err = parseCoordinate(values[3], false); err != nil {
		return Window{}, err
	}

	return w, nil
}

func parseCoordinate(s string, lat bool) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: %q is not a floating point coordinate", ErrInvalidInput, s)
	}

	if lat && (value < -90 || value > 90) {
		return 0, fmt.Errorf("%w: latitude %v must be between -90.0 and 90.0", ErrInvalidInput, value)
	}
	if !lat && (value < -180 || value > 180) {
		return 0, fmt.Errorf("%w: longitude %v must be between -180.0 and 180.0", ErrInvalidInput, value)
	}

	return value, nil
}

// ValidateDuration checks a lookback in seconds lies within [0, MaxDurationSeconds]
func ValidateDuration(seconds float64) error {
	if math.IsNaN(seconds) || seconds < 0 || seconds > MaxDurationSeconds {
		return fmt.Errorf("%w: recent_positions_duration must be between 0 and %v, got %v", ErrInvalidInput, MaxDurationSeconds, seconds)
	}
	return nil
}

// Diagonal returns the great-circle distance in meters between the two corners
func (w Window) Diagonal() float64 {
	return geo.DistanceHaversine(orb.Point{w.Lon1, w.Lat1}, orb.Point{w.Lon2, w.Lat2})
}

// Bound returns the window as a bound with ordered min and max corners
func (w Window) Bound() orb.Bound {
	return orb.Point{w.Lon1, w.Lat1}.Bound().Extend(orb.Point{w.Lon2, w.Lat2})
}

// CheckArea enforces maxDiagonal on the window. A nil maxDiagonal disables the check.
func (w Window) CheckArea(maxDiagonal *float64) error {
	if maxDiagonal == nil {
		return nil
	}

	if d := w.Diagonal(); d > *maxDiagonal {
		return fmt.Errorf("%w: diagonal %.0fm exceeds %.0fm", ErrAreaTooLarge, d, *maxDiagonal)
	}
	return nil
}

// TimeRange is the span of time a query covers
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Lookback returns the range ending at now and starting seconds earlier
func Lookback(now time.Time, seconds float64) TimeRange {
	return TimeRange{
		Start: now.Add(-time.Duration(seconds * float64(time.Second))),
		End:   now,
	}
}
