package testutils

import (
	"context"
	"fmt"
	"time"

	"github.com/saviobatista/svc-discovery/internal/gis"
)

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// TimePtr returns a pointer to t
func TimePtr(t time.Time) *time.Time {
	return &t
}

// MockPosition creates a backend position near Amsterdam
func MockPosition() *gis.Position {
	return &gis.Position{
		Latitude:       52.3805,
		Longitude:      4.8800,
		AltitudeMeters: 120.5,
	}
}

// MockAircraftState creates a complete airborne backend state
func MockAircraftState(ts time.Time) *gis.AircraftState {
	return &gis.AircraftState{
		Timestamp:         TimePtr(ts),
		Position:          MockPosition(),
		Status:            int32(gis.OperationalStatusAirborne),
		TrackAngleDegrees: 270,
		GroundSpeedMPS:    12.5,
		VerticalSpeedMPS:  -0.5,
	}
}

// MockFlight creates a backend flight with a state and the given number of
// recent positions, one second apart and ending at ts.
func MockFlight(sessionID string, positions int, ts time.Time) gis.Flight {
	f := gis.Flight{
		SessionID:    StringPtr(sessionID),
		AircraftID:   StringPtr(fmt.Sprintf("aircraft-%s", sessionID)),
		AircraftType: int32(gis.AircraftTypeRotorcraft),
		Simulated:    false,
		State:        MockAircraftState(ts),
	}
	for i := positions - 1; i >= 0; i-- {
		f.Positions = append(f.Positions, gis.TimePosition{
			Timestamp: TimePtr(ts.Add(-time.Duration(i) * time.Second)),
			Position:  MockPosition(),
		})
	}
	return f
}

// WaitForCondition waits for a condition to be true with timeout
func WaitForCondition(condition func() bool, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for condition")
		case <-ticker.C:
			if condition() {
				return nil
			}
		}
	}
}
