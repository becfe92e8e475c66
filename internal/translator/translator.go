// Package translator converts geospatial backend records into the RID schema.
package translator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/saviobatista/svc-discovery/internal/gis"
	"github.com/saviobatista/svc-discovery/internal/types"
)

// UnknownID is used when a flight carries neither a session nor an aircraft id
const UnknownID = "UNK"

// ErrInternalTranslation marks a backend record that cannot be translated
var ErrInternalTranslation = errors.New("internal translation error")

// UAType maps a backend aircraft type onto the RID aircraft type.
// AircraftTypeUnknown maps to NotDeclared.
func UAType(t gis.AircraftType) types.UAType {
	switch t {
	case gis.AircraftTypeAeroplane:
		return types.UATypeAeroplane
	case gis.AircraftTypeRotorcraft:
		// includes multirotor
		return types.UATypeHelicopter
	case gis.AircraftTypeGyroplane:
		return types.UATypeGyroplane
	case gis.AircraftTypeHybridlift:
		return types.UATypeHybridLift
	case gis.AircraftTypeOrnithopter:
		return types.UATypeOrnithopter
	case gis.AircraftTypeGlider:
		return types.UATypeGlider
	case gis.AircraftTypeKite:
		return types.UATypeKite
	case gis.AircraftTypeFreeballoon:
		return types.UATypeFreeBalloon
	case gis.AircraftTypeCaptiveballoon:
		return types.UATypeCaptiveBalloon
	case gis.AircraftTypeAirship:
		return types.UATypeAirship
	case gis.AircraftTypeUnpowered:
		return types.UATypeFreeFallOrParachute
	case gis.AircraftTypeRocket:
		return types.UATypeRocket
	case gis.AircraftTypeTethered:
		return types.UATypeTetheredPoweredAircraft
	case gis.AircraftTypeGroundobstacle:
		return types.UATypeGroundObstacle
	case gis.AircraftTypeOther:
		return types.UATypeOther
	default:
		return types.UATypeNotDeclared
	}
}

// OperationalStatus maps a backend status onto the RID status.
// Unlike UAType an unknown status is an error.
func OperationalStatus(s gis.OperationalStatus) (types.RIDOperationalStatus, error) {
	switch s {
	case gis.OperationalStatusUndeclared:
		return types.RIDOperationalStatusUndeclared, nil
	case gis.OperationalStatusGround:
		return types.RIDOperationalStatusGround, nil
	case gis.OperationalStatusAirborne:
		return types.RIDOperationalStatusAirborne, nil
	case gis.OperationalStatusEmergency:
		return types.RIDOperationalStatusEmergency, nil
	case gis.OperationalStatusRemoteIDSystemFailure:
		return types.RIDOperationalStatusRemoteIDSystemFailure, nil
	default:
		return "", fmt.Errorf("%w: unknown operational status %d", ErrInternalTranslation, s)
	}
}

// FlightID returns the session id, else the aircraft id, else UnknownID
func FlightID(f gis.Flight) string {
	if f.SessionID != nil && *f.SessionID != "" {
		return *f.SessionID
	}
	if f.AircraftID != nil && *f.AircraftID != "" {
		return *f.AircraftID
	}
	return UnknownID
}

// position fills in the fields the backend does not report yet: accuracies
// are unknown and pressure altitude and height repeat the altitude.
func position(p *gis.Position) types.RIDAircraftPosition {
	return types.RIDAircraftPosition{
		Lat:          p.Latitude,
		Lng:          p.Longitude,
		Alt:          p.AltitudeMeters,
		AccuracyH:    types.HAUnknown,
		AccuracyV:    types.VAUnknown,
		Extrapolated: false,
		PressureAlt:  p.AltitudeMeters,
		Height: types.RIDHeight{
			Distance:  p.AltitudeMeters,
			Reference: types.RIDHeightReferenceGroundLevel,
		},
	}
}

// AircraftState translates a backend state. Timestamp and position are required.
func AircraftState(s gis.AircraftState) (types.RIDAircraftState, error) {
	if s.Timestamp == nil {
		return types.RIDAircraftState{}, fmt.Errorf("%w: aircraft state timestamp is required", ErrInternalTranslation)
	}
	if s.Position == nil {
		return types.RIDAircraftState{}, fmt.Errorf("%w: aircraft state position is required", ErrInternalTranslation)
	}

	raw, ok := gis.ParseOperationalStatus(s.Status)
	if !ok {
		return types.RIDAircraftState{}, fmt.Errorf("%w: operational status %d out of range", ErrInternalTranslation, s.Status)
	}
	status, err := OperationalStatus(raw)
	if err != nil {
		return types.RIDAircraftState{}, err
	}

	return types.RIDAircraftState{
		Timestamp:         types.NewTime(*s.Timestamp),
		TimestampAccuracy: 0,
		OperationalStatus: status,
		Position:          position(s.Position),
		Track:             s.TrackAngleDegrees,
		Speed:             s.GroundSpeedMPS,
		SpeedAccuracy:     types.SAUnknown,
		VerticalSpeed:     s.VerticalSpeedMPS,
	}, nil
}

// RecentPosition translates a backend position report. Timestamp and position are required.
func RecentPosition(p gis.TimePosition) (types.RIDRecentAircraftPosition, error) {
	if p.Timestamp == nil {
		return types.RIDRecentAircraftPosition{}, fmt.Errorf("%w: position timestamp is required", ErrInternalTranslation)
	}
	if p.Position == nil {
		return types.RIDRecentAircraftPosition{}, fmt.Errorf("%w: position is required", ErrInternalTranslation)
	}

	return types.RIDRecentAircraftPosition{
		Time:     types.NewTime(*p.Timestamp),
		Position: position(p.Position),
	}, nil
}

// Flight translates a single backend flight. An unrecognized aircraft type
// is logged to logger and replaced with NotDeclared; any other defect fails
// the flight. A nil logger uses slog.Default().
func Flight(f gis.Flight, logger *slog.Logger) (types.RIDFlight, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if f.State == nil {
		return types.RIDFlight{}, fmt.Errorf("%w: flight state is required", ErrInternalTranslation)
	}

	aircraftType, ok := gis.ParseAircraftType(f.AircraftType)
	if !ok {
		logger.Warn("aircraft type not recognized, using NotDeclared",
			"aircraft_type", f.AircraftType,
			"flight_id", FlightID(f),
		)
	}

	state, err := AircraftState(*f.State)
	if err != nil {
		return types.RIDFlight{}, err
	}

	positions := make([]types.RIDRecentAircraftPosition, 0, len(f.Positions))
	for _, p := range f.Positions {
		rp, err := RecentPosition(p)
		if err != nil {
			return types.RIDFlight{}, err
		}
		positions = append(positions, rp)
	}

	return types.RIDFlight{
		ID:           FlightID(f),
		AircraftType: UAType(aircraftType),
		CurrentState: state,
		OperatingArea: types.OperatingArea{
			AircraftCount: 0,
			Volumes:       []types.Volume4D{},
		},
		Simulated:       f.Simulated,
		RecentPositions: positions,
	}, nil
}

// Flights translates every flight, failing on the first defective record
func Flights(flights []gis.Flight, logger *slog.Logger) ([]types.RIDFlight, error) {
	out := make([]types.RIDFlight, 0, len(flights))
	for i, f := range flights {
		rf, err := Flight(f, logger)
		if err != nil {
			return nil, fmt.Errorf("flight %d: %w", i, err)
		}
		out = append(out, rf)
	}
	return out, nil
}
