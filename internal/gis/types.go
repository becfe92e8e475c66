// Package gis holds the records exchanged with the geospatial backend.
//
// Bodies are msgpack-encoded and carried over NATS request/reply. Optional
// fields are pointers so that an absent value can be told apart from a zero
// value; the backend contract guarantees timestamps and positions, so their
// absence is treated as a backend defect by the translator.
package gis

import (
	"time"
)

const (
	// SubjectFlights is appended to the subject prefix for flight queries.
	SubjectFlights = "flights"
	// SubjectReady is appended to the subject prefix for liveness probes.
	SubjectReady = "ready"
	// SubjectISAs is reserved for the identification service area check.
	SubjectISAs = "isas"
)

// Position is a reported point in space
type Position struct {
	Latitude       float64 `msgpack:"latitude"`
	Longitude      float64 `msgpack:"longitude"`
	AltitudeMeters float32 `msgpack:"altitude_meters"`
}

// AircraftState is the latest kinematic snapshot of an aircraft
type AircraftState struct {
	Timestamp         *time.Time `msgpack:"timestamp,omitempty"`
	Position          *Position  `msgpack:"position,omitempty"`
	Status            int32      `msgpack:"status"`
	TrackAngleDegrees float32    `msgpack:"track_angle_degrees"`
	GroundSpeedMPS    float32    `msgpack:"ground_speed_mps"`
	VerticalSpeedMPS  float32    `msgpack:"vertical_speed_mps"`
}

// TimePosition is a historical position report
type TimePosition struct {
	Timestamp *time.Time `msgpack:"timestamp,omitempty"`
	Position  *Position  `msgpack:"position,omitempty"`
}

// Flight is a single flight record as returned by the backend
type Flight struct {
	SessionID    *string        `msgpack:"session_id,omitempty"`
	AircraftID   *string        `msgpack:"aircraft_id,omitempty"`
	AircraftType int32          `msgpack:"aircraft_type"`
	Simulated    bool           `msgpack:"simulated"`
	State        *AircraftState `msgpack:"state,omitempty"`
	Positions    []TimePosition `msgpack:"positions"`
}

// FlightsRequest asks for the flights intersecting a window over a time range.
// X is longitude and Y is latitude.
type FlightsRequest struct {
	WindowMinX float64   `msgpack:"window_min_x"`
	WindowMinY float64   `msgpack:"window_min_y"`
	WindowMaxX float64   `msgpack:"window_max_x"`
	WindowMaxY float64   `msgpack:"window_max_y"`
	TimeStart  time.Time `msgpack:"time_start"`
	TimeEnd    time.Time `msgpack:"time_end"`
}

// FlightsResponse is the reply to a FlightsRequest. A non-empty Error
// means the backend failed to serve the query.
type FlightsResponse struct {
	Flights []Flight `msgpack:"flights"`
	Error   string   `msgpack:"error,omitempty"`
}

// ReadyRequest is the body of a liveness probe
type ReadyRequest struct{}

// ReadyResponse is the reply to a liveness probe
type ReadyResponse struct {
	Ready bool `msgpack:"ready"`
}
