package types

import (
	"time"
)

// RFC3339FormatString is the value of Time.Format
const RFC3339FormatString = "RFC3339"

// timeLayout is RFC3339 with millisecond precision and a Z zone
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Time is an RFC3339 formatted instant
type Time struct {
	Value  string `json:"value"`
	Format string `json:"format"`
}

// NewTime formats t as UTC with millisecond precision
func NewTime(t time.Time) Time {
	return Time{
		Value:  t.UTC().Format(timeLayout),
		Format: RFC3339FormatString,
	}
}

// Now returns the current time as a Time
func Now() Time {
	return NewTime(time.Now())
}

// Altitude is an altitude with reference and units
type Altitude struct {
	Value     float64 `json:"value"`
	Reference string  `json:"reference"`
	Units     string  `json:"units"`
}

// DefaultAltitude returns the unknown altitude (-1000 m, WGS84)
func DefaultAltitude() Altitude {
	return Altitude{Value: -1000, Reference: "W84", Units: "M"}
}

// LatLngPoint is a point in degrees. Unknown is 0.
type LatLngPoint struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Radius is a distance around a point
type Radius struct {
	Value float32 `json:"value"`
	Units string  `json:"units"`
}

// DefaultRadius returns the minimal radius (1 mm)
func DefaultRadius() Radius {
	return Radius{Value: 0.001, Units: "M"}
}

// Circle is a center point and a radius
type Circle struct {
	Center LatLngPoint `json:"center"`
	Radius Radius      `json:"radius"`
}

// Polygon is an outline of at least three vertices
type Polygon struct {
	Vertices []LatLngPoint `json:"vertices"`
}

// Volume3D is an outline extruded between two altitudes
type Volume3D struct {
	OutlineCircle  Circle   `json:"outline_circle"`
	OutlinePolygon Polygon  `json:"outline_polygon"`
	AltitudeLower  Altitude `json:"altitude_lower"`
	AltitudeUpper  Altitude `json:"altitude_upper"`
}

// Volume4D is a Volume3D bounded in time
type Volume4D struct {
	Volume    Volume3D `json:"volume"`
	TimeStart Time     `json:"time_start"`
	TimeEnd   Time     `json:"time_end"`
}

// OperatingArea describes where a flight operates.
// Volumes is always empty for now: the ASTM schema lists OperatingArea
// rather than Volume4D here and that is still unresolved.
type OperatingArea struct {
	AircraftCount int32      `json:"aircraft_count"`
	Volumes       []Volume4D `json:"volumes"`
}

// RIDHeight is a height above a reference
type RIDHeight struct {
	Distance  float32            `json:"distance"`
	Reference RIDHeightReference `json:"reference"`
}

// RIDAircraftPosition is the position of an aircraft.
// Alt and PressureAlt are -1000 when unknown.
type RIDAircraftPosition struct {
	Lat          float64            `json:"lat"`
	Lng          float64            `json:"lng"`
	Alt          float32            `json:"alt"`
	AccuracyH    HorizontalAccuracy `json:"accuracy_h"`
	AccuracyV    VerticalAccuracy   `json:"accuracy_v"`
	Extrapolated bool               `json:"extrapolated"`
	PressureAlt  float32            `json:"pressure_alt"`
	Height       RIDHeight          `json:"height"`
}

// RIDRecentAircraftPosition is a position at a reported time
type RIDRecentAircraftPosition struct {
	Time     Time                `json:"time"`
	Position RIDAircraftPosition `json:"position"`
}

// RIDAircraftState is the state of an aircraft at a point in time
type RIDAircraftState struct {
	Timestamp         Time                 `json:"timestamp"`
	TimestampAccuracy float32              `json:"timestamp_accuracy"`
	OperationalStatus RIDOperationalStatus `json:"operational_status"`
	Position          RIDAircraftPosition  `json:"position"`
	Track             float32              `json:"track"`
	Speed             float32              `json:"speed"`
	SpeedAccuracy     SpeedAccuracy        `json:"speed_accuracy"`
	VerticalSpeed     float32              `json:"vertical_speed"`
}

// RIDFlight is a flight visible in the requested area
type RIDFlight struct {
	ID              string                      `json:"id"`
	AircraftType    UAType                      `json:"aircraft_type"`
	CurrentState    RIDAircraftState            `json:"current_state"`
	OperatingArea   OperatingArea               `json:"operating_area"`
	Simulated       bool                        `json:"simulated"`
	RecentPositions []RIDRecentAircraftPosition `json:"recent_positions"`
}

// GetFlightsResponse is the body of a successful flights query
type GetFlightsResponse struct {
	Timestamp     Time        `json:"timestamp"`
	Flights       []RIDFlight `json:"flights"`
	NoISAsPresent bool        `json:"no_isas_present"`
}
