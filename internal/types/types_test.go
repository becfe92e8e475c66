package types

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "utc with millis",
			in:   time.Date(1985, 4, 12, 23, 20, 50, 520_000_000, time.UTC),
			want: "1985-04-12T23:20:50.520Z",
		},
		{
			name: "whole seconds keep millis",
			in:   time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
			want: "2023-01-01T12:00:00.000Z",
		},
		{
			name: "offset converted to Z",
			in:   time.Date(2023, 1, 1, 14, 0, 0, 0, time.FixedZone("CEST", 2*60*60)),
			want: "2023-01-01T12:00:00.000Z",
		},
		{
			name: "sub-millisecond truncated",
			in:   time.Date(2023, 1, 1, 12, 0, 0, 1_999_999, time.UTC),
			want: "2023-01-01T12:00:00.001Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTime(tt.in)
			if got.Value != tt.want {
				t.Errorf("NewTime().Value = %s, want %s", got.Value, tt.want)
			}
			if got.Format != RFC3339FormatString {
				t.Errorf("NewTime().Format = %s, want %s", got.Format, RFC3339FormatString)
			}
		})
	}
}

func TestNow_IsParseable(t *testing.T) {
	before := time.Now().Add(-time.Second)
	got := Now()

	parsed, err := time.Parse(time.RFC3339, got.Value)
	if err != nil {
		t.Fatalf("Now() produced unparseable value %q: %v", got.Value, err)
	}
	if parsed.Before(before) {
		t.Errorf("Now() = %v, expected after %v", parsed, before)
	}
	if !strings.HasSuffix(got.Value, "Z") {
		t.Errorf("Now() = %q, expected Z suffix", got.Value)
	}
}

func TestDefaults(t *testing.T) {
	alt := DefaultAltitude()
	if alt.Value != -1000 || alt.Reference != "W84" || alt.Units != "M" {
		t.Errorf("DefaultAltitude() = %+v", alt)
	}

	r := DefaultRadius()
	if r.Value != 0.001 || r.Units != "M" {
		t.Errorf("DefaultRadius() = %+v", r)
	}
}

func TestGetFlightsResponse_JSONFields(t *testing.T) {
	resp := GetFlightsResponse{
		Timestamp: NewTime(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)),
		Flights: []RIDFlight{
			{
				ID:           "session-1",
				AircraftType: UATypeHelicopter,
				CurrentState: RIDAircraftState{
					OperationalStatus: RIDOperationalStatusAirborne,
					SpeedAccuracy:     SAUnknown,
					Position: RIDAircraftPosition{
						AccuracyH: HAUnknown,
						AccuracyV: VAUnknown,
						Height:    RIDHeight{Reference: RIDHeightReferenceGroundLevel},
					},
				},
				OperatingArea:   OperatingArea{Volumes: []Volume4D{}},
				RecentPositions: []RIDRecentAircraftPosition{},
			},
		},
		NoISAsPresent: true,
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal GetFlightsResponse: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Failed to unmarshal GetFlightsResponse: %v", err)
	}

	for _, key := range []string{"timestamp", "flights", "no_isas_present"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}

	body := string(data)
	for _, want := range []string{
		`"aircraft_type":"Helicopter"`,
		`"operational_status":"Airborne"`,
		`"accuracy_h":"HAUnknown"`,
		`"accuracy_v":"VAUnknown"`,
		`"speed_accuracy":"SAUnknown"`,
		`"reference":"GroundLevel"`,
		`"format":"RFC3339"`,
		`"volumes":[]`,
		`"recent_positions":[]`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %s in %s", want, body)
		}
	}
}
