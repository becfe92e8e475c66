package gis

import (
	"testing"
)

func TestParseAircraftType(t *testing.T) {
	tests := []struct {
		name   string
		raw    int32
		want   AircraftType
		wantOK bool
	}{
		{name: "undeclared", raw: 0, want: AircraftTypeUndeclared, wantOK: true},
		{name: "rotorcraft", raw: 2, want: AircraftTypeRotorcraft, wantOK: true},
		{name: "other", raw: 15, want: AircraftTypeOther, wantOK: true},
		{name: "above range", raw: 16, want: AircraftTypeUnknown, wantOK: false},
		{name: "negative", raw: -3, want: AircraftTypeUnknown, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAircraftType(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseAircraftType(%d) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseOperationalStatus(t *testing.T) {
	tests := []struct {
		name   string
		raw    int32
		want   OperationalStatus
		wantOK bool
	}{
		{name: "undeclared", raw: 0, want: OperationalStatusUndeclared, wantOK: true},
		{name: "airborne", raw: 2, want: OperationalStatusAirborne, wantOK: true},
		{name: "rid failure", raw: 4, want: OperationalStatusRemoteIDSystemFailure, wantOK: true},
		{name: "above range", raw: 5, want: OperationalStatusUnknown, wantOK: false},
		{name: "negative", raw: -1, want: OperationalStatusUnknown, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseOperationalStatus(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseOperationalStatus(%d) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
