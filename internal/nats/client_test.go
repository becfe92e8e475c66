package nats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/saviobatista/svc-discovery/internal/gis"
	"github.com/saviobatista/svc-discovery/internal/testutils"
)

func TestNew_Unit_URLs(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{
			name: "invalid scheme should fail",
			url:  "invalid://url:12345",
		},
		{
			name: "unreachable server should fail",
			url:  "nats://127.0.0.1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.url, "gis", time.Second, nil)
			if err == nil {
				t.Error("Expected error, got none")
				client.Close()
				return
			}
			if client != nil {
				t.Error("Expected nil client on error")
			}
		})
	}
}

func TestClient_Close_Unit_NilSafety(t *testing.T) {
	// Close with a nil connection should not panic
	client := &Client{conn: nil}
	client.Close()
}

func TestNewWithConn_Defaults(t *testing.T) {
	client := NewWithConn(nil, "gis", 0, nil)

	if client.timeout != DefaultTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultTimeout, client.timeout)
	}
	if client.logger == nil {
		t.Error("Expected default logger")
	}
}

func TestClient_Subject(t *testing.T) {
	tests := []struct {
		prefix string
		name   string
		want   string
	}{
		{"gis", gis.SubjectFlights, "gis.flights"},
		{"gis", gis.SubjectReady, "gis.ready"},
		{"geo.eu", gis.SubjectISAs, "geo.eu.isas"},
		{"", gis.SubjectFlights, "flights"},
	}

	for _, tt := range tests {
		client := NewWithConn(nil, tt.prefix, time.Second, nil)
		if got := client.Subject(tt.name); got != tt.want {
			t.Errorf("Subject(%q) with prefix %q = %q, want %q", tt.name, tt.prefix, got, tt.want)
		}
	}
}

func TestClient_Unit_NoConnection(t *testing.T) {
	client := NewWithConn(nil, "gis", time.Second, nil)

	if _, err := client.GetFlights(context.Background(), gis.FlightsRequest{}); !errors.Is(err, nats.ErrConnectionClosed) {
		t.Errorf("GetFlights() error = %v, want ErrConnectionClosed", err)
	}
	if err := client.IsReady(context.Background()); !errors.Is(err, nats.ErrConnectionClosed) {
		t.Errorf("IsReady() error = %v, want ErrConnectionClosed", err)
	}
}

func TestFlightsResponse_MsgpackOptionalFields(t *testing.T) {
	ts := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)
	full := testutils.MockFlight("s-1", 2, ts)
	bare := gis.Flight{AircraftType: 99}

	data, err := msgpack.Marshal(gis.FlightsResponse{Flights: []gis.Flight{full, bare}})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var got gis.FlightsResponse
	if err := msgpack.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if len(got.Flights) != 2 {
		t.Fatalf("Expected 2 flights, got %d", len(got.Flights))
	}
	f := got.Flights[0]
	if f.SessionID == nil || *f.SessionID != "s-1" {
		t.Errorf("SessionID = %v", f.SessionID)
	}
	if f.State == nil || f.State.Timestamp == nil || !f.State.Timestamp.Equal(ts) {
		t.Errorf("State timestamp lost: %+v", f.State)
	}

	b := got.Flights[1]
	if b.SessionID != nil || b.AircraftID != nil || b.State != nil {
		t.Errorf("absent fields should stay nil, got %+v", b)
	}
	if b.AircraftType != 99 {
		t.Errorf("AircraftType = %d, want 99", b.AircraftType)
	}
}
