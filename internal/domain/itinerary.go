package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Accommodation is a place the traveller stays, spanning check-in to
// check-out. IDs are unique within a trip's accommodation list; uniqueness
// comes from UUID generation at creation, nothing re-checks it.
type Accommodation struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	CheckIn    time.Time     `json:"check_in"`
	CheckOut   time.Time     `json:"check_out"`
	Coordinate GeoCoordinate `json:"coordinate"`
	Budget     float64       `json:"budget"`
	Notes      string        `json:"notes,omitempty"`
}

// Activity is a single dated thing to do, with a free-text location label
// alongside the coordinate (the label is whatever the place search returned).
type Activity struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	DateTime   time.Time     `json:"date_time"`
	Location   string        `json:"location"`
	Coordinate GeoCoordinate `json:"coordinate"`
	Budget     float64       `json:"budget"`
	Notes      string        `json:"notes,omitempty"`
}

// TransportMode is the kind of transport leg.
type TransportMode string

const (
	ModeBus      TransportMode = "bus"
	ModeTrain    TransportMode = "train"
	ModeTaxi     TransportMode = "taxi"
	ModeAirplane TransportMode = "airplane"
)

// ParseTransportMode validates a wire-format mode string.
// Returns ErrValidation (wrapped) for anything outside the known set.
func ParseTransportMode(s string) (TransportMode, error) {
	switch m := TransportMode(s); m {
	case ModeBus, ModeTrain, ModeTaxi, ModeAirplane:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown transport mode %q", ErrValidation, s)
	}
}

// Transport is a leg between two locations at a point in time.
type Transport struct {
	ID              uuid.UUID     `json:"id"`
	Mode            TransportMode `json:"mode"`
	DateTime        time.Time     `json:"date_time"`
	StartLocation   string        `json:"start_location"`
	StartCoordinate GeoCoordinate `json:"start_coordinate"`
	EndLocation     string        `json:"end_location"`
	EndCoordinate   GeoCoordinate `json:"end_coordinate"`
	Budget          float64       `json:"budget"`
	Notes           string        `json:"notes,omitempty"`
}
