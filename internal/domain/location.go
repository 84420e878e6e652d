package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyAddress     = errors.New("address cannot be empty")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Validate checks latitude and longitude ranges.
func (c Coordinates) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return ErrInvalidLatitude
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// Location is a delivery destination: a point plus a human-readable address.
type Location struct {
	Coordinates
	Address string
}

// Validate checks the point and trims the address, which must not be blank.
func (l *Location) Validate() error {
	if err := l.Coordinates.Validate(); err != nil {
		return err
	}
	l.Address = strings.TrimSpace(l.Address)
	if l.Address == "" {
		return ErrEmptyAddress
	}
	return nil
}
