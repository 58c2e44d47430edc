package station

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidStationName    = errors.New("station name is required")
	ErrInvalidLocation       = errors.New("location is required")
	ErrInvalidContactEmail   = errors.New("invalid contact email")
	ErrInvalidContactPhone   = errors.New("contact phone is required")
	ErrInvalidApprovalStatus = errors.New("invalid approval status")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Station struct {
	id           uuid.UUID
	stationName  string
	location     string
	description  string
	contactEmail string
	contactPhone string
}

func NewStation(stationName, location, description, contactEmail, contactPhone string) (*Station, error) {
	stationName = strings.TrimSpace(stationName)
	if stationName == "" {
		return nil, ErrInvalidStationName
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrInvalidLocation
	}
	contactEmail = strings.TrimSpace(strings.ToLower(contactEmail))
	if !emailPattern.MatchString(contactEmail) {
		return nil, ErrInvalidContactEmail
	}
	contactPhone = strings.TrimSpace(contactPhone)
	if contactPhone == "" {
		return nil, ErrInvalidContactPhone
	}

	return &Station{
		id:           uuid.New(),
		stationName:  stationName,
		location:     location,
		description:  strings.TrimSpace(description),
		contactEmail: contactEmail,
		contactPhone: contactPhone,
	}, nil
}

func (s *Station) ID() uuid.UUID        { return s.id }
func (s *Station) StationName() string  { return s.stationName }
func (s *Station) Location() string     { return s.location }
func (s *Station) Description() string  { return s.description }
func (s *Station) ContactEmail() string { return s.contactEmail }
func (s *Station) ContactPhone() string { return s.contactPhone }
