package rj

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRJName     = errors.New("rj name is required")
	ErrInvalidShowName   = errors.New("show name is required")
	ErrInvalidShowTiming = errors.New("show timing is required")
	ErrStationIDRequired = errors.New("station id is required")
)

// RJ is an on-air host tied to a station; slots reference both.
type RJ struct {
	id         uuid.UUID
	stationID  uuid.UUID
	rjName     string
	showName   string
	showTiming string
}

func NewRJ(stationID uuid.UUID, rjName, showName, showTiming string) (*RJ, error) {
	if stationID == uuid.Nil {
		return nil, ErrStationIDRequired
	}
	rjName = strings.TrimSpace(rjName)
	if rjName == "" {
		return nil, ErrInvalidRJName
	}
	showName = strings.TrimSpace(showName)
	if showName == "" {
		return nil, ErrInvalidShowName
	}
	showTiming = strings.TrimSpace(showTiming)
	if showTiming == "" {
		return nil, ErrInvalidShowTiming
	}

	return &RJ{
		id:         uuid.New(),
		stationID:  stationID,
		rjName:     rjName,
		showName:   showName,
		showTiming: showTiming,
	}, nil
}

func (r *RJ) ID() uuid.UUID        { return r.id }
func (r *RJ) StationID() uuid.UUID { return r.stationID }
func (r *RJ) RJName() string       { return r.rjName }
func (r *RJ) ShowName() string     { return r.showName }
func (r *RJ) ShowTiming() string   { return r.showTiming }
