package adcontent

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrBookingIDRequired   = errors.New("booking id is required")
	ErrUserIDRequired      = errors.New("user id is required")
	ErrFilePathRequired    = errors.New("file path is required")
	ErrDescriptionRequired = errors.New("ad description is required")
)

// AdContent is creative material uploaded against a paid booking. The file
// path is an opaque URI; storage itself lives outside this service.
type AdContent struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	userID        uuid.UUID
	filePath      string
	adDescription string
}

func NewAdContent(bookingID, userID uuid.UUID, filePath, adDescription string) (*AdContent, error) {
	if bookingID == uuid.Nil {
		return nil, ErrBookingIDRequired
	}
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}
	filePath = strings.TrimSpace(filePath)
	if filePath == "" {
		return nil, ErrFilePathRequired
	}
	adDescription = strings.TrimSpace(adDescription)
	if adDescription == "" {
		return nil, ErrDescriptionRequired
	}

	return &AdContent{
		id:            uuid.New(),
		bookingID:     bookingID,
		userID:        userID,
		filePath:      filePath,
		adDescription: adDescription,
	}, nil
}

func (a *AdContent) ID() uuid.UUID         { return a.id }
func (a *AdContent) BookingID() uuid.UUID  { return a.bookingID }
func (a *AdContent) UserID() uuid.UUID     { return a.userID }
func (a *AdContent) FilePath() string      { return a.filePath }
func (a *AdContent) AdDescription() string { return a.adDescription }
