package booking

type Status string

// Only PENDING is ever assigned today. Payment completion does not advance
// a booking; whether a CONFIRMED state should exist is an open product question.
const (
	StatusPending Status = "PENDING"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusPending
}
