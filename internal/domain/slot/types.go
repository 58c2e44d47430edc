package slot

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBooked    Status = "BOOKED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked:
		return true
	default:
		return false
	}
}
