package station

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

func (s ApprovalStatus) String() string {
	return string(s)
}

func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

func NewApprovalStatus(s string) (ApprovalStatus, error) {
	status := ApprovalStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidApprovalStatus
	}
	return status, nil
}
