package leave

import (
	"strings"
	"time"
)

// Type is the dispatch key of a leave category.
type Type string

const (
	TypeOutOfOffice Type = "ooo"
	TypeMaternity   Type = "maternity"
	TypePaternity   Type = "paternity"
)

// NormalizeType trims and lowercases a raw leave type key.
func NormalizeType(s string) Type {
	return Type(strings.ToLower(strings.TrimSpace(s)))
}

type Leave struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	LeaveCount int

	// Maternity only
	ExpectedDeliveryDate *time.Time
	// Paternity only
	ChildDOB *time.Time

	CreatedAt time.Time
}
