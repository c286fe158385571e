package extrawork

import "time"

const (
	// MinimumDuration is the least amount of work that earns a comp-off day.
	MinimumDuration = 8 * time.Hour
	// CompOffWindowDays is how many days back a logged day still counts.
	CompOffWindowDays = 30
)

type ExtraWork struct {
	ID         string
	EmployeeID string
	Date       time.Time
	StartedAt  time.Time
	EndedAt    time.Time
	CreatedAt  time.Time
}
