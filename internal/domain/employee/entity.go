package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID          string
	Name        string
	Email       string
	Gender      Gender
	JoiningDate time.Time
	CreatedAt   time.Time
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender accepts male or female in any letter case.
func ParseGender(s string) (Gender, bool) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case Male, Female:
		return g, true
	default:
		return "", false
	}
}

// Is compares genders ignoring letter case.
func (g Gender) Is(other Gender) bool {
	return strings.EqualFold(string(g), string(other))
}
