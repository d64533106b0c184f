package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Employee struct {
	ID               string
	UserID           *string
	FullName         string
	Email            string
	Department       string
	Position         string
	Role             string
	Status           Status
	Salary           *decimal.Decimal
	JoinDate         *time.Time
	Phone            *string
	Address          *string
	EmergencyContact *string
	Skills           string // comma-separated tags
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
