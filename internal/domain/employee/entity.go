package employee

import "time"

type Employee struct {
	ID               string
	Ecode            string
	FullName         string
	Department       string
	Project          string
	Position         string
	EmploymentRank   EmploymentRank
	EmploymentStatus EmploymentStatus
	HireDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type EmploymentRank string

const (
	RankAndFile    EmploymentRank = "RANK-AND-FILE"
	RankManagerial EmploymentRank = "MANAGERIAL"
)

// EmploymentStatus drives payroll eligibility: Inactive employees are
// excluded from batches, ON-CALL employees get no statutory deductions.
type EmploymentStatus string

const (
	StatusRegular      EmploymentStatus = "Regular"
	StatusProbationary EmploymentStatus = "Probationary"
	StatusOnCall       EmploymentStatus = "ON-CALL"
	StatusInactive     EmploymentStatus = "Inactive"
)
