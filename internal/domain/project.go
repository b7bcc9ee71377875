package domain

import "time"

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectDelayed   ProjectStatus = "delayed"
)

func ParseProjectStatus(s string) (ProjectStatus, bool) {
	switch ProjectStatus(s) {
	case ProjectActive, ProjectOnHold, ProjectCompleted, ProjectDelayed:
		return ProjectStatus(s), true
	}
	return "", false
}

type Project struct {
	ID          int64         `json:"id"`
	CompanyID   int64         `json:"company_id"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location,omitempty"`
	Status      ProjectStatus `json:"status"`
	Progress    int           `json:"progress"` // 0..100
	DueDate     *time.Time    `json:"due_date,omitempty"`

	// Monetary fields are stored in cents.
	BudgetCents     int64 `json:"budget_cents"`
	ActualCostCents int64 `json:"actual_cost_cents"`

	ClientName  string `json:"client_name,omitempty"`
	ClientEmail string `json:"client_email,omitempty"`
	ClientPhone string `json:"client_phone,omitempty"`

	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
