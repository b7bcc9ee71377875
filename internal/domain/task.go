package domain

import "time"

type TaskCategory string

const (
	TaskCategoryProject        TaskCategory = "project"
	TaskCategoryAdministrative TaskCategory = "administrative"
	TaskCategoryGeneral        TaskCategory = "general"
	TaskCategorySubcontractor  TaskCategory = "subcontractor"
)

func ParseTaskCategory(s string) (TaskCategory, bool) {
	switch TaskCategory(s) {
	case TaskCategoryProject, TaskCategoryAdministrative, TaskCategoryGeneral, TaskCategorySubcontractor:
		return TaskCategory(s), true
	}
	return "", false
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskBlocked    TaskStatus = "blocked"
)

// NormalizeTaskStatus accepts the legacy dashed spelling alongside the
// canonical one.
func NormalizeTaskStatus(s string) (TaskStatus, bool) {
	if s == "in-progress" {
		return TaskInProgress, true
	}
	switch TaskStatus(s) {
	case TaskPending, TaskInProgress, TaskCompleted, TaskBlocked:
		return TaskStatus(s), true
	}
	return "", false
}

type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

func ParseTaskPriority(s string) (TaskPriority, bool) {
	switch TaskPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return TaskPriority(s), true
	}
	return "", false
}

type Task struct {
	ID          int64        `json:"id"`
	CompanyID   int64        `json:"company_id"`
	ProjectID   *int64       `json:"project_id,omitempty"` // nil for general tasks
	AssigneeID  *int64       `json:"assignee_id,omitempty"`
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description,omitempty"`
	Category    TaskCategory `json:"category"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	IsMilestone bool         `json:"is_milestone"`
	CreatedBy   int64        `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Overdue reports whether the task is past due and not completed.
func (t Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskCompleted
}

// DueThisWeek reports whether the task is due within the next 7 days.
func (t Task) DueThisWeek(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	d := *t.DueDate
	return !d.Before(now) && !d.After(now.Add(7*24*time.Hour))
}
