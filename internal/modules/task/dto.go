package task

import (
	"time"

	"buildboard/internal/domain"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Category    string     `json:"category" binding:"required"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	ProjectID   *int64     `json:"project_id"`
	AssigneeID  *int64     `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
	IsMilestone bool       `json:"is_milestone"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	ProjectID   *int64     `json:"project_id"`
	AssigneeID  *int64     `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
	IsMilestone *bool      `json:"is_milestone"`
}

type ListTasksQuery struct {
	Status     string `form:"status"`
	Priority   string `form:"priority"`
	Category   string `form:"category"`
	AssigneeID int64  `form:"assignee_id"`
	ProjectID  int64  `form:"project_id"`
	Query      string `form:"q"`
}

// TaskGroup buckets tasks by project for the grouped board view. Tasks with
// no project land in the "Unassigned" group.
type TaskGroup struct {
	ProjectID   *int64        `json:"project_id,omitempty"`
	ProjectName string        `json:"project_name"`
	Tasks       []domain.Task `json:"tasks"`
}

// TaskSummary powers the dashboard attention widgets.
type TaskSummary struct {
	Overdue     []domain.Task `json:"overdue"`
	DueThisWeek []domain.Task `json:"due_this_week"`
}
