package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrAssigneeNotFound = errors.New("assignee not found")
	ErrInvalidCategory  = errors.New("invalid task category")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrInvalidPriority  = errors.New("invalid task priority")
	ErrProjectRequired  = errors.New("project tasks require a project_id")
	ErrAssigneeRequired = errors.New("subcontractor tasks require an assignee_id")
)
