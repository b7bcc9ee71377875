package project

import "time"

type CreateProjectRequest struct {
	Name            string     `json:"name" binding:"required"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	Status          string     `json:"status"`
	Progress        int        `json:"progress"`
	DueDate         *time.Time `json:"due_date"`
	BudgetCents     int64      `json:"budget_cents"`
	ActualCostCents int64      `json:"actual_cost_cents"`
	ClientName      string     `json:"client_name"`
	ClientEmail     string     `json:"client_email"`
	ClientPhone     string     `json:"client_phone"`
}

type UpdateProjectRequest struct {
	Name            *string    `json:"name"`
	Description     *string    `json:"description"`
	Location        *string    `json:"location"`
	Status          *string    `json:"status"`
	Progress        *int       `json:"progress"`
	DueDate         *time.Time `json:"due_date"`
	BudgetCents     *int64     `json:"budget_cents"`
	ActualCostCents *int64     `json:"actual_cost_cents"`
	ClientName      *string    `json:"client_name"`
	ClientEmail     *string    `json:"client_email"`
	ClientPhone     *string    `json:"client_phone"`
}

type ListProjectsQuery struct {
	Status   string `form:"status"`
	Location string `form:"location"`
	Query    string `form:"q"`
	Sort     string `form:"sort"`
	Order    string `form:"order"`
}
