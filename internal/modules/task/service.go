package task

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"buildboard/internal/domain"
	"buildboard/internal/repository"
)

type Service struct {
	repo     Repository
	projects ProjectReader
	users    UserReader
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(repo Repository, projects ProjectReader, users UserReader, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		projects: projects,
		users:    users,
		logger:   logger,
		now:      time.Now,
	}
}

// validateRefs checks the category's structural rules and that referenced
// rows exist in the caller's company.
func (s *Service) validateRefs(ctx context.Context, companyID int64, category domain.TaskCategory, projectID, assigneeID *int64) error {
	if category == domain.TaskCategoryProject && projectID == nil {
		return ErrProjectRequired
	}
	if category == domain.TaskCategorySubcontractor && assigneeID == nil {
		return ErrAssigneeRequired
	}

	if projectID != nil {
		if _, err := s.projects.GetByID(ctx, companyID, *projectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}
	}
	if assigneeID != nil {
		u, err := s.users.GetByID(ctx, *assigneeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssigneeNotFound
			}
			return err
		}
		if u.CompanyID != companyID {
			return ErrAssigneeNotFound
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, companyID, userID int64, req CreateTaskRequest) (*domain.Task, error) {
	category, ok := domain.ParseTaskCategory(req.Category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	status := domain.TaskPending
	if req.Status != "" {
		parsed, ok := domain.NormalizeTaskStatus(req.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		status = parsed
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		parsed, ok := domain.ParseTaskPriority(req.Priority)
		if !ok {
			return nil, ErrInvalidPriority
		}
		priority = parsed
	}

	if err := s.validateRefs(ctx, companyID, category, req.ProjectID, req.AssigneeID); err != nil {
		return nil, err
	}

	t := &domain.Task{
		CompanyID:   companyID,
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
		IsMilestone: req.IsMilestone,
		CreatedBy:   userID,
	}
	if status == domain.TaskCompleted {
		now := s.now()
		t.CompletedAt = &now
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, companyID, id int64) (*domain.Task, error) {
	t, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, companyID, id int64, req UpdateTaskRequest) (*domain.Task, error) {
	t, err := s.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Category != nil {
		parsed, ok := domain.ParseTaskCategory(*req.Category)
		if !ok {
			return nil, ErrInvalidCategory
		}
		t.Category = parsed
	}
	if req.Priority != nil {
		parsed, ok := domain.ParseTaskPriority(*req.Priority)
		if !ok {
			return nil, ErrInvalidPriority
		}
		t.Priority = parsed
	}
	if req.ProjectID != nil {
		t.ProjectID = req.ProjectID
	}
	if req.AssigneeID != nil {
		t.AssigneeID = req.AssigneeID
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	if req.IsMilestone != nil {
		t.IsMilestone = *req.IsMilestone
	}
	if req.Status != nil {
		parsed, ok := domain.NormalizeTaskStatus(*req.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		// Completion timestamps follow the status transition.
		if parsed == domain.TaskCompleted && t.Status != domain.TaskCompleted {
			now := s.now()
			t.CompletedAt = &now
		}
		if parsed != domain.TaskCompleted {
			t.CompletedAt = nil
		}
		t.Status = parsed
	}

	if err := s.validateRefs(ctx, companyID, t.Category, t.ProjectID, t.AssigneeID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, companyID, id int64) error {
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, companyID int64, q ListTasksQuery) ([]domain.Task, error) {
	f, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, companyID, f)
}

func buildFilter(q ListTasksQuery) (repository.TaskFilter, error) {
	var f repository.TaskFilter
	if q.Status != "" {
		parsed, ok := domain.NormalizeTaskStatus(q.Status)
		if !ok {
			return f, ErrInvalidStatus
		}
		f.Status = string(parsed)
	}
	if q.Priority != "" {
		if _, ok := domain.ParseTaskPriority(q.Priority); !ok {
			return f, ErrInvalidPriority
		}
		f.Priority = q.Priority
	}
	if q.Category != "" {
		if _, ok := domain.ParseTaskCategory(q.Category); !ok {
			return f, ErrInvalidCategory
		}
		f.Category = q.Category
	}
	f.AssigneeID = q.AssigneeID
	f.ProjectID = q.ProjectID
	f.Query = q.Query
	return f, nil
}

// ListGrouped buckets the filtered tasks by project, resolving project names
// for the group headers. Project-less tasks form the trailing group.
func (s *Service) ListGrouped(ctx context.Context, companyID int64, q ListTasksQuery) ([]TaskGroup, error) {
	tasks, err := s.List(ctx, companyID, q)
	if err != nil {
		return nil, err
	}

	var (
		order      []int64
		byProject  = make(map[int64][]domain.Task)
		unassigned []domain.Task
	)
	for _, t := range tasks {
		if t.ProjectID == nil {
			unassigned = append(unassigned, t)
			continue
		}
		pid := *t.ProjectID
		if _, seen := byProject[pid]; !seen {
			order = append(order, pid)
		}
		byProject[pid] = append(byProject[pid], t)
	}

	groups := make([]TaskGroup, 0, len(order)+1)
	for _, pid := range order {
		name := ""
		if p, err := s.projects.GetByID(ctx, companyID, pid); err == nil {
			name = p.Name
		}
		id := pid
		groups = append(groups, TaskGroup{ProjectID: &id, ProjectName: name, Tasks: byProject[pid]})
	}
	if len(unassigned) > 0 {
		groups = append(groups, TaskGroup{ProjectName: "Unassigned", Tasks: unassigned})
	}
	return groups, nil
}

// Summary collects tasks needing attention: overdue first, then anything due
// within the next seven days.
func (s *Service) Summary(ctx context.Context, companyID int64) (*TaskSummary, error) {
	tasks, err := s.repo.List(ctx, companyID, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}

	now := s.now()
	sum := &TaskSummary{
		Overdue:     []domain.Task{},
		DueThisWeek: []domain.Task{},
	}
	for _, t := range tasks {
		switch {
		case t.Overdue(now):
			sum.Overdue = append(sum.Overdue, t)
		case t.DueThisWeek(now) && t.Status != domain.TaskCompleted:
			sum.DueThisWeek = append(sum.DueThisWeek, t)
		}
	}
	return sum, nil
}
