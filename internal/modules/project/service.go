package project

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"buildboard/internal/domain"
	"buildboard/internal/repository"
)

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, companyID, userID int64, req CreateProjectRequest) (*domain.Project, error) {
	status := domain.ProjectActive
	if req.Status != "" {
		parsed, ok := domain.ParseProjectStatus(req.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		status = parsed
	}
	if req.Progress < 0 || req.Progress > 100 {
		return nil, ErrInvalidProgress
	}

	p := &domain.Project{
		CompanyID:       companyID,
		Name:            req.Name,
		Description:     req.Description,
		Location:        req.Location,
		Status:          status,
		Progress:        req.Progress,
		DueDate:         req.DueDate,
		BudgetCents:     req.BudgetCents,
		ActualCostCents: req.ActualCostCents,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		CreatedBy:       userID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		zap.Int64("project_id", p.ID),
		zap.Int64("company_id", companyID))
	return p, nil
}

func (s *Service) Get(ctx context.Context, companyID, id int64) (*domain.Project, error) {
	p, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, companyID, id int64, req UpdateProjectRequest) (*domain.Project, error) {
	p, err := s.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Status != nil {
		parsed, ok := domain.ParseProjectStatus(*req.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		p.Status = parsed
	}
	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			return nil, ErrInvalidProgress
		}
		p.Progress = *req.Progress
	}
	if req.DueDate != nil {
		p.DueDate = req.DueDate
	}
	if req.BudgetCents != nil {
		p.BudgetCents = *req.BudgetCents
	}
	if req.ActualCostCents != nil {
		p.ActualCostCents = *req.ActualCostCents
	}
	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}
	if req.ClientEmail != nil {
		p.ClientEmail = *req.ClientEmail
	}
	if req.ClientPhone != nil {
		p.ClientPhone = *req.ClientPhone
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, companyID, id int64) error {
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	s.logger.Info("project deleted", zap.Int64("project_id", id))
	return nil
}

func (s *Service) List(ctx context.Context, companyID int64, q ListProjectsQuery) ([]domain.Project, error) {
	if q.Status != "" {
		if _, ok := domain.ParseProjectStatus(q.Status); !ok {
			return nil, ErrInvalidStatus
		}
	}
	return s.repo.List(ctx, companyID, repository.ProjectFilter{
		Status:   q.Status,
		Location: q.Location,
		Query:    q.Query,
		Sort:     q.Sort,
		Order:    q.Order,
	})
}
