package clientnotify

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"buildboard/internal/domain"
)

// Service manages periodic client reminder settings: how often the client
// should be nudged about a material or a material group on a project.
type Service struct {
	repo     Repository
	projects ProjectReader
	logger   *zap.Logger
}

func NewService(repo Repository, projects ProjectReader, logger *zap.Logger) *Service {
	return &Service{repo: repo, projects: projects, logger: logger}
}

func (s *Service) Create(ctx context.Context, companyID int64, req CreateSettingRequest) (*domain.NotificationSetting, error) {
	if req.MaterialID == nil && req.GroupName == "" {
		return nil, ErrTargetRequired
	}
	unit, ok := domain.ParseFrequencyUnit(req.FrequencyUnit)
	if !ok || req.FrequencyValue <= 0 {
		return nil, ErrInvalidFrequency
	}

	if _, err := s.projects.GetByID(ctx, companyID, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	setting := &domain.NotificationSetting{
		CompanyID:      companyID,
		ProjectID:      req.ProjectID,
		MaterialID:     req.MaterialID,
		GroupName:      req.GroupName,
		FrequencyValue: req.FrequencyValue,
		FrequencyUnit:  unit,
		NotifyViaEmail: req.NotifyViaEmail,
	}
	if err := s.repo.Create(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *Service) Get(ctx context.Context, companyID, id int64) (*domain.NotificationSetting, error) {
	setting, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return setting, nil
}

func (s *Service) Update(ctx context.Context, companyID, id int64, req UpdateSettingRequest) (*domain.NotificationSetting, error) {
	setting, err := s.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.MaterialID != nil {
		setting.MaterialID = req.MaterialID
	}
	if req.GroupName != nil {
		setting.GroupName = *req.GroupName
	}
	if req.FrequencyValue != nil {
		if *req.FrequencyValue <= 0 {
			return nil, ErrInvalidFrequency
		}
		setting.FrequencyValue = *req.FrequencyValue
	}
	if req.FrequencyUnit != nil {
		unit, ok := domain.ParseFrequencyUnit(*req.FrequencyUnit)
		if !ok {
			return nil, ErrInvalidFrequency
		}
		setting.FrequencyUnit = unit
	}
	if req.NotifyViaEmail != nil {
		setting.NotifyViaEmail = *req.NotifyViaEmail
	}

	// The patch must not strip the last remaining target.
	if setting.MaterialID == nil && setting.GroupName == "" {
		return nil, ErrTargetRequired
	}

	if err := s.repo.Update(ctx, setting); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return setting, nil
}

func (s *Service) Delete(ctx context.Context, companyID, id int64) error {
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSettingNotFound
		}
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, companyID, projectID int64) ([]domain.NotificationSetting, error) {
	return s.repo.List(ctx, companyID, projectID)
}
