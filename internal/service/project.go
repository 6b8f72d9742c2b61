package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/config"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain/models"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain/repositories"
)

// ProjectService answers catalog queries for design projects.
type ProjectService struct {
	repo   repositories.DesignProjectRepository
	logger *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(repo repositories.DesignProjectRepository, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		repo:   repo,
		logger: logger,
	}
}

// ListProjects retrieves design projects, optionally filtered by category.
// The category filter is an open string: unknown values simply match nothing.
func (s *ProjectService) ListProjects(ctx context.Context, category string) ([]models.DesignProject, error) {
	return s.repo.List(ctx, category)
}

// GetProject retrieves a single design project by id.
// Returns domain.ErrNotFound if the id is unknown.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.DesignProject, error) {
	return s.repo.Get(ctx, id)
}

// ListFeatured retrieves the featured subset of the catalog.
func (s *ProjectService) ListFeatured(ctx context.Context) ([]models.DesignProject, error) {
	return s.repo.ListFeatured(ctx)
}

// CreateProject validates and stores a new design project. Only the seeder
// exercises this today, but the operation is specified generally.
func (s *ProjectService) CreateProject(ctx context.Context, req *models.CreateDesignProjectRequest) (*models.DesignProject, error) {
	if err := validateCreateProjectRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	req.Title = strings.TrimSpace(req.Title)

	project, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("design project created",
		"id", project.ID,
		"title", project.Title,
		"category", project.Category,
	)
	return project, nil
}

func validateCreateProjectRequest(req *models.CreateDesignProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxProjectTitleLength),
		),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.ImageURL, validation.Required),
		validation.Field(&req.Year,
			validation.Required,
			validation.Min(config.MinProjectYear),
			validation.Max(config.MaxProjectYear),
		),
	)
}
