// Package memory provides the in-process storage backing the portfolio API.
// Everything lives for exactly one server process: the catalog is seeded at
// construction and restarting resets it to the seed set.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain/models"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain/repositories"
)

// CategoryAll is the sentinel filter value meaning "no filter".
const CategoryAll = "All"

// designProjectRepository keeps records in a slice to preserve insertion
// order, with an id index for lookups. Writes only happen at seed time today,
// but the lock keeps a future write path safe.
type designProjectRepository struct {
	mu      sync.RWMutex
	records []models.DesignProject
	byID    map[string]int
}

// NewDesignProjectRepository creates an empty catalog repository.
func NewDesignProjectRepository() repositories.DesignProjectRepository {
	return &designProjectRepository{
		byID: make(map[string]int),
	}
}

// NewSeededDesignProjectRepository creates the catalog repository and loads
// the fixed seed list. Seeding is synchronous; the repository is fully
// populated before the constructor returns.
func NewSeededDesignProjectRepository() repositories.DesignProjectRepository {
	repo := NewDesignProjectRepository()
	for i := range seedDesignProjects {
		if _, err := repo.Create(context.Background(), &seedDesignProjects[i]); err != nil {
			// Seed data is compiled in; a failure here is a programming error.
			panic(fmt.Sprintf("seed design projects: %v", err))
		}
	}
	return repo
}

func (r *designProjectRepository) List(ctx context.Context, category string) ([]models.DesignProject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]models.DesignProject, 0, len(r.records))
	for _, p := range r.records {
		if category == "" || category == CategoryAll || p.Category == category {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (r *designProjectRepository) Get(ctx context.Context, id string) (*models.DesignProject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("design project %q not found", id)}
	}
	project := r.records[idx]
	return &project, nil
}

func (r *designProjectRepository) ListFeatured(ctx context.Context) ([]models.DesignProject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]models.DesignProject, 0, len(r.records))
	for _, p := range r.records {
		if p.Featured {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (r *designProjectRepository) Create(ctx context.Context, req *models.CreateDesignProjectRequest) (*models.DesignProject, error) {
	project := models.DesignProject{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Year:        req.Year,
		ImageURL:    req.ImageURL,
		Tools:       req.Tools,
		Featured:    req.Featured,
		ClientName:  req.ClientName,
		ProjectType: req.ProjectType,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[project.ID] = len(r.records)
	r.records = append(r.records, project)
	return &project, nil
}
