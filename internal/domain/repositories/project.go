package repositories

import (
	"context"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain/models"
)

// DesignProjectRepository defines the interface for catalog data access
type DesignProjectRepository interface {
	// List retrieves design projects in insertion order.
	// An empty category or the sentinel "All" returns every record;
	// anything else is an exact string match on the category field.
	// Returns an empty slice (never an error) when nothing matches.
	List(ctx context.Context, category string) ([]models.DesignProject, error)

	// Get retrieves a design project by ID
	// Returns domain.ErrNotFound if not found
	Get(ctx context.Context, id string) (*models.DesignProject, error)

	// ListFeatured retrieves featured design projects in insertion order
	ListFeatured(ctx context.Context) ([]models.DesignProject, error)

	// Create assigns a fresh id, stores the record and returns it.
	// Only the seeder uses this today.
	Create(ctx context.Context, req *models.CreateDesignProjectRequest) (*models.DesignProject, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Get retrieves a user by ID
	// Returns domain.ErrNotFound if not found
	Get(ctx context.Context, id string) (*models.User, error)

	// GetByUsername retrieves a user by username
	// Returns domain.ErrNotFound if not found
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Create stores a new user and returns it with an assigned id
	Create(ctx context.Context, username, password string) (*models.User, error)
}
