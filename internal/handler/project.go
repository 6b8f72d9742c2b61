package handler

import (
	"log/slog"
	"net/http"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/httputil"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/service"
)

// ProjectHandler handles design-project HTTP requests
type ProjectHandler struct {
	projectService *service.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// ListProjects retrieves the catalog, optionally filtered by category
// GET /api/design-projects?category=:category
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	projects, err := h.projectService.ListProjects(r.Context(), category)
	if err != nil {
		h.logger.Error("failed to list design projects", "error", err, "category", category)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, projects)
}

// ListFeatured retrieves the featured subset of the catalog
// GET /api/design-projects/featured
func (h *ProjectHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListFeatured(r.Context())
	if err != nil {
		h.logger.Error("failed to list featured design projects", "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, projects)
}

// GetProject retrieves a single design project
// GET /api/design-projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Project ID is required")
		return
	}

	project, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}
