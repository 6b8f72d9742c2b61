package models

// DesignProject represents one portfolio artifact (logo, branding piece,
// marketing collateral). Optional fields are pointers so "absent" is an
// explicit nil rather than a zero value that could be mistaken for data.
type DesignProject struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Category    string   `json:"category"`
	Year        int      `json:"year"`
	ImageURL    string   `json:"imageUrl"`
	Tools       []string `json:"tools"`
	Featured    bool     `json:"featured"`
	ClientName  *string  `json:"clientName"`
	ProjectType *string  `json:"projectType"`
}

// CreateDesignProjectRequest carries the fields for a new design project.
// The id is assigned by the repository.
type CreateDesignProjectRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Category    string   `json:"category"`
	Year        int      `json:"year"`
	ImageURL    string   `json:"imageUrl"`
	Tools       []string `json:"tools,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
	ClientName  *string  `json:"clientName,omitempty"`
	ProjectType *string  `json:"projectType,omitempty"`
}

// User is an in-memory account record. The storage layer carries it for
// parity with the rest of the catalog; no HTTP route exposes users.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
