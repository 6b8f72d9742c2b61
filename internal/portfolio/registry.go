// Package portfolio holds the static professional facts (employment history,
// agency project outcomes, capabilities, technologies) that ground the chat
// assistant's answers. The data ships embedded in the binary and is loaded
// once at startup; nothing mutates it afterwards.
package portfolio

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFiles embed.FS

// Employment is one entry in the portfolio owner's employment history.
type Employment struct {
	Role       string   `yaml:"role"`
	Company    string   `yaml:"company"`
	Years      string   `yaml:"years"`
	Highlights []string `yaml:"highlights"`
}

// AgencyProject is one client engagement with its measurable outcome.
type AgencyProject struct {
	Client   string   `yaml:"client"`
	Website  string   `yaml:"website"`
	Services []string `yaml:"services"`
	Outcome  string   `yaml:"outcome"`
}

// Data is the full portfolio fact set interpolated into the system prompt.
type Data struct {
	Owner          string          `yaml:"owner"`
	Employment     []Employment    `yaml:"employment"`
	AgencyProjects []AgencyProject `yaml:"agency_projects"`
	Capabilities   []string        `yaml:"capabilities"`
	Technologies   []string        `yaml:"technologies"`
}

// Load reads the embedded portfolio data file.
func Load() (*Data, error) {
	raw, err := dataFiles.ReadFile("data/portfolio.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio data: %w", err)
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal portfolio data: %w", err)
	}

	if data.Owner == "" || len(data.Employment) == 0 {
		return nil, fmt.Errorf("portfolio data is incomplete: owner and employment are required")
	}

	return &data, nil
}
