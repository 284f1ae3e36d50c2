// Package content holds the default site content inserted into an empty store.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/naotica/studio/internal/domain"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed is the default content of a fresh installation.
type Seed struct {
	Settings domain.Settings  `yaml:"settings"`
	Projects []domain.Project `yaml:"projects"`
	Services []domain.Service `yaml:"services"`
}

// Load parses the embedded seed content.
func Load() (*Seed, error) {
	return Parse(seedYAML)
}

// Parse decodes seed content from YAML.
func Parse(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse seed content: %w", err)
	}

	for i := range s.Projects {
		p := &s.Projects[i]
		if p.Title == "" {
			return nil, fmt.Errorf("seed project %d has no title", i)
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
		if p.Category == "" {
			p.Category = "Web App"
		}
	}
	for i, svc := range s.Services {
		if svc.PlaceName == "" || svc.StartYear == 0 {
			return nil, fmt.Errorf("seed service %d needs a place name and start year", i)
		}
	}

	return &s, nil
}
