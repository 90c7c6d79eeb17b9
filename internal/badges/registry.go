package badges

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"inkwell/internal/domain/models"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the badge definitions shipped with the binary. Definitions
// are loaded once from the embedded YAML and never change at runtime.
type Registry struct {
	badges []models.Badge
	byType map[models.AchievementType][]models.Badge
}

type badgeFile struct {
	Badges []models.Badge `yaml:"badges"`
}

// NewRegistry loads the embedded badge definitions
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/badges.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read badges.yaml: %w", err)
	}

	var file badgeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal badges.yaml: %w", err)
	}

	r := &Registry{
		badges: file.Badges,
		byType: make(map[models.AchievementType][]models.Badge),
	}
	seen := make(map[string]bool, len(file.Badges))
	for _, badge := range file.Badges {
		if badge.Name == "" {
			return nil, fmt.Errorf("badge definition without a name")
		}
		if seen[badge.Name] {
			return nil, fmt.Errorf("duplicate badge definition: %s", badge.Name)
		}
		seen[badge.Name] = true
		r.byType[badge.Type] = append(r.byType[badge.Type], badge)
	}

	return r, nil
}

// All returns every badge definition (ordered as defined in YAML)
func (r *Registry) All() []models.Badge {
	return r.badges
}

// ByType returns the badges of one achievement type
func (r *Registry) ByType(t models.AchievementType) []models.Badge {
	return r.byType[t]
}
