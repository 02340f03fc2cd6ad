package config

import (
	"agent-portfolio-app/models"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedCatalogFormat = errors.New("unsupported catalog file format")

var validate = validator.New(validator.WithRequiredStructEnabled())

// catalogFile is the on-disk shape of an alternate catalog
type catalogFile struct {
	Agents []models.AgentRecord `json:"agents" yaml:"agents" validate:"unique=ID,dive"`
}

// LoadCatalogFile reads a catalog from disk. The format is chosen by
// extension: YAML for .yaml/.yml, JSON with comments for .json/.jsonc.
func LoadCatalogFile(path string) (models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	catalog, err := ParseCatalog(data, filepath.Ext(path))
	if err != nil {
		return models.Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog decodes and validates catalog data in the format named by ext
func ParseCatalog(data []byte, ext string) (models.Catalog, error) {
	var file catalogFile

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return models.Catalog{}, fmt.Errorf("parsing yaml: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
			return models.Catalog{}, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return models.Catalog{}, fmt.Errorf("%w: %q", ErrUnsupportedCatalogFormat, ext)
	}

	if err := validate.Struct(&file); err != nil {
		return models.Catalog{}, fmt.Errorf("validating: %w", err)
	}

	catalog := models.NewCatalog(file.Agents...)
	if err := catalog.CheckIDs(); err != nil {
		return models.Catalog{}, err
	}
	return catalog, nil
}

// DefaultCatalog returns the built-in agent catalog
func DefaultCatalog() models.Catalog {
	return models.NewCatalog(
		models.AgentRecord{
			ID:          1,
			Title:       "Quality Engineer Agent",
			Description: "An AI agent designed to triage and then implement code fixes to resolve Issues.",
			ColorToken:  "from-blue-500 to-blue-600",
			IconMarkup:  `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round" class="lucide lucide-code"><polyline points="16 18 22 12 16 6"/><polyline points="8 6 2 12 8 18"/></svg>`,
			URL:         "/sqe",
			ButtonText:  models.ActiveButtonText,
		},
		models.AgentRecord{
			ID:          2,
			Title:       "Business Analyst Agent",
			Description: "An AI Agent that creates stories for given business requirements",
			ColorToken:  "from-green-500 to-green-600",
			IconMarkup:  `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round" class="lucide lucide-headphones"><path d="M3 14h3a2 2 0 0 1 2 2v3a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-7a9 9 0 0 1 18 0v7a2 2 0 0 1-2 2h-1a2 2 0 0 1-2-2v-3a2 2 0 0 1 2-2h3"/><path d="M18 14V6"/></svg>`,
			ButtonText:  models.ActiveButtonText,
		},
		models.AgentRecord{
			ID:          3,
			Title:       "Marketing Content Creator",
			Description: "Generates creative and engaging copy for social media posts, email campaigns, and blog articles. Supports various tones and styles.",
			ColorToken:  "from-purple-500 to-purple-600",
			IconMarkup:  `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round" class="lucide lucide-pencil"><path d="M17 3a2.85 2.83 0 1 1 4 4L7.5 20.5 2 22l1.5-5.5Z"/></svg>`,
			ButtonText:  "Coming soon !!",
		},
		models.AgentRecord{
			ID:          4,
			Title:       "Data Analyst AI",
			Description: "Analyzes large datasets to find patterns, generate insights, and create automated reports for business intelligence.",
			ColorToken:  "from-yellow-500 to-yellow-600",
			IconMarkup:  `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round" class="lucide lucide-pie-chart"><path d="M21.21 15.89A10 10 0 1 1 8 2.83"/><path d="M22 12A10 10 0 0 0 12 2v10z"/></svg>`,
			ButtonText:  "Coming soon !!",
		},
	)
}
