// pkg/registry/registry.go

// Package registry loads and validates reference catalog documents. A catalog
// file is schema-checked before anything consumes it, so a malformed deploy
// fails at load time instead of skewing scores at runtime.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"careerguide-workers/internal/models"
	"careerguide-workers/internal/refdata"
)

// Catalog is the on-disk reference catalog document.
type Catalog struct {
	Version     string                     `json:"version"`
	LastUpdated string                     `json:"lastUpdated"`
	Careers     []models.Career            `json:"careers"`
	Colleges    []models.College           `json:"colleges"`
	MBTITypes   map[string]models.MBTIInfo `json:"mbtiTypes"`
	Courses     []models.Course            `json:"courses"`
}

// LoadCatalog reads, validates and parses a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog validates raw catalog JSON against the schema and unmarshals it.
func ParseCatalog(data []byte) (*Catalog, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &catalog, nil
}

// Validate checks raw catalog JSON against the schema and reports every
// violation in one error.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("catalog validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var violations []string
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return fmt.Errorf("catalog schema violations: %s", strings.Join(violations, "; "))
}

// ToStore exposes the catalog through the reference-data interface.
func (c *Catalog) ToStore() *refdata.StaticStore {
	return &refdata.StaticStore{
		CareerList:  c.Careers,
		CollegeList: c.Colleges,
		MBTIMap:     c.MBTITypes,
		CourseList:  c.Courses,
	}
}
