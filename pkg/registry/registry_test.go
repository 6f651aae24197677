// pkg/registry/registry_test.go
package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `{
  "version": "1.0.0",
  "lastUpdated": "2026-08-01",
  "careers": [
    {
      "name": "Software Engineer",
      "category": "Technology",
      "difficulty": 7,
      "automationRisk": 0.15,
      "jobGrowthRate": 0.15,
      "requiredSkills": ["Programming"],
      "traitsRequired": {"technical": 0.9},
      "personalityFit": ["INTJ"],
      "salary": {"entry": {"USD": 95000}}
    }
  ],
  "colleges": [
    {
      "name": "IIT Bombay",
      "location": "Mumbai",
      "country": "India",
      "feesPerYear": {"USD": 2700},
      "ranking": 3,
      "placementRate": 0.95,
      "courses": ["Computer Science"]
    }
  ],
  "mbtiTypes": {
    "INTJ": {"description": "Strategic thinkers", "strengths": ["Planning"], "careers": ["Software Engineer"]}
  },
  "courses": [
    {"name": "CS50", "provider": "edX", "level": "beginner", "skills": ["Programming"]}
  ]
}`

func TestParseCatalogValid(t *testing.T) {
	catalog, err := ParseCatalog([]byte(validCatalog))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", catalog.Version)
	require.Len(t, catalog.Careers, 1)
	assert.Equal(t, "Software Engineer", catalog.Careers[0].Name)
	assert.Equal(t, 95000, catalog.Careers[0].EntrySalary("USD"))
	require.Len(t, catalog.Colleges, 1)
	assert.Contains(t, catalog.MBTITypes, "INTJ")
}

func TestValidateRejectsMissingCareers(t *testing.T) {
	err := Validate([]byte(`{"version": "1.0.0"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "careers")
}

func TestValidateRejectsBadMBTICode(t *testing.T) {
	bad := `{
	  "version": "1.0.0",
	  "careers": [{"name": "X", "category": "Technology", "personalityFit": ["ABCD"]}]
	}`
	err := Validate([]byte(bad))
	require.Error(t, err)
}

func TestValidateRejectsOutOfRangeRisk(t *testing.T) {
	bad := `{
	  "version": "1.0.0",
	  "careers": [{"name": "X", "category": "Technology", "automationRisk": 1.5}]
	}`
	err := Validate([]byte(bad))
	require.Error(t, err)
}

func TestValidateRejectsUnknownCourseLevel(t *testing.T) {
	bad := `{
	  "version": "1.0.0",
	  "careers": [{"name": "X", "category": "Technology"}],
	  "courses": [{"name": "C", "level": "wizard"}]
	}`
	err := Validate([]byte(bad))
	require.Error(t, err)
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", catalog.Version)

	store := catalog.ToStore()
	careers, err := store.Careers(context.Background())
	require.NoError(t, err)
	assert.Len(t, careers, 1)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
