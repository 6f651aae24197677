// internal/refdata/store.go

// Package refdata owns the read-only reference catalogs (careers, colleges,
// personality reference, course catalog). Catalogs are loaded once and cached;
// the cache object is constructed explicitly and injected into workers rather
// than living in a process-wide singleton.
package refdata

import (
	"context"
	"strings"

	"careerguide-workers/internal/common/errors"
	"careerguide-workers/internal/models"
)

// Store is the read-only reference-data interface consumed by workers.
type Store interface {
	Careers(ctx context.Context) ([]models.Career, error)
	Colleges(ctx context.Context) ([]models.College, error)
	MBTIReference(ctx context.Context) (map[string]models.MBTIInfo, error)
	Courses(ctx context.Context) ([]models.Course, error)
}

// FindCareer resolves a career by free-text name: case-insensitive exact
// match first, then substring in either direction. The fuzzy contract exists
// for compatibility with stored report data; keep all name lookups going
// through here so it can be tightened to exact keys later.
func FindCareer(ctx context.Context, store Store, name string) (models.Career, error) {
	careers, err := store.Careers(ctx)
	if err != nil {
		return models.Career{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(name))

	for _, c := range careers {
		if strings.ToLower(c.Name) == needle {
			return c, nil
		}
	}
	for _, c := range careers {
		lower := strings.ToLower(c.Name)
		if strings.Contains(lower, needle) || strings.Contains(needle, lower) {
			return c, nil
		}
	}

	return models.Career{}, errors.NewCareerNotFoundError(name)
}

// FilterCoursesBySkills returns catalog courses teaching any of the given
// skills (case-insensitive).
func FilterCoursesBySkills(courses []models.Course, skills []string) []models.Course {
	if len(skills) == 0 {
		return courses
	}

	wanted := make(map[string]bool, len(skills))
	for _, s := range skills {
		wanted[strings.ToLower(s)] = true
	}

	var out []models.Course
	for _, course := range courses {
		for _, s := range course.Skills {
			if wanted[strings.ToLower(s)] {
				out = append(out, course)
				break
			}
		}
	}
	return out
}
