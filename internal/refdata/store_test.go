// internal/refdata/store_test.go
package refdata

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "careerguide-workers/internal/common/errors"
	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/models"
)

func careerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"name", "category", "description", "difficulty", "automation_risk", "job_growth_rate",
		"required_skills", "traits_required", "personality_fit", "subjects", "education", "salary",
	}).AddRow(
		"Software Engineer", "Technology", "Builds software.", 7, 0.15, 0.15,
		[]byte(`["Programming","System Design"]`),
		[]byte(`{"technical":0.9,"analytical":0.8}`),
		[]byte(`["INTJ","ISTJ"]`),
		[]byte(`["math","computer"]`),
		"B.Tech in Computer Science",
		[]byte(`{"entry":{"USD":95000},"mid":{"USD":140000},"senior":{"USD":200000}}`),
	)
}

func TestSQLStoreCareersLoadsOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, category, description").WillReturnRows(careerRows())

	store := NewSQLStore(db, nil, time.Minute, logger.NewNop())

	careers, err := store.Careers(context.Background())
	require.NoError(t, err)
	require.Len(t, careers, 1)
	assert.Equal(t, "Software Engineer", careers[0].Name)
	assert.Equal(t, 0.9, careers[0].TraitsRequired["technical"])
	assert.Equal(t, 95000, careers[0].EntrySalary("USD"))

	// Second call is served from memory; no further query expected.
	careers, err = store.Careers(context.Background())
	require.NoError(t, err)
	assert.Len(t, careers, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreEmptyCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, category, description").WillReturnRows(sqlmock.NewRows([]string{
		"name", "category", "description", "difficulty", "automation_risk", "job_growth_rate",
		"required_skills", "traits_required", "personality_fit", "subjects", "education", "salary",
	}))

	store := NewSQLStore(db, nil, time.Minute, logger.NewNop())

	_, err = store.Careers(context.Background())
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeCatalogEmpty, stdErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreRedisReadThrough(t *testing.T) {
	mr := miniredis.RunT(t)

	seeded := []models.College{{
		Name:          "Cached College",
		Location:      "Delhi",
		Country:       "India",
		FeesPerYear:   map[string]float64{"INR": 100000},
		Ranking:       9,
		PlacementRate: 0.9,
		Courses:       []string{"Computer Science"},
	}}
	data, err := json.Marshal(seeded)
	require.NoError(t, err)
	require.NoError(t, mr.Set(collegesCacheKey, string(data)))

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	// No query expectations: the redis layer must satisfy the call.

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSQLStore(db, client, time.Minute, logger.NewNop())

	colleges, err := store.Colleges(context.Background())
	require.NoError(t, err)
	require.Len(t, colleges, 1)
	assert.Equal(t, "Cached College", colleges[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorePopulatesRedisAfterLoad(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT name, provider, level, skills").WillReturnRows(
		sqlmock.NewRows([]string{"name", "provider", "level", "skills"}).
			AddRow("CS50 by Harvard", "edX", "beginner", []byte(`["Programming"]`)))

	expected := []models.Course{{
		Name:     "CS50 by Harvard",
		Provider: "edX",
		Level:    "beginner",
		Skills:   []string{"Programming"},
	}}
	expectedJSON, err := json.Marshal(expected)
	require.NoError(t, err)

	client, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet(coursesCacheKey).RedisNil()
	redisMock.ExpectSet(coursesCacheKey, expectedJSON, time.Minute).SetVal("OK")

	store := NewSQLStore(db, client, time.Minute, logger.NewNop())

	courses, err := store.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS50 by Harvard", courses[0].Name)

	assert.NoError(t, dbMock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestSQLStoreInvalidate(t *testing.T) {
	mr := miniredis.RunT(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, category, description").WillReturnRows(careerRows())
	mock.ExpectQuery("SELECT name, category, description").WillReturnRows(careerRows())

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSQLStore(db, client, time.Minute, logger.NewNop())

	_, err = store.Careers(context.Background())
	require.NoError(t, err)
	assert.True(t, mr.Exists(careersCacheKey))

	store.Invalidate(context.Background())
	assert.False(t, mr.Exists(careersCacheKey))

	// Reload hits postgres again.
	_, err = store.Careers(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCareer(t *testing.T) {
	store := NewDefaultStore()

	tests := []struct {
		name     string
		query    string
		expected string
		wantErr  bool
	}{
		{name: "exact match", query: "Software Engineer", expected: "Software Engineer"},
		{name: "case insensitive", query: "software engineer", expected: "Software Engineer"},
		{name: "substring of catalog name", query: "Graphic", expected: "Graphic Designer"},
		{name: "catalog name inside query", query: "Senior Data Scientist", expected: "Data Scientist"},
		{name: "unknown career", query: "Astronaut", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			career, err := FindCareer(context.Background(), store, tt.query)
			if tt.wantErr {
				require.Error(t, err)
				var stdErr *apperrors.StandardError
				require.ErrorAs(t, err, &stdErr)
				assert.Equal(t, apperrors.ErrCodeCareerNotFound, stdErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, career.Name)
		})
	}
}

func TestFilterCoursesBySkills(t *testing.T) {
	courses := []models.Course{
		{Name: "A", Skills: []string{"Programming"}},
		{Name: "B", Skills: []string{"Design Tools"}},
		{Name: "C", Skills: []string{"programming", "SQL"}},
	}

	filtered := FilterCoursesBySkills(courses, []string{"Programming"})
	require.Len(t, filtered, 2)
	assert.Equal(t, "A", filtered[0].Name)
	assert.Equal(t, "C", filtered[1].Name)

	// No skill filter returns everything.
	assert.Len(t, FilterCoursesBySkills(courses, nil), 3)
}
