// internal/refdata/sqlstore.go
package refdata

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"careerguide-workers/internal/common/errors"
	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/common/metrics"
	"careerguide-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	careersCacheKey  = "refdata:careers"
	collegesCacheKey = "refdata:colleges"
	mbtiCacheKey     = "refdata:mbti"
	coursesCacheKey  = "refdata:courses"
)

// SQLStore serves reference catalogs from PostgreSQL through a redis
// read-through layer and a load-once in-memory cache. The mutex guards the
// first fill so concurrent first access neither corrupts the cache nor issues
// redundant loads.
type SQLStore struct {
	db     *sql.DB
	redis  *redis.Client // optional
	ttl    time.Duration
	logger logger.Logger

	mu       sync.Mutex
	careers  []models.Career
	colleges []models.College
	mbti     map[string]models.MBTIInfo
	courses  []models.Course
}

// NewSQLStore builds a store over the given connections. redisClient may be
// nil, in which case only the in-memory layer caches.
func NewSQLStore(db *sql.DB, redisClient *redis.Client, ttl time.Duration, log logger.Logger) *SQLStore {
	return &SQLStore{
		db:     db,
		redis:  redisClient,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "refdata"}),
	}
}

// Careers returns the career catalog. The returned slice is shared and must
// be treated as read-only.
func (s *SQLStore) Careers(ctx context.Context) ([]models.Career, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.careers != nil {
		metrics.RefdataCacheHits.WithLabelValues("careers", "memory").Inc()
		return s.careers, nil
	}

	var careers []models.Career
	if s.fromRedis(ctx, careersCacheKey, &careers) {
		metrics.RefdataCacheHits.WithLabelValues("careers", "redis").Inc()
		s.careers = careers
		return careers, nil
	}
	metrics.RefdataCacheMisses.WithLabelValues("careers").Inc()

	careers, err := s.queryCareers(ctx)
	if err != nil {
		return nil, errors.NewCatalogLoadError("careers", err)
	}
	if len(careers) == 0 {
		return nil, errors.NewCatalogEmptyError("careers")
	}

	s.toRedis(ctx, careersCacheKey, careers)
	s.careers = careers
	return careers, nil
}

// Colleges returns the college catalog.
func (s *SQLStore) Colleges(ctx context.Context) ([]models.College, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.colleges != nil {
		metrics.RefdataCacheHits.WithLabelValues("colleges", "memory").Inc()
		return s.colleges, nil
	}

	var colleges []models.College
	if s.fromRedis(ctx, collegesCacheKey, &colleges) {
		metrics.RefdataCacheHits.WithLabelValues("colleges", "redis").Inc()
		s.colleges = colleges
		return colleges, nil
	}
	metrics.RefdataCacheMisses.WithLabelValues("colleges").Inc()

	colleges, err := s.queryColleges(ctx)
	if err != nil {
		return nil, errors.NewCatalogLoadError("colleges", err)
	}
	if len(colleges) == 0 {
		return nil, errors.NewCatalogEmptyError("colleges")
	}

	s.toRedis(ctx, collegesCacheKey, colleges)
	s.colleges = colleges
	return colleges, nil
}

// MBTIReference returns the per-type personality reference map.
func (s *SQLStore) MBTIReference(ctx context.Context) (map[string]models.MBTIInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mbti != nil {
		metrics.RefdataCacheHits.WithLabelValues("mbti", "memory").Inc()
		return s.mbti, nil
	}

	var mbti map[string]models.MBTIInfo
	if s.fromRedis(ctx, mbtiCacheKey, &mbti) {
		metrics.RefdataCacheHits.WithLabelValues("mbti", "redis").Inc()
		s.mbti = mbti
		return mbti, nil
	}
	metrics.RefdataCacheMisses.WithLabelValues("mbti").Inc()

	mbti, err := s.queryMBTI(ctx)
	if err != nil {
		return nil, errors.NewCatalogLoadError("mbti", err)
	}

	s.toRedis(ctx, mbtiCacheKey, mbti)
	s.mbti = mbti
	return mbti, nil
}

// Courses returns the course catalog.
func (s *SQLStore) Courses(ctx context.Context) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.courses != nil {
		metrics.RefdataCacheHits.WithLabelValues("courses", "memory").Inc()
		return s.courses, nil
	}

	var courses []models.Course
	if s.fromRedis(ctx, coursesCacheKey, &courses) {
		metrics.RefdataCacheHits.WithLabelValues("courses", "redis").Inc()
		s.courses = courses
		return courses, nil
	}
	metrics.RefdataCacheMisses.WithLabelValues("courses").Inc()

	courses, err := s.queryCourses(ctx)
	if err != nil {
		return nil, errors.NewCatalogLoadError("courses", err)
	}

	s.toRedis(ctx, coursesCacheKey, courses)
	s.courses = courses
	return courses, nil
}

// Invalidate drops the memory layer and the redis keys so the next access
// reloads from postgres.
func (s *SQLStore) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.careers = nil
	s.colleges = nil
	s.mbti = nil
	s.courses = nil

	if s.redis != nil {
		if err := s.redis.Del(ctx, careersCacheKey, collegesCacheKey, mbtiCacheKey, coursesCacheKey).Err(); err != nil {
			s.logger.Warn("failed to drop redis cache keys", map[string]interface{}{"error": err})
		}
	}
}

func (s *SQLStore) fromRedis(ctx context.Context, key string, dest interface{}) bool {
	if s.redis == nil {
		return false
	}
	val, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		s.logger.Warn("corrupt redis cache entry, reloading", map[string]interface{}{
			"key":   key,
			"error": err,
		})
		return false
	}
	return true
}

func (s *SQLStore) toRedis(ctx context.Context, key string, value interface{}) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("failed to populate redis cache", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}
}

func (s *SQLStore) queryCareers(ctx context.Context) ([]models.Career, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, category, description, difficulty, automation_risk, job_growth_rate,
		       required_skills, traits_required, personality_fit, subjects, education, salary
		FROM careers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var careers []models.Career
	for rows.Next() {
		var c models.Career
		var requiredSkills, traitsRequired, personalityFit, subjects, salary []byte
		if err := rows.Scan(&c.Name, &c.Category, &c.Description, &c.Difficulty,
			&c.AutomationRisk, &c.JobGrowthRate, &requiredSkills, &traitsRequired,
			&personalityFit, &subjects, &c.Education, &salary); err != nil {
			return nil, err
		}
		if err := unmarshalColumns(map[string]interface{}{
			"required_skills": join(&c.RequiredSkills, requiredSkills),
			"traits_required": join(&c.TraitsRequired, traitsRequired),
			"personality_fit": join(&c.PersonalityFit, personalityFit),
			"subjects":        join(&c.Subjects, subjects),
			"salary":          join(&c.Salary, salary),
		}); err != nil {
			return nil, fmt.Errorf("career %q: %w", c.Name, err)
		}
		careers = append(careers, c)
	}
	return careers, rows.Err()
}

func (s *SQLStore) queryColleges(ctx context.Context) ([]models.College, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, location, country, fees_per_year, ranking, placement_rate, courses, scholarships
		FROM colleges ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colleges []models.College
	for rows.Next() {
		var c models.College
		var fees, courses, scholarships []byte
		if err := rows.Scan(&c.Name, &c.Location, &c.Country, &fees, &c.Ranking,
			&c.PlacementRate, &courses, &scholarships); err != nil {
			return nil, err
		}
		if err := unmarshalColumns(map[string]interface{}{
			"fees_per_year": join(&c.FeesPerYear, fees),
			"courses":       join(&c.Courses, courses),
			"scholarships":  join(&c.Scholarships, scholarships),
		}); err != nil {
			return nil, fmt.Errorf("college %q: %w", c.Name, err)
		}
		colleges = append(colleges, c)
	}
	return colleges, rows.Err()
}

func (s *SQLStore) queryMBTI(ctx context.Context) (map[string]models.MBTIInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mbti_type, description, strengths, careers FROM mbti_types`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mbti := make(map[string]models.MBTIInfo)
	for rows.Next() {
		var mbtiType string
		var info models.MBTIInfo
		var strengths, careers []byte
		if err := rows.Scan(&mbtiType, &info.Description, &strengths, &careers); err != nil {
			return nil, err
		}
		if err := unmarshalColumns(map[string]interface{}{
			"strengths": join(&info.Strengths, strengths),
			"careers":   join(&info.Careers, careers),
		}); err != nil {
			return nil, fmt.Errorf("mbti %q: %w", mbtiType, err)
		}
		mbti[mbtiType] = info
	}
	return mbti, rows.Err()
}

func (s *SQLStore) queryCourses(ctx context.Context) ([]models.Course, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, provider, level, skills FROM courses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		var skills []byte
		if err := rows.Scan(&c.Name, &c.Provider, &c.Level, &skills); err != nil {
			return nil, err
		}
		if err := unmarshalColumns(map[string]interface{}{
			"skills": join(&c.Skills, skills),
		}); err != nil {
			return nil, fmt.Errorf("course %q: %w", c.Name, err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// join pairs a destination with its raw jsonb column bytes for
// unmarshalColumns. Empty columns leave the destination zero-valued.
type columnPair struct {
	dest interface{}
	raw  []byte
}

func join(dest interface{}, raw []byte) columnPair {
	return columnPair{dest: dest, raw: raw}
}

func unmarshalColumns(cols map[string]interface{}) error {
	for name, v := range cols {
		pair := v.(columnPair)
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.dest); err != nil {
			return fmt.Errorf("column %s: %w", name, err)
		}
	}
	return nil
}
