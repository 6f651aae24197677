// internal/workers/guidance/generate-roadmap/handler.go
package generateroadmap

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"careerguide-workers/internal/common/errors"
	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/common/metrics"
	"careerguide-workers/internal/refdata"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "generate-roadmap"

// beginnerCourses maps skill keywords to starter courses. Matching is
// substring on the lowercased skill name.
var beginnerCourses = map[string]string{
	"python":        "Python for Everybody (Coursera)",
	"programming":   "CS50 by Harvard (edX)",
	"data":          "Google Data Analytics Certificate (Coursera)",
	"machine":       "ML Crash Course by Google",
	"statistics":    "Introduction to Statistics (Khan Academy)",
	"design":        "Google UX Design Certificate (Coursera)",
	"communication": "Business Communication (LinkedIn Learning)",
	"marketing":     "Google Digital Marketing Certificate",
	"finance":       "Financial Modeling (Udemy)",
	"accounting":    "Accounting Fundamentals (Coursera)",
	"biology":       "Human Anatomy Basics (edX)",
	"cloud":         "AWS Cloud Practitioner Essentials",
}

const fallbackCourse = "Introductory courses in the core domain"

type Handler struct {
	config *Config
	store  refdata.Store
	logger logger.Logger
}

func NewHandler(config *Config, store refdata.Store, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  store,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		code := "ROADMAP_GENERATION_FAILED"
		var stdErr *errors.StandardError
		if stderrors.As(err, &stdErr) {
			code = string(stdErr.Code)
		}
		h.failJob(client, job, code, err.Error())
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	career, err := refdata.FindCareer(ctx, h.store, input.CareerName)
	if err != nil {
		return nil, err
	}

	skills := career.RequiredSkills

	specialization := "core domain"
	if len(skills) > 0 {
		specialization = skills[0]
	}

	roadmap := []Phase{
		{
			Year:  1,
			Title: "Foundation Building",
			Goals: []string{
				"Complete current education with focus on relevant subjects",
				fmt.Sprintf("Begin learning basics of: %s", joinOr(slice(skills, 0, 2), "the core domain")),
				"Explore career through online resources and videos",
				"Join relevant online communities and forums",
			},
			FocusSkills: slice(skills, 0, 2),
			Courses:     h.beginnerCoursesFor(skills),
			Milestones: []string{
				"Complete 2 online courses",
				"Build 1-2 small projects",
				"Attend 1 career webinar",
			},
		},
		{
			Year:  2,
			Title: "Core Skill Development",
			Goals: []string{
				fmt.Sprintf("Master fundamentals of: %s", joinOr(slice(skills, 1, 3), "the core domain")),
				"Start building portfolio projects",
				"Participate in competitions/hackathons",
				"Get mentorship or guidance",
			},
			FocusSkills: slice(skills, 1, 3),
			Courses:     h.catalogCourses(ctx, slice(skills, 1, 3)),
			Milestones: []string{
				"Complete 3-4 intermediate courses",
				"Build 3-5 portfolio projects",
				"Participate in 1-2 competitions",
			},
		},
		{
			Year:  3,
			Title: "Specialization & Practical Experience",
			Goals: []string{
				fmt.Sprintf("Specialize in: %s", specialization),
				"Apply for internships",
				"Contribute to open-source/real projects",
				"Build professional network",
			},
			FocusSkills: slice(skills, 2, 5),
			Courses:     advancedCoursesFor(career.Category),
			Milestones: []string{
				"Complete 1-2 certifications",
				"Get internship experience",
				"Build 2-3 advanced projects",
			},
		},
		{
			Year:  4,
			Title: "Professional Preparation",
			Goals: []string{
				"Complete degree/certification requirements",
				"Gain practical work experience",
				"Prepare for job interviews",
				"Build strong online presence",
			},
			FocusSkills: []string{"Interview Skills", "Professional Communication", "Industry Tools"},
			Courses:     []string{"Interview Preparation", "Resume Building", "LinkedIn Optimization"},
			Milestones: []string{
				"Complete education",
				"Have 2-3 internship experiences",
				"Apply for entry-level positions",
			},
		},
		{
			Year:  5,
			Title: "Career Launch & Growth",
			Goals: []string{
				"Secure full-time position",
				"Continue learning advanced topics",
				"Establish expertise in chosen domain",
				"Plan for career advancement",
			},
			FocusSkills: []string{"Leadership", "Advanced Domain Knowledge", "Soft Skills"},
			Courses:     []string{"Leadership Development", "Advanced Specialization"},
			Milestones: []string{
				"Get first full-time job",
				"Complete 1 year in role",
				"Get first promotion or significant project",
			},
		},
	}

	h.logger.Info("roadmap generated", map[string]interface{}{
		"career": career.Name,
		"phases": len(roadmap),
	})

	return &Output{CareerName: career.Name, TotalDuration: "5 years", Roadmap: roadmap}, nil
}

// advancedCourses maps a career category to year-three course suggestions.
var advancedCourses = map[string][]string{
	"Technology": {"AWS/Azure Certification", "Advanced Programming"},
	"Healthcare": {"Medical Specialization", "Research Methods"},
	"Finance":    {"CFA Preparation", "Financial Modeling"},
	"Creative":   {"Portfolio Development", "Industry Software Mastery"},
}

var defaultAdvancedCourses = []string{"Advanced Professional Certification", "Leadership Course"}

func advancedCoursesFor(category string) []string {
	if courses, ok := advancedCourses[category]; ok {
		return courses
	}
	return defaultAdvancedCourses
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

// beginnerCoursesFor collects starter courses for the given skills, deduped
// and capped. A career with no mappable skills gets the generic pointer.
func (h *Handler) beginnerCoursesFor(skills []string) []string {
	var courses []string
	seen := make(map[string]bool)

	keywords := make([]string, 0, len(beginnerCourses))
	for keyword := range beginnerCourses {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)

	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, keyword := range keywords {
			course := beginnerCourses[keyword]
			if strings.Contains(lower, keyword) && !seen[course] {
				seen[course] = true
				courses = append(courses, course)
			}
		}
	}

	if len(courses) == 0 {
		return []string{fallbackCourse}
	}
	if len(courses) > h.config.MaxCourses {
		courses = courses[:h.config.MaxCourses]
	}
	return courses
}

// catalogCourses pulls intermediate suggestions from the course catalog;
// catalog trouble degrades to no suggestions rather than failing the roadmap.
func (h *Handler) catalogCourses(ctx context.Context, skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	catalog, err := h.store.Courses(ctx)
	if err != nil {
		h.logger.Warn("course catalog unavailable", map[string]interface{}{"error": err})
		return nil
	}

	var names []string
	for _, course := range refdata.FilterCoursesBySkills(catalog, skills) {
		names = append(names, fmt.Sprintf("%s (%s)", course.Name, course.Provider))
		if len(names) == h.config.MaxCourses {
			break
		}
	}
	return names
}

// slice mirrors clamped list slicing: out-of-range bounds shrink to fit
// instead of failing.
func slice(items []string, from, to int) []string {
	if from > len(items) {
		from = len(items)
	}
	if to > len(items) {
		to = len(items)
	}
	if from >= to {
		return nil
	}
	return items[from:to]
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err = cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
