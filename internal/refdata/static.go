// internal/refdata/static.go
package refdata

import (
	"context"

	"careerguide-workers/internal/common/errors"
	"careerguide-workers/internal/models"
)

// StaticStore serves fixed catalogs. Used in tests and as the built-in
// fallback catalog when no backing database is configured.
type StaticStore struct {
	CareerList  []models.Career
	CollegeList []models.College
	MBTIMap     map[string]models.MBTIInfo
	CourseList  []models.Course
}

func (s *StaticStore) Careers(_ context.Context) ([]models.Career, error) {
	if len(s.CareerList) == 0 {
		return nil, errors.NewCatalogEmptyError("careers")
	}
	return s.CareerList, nil
}

func (s *StaticStore) Colleges(_ context.Context) ([]models.College, error) {
	if len(s.CollegeList) == 0 {
		return nil, errors.NewCatalogEmptyError("colleges")
	}
	return s.CollegeList, nil
}

func (s *StaticStore) MBTIReference(_ context.Context) (map[string]models.MBTIInfo, error) {
	return s.MBTIMap, nil
}

func (s *StaticStore) Courses(_ context.Context) ([]models.Course, error) {
	return s.CourseList, nil
}

// NewDefaultStore returns the built-in reference catalog. It is intentionally
// small; production deployments load the full catalog from postgres.
func NewDefaultStore() *StaticStore {
	return &StaticStore{
		CareerList:  defaultCareers(),
		CollegeList: defaultColleges(),
		MBTIMap:     defaultMBTI(),
		CourseList:  defaultCourses(),
	}
}

func defaultCareers() []models.Career {
	return []models.Career{
		{
			Name:           "Software Engineer",
			Category:       "Technology",
			Description:    "Designs, builds and maintains software systems.",
			Difficulty:     7,
			AutomationRisk: 0.15,
			JobGrowthRate:  0.15,
			RequiredSkills: []string{"Programming", "Data Structures", "System Design", "Databases", "Cloud Platforms"},
			TraitsRequired: map[string]float64{"analytical": 0.8, "technical": 0.9, "problem_solving": 0.85},
			PersonalityFit: []string{"INTJ", "INTP", "ISTJ", "ENTJ"},
			Subjects:       []string{"math", "computer"},
			Education:      "B.Tech/B.E. in Computer Science or equivalent",
			Salary: models.SalaryTable{
				"entry":  {"USD": 95000, "INR": 800000, "EUR": 60000},
				"mid":    {"USD": 140000, "INR": 2000000, "EUR": 90000},
				"senior": {"USD": 200000, "INR": 4500000, "EUR": 130000},
			},
		},
		{
			Name:           "Data Scientist",
			Category:       "Technology",
			Description:    "Extracts insight from data with statistics and modeling.",
			Difficulty:     8,
			AutomationRisk: 0.1,
			JobGrowthRate:  0.2,
			RequiredSkills: []string{"Python", "Machine Learning", "Statistics", "Data Visualization", "SQL"},
			TraitsRequired: map[string]float64{"analytical": 0.9, "research": 0.8, "technical": 0.8},
			PersonalityFit: []string{"INTJ", "INTP", "ISTP"},
			Subjects:       []string{"math", "science", "computer"},
			Education:      "Bachelor's/Master's in CS, Statistics or related field",
			Salary: models.SalaryTable{
				"entry":  {"USD": 100000, "INR": 900000, "EUR": 65000},
				"mid":    {"USD": 150000, "INR": 2500000, "EUR": 95000},
				"senior": {"USD": 210000, "INR": 5000000, "EUR": 140000},
			},
		},
		{
			Name:           "Graphic Designer",
			Category:       "Creative",
			Description:    "Creates visual concepts for brands and media.",
			Difficulty:     5,
			AutomationRisk: 0.45,
			JobGrowthRate:  0.04,
			RequiredSkills: []string{"Design Tools", "Typography", "Branding", "Illustration"},
			TraitsRequired: map[string]float64{"creative": 0.9, "detail_oriented": 0.6},
			PersonalityFit: []string{"ISFP", "INFP", "ENFP"},
			Subjects:       []string{"arts"},
			Education:      "Bachelor's in Design or Fine Arts",
			Salary: models.SalaryTable{
				"entry":  {"USD": 45000, "INR": 350000, "EUR": 32000},
				"mid":    {"USD": 65000, "INR": 700000, "EUR": 48000},
				"senior": {"USD": 95000, "INR": 1500000, "EUR": 70000},
			},
		},
		{
			Name:           "Medical Doctor",
			Category:       "Healthcare",
			Description:    "Diagnoses and treats illness across specializations.",
			Difficulty:     10,
			AutomationRisk: 0.05,
			JobGrowthRate:  0.08,
			RequiredSkills: []string{"Biology", "Clinical Reasoning", "Patient Communication", "Pharmacology"},
			TraitsRequired: map[string]float64{"detail_oriented": 0.9, "research": 0.7, "communication": 0.7},
			PersonalityFit: []string{"ISFJ", "ESFJ", "ISTJ"},
			Subjects:       []string{"science"},
			Education:      "MBBS/MD",
			Salary: models.SalaryTable{
				"entry":  {"USD": 120000, "INR": 1000000, "EUR": 80000},
				"mid":    {"USD": 200000, "INR": 2500000, "EUR": 120000},
				"senior": {"USD": 300000, "INR": 6000000, "EUR": 180000},
			},
		},
		{
			Name:           "Chartered Accountant",
			Category:       "Finance",
			Description:    "Audits, taxation, and financial reporting.",
			Difficulty:     8,
			AutomationRisk: 0.4,
			JobGrowthRate:  0.05,
			RequiredSkills: []string{"Accounting", "Taxation", "Auditing", "Financial Analysis"},
			TraitsRequired: map[string]float64{"detail_oriented": 0.95, "analytical": 0.8},
			PersonalityFit: []string{"ISTJ", "ESTJ"},
			Subjects:       []string{"commerce", "math"},
			Education:      "CA/CPA certification",
			Salary: models.SalaryTable{
				"entry":  {"USD": 60000, "INR": 700000, "EUR": 45000},
				"mid":    {"USD": 100000, "INR": 1800000, "EUR": 75000},
				"senior": {"USD": 160000, "INR": 4000000, "EUR": 110000},
			},
		},
		{
			Name:           "Digital Marketing Specialist",
			Category:       "Marketing",
			Description:    "Plans and runs online campaigns and analytics.",
			Difficulty:     4,
			AutomationRisk: 0.35,
			JobGrowthRate:  0.07,
			RequiredSkills: []string{"SEO", "Content Marketing", "Analytics", "Social Media"},
			TraitsRequired: map[string]float64{"communication": 0.8, "creative": 0.7},
			PersonalityFit: []string{"ENFP", "ENTP", "ESFP"},
			Subjects:       []string{"any"},
			Education:      "Any bachelor's degree plus certifications",
			Salary: models.SalaryTable{
				"entry":  {"USD": 50000, "INR": 400000, "EUR": 35000},
				"mid":    {"USD": 75000, "INR": 900000, "EUR": 55000},
				"senior": {"USD": 110000, "INR": 2000000, "EUR": 80000},
			},
		},
		{
			Name:           "Civil Engineer",
			Category:       "Engineering",
			Description:    "Designs and supervises infrastructure projects.",
			Difficulty:     7,
			AutomationRisk: 0.2,
			JobGrowthRate:  0.06,
			RequiredSkills: []string{"Structural Analysis", "CAD", "Project Management", "Surveying"},
			TraitsRequired: map[string]float64{"analytical": 0.75, "detail_oriented": 0.8, "problem_solving": 0.7},
			PersonalityFit: []string{"ISTJ", "ESTJ", "ISTP"},
			Subjects:       []string{"math", "science"},
			Education:      "B.Tech/B.E. in Civil Engineering",
			Salary: models.SalaryTable{
				"entry":  {"USD": 62000, "INR": 450000, "EUR": 42000},
				"mid":    {"USD": 90000, "INR": 1000000, "EUR": 62000},
				"senior": {"USD": 130000, "INR": 2200000, "EUR": 90000},
			},
		},
		{
			Name:           "Psychologist",
			Category:       "Healthcare",
			Description:    "Studies behavior and provides counseling therapy.",
			Difficulty:     7,
			AutomationRisk: 0.1,
			JobGrowthRate:  0.08,
			RequiredSkills: []string{"Counseling", "Research Methods", "Active Listening", "Assessment"},
			TraitsRequired: map[string]float64{"communication": 0.9, "research": 0.7, "leadership": 0.5},
			PersonalityFit: []string{"INFJ", "ENFJ", "INFP"},
			Subjects:       []string{"social science", "science"},
			Education:      "Master's in Psychology",
			Salary: models.SalaryTable{
				"entry":  {"USD": 55000, "INR": 400000, "EUR": 40000},
				"mid":    {"USD": 85000, "INR": 900000, "EUR": 60000},
				"senior": {"USD": 120000, "INR": 1800000, "EUR": 85000},
			},
		},
	}
}

func defaultColleges() []models.College {
	return []models.College{
		{
			Name:          "Indian Institute of Technology Bombay",
			Location:      "Mumbai",
			Country:       "India",
			FeesPerYear:   map[string]float64{"INR": 220000, "USD": 2700},
			Ranking:       3,
			PlacementRate: 0.95,
			Courses:       []string{"Computer Science", "Civil Engineering", "Mechanical Engineering", "Data Science"},
			Scholarships:  []string{"Merit-cum-Means", "Institute Free Studentship"},
		},
		{
			Name:          "Massachusetts Institute of Technology",
			Location:      "Cambridge",
			Country:       "USA",
			FeesPerYear:   map[string]float64{"USD": 57000},
			Ranking:       1,
			PlacementRate: 0.97,
			Courses:       []string{"Computer Science", "AI/ML", "Engineering", "Data Science"},
			Scholarships:  []string{"Need-based aid"},
		},
		{
			Name:          "National Institute of Design",
			Location:      "Ahmedabad",
			Country:       "India",
			FeesPerYear:   map[string]float64{"INR": 350000, "USD": 4200},
			Ranking:       12,
			PlacementRate: 0.85,
			Courses:       []string{"Graphic Design", "Product Design", "Fine Arts"},
			Scholarships:  []string{"Ford Foundation Scholarship"},
		},
		{
			Name:          "All India Institute of Medical Sciences",
			Location:      "New Delhi",
			Country:       "India",
			FeesPerYear:   map[string]float64{"INR": 6000, "USD": 75},
			Ranking:       5,
			PlacementRate: 0.99,
			Courses:       []string{"MBBS", "MD", "Nursing"},
			Scholarships:  []string{"Central Sector Scheme"},
		},
		{
			Name:          "London Business School",
			Location:      "London",
			Country:       "UK",
			FeesPerYear:   map[string]float64{"USD": 75000, "EUR": 68000},
			Ranking:       8,
			PlacementRate: 0.92,
			Courses:       []string{"MBA", "Finance", "Management"},
			Scholarships:  []string{"LBS Fund Scholarship"},
		},
		{
			Name:          "Shri Ram College of Commerce",
			Location:      "Delhi",
			Country:       "India",
			FeesPerYear:   map[string]float64{"INR": 30000, "USD": 400},
			Ranking:       15,
			PlacementRate: 0.88,
			Courses:       []string{"Commerce", "Accounting", "Economics"},
			Scholarships:  []string{"Merit Scholarship"},
		},
	}
}

func defaultMBTI() map[string]models.MBTIInfo {
	return map[string]models.MBTIInfo{
		"INTJ": {
			Description: "Strategic, independent thinkers who enjoy complex systems.",
			Strengths:   []string{"Strategic planning", "Independent work", "Systems thinking"},
			Careers:     []string{"Software Engineer", "Data Scientist", "Architect"},
		},
		"ENFP": {
			Description: "Enthusiastic, creative connectors who thrive on new ideas.",
			Strengths:   []string{"Communication", "Creativity", "Adaptability"},
			Careers:     []string{"Digital Marketing Specialist", "Psychologist", "Journalist"},
		},
		"ISTJ": {
			Description: "Practical, dependable organizers with strong follow-through.",
			Strengths:   []string{"Reliability", "Attention to detail", "Process discipline"},
			Careers:     []string{"Chartered Accountant", "Civil Engineer", "Medical Doctor"},
		},
		"ESTJ": {
			Description: "Decisive administrators who bring order to projects and people.",
			Strengths:   []string{"Organization", "Leadership", "Execution"},
			Careers:     []string{"Operations Manager", "Chartered Accountant", "Civil Engineer"},
		},
	}
}

func defaultCourses() []models.Course {
	return []models.Course{
		{Name: "CS50 by Harvard", Provider: "edX", Level: "beginner", Skills: []string{"Programming"}},
		{Name: "Python for Everybody", Provider: "Coursera", Level: "beginner", Skills: []string{"Python", "Programming"}},
		{Name: "Google Data Analytics Certificate", Provider: "Coursera", Level: "beginner", Skills: []string{"Data Visualization", "SQL"}},
		{Name: "ML Crash Course by Google", Provider: "Google", Level: "intermediate", Skills: []string{"Machine Learning"}},
		{Name: "Google UX Design Certificate", Provider: "Coursera", Level: "beginner", Skills: []string{"Design Tools"}},
		{Name: "Business Communication", Provider: "LinkedIn Learning", Level: "beginner", Skills: []string{"Communication", "Patient Communication"}},
		{Name: "Financial Modeling", Provider: "Udemy", Level: "advanced", Skills: []string{"Financial Analysis", "Accounting"}},
		{Name: "AWS Certified Solutions Architect", Provider: "AWS", Level: "advanced", Skills: []string{"Cloud Platforms"}},
	}
}
