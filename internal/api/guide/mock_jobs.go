package guide

import (
	"fmt"
	"net/url"

	"github.com/welcome-anywhere/welcome-anywhere/internal/api/classify"
	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

type jobTemplate struct {
	Title       string
	Company     string
	Description string
}

var jobPools = map[string][]jobTemplate{
	classify.JobCategoryTech: {
		{"Software Engineer", "TechCorp", "Develop and maintain web applications using modern frameworks."},
		{"Data Scientist", "Analytics Inc", "Analyze large datasets and build predictive models."},
		{"UX Designer", "DesignHub", "Create user-centered designs for digital products."},
		{"DevOps Engineer", "CloudSystems", "Implement and manage CI/CD pipelines and cloud infrastructure."},
	},
	classify.JobCategoryHealthcare: {
		{"Registered Nurse", "City Hospital", "Provide patient care in a fast-paced environment."},
		{"Physical Therapist", "Wellness Center", "Help patients recover from injuries and improve mobility."},
		{"Medical Assistant", "Family Practice", "Support physicians and handle administrative tasks."},
		{"Healthcare Administrator", "Health Services", "Manage healthcare facility operations and staff."},
	},
	classify.JobCategoryEducation: {
		{"Elementary Teacher", "Public School District", "Teach core subjects to elementary students."},
		{"College Professor", "State University", "Teach courses and conduct research in your field of expertise."},
		{"Education Coordinator", "Learning Center", "Develop and implement educational programs."},
		{"School Counselor", "Private Academy", "Provide academic and personal guidance to students."},
	},
	classify.JobCategoryBusiness: {
		{"Marketing Manager", "Brand Solutions", "Develop and execute marketing strategies."},
		{"Financial Analyst", "Investment Firm", "Analyze financial data and prepare reports."},
		{"HR Specialist", "Corporate Services", "Manage recruitment and employee relations."},
		{"Business Consultant", "Strategy Partners", "Help businesses improve operations and profitability."},
	},
}

// GenerateJobListings picks 3 jobs from the pool matching the job field.
// Salaries fall between $60,000 and $119,999.
func GenerateJobListings(r Rand, loc types.LocationRecord, jobField string) []types.JobListing {
	category := classify.ClassifyJobField(jobField)
	pool := append([]jobTemplate(nil), jobPools[category]...)
	shuffle(r, pool)

	listings := make([]types.JobListing, 0, 3)
	for _, tpl := range pool[:3] {
		listings = append(listings, types.JobListing{
			Title:       tpl.Title,
			Company:     fmt.Sprintf("%s %s", tpl.Company, loc.City),
			Location:    loc.City,
			Salary:      fmt.Sprintf("$%d", 60000+r.IntN(60000)),
			Description: tpl.Description,
			Link:        fmt.Sprintf("https://www.indeed.com/jobs?q=%s&l=%s", url.QueryEscape(tpl.Title), url.QueryEscape(loc.City)),
		})
	}
	return listings
}
