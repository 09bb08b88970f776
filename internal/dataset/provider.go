package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/sadhikari20/AIJobInsight/internal/insights"
	"github.com/sadhikari20/AIJobInsight/internal/types"
)

// Insight is the provider's response, matching the REST service wire contract:
// an already-four-category, array-of-strings-per-category payload.
type Insight struct {
	JobTitle             string                   `json:"job_title"`
	CareerLevel          string                   `json:"career_level"`
	SkillDistribution    insights.RawDistribution `json:"skill_distribution"`
	SkillRequirements    []string                 `json:"skill_requirements"`
	LeadershipExperience []string                 `json:"leadership_experience"`
	EmployeeTenure       []string                 `json:"employee_tenure"`
	RequiredExpertise    []string                 `json:"required_expertise"`
}

// NotFoundError reports that no postings matched the requested pair.
type NotFoundError struct {
	JobTitle    string
	CareerLevel string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No job postings found for '%s' at '%s' level. Please check job title/level or try different inputs.",
		e.JobTitle, e.CareerLevel)
}

// Provider derives insights from the loaded job postings dataset.
type Provider struct {
	rows []Row
}

// Len returns the number of postings in the dataset.
func (p *Provider) Len() int {
	return len(p.rows)
}

// Insights filters the dataset on job title and career level
// (case-insensitive) and aggregates the matching postings into one insight
// payload. Every category list is guaranteed non-empty: a templated fallback
// bullet fills any list the heuristics left blank.
func (p *Provider) Insights(req types.InsightRequest) (*Insight, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var matched []Row
	for _, row := range p.rows {
		if strings.EqualFold(row.JobTitle, req.JobTitle) && strings.EqualFold(row.CareerLevel, req.CareerLevel) {
			matched = append(matched, row)
		}
	}
	if len(matched) == 0 {
		return nil, &NotFoundError{JobTitle: req.JobTitle, CareerLevel: req.CareerLevel}
	}

	agg := aggregate(matched)

	return &Insight{
		JobTitle:             req.JobTitle,
		CareerLevel:          req.CareerLevel,
		SkillDistribution:    skillDistribution(agg.skills),
		SkillRequirements:    skillBullets(agg, req),
		LeadershipExperience: leadershipBullets(agg, req),
		EmployeeTenure:       tenureBullets(agg, req),
		RequiredExpertise:    expertiseBullets(agg, req),
	}, nil
}

// aggregated holds the concatenated text fields of the matched postings.
type aggregated struct {
	descriptions string
	skills       string
	expertise    string
}

func aggregate(rows []Row) aggregated {
	var descriptions, skills, expertise []string
	for _, row := range rows {
		descriptions = append(descriptions, row.Description)
		skills = append(skills, row.RequiredSkills)
		expertise = append(expertise, row.ExpertiseAreas)
	}
	return aggregated{
		descriptions: strings.Join(descriptions, ". "),
		skills:       strings.Join(skills, ", "),
		expertise:    strings.Join(expertise, ", "),
	}
}

// skillDistribution scores technical vs soft keyword hits over the aggregated
// skills. No hits at all means an even split.
func skillDistribution(skills string) insights.RawDistribution {
	techScore := 0
	for _, keyword := range technicalSkillKeywords {
		techScore += countWordHits(keyword, skills)
	}
	softScore := 0
	for _, keyword := range softSkillKeywords {
		softScore += countWordHits(keyword, skills)
	}

	total := techScore + softScore
	if total == 0 {
		return insights.RawDistribution{TechnicalPercentage: 50, SoftPercentage: 50}
	}

	technical := math.Round(float64(techScore) / float64(total) * 100)
	return insights.RawDistribution{
		TechnicalPercentage: technical,
		SoftPercentage:      100 - technical,
	}
}

func skillBullets(agg aggregated, req types.InsightRequest) []string {
	var bullets []string

	rawSkills := splitList(agg.skills)
	if len(rawSkills) > 0 {
		if top := mostCommon(rawSkills, 3); len(top) > 0 {
			bullets = append(bullets, fmt.Sprintf("Key skills frequently mentioned include: %s.", strings.Join(top, ", ")))
		}

		for _, keyword := range highlightSkills {
			if !anySkillMatches(rawSkills, keyword) {
				continue
			}
			if !containsBulletWith(bullets, "Proficiency in "+keyword) {
				bullets = append(bullets, proficiencyBullet(keyword))
			}
		}

		if matchesAny(`data analysis|analytical skills|problem-solving`, agg.descriptions) {
			bullets = append(bullets, "Strong analytical abilities for data interpretation and problem-solving are essential.")
		}
		if matchesAny(`communication|present`, agg.descriptions) {
			bullets = append(bullets, "Effective communication and presentation skills are crucial for conveying insights to stakeholders.")
		}
		if matchesAny(`teamwork|collaboration`, agg.descriptions) {
			bullets = append(bullets, "Ability to work effectively in a team-oriented and collaborative environment is often sought.")
		}
	}

	if len(bullets) == 0 {
		bullets = append(bullets, fmt.Sprintf(
			"Specific skill requirements for %s at %s level will vary, but a strong analytical and technical foundation is generally expected.",
			req.JobTitle, req.CareerLevel))
	}
	return bullets
}

func leadershipBullets(agg aggregated, req types.InsightRequest) []string {
	var bullets []string

	if matchesAny(`lead|manage|drive strategic`, agg.descriptions) {
		bullets = append(bullets, "Opportunities to lead small projects or initiatives and drive strategic decisions may be available.")
	}
	if matchesAny(`mentor|support senior|guide|supervise`, agg.descriptions) {
		bullets = append(bullets, "Expect to support or mentor junior team members as you gain experience.")
	}
	if matchesAny(`collaborate|team|cross-functional|coordinate`, agg.descriptions) {
		bullets = append(bullets, "Strong collaboration skills are necessary for working with cross-functional teams and stakeholders.")
	}
	if matchesAny(`present findings|report|communicate effectively`, agg.descriptions) {
		bullets = append(bullets, "You will be expected to present findings, report progress, and communicate effectively to stakeholders.")
	}
	if matchesAny(`assist in|learn and apply|support team|participate in|follow best practices`, agg.descriptions) {
		bullets = append(bullets, "Roles often involve assisting in tasks, learning new concepts, and supporting the team in various initiatives, indicating a growth-oriented environment.")
	}

	if len(bullets) == 0 {
		bullets = append(bullets, fmt.Sprintf(
			"%s %s roles typically focus on individual contribution, with increasing opportunities for leadership and mentorship as experience grows.",
			req.CareerLevel, req.JobTitle))
	}
	return bullets
}

func tenureBullets(agg aggregated, req types.InsightRequest) []string {
	var bullets []string

	if matchesAny(`typical tenure|average tenure`, agg.descriptions) {
		phrases := findAllInsensitive(
			`\b(typical tenure \d+\.?\d*-\d+\.?\d* years|average tenure \d+\.?\d* years)\b`, agg.descriptions)
		seen := make(map[string]bool, len(phrases))
		for _, phrase := range phrases {
			if !seen[phrase] {
				bullets = append(bullets, phrase)
				seen[phrase] = true
			}
		}
	}

	if matchesAny(`promotion|career path|growth opportunities`, agg.descriptions) {
		bullets = append(bullets, "Opportunities for promotion or transitioning to specialized roles are common after gaining experience.")
	}
	if matchesAny(`learning culture|skill development encouraged`, agg.descriptions) {
		bullets = append(bullets, "Many companies emphasize a strong learning and development culture for entry-level talent.")
	}

	if len(bullets) == 0 {
		bullets = append(bullets, fmt.Sprintf(
			"%s %s roles often see professionals building foundational skills for 1-3 years.",
			req.CareerLevel, req.JobTitle))
	}
	return bullets
}

func expertiseBullets(agg aggregated, req types.InsightRequest) []string {
	var bullets []string

	rawExpertise := splitList(agg.expertise)
	if len(rawExpertise) > 0 {
		if top := mostCommon(rawExpertise, 3); len(top) > 0 {
			bullets = append(bullets, fmt.Sprintf("Core expertise areas include: %s.", strings.Join(top, ", ")))
		}

		for _, domain := range highlightDomains {
			if !anySkillMatches(rawExpertise, domain) {
				continue
			}
			if !containsBulletWith(bullets, "A strong foundation in "+domain) {
				bullets = append(bullets, foundationBullet(domain))
			}
		}

		if matchesAny(`data-driven|decision making|problem-solving`, agg.descriptions) {
			bullets = append(bullets, "The ability to contribute to data-driven decision making and problem-solving is highly valued.")
		}
	}

	if len(bullets) == 0 {
		bullets = append(bullets, fmt.Sprintf(
			"General analytical and problem-solving expertise is fundamental for %s, with specialized domain knowledge evolving over time.",
			req.JobTitle))
	}
	return bullets
}

// anySkillMatches reports whether any entry contains the keyword with word
// boundaries.
func anySkillMatches(entries []string, keyword string) bool {
	for _, entry := range entries {
		if matchesWord(keyword, entry) {
			return true
		}
	}
	return false
}
