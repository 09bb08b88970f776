package dataset

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Keyword inventories used to classify dataset skills as technical or soft.
// Scores are word-boundary hit counts over the aggregated skills of the
// matching postings.
var technicalSkillKeywords = []string{
	"Python", "R", "SQL", "scikit-learn", "TensorFlow", "Keras", "PyTorch", "Pandas", "NumPy",
	"Matplotlib", "Seaborn", "Excel", "Tableau", "Power BI", "ETL", "API", "Git", "AWS", "Azure",
	"GCP", "Spark", "Hadoop", "Machine Learning", "Deep Learning", "NLP", "Computer Vision",
	"Statistics", "Algorithms", "Data Structures", "C++", "Java", "JavaScript", "SQL Server",
	"MySQL", "PostgreSQL", "MongoDB", "Data Warehousing", "Big Data", "Data Engineering", "Data Mining",
	"Predictive Modeling", "Time Series Analysis", "A/B Testing", "Experiment Design",
	"Spring Boot", "REST APIs", "Object-Oriented Design", "Web Development", "Cloud Fundamentals", "Debugging",
	".NET", "C#", ".NET Core", "ASP.NET", "MVC", "HTML", "CSS", "LINQ", "Unit Testing",
}

var softSkillKeywords = []string{
	"Communication", "Problem-Solving", "Critical Thinking", "Teamwork", "Collaboration", "Leadership",
	"Mentoring", "Presentation Skills", "Stakeholder Management", "Strategic Thinking", "Adaptability",
	"Creativity", "Attention to Detail", "Initiative", "Agile", "Project Management", "Business Acumen",
	"Data Storytelling", "Client Facing", "Cross-functional", "Reporting", "Market Research", "User Stories",
	"Product Management", "JIRA", "Assist", "Learn", "Support", "Participate",
}

// highlightSkills trigger a dedicated "Proficiency in X" bullet when present.
var highlightSkills = []string{
	"Python", "SQL", "Tableau", "Power BI", "Machine Learning", "Statistics", "Java",
	"REST APIs", "Agile", "Excel", "R", "C#", ".NET Core", "ASP.NET", "MVC",
}

// highlightDomains trigger a "strong foundation in X" expertise bullet.
var highlightDomains = []string{
	"Statistical Modeling", "Machine Learning Concepts", "Data Visualization", "Data Cleaning",
	"Predictive Analytics", "Business Intelligence", "Web Development", "Object-Oriented Design",
	"Cloud Computing", "Product Lifecycle Management", "Market Analysis", "User Experience Design",
	".NET", "C#", "ASP.NET MVC", "Entity Framework",
}

// Derivation patterns used when the dataset lacks explicit columns.
const (
	leadershipPattern = `lead|manage|mentor|guide|collaborate|team|coordinate|supervise|stakeholder|present findings|drive strategic`
	tenurePattern     = `tenure|years of experience|career path|promotion|growth opportunities|learning culture|entry-level`
)

// regexCache avoids recompiling keyword patterns per request.
var (
	regexMu    sync.Mutex
	regexCache = map[string]*regexp.Regexp{}
)

func compileInsensitive(pattern string) *regexp.Regexp {
	regexMu.Lock()
	defer regexMu.Unlock()
	if re, ok := regexCache[pattern]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)` + pattern)
	regexCache[pattern] = re
	return re
}

// countWordHits counts word-boundary occurrences of keyword in text.
func countWordHits(keyword, text string) int {
	re := compileInsensitive(`\b` + regexp.QuoteMeta(keyword) + `\b`)
	return len(re.FindAllStringIndex(text, -1))
}

// matchesWord reports whether keyword occurs with word boundaries in text.
func matchesWord(keyword, text string) bool {
	return countWordHits(keyword, text) > 0
}

// matchesAny reports whether the alternation pattern occurs in text.
func matchesAny(pattern, text string) bool {
	return compileInsensitive(`\b(` + pattern + `)\b`).MatchString(text)
}

// findAllInsensitive returns every case-insensitive match of pattern in text.
func findAllInsensitive(pattern, text string) []string {
	return compileInsensitive(pattern).FindAllString(text, -1)
}

// splitList splits a comma- or semicolon-separated field into trimmed entries.
func splitList(field string) []string {
	parts := strings.FieldsFunc(field, func(r rune) bool {
		return r == ',' || r == ';'
	})
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}

// mostCommon returns the n most frequent entries, ties broken by first
// appearance so output is deterministic.
func mostCommon(entries []string, n int) []string {
	counts := make(map[string]int, len(entries))
	firstSeen := make(map[string]int, len(entries))
	order := make([]string, 0, len(entries))
	for i, entry := range entries {
		if _, seen := counts[entry]; !seen {
			firstSeen[entry] = i
			order = append(order, entry)
		}
		counts[entry]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}

// containsBulletWith reports whether any existing bullet contains the phrase.
func containsBulletWith(bullets []string, phrase string) bool {
	for _, bullet := range bullets {
		if strings.Contains(bullet, phrase) {
			return true
		}
	}
	return false
}

func proficiencyBullet(skill string) string {
	return fmt.Sprintf("Proficiency in %s is highly valued for this role.", skill)
}

func foundationBullet(domain string) string {
	return fmt.Sprintf("A strong foundation in %s is often a key requirement.", domain)
}
