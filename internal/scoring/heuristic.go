package scoring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Heuristic scoring weights.
const (
	keywordWeight    = 60.0
	contactWeight    = 10.0
	educationWeight  = 10.0
	experienceWeight = 20.0

	pointsPerYear = 2.0
)

var heuristicStopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "this": {},
	"from": {}, "are": {}, "have": {}, "has": {}, "will": {}, "your": {},
	"a": {}, "an": {}, "or": {}, "to": {},
}

var degreeKeywords = []string{"bachelor", "master", "phd", "ba ", "bs ", "degree"}

var (
	tokenPattern = regexp.MustCompile(`[a-zA-Z0-9+#-]{3,}`)
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s-]{6,}\d`)
	yearsPattern = regexp.MustCompile(`(\d+)\+?\s+years`)
)

// Heuristic is the rule-based scorer. It is deterministic and always
// available.
type Heuristic struct{}

// Evaluate scores a resume against a job description from four weighted
// factors: keyword overlap (60), contact info (10), education (10) and years
// of experience (20). The total is clamped to [0, 100]. Feedback always
// includes a keyword-match summary, plus one actionable line per factor that
// scored below its potential.
func (Heuristic) Evaluate(resumeText, jobText string) Result {
	resume := strings.ToLower(resumeText)
	job := strings.ToLower(jobText)

	var score float64
	details := make(map[string]float64, 4)
	var feedback []string

	// Keyword overlap.
	jobTokens := tokenize(job)
	resumeTokens := tokenize(resume)
	overlap := 0
	for token := range jobTokens {
		if _, ok := resumeTokens[token]; ok {
			overlap++
		}
	}
	ratio := 0.0
	if len(jobTokens) > 0 {
		ratio = float64(overlap) / float64(len(jobTokens))
	}
	keywordScore := ratio * keywordWeight
	score += keywordScore
	details["keyword_overlap"] = keywordScore
	feedback = append(feedback, fmt.Sprintf("Keyword match: %d%% (%d of %d keywords)",
		int(ratio*100), overlap, len(jobTokens)))

	// Contact info presence.
	emailFound := emailPattern.MatchString(resume)
	phoneFound := phonePattern.MatchString(resume)
	contactPoints := 0.0
	if emailFound {
		contactPoints += contactWeight / 2
	}
	if phoneFound {
		contactPoints += contactWeight / 2
	}
	score += contactPoints
	details["contact_info"] = contactPoints
	if !emailFound {
		feedback = append(feedback, "Add a contact email.")
	}
	if !phoneFound {
		feedback = append(feedback, "Add a contact phone number.")
	}

	// Education signal.
	eduPoints := 0.0
	for _, kw := range degreeKeywords {
		if strings.Contains(resume, kw) {
			eduPoints = educationWeight
			break
		}
	}
	score += eduPoints
	details["education"] = eduPoints
	if eduPoints == 0 {
		feedback = append(feedback, "Mention your highest education/degree.")
	}

	// Experience years.
	years := 0
	if m := yearsPattern.FindStringSubmatch(resume); m != nil {
		if parsed, err := strconv.Atoi(m[1]); err == nil {
			years = parsed
		}
	}
	yearPoints := float64(years) * pointsPerYear
	if yearPoints > experienceWeight {
		yearPoints = experienceWeight
	}
	score += yearPoints
	details["experience"] = yearPoints
	if years == 0 {
		feedback = append(feedback, "Explicitly state total years of relevant experience (e.g. '5 years').")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Result{
		Score:     score,
		Available: true,
		Feedback:  strings.Join(feedback, "\n"),
		Details:   details,
	}
}

func tokenize(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range tokenPattern.FindAllString(s, -1) {
		if _, stop := heuristicStopWords[word]; !stop {
			tokens[word] = struct{}{}
		}
	}
	return tokens
}
