package skills

import (
	"math"
	"sort"
	"strings"
)

// FitCategory classifies how well a resume covers a job's required skills.
type FitCategory string

const (
	FitExcellent FitCategory = "excellent"
	FitGood      FitCategory = "good"
	FitFair      FitCategory = "fair"
	FitPoor      FitCategory = "poor"
)

// Fit band lower bounds, inclusive.
const (
	excellentThreshold = 80.0
	goodThreshold      = 60.0
	fairThreshold      = 40.0
)

// MatchResult describes the outcome of matching a resume against a job's
// required-skill list.
type MatchResult struct {
	RelevantSkills []string    `json:"relevant_skills"`
	MissingSkills  []string    `json:"missing_skills"`
	OverallFit     FitCategory `json:"overall_fit"`
	FitPercentage  float64     `json:"fit_percentage"`
}

// Extract returns the vocabulary terms present in text, sorted and unique.
// Matching is lowercase substring containment, so "java" also hits inside
// "javascript"; that fuzziness is intentional.
func Extract(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, skill := range vocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}

// Evaluate matches skills detected in resumeText against the comma-separated
// required skill list. A required term is satisfied when it and a detected
// skill contain each other in either direction, which deliberately allows
// partial token matches ("react" vs "reactjs"). Satisfied terms form the
// relevant set, the rest the missing set.
func Evaluate(requiredCSV, resumeText string) MatchResult {
	empty := MatchResult{
		RelevantSkills: []string{},
		MissingSkills:  []string{},
		OverallFit:     FitPoor,
		FitPercentage:  0,
	}
	if strings.TrimSpace(requiredCSV) == "" || resumeText == "" {
		return empty
	}

	required := parseRequired(requiredCSV)
	if len(required) == 0 {
		return empty
	}

	found := Extract(resumeText)

	relevant := make([]string, 0)
	missing := make([]string, 0)
	for _, req := range required {
		matched := false
		for _, skill := range found {
			if strings.Contains(skill, req) || strings.Contains(req, skill) {
				matched = true
				break
			}
		}
		if matched {
			relevant = append(relevant, req)
		} else {
			missing = append(missing, req)
		}
	}

	pct := float64(len(relevant)) / float64(len(required)) * 100.0

	return MatchResult{
		RelevantSkills: relevant,
		MissingSkills:  missing,
		OverallFit:     FitFor(pct),
		FitPercentage:  math.Round(pct*100) / 100,
	}
}

// FitFor maps a fit percentage to its category. Band lower bounds are
// inclusive: exactly 80 is excellent, exactly 60 is good, exactly 40 is fair.
func FitFor(pct float64) FitCategory {
	switch {
	case pct >= excellentThreshold:
		return FitExcellent
	case pct >= goodThreshold:
		return FitGood
	case pct >= fairThreshold:
		return FitFair
	default:
		return FitPoor
	}
}

func parseRequired(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.ToLower(strings.TrimSpace(p)); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
