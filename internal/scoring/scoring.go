// Package scoring implements the resume scoring strategies and the policy
// that combines them: an optional external AI scorer, a deterministic
// heuristic scorer, and a TF-IDF semantic similarity scorer.
package scoring

import (
	"context"
	"encoding/json"
)

// Method identifies which strategy produced the final evaluation.
type Method string

const (
	MethodGrok      Method = "grok"
	MethodHybrid    Method = "hybrid"
	MethodHeuristic Method = "heuristic"
)

// Result is a single strategy's outcome. Strategies never return errors to
// callers; a failed or unconfigured strategy reports Available=false.
type Result struct {
	// Score is the strategy's score. Heuristic and AI scores are on a
	// 0-100 scale; the semantic score is a similarity in [0, 1].
	Score float64

	// Available reports whether the strategy produced a usable score.
	Available bool

	// Feedback holds human-readable suggestions, when the strategy
	// produces any.
	Feedback string

	// Details carries per-factor diagnostics (heuristic sub-scores,
	// semantic similarity).
	Details map[string]float64

	// Assessment is the raw structured assessment from the AI scorer,
	// when present.
	Assessment json.RawMessage
}

// Unavailable is the zero result every strategy returns when it cannot score.
func Unavailable() Result {
	return Result{Available: false}
}

// AIScorer is an external scoring capability. Implementations must degrade to
// an unavailable Result on any network or protocol failure.
type AIScorer interface {
	Evaluate(ctx context.Context, jobText, resumeText string) Result
}

// SimilarityScorer computes a corpus-based similarity between two texts.
type SimilarityScorer interface {
	Evaluate(jobText, resumeText string) Result
}
