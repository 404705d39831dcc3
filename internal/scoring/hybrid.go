package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
)

// Blend weights used when heuristic and semantic scores combine.
const (
	heuristicBlendWeight = 0.6
	semanticBlendWeight  = 0.4
)

// Evaluation is the pipeline's final output: one score with feedback, a
// per-strategy breakdown, and the method that produced it.
type Evaluation struct {
	Score      float64            `json:"score"`
	Feedback   string             `json:"feedback"`
	Breakdown  map[string]float64 `json:"breakdown"`
	Method     Method             `json:"method"`
	Assessment json.RawMessage    `json:"assessment,omitempty"`
}

// Hybrid combines the scoring strategies with a strict priority policy: a
// successful AI score is adopted verbatim; otherwise the heuristic score is
// blended with the semantic similarity when the latter is available.
type Hybrid struct {
	AI        AIScorer
	Heuristic Heuristic
	Semantic  SimilarityScorer
}

// NewHybrid wires the combiner. ai may be nil when no AI scorer is
// configured.
func NewHybrid(ai AIScorer) *Hybrid {
	return &Hybrid{AI: ai, Semantic: Semantic{}}
}

// Evaluate runs the strategies in priority order and merges their results.
// It never fails: the heuristic scorer is always available as the floor.
func (h *Hybrid) Evaluate(ctx context.Context, resumeText, jobText string) Evaluation {
	if h.AI != nil {
		if ai := h.AI.Evaluate(ctx, jobText, resumeText); ai.Available {
			return Evaluation{
				Score:      ai.Score,
				Feedback:   ai.Feedback,
				Breakdown:  map[string]float64{"grok": ai.Score},
				Method:     MethodGrok,
				Assessment: ai.Assessment,
			}
		}
	}

	heuristic := h.Heuristic.Evaluate(resumeText, jobText)
	breakdown := map[string]float64{"heuristic": heuristic.Score}

	semantic := Unavailable()
	if h.Semantic != nil {
		semantic = h.Semantic.Evaluate(jobText, resumeText)
	}
	if !semantic.Available {
		return Evaluation{
			Score:     heuristic.Score,
			Feedback:  heuristic.Feedback,
			Breakdown: breakdown,
			Method:    MethodHeuristic,
		}
	}

	similarity := semantic.Score * 100.0
	breakdown["semantic"] = similarity

	blended := heuristicBlendWeight*heuristic.Score + semanticBlendWeight*similarity
	blended = math.Max(0, math.Min(100, blended))
	blended = math.Round(blended*100) / 100

	return Evaluation{
		Score:     blended,
		Feedback:  heuristic.Feedback + fmt.Sprintf("\nSemantic similarity: %.1f%%", similarity),
		Breakdown: breakdown,
		Method:    MethodHybrid,
	}
}
