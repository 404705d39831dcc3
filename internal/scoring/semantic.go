package scoring

// Semantic scores a resume by TF-IDF cosine similarity against the job
// description. Its Result carries the similarity in [0, 1], not a 0-100
// score; the combiner rescales it.
type Semantic struct{}

// Evaluate vectorizes exactly two documents and returns their cosine
// similarity. An empty vocabulary after stop-word removal makes the strategy
// unavailable rather than an error.
func (Semantic) Evaluate(jobText, resumeText string) Result {
	vectors, ok := vectorize([]string{jobText, resumeText})
	if !ok {
		return Unavailable()
	}

	sim := cosine(vectors[0], vectors[1])
	if sim < 0 {
		sim = 0
	}
	if sim > 1 {
		sim = 1
	}

	return Result{
		Score:     sim,
		Available: true,
		Details:   map[string]float64{"similarity": sim},
	}
}
