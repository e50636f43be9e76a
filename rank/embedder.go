package rank

import (
	"context"
	"math"
)

// Embedder produces a vector embedding for a piece of text. Implementations
// wrap whatever model the caller runs; the library never embeds text itself.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// blend combines the job and persona embeddings into one query vector using
// the configured weights. The inputs must have equal dimension.
func blend(job, persona []float32, jobWeight, personaWeight float64) []float32 {
	out := make([]float32, len(job))
	for i := range job {
		out[i] = float32(jobWeight)*job[i] + float32(personaWeight)*persona[i]
	}
	return out
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched dimensions or zero vectors score zero.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
