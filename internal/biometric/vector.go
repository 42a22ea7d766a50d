// Package biometric holds the shared numeric types of the recognition
// pipeline: embeddings, landmarks, face crops and templates.
package biometric

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Dimension is the fixed embedding length used across the whole system.
// Gallery templates and live embeddings must all have this dimension.
const Dimension = 256

// ErrDimensionMismatch is returned when two embeddings of unequal length
// are compared. This is a contract violation, never silently truncated.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// Embedding is a fixed-length face signature vector.
type Embedding []float64

// Clone returns an independent copy of the embedding.
func (e Embedding) Clone() Embedding {
	out := make(Embedding, len(e))
	copy(out, e)
	return out
}

// Normalize scales the embedding to unit L2 length in place. A zero vector
// is left untouched so callers never divide by zero.
func (e Embedding) Normalize() {
	norm := floats.Norm(e, 2)
	if norm == 0 {
		return
	}
	floats.Scale(1/norm, e)
}

// Cosine computes the cosine similarity between two embeddings, clamped to
// [-1, 1]. If either vector has zero magnitude the similarity is 0. Unequal
// lengths fail with ErrDimensionMismatch.
func Cosine(a, b Embedding) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	sim := floats.Dot(a, b) / (normA * normB)
	if sim > 1 {
		sim = 1
	}
	if sim < -1 {
		sim = -1
	}
	return sim, nil
}

// Mean reduces a set of equal-length embeddings to their component-wise
// arithmetic mean. The result is deliberately not re-normalized: averaging
// unit vectors can shrink the magnitude slightly, and matching is cosine
// based so direction is what matters.
func Mean(embeddings []Embedding) (Embedding, error) {
	if len(embeddings) == 0 {
		return nil, errors.New("no embeddings to average")
	}

	dim := len(embeddings[0])
	out := make(Embedding, dim)
	for _, e := range embeddings {
		if len(e) != dim {
			return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(e), dim)
		}
		floats.Add(out, e)
	}
	floats.Scale(1/float64(len(embeddings)), out)
	return out, nil
}
