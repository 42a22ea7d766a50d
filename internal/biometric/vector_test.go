package biometric

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCosineIdentical(t *testing.T) {
	v := Embedding{0.5, -0.25, 0.8, 0.1}

	sim, err := Cosine(v, v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sim-1) > 1e-9 {
		t.Fatalf("expected similarity 1, got %f", sim)
	}
}

func TestCosineOpposite(t *testing.T) {
	v := Embedding{0.5, -0.25, 0.8, 0.1}
	neg := make(Embedding, len(v))
	for i, x := range v {
		neg[i] = -x
	}

	sim, err := Cosine(v, neg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sim+1) > 1e-9 {
		t.Fatalf("expected similarity -1, got %f", sim)
	}
}

func TestCosineOrthogonal(t *testing.T) {
	a := Embedding{1, 0, 0, 0}
	b := Embedding{0, 1, 0, 0}

	sim, err := Cosine(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sim) > 1e-9 {
		t.Fatalf("expected similarity 0, got %f", sim)
	}
}

func TestCosineZeroMagnitude(t *testing.T) {
	a := Embedding{0, 0, 0}
	b := Embedding{1, 2, 3}

	sim, err := Cosine(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim != 0 {
		t.Fatalf("expected similarity 0 for zero vector, got %f", sim)
	}
}

func TestCosineDimensionMismatch(t *testing.T) {
	_, err := Cosine(Embedding{1, 2}, Embedding{1, 2, 3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	v := Embedding{3, 4}
	v.Normalize()

	want := Embedding{0.6, 0.8}
	if diff := cmp.Diff(want, v, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("unexpected normalized vector (-want +got):\n%s", diff)
	}
}

func TestNormalizeZeroVectorUnchanged(t *testing.T) {
	v := Embedding{0, 0, 0}
	v.Normalize()

	for i, x := range v {
		if x != 0 {
			t.Fatalf("expected zero vector to stay zero, index %d = %f", i, x)
		}
	}
}

func TestMeanOfIdenticalEmbeddings(t *testing.T) {
	base := Embedding{0.1, 0.2, 0.3}
	set := []Embedding{base.Clone(), base.Clone(), base.Clone()}

	mean, err := Mean(set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(base, mean, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("unexpected mean (-want +got):\n%s", diff)
	}
}

func TestMeanNotRenormalized(t *testing.T) {
	// Two unit vectors at an angle average to a shorter vector. That
	// magnitude is kept as-is.
	set := []Embedding{{1, 0}, {0, 1}}

	mean, err := Mean(set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Embedding{0.5, 0.5}
	if diff := cmp.Diff(want, mean, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("unexpected mean (-want +got):\n%s", diff)
	}
}

func TestMeanDimensionMismatch(t *testing.T) {
	_, err := Mean([]Embedding{{1, 2}, {1, 2, 3}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}
