package match

import (
	"errors"
	"testing"

	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
)

func entry(id string, emb biometric.Embedding) Entry {
	return Entry{IdentityID: id, Template: biometric.Template{Embedding: emb}}
}

func TestEmptyGalleryNoMatch(t *testing.T) {
	engine := NewEngine(Config{Threshold: 0.5})

	result, err := engine.Match(biometric.Embedding{1, 0, 0}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Matched {
		t.Fatal("expected no match against empty gallery")
	}
	if result.Score != 0 {
		t.Fatalf("expected score 0, got %f", result.Score)
	}
	if result.IdentityID != "" {
		t.Fatalf("expected empty identity, got %q", result.IdentityID)
	}
}

func TestExactMatchAtUnitVector(t *testing.T) {
	// A == B == unit vector with 1.0 at index 0.
	probe := biometric.Embedding{1, 0, 0, 0}
	gallery := Gallery{entry("alice", biometric.Embedding{1, 0, 0, 0})}

	engine := NewEngine(Config{Threshold: 0.65})
	result, err := engine.Match(probe, gallery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Matched {
		t.Fatal("expected match")
	}
	if result.IdentityID != "alice" {
		t.Fatalf("expected alice, got %q", result.IdentityID)
	}
	if result.Score != 1.0 {
		t.Fatalf("expected similarity 1.0, got %f", result.Score)
	}
}

func TestScoreAtThresholdMatches(t *testing.T) {
	probe := biometric.Embedding{1, 0}
	gallery := Gallery{entry("bob", biometric.Embedding{1, 0})}

	// Similarity is exactly 1.0; threshold 1.0 must still match (>=).
	engine := NewEngine(Config{Threshold: 1.0})
	result, err := engine.Match(probe, gallery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Matched {
		t.Fatal("expected score equal to threshold to match")
	}
}

func TestBestOfSeveral(t *testing.T) {
	probe := biometric.Embedding{1, 0}
	gallery := Gallery{
		entry("far", biometric.Embedding{0, 1}),
		entry("close", biometric.Embedding{0.9, 0.1}),
		entry("mid", biometric.Embedding{0.5, 0.5}),
	}

	engine := NewEngine(Config{Threshold: 0.38})
	result, err := engine.Match(probe, gallery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IdentityID != "close" {
		t.Fatalf("expected close, got %q", result.IdentityID)
	}
}

func TestTieKeepsFirstSeen(t *testing.T) {
	probe := biometric.Embedding{1, 0}
	same := biometric.Embedding{1, 0}
	gallery := Gallery{entry("first", same), entry("second", same)}

	engine := NewEngine(Config{Threshold: 0.5})
	result, err := engine.Match(probe, gallery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IdentityID != "first" {
		t.Fatalf("expected first-seen entry to win the tie, got %q", result.IdentityID)
	}
}

func TestBelowThresholdReportsNone(t *testing.T) {
	probe := biometric.Embedding{1, 0}
	gallery := Gallery{entry("ortho", biometric.Embedding{0, 1})}

	engine := NewEngine(Config{Threshold: 0.65})
	result, err := engine.Match(probe, gallery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Matched {
		t.Fatal("expected no match below threshold")
	}
	if result.IdentityID != "" {
		t.Fatalf("expected no identity, got %q", result.IdentityID)
	}
}

func TestDimensionMismatchFailsFast(t *testing.T) {
	probe := biometric.Embedding{1, 0, 0}
	gallery := Gallery{entry("bad", biometric.Embedding{1, 0})}

	engine := NewEngine(Config{Threshold: 0.5})
	_, err := engine.Match(probe, gallery)
	if !errors.Is(err, biometric.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}
