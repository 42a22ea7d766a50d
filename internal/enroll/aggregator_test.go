package enroll

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
	"github.com/zainabhax0r-dev/facescan-pro/internal/liveness"
)

var live = liveness.Verdict{Live: true, Score: 0.8}

func TestIdenticalSamplesYieldSameTemplate(t *testing.T) {
	cfg := Config{TargetSamples: 5, MinConfidence: 0.8}
	agg := NewAggregator(cfg)

	base := biometric.Embedding{0.25, 0.5, 0.25}
	for i := 0; i < cfg.TargetSamples; i++ {
		accepted, complete := agg.Add(base, live, 0.9)
		if !accepted {
			t.Fatalf("sample %d unexpectedly rejected", i)
		}
		if complete != (i == cfg.TargetSamples-1) {
			t.Fatalf("unexpected completion at sample %d", i)
		}
	}

	tpl, err := agg.Template(time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(base, tpl.Embedding, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("unexpected template embedding (-want +got):\n%s", diff)
	}
	if tpl.LivenessScore != live.Score {
		t.Fatalf("expected liveness score %f, got %f", live.Score, tpl.LivenessScore)
	}
}

func TestRejectsNotLiveSamples(t *testing.T) {
	agg := NewAggregator(Config{TargetSamples: 3, MinConfidence: 0.8})

	accepted, _ := agg.Add(biometric.Embedding{1, 0}, liveness.Verdict{Live: false, Score: 0.4}, 0.95)
	if accepted {
		t.Fatal("expected not-live sample to be rejected")
	}
	if agg.Count() != 0 {
		t.Fatalf("expected empty accumulation, got %d", agg.Count())
	}
}

func TestRejectsLowConfidenceSamples(t *testing.T) {
	agg := NewAggregator(Config{TargetSamples: 3, MinConfidence: 0.8})

	accepted, _ := agg.Add(biometric.Embedding{1, 0}, live, 0.5)
	if accepted {
		t.Fatal("expected low confidence sample to be rejected")
	}
}

func TestTemplateBeforeCompletion(t *testing.T) {
	agg := NewAggregator(Config{TargetSamples: 3, MinConfidence: 0.8})
	agg.Add(biometric.Embedding{1, 0}, live, 0.9)

	_, err := agg.Template(time.Now())
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
}

func TestAddStopsAcceptingWhenComplete(t *testing.T) {
	agg := NewAggregator(Config{TargetSamples: 2, MinConfidence: 0.8})
	agg.Add(biometric.Embedding{1, 0}, live, 0.9)
	agg.Add(biometric.Embedding{1, 0}, live, 0.9)

	accepted, complete := agg.Add(biometric.Embedding{0, 1}, live, 0.9)
	if accepted {
		t.Fatal("expected extra sample to be rejected after completion")
	}
	if !complete {
		t.Fatal("expected completion to be reported")
	}
	if agg.Count() != 2 {
		t.Fatalf("expected 2 samples, got %d", agg.Count())
	}
}

func TestDiscardDropsAccumulation(t *testing.T) {
	agg := NewAggregator(Config{TargetSamples: 2, MinConfidence: 0.8})
	agg.Add(biometric.Embedding{1, 0}, live, 0.9)
	agg.ObserveLandmarks(biometric.LandmarkSet{{X: 1, Y: 2}})

	agg.Discard()
	if agg.Count() != 0 {
		t.Fatalf("expected no samples after discard, got %d", agg.Count())
	}
	if agg.Complete() {
		t.Fatal("expected aggregator to be incomplete after discard")
	}
}

func TestMeanOfDistinctSamplesNotRenormalized(t *testing.T) {
	agg := NewAggregator(Config{TargetSamples: 2, MinConfidence: 0.8})
	agg.Add(biometric.Embedding{1, 0}, live, 0.9)
	agg.Add(biometric.Embedding{0, 1}, live, 0.9)

	tpl, err := agg.Template(time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := biometric.Embedding{0.5, 0.5}
	if diff := cmp.Diff(want, tpl.Embedding, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("unexpected mean (-want +got):\n%s", diff)
	}
}
