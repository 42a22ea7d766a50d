package biometric

import (
	"math"
	"testing"
)

func TestSubsetClipsShortSet(t *testing.T) {
	lm := make(LandmarkSet, 30)

	nose := lm.Subset(NoseRange) // 27-36, only 27-29 present
	if len(nose) != 3 {
		t.Fatalf("expected 3 clipped points, got %d", len(nose))
	}

	rightEye := lm.Subset(RightEyeRange) // entirely out of range
	if rightEye != nil {
		t.Fatalf("expected nil subset, got %d points", len(rightEye))
	}
}

func TestSubsetFullSet(t *testing.T) {
	lm := make(LandmarkSet, FullLandmarkCount)

	if got := len(lm.Subset(ContourRange)); got != 17 {
		t.Fatalf("expected 17 contour points, got %d", got)
	}
	if got := len(lm.Subset(LeftEyeRange)); got != 10 {
		t.Fatalf("expected 10 left eye points, got %d", got)
	}
	if got := len(lm.Subset(RightEyeRange)); got != 10 {
		t.Fatalf("expected 10 right eye points, got %d", got)
	}
}

func TestMeanPairwiseDistance(t *testing.T) {
	// Unit right triangle: distances 1, 1, sqrt(2).
	points := []Point{{0, 0}, {1, 0}, {0, 1}}

	got := MeanPairwiseDistance(points)
	want := (1 + 1 + math.Sqrt2) / 3
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %f, got %f", want, got)
	}
}

func TestMeanPairwiseDistanceDegenerate(t *testing.T) {
	if got := MeanPairwiseDistance(nil); got != 0 {
		t.Fatalf("expected 0 for empty set, got %f", got)
	}
	if got := MeanPairwiseDistance([]Point{{1, 1}}); got != 0 {
		t.Fatalf("expected 0 for single point, got %f", got)
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	b := BoundingBox{X1: 10, Y1: 20, X2: 30, Y2: 60}
	c := b.Center()
	if c.X != 20 || c.Y != 40 {
		t.Fatalf("unexpected center: %+v", c)
	}
}
