package biometric

import "math"

// Point is a 2D coordinate in frame or crop space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance to another point.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// BoundingBox is the top-left and bottom-right corners of a detected face
// in frame space.
type BoundingBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point {
	return Point{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

// LandmarkSet is an ordered sequence of 2D points following the fixed
// 468-point layout produced by the detector backend. Consumers address
// semantic regions through the range constants below and must never rely
// on any other ordering.
type LandmarkSet []Point

// FullLandmarkCount is the size of a complete landmark set.
const FullLandmarkCount = 468

// LandmarkRange identifies a contiguous, inclusive slice of the layout.
type LandmarkRange struct {
	Start int
	End   int
}

// Semantic regions of the landmark layout.
var (
	ContourRange      = LandmarkRange{Start: 0, End: 16}
	NoseRange         = LandmarkRange{Start: 27, End: 36}
	LeftEyeRange      = LandmarkRange{Start: 33, End: 42}
	MouthRange        = LandmarkRange{Start: 61, End: 68}
	RightProfileRange = LandmarkRange{Start: 127, End: 144}
	RightEyeRange     = LandmarkRange{Start: 263, End: 272}
)

// Subset extracts the points covered by r, clipped to the points actually
// present. A set shorter than the range yields a shorter (possibly empty)
// subset instead of indexing out of bounds.
func (l LandmarkSet) Subset(r LandmarkRange) []Point {
	if r.Start >= len(l) || r.Start > r.End {
		return nil
	}
	end := r.End
	if end >= len(l) {
		end = len(l) - 1
	}
	return l[r.Start : end+1]
}

// Clone returns an independent copy of the landmark set.
func (l LandmarkSet) Clone() LandmarkSet {
	out := make(LandmarkSet, len(l))
	copy(out, l)
	return out
}

// MeanPairwiseDistance averages the distance over every unordered pair of
// points. Fewer than two points contribute zero.
func MeanPairwiseDistance(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}
	var sum float64
	var pairs int
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			sum += points[i].Dist(points[j])
			pairs++
		}
	}
	return sum / float64(pairs)
}
