// Package feature turns a localized face crop and its landmarks into the
// fixed-length embedding the rest of the pipeline works with. Extraction
// is pure: the same pixels and landmarks always produce the same vector.
package feature

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
)

// Block layout of the embedding. The four blocks are concatenated in this
// order and together must add up to biometric.Dimension.
const (
	HistogramBins    = 32 // per color channel
	TextureSlices    = 64
	GeometryFeatures = 32
	EdgeGrid         = 8 // EdgeGrid x EdgeGrid cells

	histogramLen = 3 * HistogramBins
	edgeLen      = EdgeGrid * EdgeGrid
)

// landmarkScale divides raw landmark coordinates so geometry features stay
// in the same numeric range as the crop-derived blocks.
const landmarkScale = float64(biometric.CropSize)

// geometry subsets in the order their distance features appear.
var geometrySubsets = []biometric.LandmarkRange{
	biometric.LeftEyeRange,
	biometric.RightEyeRange,
	biometric.MouthRange,
	biometric.ContourRange,
	biometric.NoseRange,
}

// Extract computes the L2-normalized embedding for a face crop and its
// landmark set. Landmark sets shorter than a subset expects contribute
// zeros for that subset instead of failing.
func Extract(crop biometric.Crop, landmarks biometric.LandmarkSet) biometric.Embedding {
	gray := crop.Gray()

	out := make(biometric.Embedding, 0, biometric.Dimension)
	out = append(out, colorHistogram(crop)...)
	out = append(out, textureSlices(gray)...)
	out = append(out, landmarkGeometry(landmarks)...)
	out = append(out, edgeGrid(gray, crop.Width, crop.Height)...)

	out.Normalize()
	return out
}

// colorHistogram bins each RGB channel into HistogramBins buckets of width
// 8 and normalizes the counts by the total pixel count.
func colorHistogram(crop biometric.Crop) []float64 {
	hist := make([]float64, histogramLen)
	n := crop.Width * crop.Height
	if n <= 0 || len(crop.Pix) < n*3 {
		return hist
	}

	for i := 0; i < n; i++ {
		for ch := 0; ch < 3; ch++ {
			bin := int(crop.Pix[i*3+ch]) / 8
			hist[ch*HistogramBins+bin]++
		}
	}
	for i := range hist {
		hist[i] /= float64(n)
	}
	return hist
}

// textureSlices splits the flattened grayscale buffer into TextureSlices
// contiguous sections and reports the mean intensity of each.
func textureSlices(gray []float64) []float64 {
	out := make([]float64, TextureSlices)
	if len(gray) == 0 {
		return out
	}

	sliceLen := len(gray) / TextureSlices
	if sliceLen == 0 {
		sliceLen = 1
	}
	for i := 0; i < TextureSlices; i++ {
		start := i * sliceLen
		if start >= len(gray) {
			break
		}
		end := start + sliceLen
		if i == TextureSlices-1 || end > len(gray) {
			end = len(gray)
		}
		out[i] = stat.Mean(gray[start:end], nil)
	}
	return out
}

// landmarkGeometry emits five mean pairwise distance scalars over the named
// subsets, then raw scaled (x, y) coordinates from the start of the set
// until the block is full, zero-padding whatever remains.
func landmarkGeometry(landmarks biometric.LandmarkSet) []float64 {
	out := make([]float64, 0, GeometryFeatures)
	for _, r := range geometrySubsets {
		out = append(out, biometric.MeanPairwiseDistance(landmarks.Subset(r)))
	}

	for _, p := range landmarks {
		if len(out) >= GeometryFeatures {
			break
		}
		out = append(out, p.X/landmarkScale)
		if len(out) >= GeometryFeatures {
			break
		}
		out = append(out, p.Y/landmarkScale)
	}
	for len(out) < GeometryFeatures {
		out = append(out, 0)
	}
	return out[:GeometryFeatures]
}

// edgeGrid divides the crop into an EdgeGrid x EdgeGrid spatial grid and
// averages the forward-difference gradient magnitude per cell.
func edgeGrid(gray []float64, width, height int) []float64 {
	sums := make([]float64, edgeLen)
	counts := make([]float64, edgeLen)
	if width < 2 || height < 2 || len(gray) < width*height {
		return sums
	}

	for y := 0; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			i := y*width + x
			gx := gray[i+1] - gray[i]
			gy := gray[i+width] - gray[i]
			mag := math.Sqrt(gx*gx + gy*gy)

			cell := (y*EdgeGrid/height)*EdgeGrid + x*EdgeGrid/width
			sums[cell] += mag
			counts[cell]++
		}
	}
	for i := range sums {
		if counts[i] > 0 {
			sums[i] /= counts[i]
		}
	}
	return sums
}
