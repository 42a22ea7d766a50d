// Package detector defines the contract with the external face detection
// and landmark localization backend.
package detector

import (
	"context"

	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
)

// Detection is the tagged result of running detection on one frame.
// FaceFound false means the frame had no usable face; the remaining
// fields are only meaningful when it is true.
type Detection struct {
	FaceFound  bool
	Crop       biometric.Crop
	Landmarks  biometric.LandmarkSet
	Box        biometric.BoundingBox
	Confidence float64
}

// Client exposes the subset of backend functionality the pipeline uses.
type Client interface {
	Detect(ctx context.Context, frame []byte) (*Detection, error)
}
