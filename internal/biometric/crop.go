package biometric

// CropSize is the fixed canvas edge length the detector resizes face crops
// to before handing them to the pipeline.
const CropSize = 128

// Crop is a face image resized to a fixed canvas, stored as packed RGB
// bytes in row-major order.
type Crop struct {
	Width  int
	Height int
	Pix    []uint8 // len = Width*Height*3
}

// Gray converts the crop to per-pixel grayscale intensities in the 0-255
// range using the ITU-R 601 luma weights.
func (c Crop) Gray() []float64 {
	n := c.Width * c.Height
	if n <= 0 || len(c.Pix) < n*3 {
		return nil
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		r := float64(c.Pix[i*3])
		g := float64(c.Pix[i*3+1])
		b := float64(c.Pix[i*3+2])
		out[i] = 0.299*r + 0.587*g + 0.114*b
	}
	return out
}
