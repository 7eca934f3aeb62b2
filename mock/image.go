package mock

import "curator"

var _ curator.ImageProcessor = (*ImageProcessor)(nil)

// ImageProcessor is a mock implementation of curator.ImageProcessor.
type ImageProcessor struct {
	CropCenterFn func(src, dst string, w, h int) error
	FillFn       func(src, dst string, size int) error
}

func (p *ImageProcessor) CropCenter(src, dst string, w, h int) error {
	return p.CropCenterFn(src, dst, w, h)
}

func (p *ImageProcessor) Fill(src, dst string, size int) error {
	return p.FillFn(src, dst, size)
}
