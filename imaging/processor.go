// Package imaging derives cover-image variants using the imaging library.
package imaging

import (
	"image"
	"os"

	"github.com/disintegration/imaging"

	"curator"
)

// Ensure Processor implements curator.ImageProcessor at compile time.
var _ curator.ImageProcessor = (*Processor)(nil)

// Processor derives cover image variants on disk.
type Processor struct{}

// NewProcessor creates a new Processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// CropCenter writes a center-cropped w×h variant of src to dst.
func (p *Processor) CropCenter(src, dst string, w, h int) error {
	img, err := open(src)
	if err != nil {
		return err
	}

	cropped := imaging.CropCenter(img, w, h)
	if err := imaging.Save(cropped, dst); err != nil {
		return curator.Errorf(curator.EINTERNAL, "failed to save %q: %v", dst, err)
	}
	return nil
}

// Fill writes a size×size variant of src to dst by resizing to cover the
// square and center-cropping the excess.
func (p *Processor) Fill(src, dst string, size int) error {
	img, err := open(src)
	if err != nil {
		return err
	}

	filled := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)
	if err := imaging.Save(filled, dst); err != nil {
		return curator.Errorf(curator.EINTERNAL, "failed to save %q: %v", dst, err)
	}
	return nil
}

func open(src string) (image.Image, error) {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil, curator.Errorf(curator.ENOTFOUND, "cover image %q not found", src)
	}

	img, err := imaging.Open(src)
	if err != nil {
		return nil, curator.Errorf(curator.EINVALID, "failed to decode %q: %v", src, err)
	}
	return img, nil
}
