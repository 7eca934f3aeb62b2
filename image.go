package curator

// Derived cover image dimensions.
const (
	CoverCropWidth  = 505
	CoverCropHeight = 295
	CoverSquareSize = 276
)

// ImageProcessor derives cover image variants. Both operations return
// ENOTFOUND if the source image is absent so batch callers can warn and
// continue.
type ImageProcessor interface {
	// CropCenter writes a center-cropped w×h variant of src to dst.
	CropCenter(src, dst string, w, h int) error

	// Fill writes a size×size variant of src to dst by resizing to cover
	// the square and center-cropping the excess.
	Fill(src, dst string, size int) error
}
