package icons

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	errorOpenImageFormat = "opening base image %s: %w"
	errorSaveImageFormat = "saving %s: %w"
)

// Frame is one square rendition of the base image.
type Frame struct {
	Size  int
	Image image.Image
}

// LoadImage decodes the base image, honouring EXIF orientation.
// PNG, JPEG, GIF, TIFF, BMP and WebP inputs are accepted.
func LoadImage(path string) (image.Image, error) {
	decoded, openError := imaging.Open(path, imaging.AutoOrientation(true))
	if openError != nil {
		return nil, fmt.Errorf(errorOpenImageFormat, path, openError)
	}
	return decoded, nil
}

// Resize scales source to a size×size square using the Lanczos filter.
func Resize(source image.Image, size int) *image.NRGBA {
	return imaging.Resize(source, size, size, imaging.Lanczos)
}

// Frames resizes source once per requested size, preserving order.
func Frames(source image.Image, sizes []int) []Frame {
	frames := make([]Frame, 0, len(sizes))
	for _, size := range sizes {
		frames = append(frames, Frame{Size: size, Image: Resize(source, size)})
	}
	return frames
}

// SavePNG writes img as a PNG file at path.
func SavePNG(img image.Image, path string) error {
	if saveError := imaging.Save(img, path); saveError != nil {
		return fmt.Errorf(errorSaveImageFormat, path, saveError)
	}
	return nil
}

func encodePNG(writer io.Writer, img image.Image) error {
	return imaging.Encode(writer, img, imaging.PNG)
}
