// Package imgdim reads the pixel dimensions and, for texture
// containers, the compression code of an image file by parsing only its
// header. Pixel payloads are never read: every decoder walks the
// minimal prefix its format requires and stops.
//
// The package-level functions use a default engine with every format
// enabled; build a Sniffer with New to restrict the format set.
package imgdim

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Dimension holds the width and height stated by an image header. The
// values come straight from the header fields; zero is reported as is
// when a format permits it.
type Dimension struct {
	Width  int
	Height int
}

// Size reads the dimensions of the image at path. The file is opened
// read-only and closed before returning on every path, including
// errors.
func Size(path string) (Dimension, error) {
	return defaultSniffer.Size(path)
}

// BlobSize reads the dimensions of an in-memory image. The buffer is
// borrowed, never copied or mutated.
func BlobSize(data []byte) (Dimension, error) {
	return defaultSniffer.BlobSize(data)
}

// BlobType identifies the format of an in-memory image, including the
// compression code for texture containers.
func BlobType(data []byte) (ImageType, error) {
	return defaultSniffer.BlobType(data)
}

// ReaderSize reads image dimensions from any seekable source.
func ReaderSize(src io.ReadSeeker) (Dimension, error) {
	return defaultSniffer.ReaderSize(src)
}

// ReaderType identifies the image format of any seekable source.
func ReaderType(src io.ReadSeeker) (ImageType, error) {
	return defaultSniffer.ReaderType(src)
}

// Size reads the dimensions of the image at path using this Sniffer's
// format set.
func (s *Sniffer) Size(path string) (Dimension, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dimension{}, errors.Wrapf(err, "imgdim: open %s", path)
	}
	defer f.Close()
	return s.ReaderSize(f)
}

// BlobSize reads the dimensions of an in-memory image.
func (s *Sniffer) BlobSize(data []byte) (Dimension, error) {
	return s.ReaderSize(bytes.NewReader(data))
}

// BlobType identifies the format of an in-memory image.
func (s *Sniffer) BlobType(data []byte) (ImageType, error) {
	return s.ReaderType(bytes.NewReader(data))
}
