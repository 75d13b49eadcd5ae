package imgdim

import (
	"io"

	"github.com/pkg/errors"
)

// Sentinel errors returned by every query. Wrapped errors keep these as
// their cause, so callers can test with errors.Is.
var (
	// ErrUnsupportedFormat means no signature matched the source, or the
	// matching format was excluded from the Sniffer's format set.
	ErrUnsupportedFormat = errors.New("imgdim: unsupported image format")

	// ErrCorruptedImage means a signature matched but the declared
	// internal structure is inconsistent with the source's bounds.
	ErrCorruptedImage = errors.New("imgdim: corrupted image")

	// ErrInsufficientData means the source ended before a required read
	// completed.
	ErrInsufficientData = errors.New("imgdim: insufficient data")
)

// eofErr translates reader EOFs into ErrInsufficientData. Other I/O
// failures pass through untouched so callers still see the real cause.
func eofErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrInsufficientData
	}
	return err
}

func corruptf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorruptedImage, format, args...)
}
