package imgdim

import (
	"io"
)

// reader is the bounded-read layer every decoder goes through. It wraps
// a seekable byte source (an *os.File or a *bytes.Reader over a caller
// buffer) and offers exact-length reads plus fixed-width integer
// decoding in both byte orders. EOF at any depth surfaces as
// ErrInsufficientData; no decoder does its own byte arithmetic on
// partially-read buffers.
//
// The total length is queried lazily, and only by walkers that need to
// bound a declared chunk length against the remaining bytes.
type reader struct {
	src  io.ReadSeeker
	size int64 // total source length, -1 until queried
	buf  [8]byte
}

func newReader(src io.ReadSeeker) *reader {
	return &reader{src: src, size: -1}
}

func (r *reader) readFull(p []byte) error {
	if _, err := io.ReadFull(r.src, p); err != nil {
		return eofErr(err)
	}
	return nil
}

func (r *reader) readByte() (byte, error) {
	if err := r.readFull(r.buf[:1]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// seek repositions to an absolute offset. If the total length is
// already known, an offset past the end fails with ErrInsufficientData
// rather than succeeding and failing on the next read.
func (r *reader) seek(offset int64) error {
	if r.size >= 0 && offset > r.size {
		return ErrInsufficientData
	}
	if _, err := r.src.Seek(offset, io.SeekStart); err != nil {
		return eofErr(err)
	}
	return nil
}

// skip advances the cursor by n bytes without reading them.
func (r *reader) skip(n int64) error {
	if _, err := r.src.Seek(n, io.SeekCurrent); err != nil {
		return eofErr(err)
	}
	return nil
}

func (r *reader) offset() (int64, error) {
	return r.src.Seek(0, io.SeekCurrent)
}

// length reports the total source length, querying it on first use.
func (r *reader) length() (int64, error) {
	if r.size >= 0 {
		return r.size, nil
	}
	cur, err := r.src.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := r.src.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := r.src.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	r.size = end
	return end, nil
}

func (r *reader) u16le() (uint16, error) {
	if err := r.readFull(r.buf[:2]); err != nil {
		return 0, err
	}
	return uint16(r.buf[0]) | uint16(r.buf[1])<<8, nil
}

func (r *reader) u16be() (uint16, error) {
	if err := r.readFull(r.buf[:2]); err != nil {
		return 0, err
	}
	return uint16(r.buf[0])<<8 | uint16(r.buf[1]), nil
}

func (r *reader) u24le() (uint32, error) {
	if err := r.readFull(r.buf[:3]); err != nil {
		return 0, err
	}
	return uint32(r.buf[0]) | uint32(r.buf[1])<<8 | uint32(r.buf[2])<<16, nil
}

func (r *reader) u32le() (uint32, error) {
	if err := r.readFull(r.buf[:4]); err != nil {
		return 0, err
	}
	return uint32(r.buf[0]) | uint32(r.buf[1])<<8 |
		uint32(r.buf[2])<<16 | uint32(r.buf[3])<<24, nil
}

func (r *reader) u32be() (uint32, error) {
	if err := r.readFull(r.buf[:4]); err != nil {
		return 0, err
	}
	return uint32(r.buf[0])<<24 | uint32(r.buf[1])<<16 |
		uint32(r.buf[2])<<8 | uint32(r.buf[3]), nil
}

func (r *reader) u64le() (uint64, error) {
	if err := r.readFull(r.buf[:8]); err != nil {
		return 0, err
	}
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(r.buf[i])
	}
	return v, nil
}

func (r *reader) u64be() (uint64, error) {
	if err := r.readFull(r.buf[:8]); err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(r.buf[i])
	}
	return v, nil
}

// readLine reads one \n-terminated line of at most max bytes, without
// the terminator. Textual headers (HDR) use this; a line running past
// the cap means the header is not what we think it is.
func (r *reader) readLine(max int) (string, error) {
	line := make([]byte, 0, 32)
	for len(line) < max {
		b, err := r.readByte()
		if err != nil {
			if len(line) > 0 && err == ErrInsufficientData {
				return string(line), nil
			}
			return "", err
		}
		if b == '\n' {
			return string(line), nil
		}
		line = append(line, b)
	}
	return "", corruptf("header line longer than %d bytes", max)
}

// readCString reads a NUL-terminated string of at most max bytes,
// without the terminator.
func (r *reader) readCString(max int) (string, error) {
	s := make([]byte, 0, 16)
	for len(s) < max {
		b, err := r.readByte()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return string(s), nil
		}
		s = append(s, b)
	}
	return "", corruptf("unterminated string in header")
}
