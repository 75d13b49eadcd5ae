package imgdim

import "io"

// readBoxHeader reads an ISOBMFF-style box header: a big-endian 32-bit
// size followed by a four-byte type. The size includes the 8 header
// bytes themselves.
func readBoxHeader(r *reader) (tag string, size uint32, err error) {
	size, err = r.u32be()
	if err != nil {
		return "", 0, err
	}
	var t [4]byte
	if err := r.readFull(t[:]); err != nil {
		return "", 0, err
	}
	return string(t[:]), size, nil
}

// findBox skips boxes at the cursor until one with the wanted type is
// found, returning its declared size with the cursor at its payload. A
// declared size that is too small for its own header, or that would
// carry the cursor past the end of the source, is a structural error.
func findBox(r *reader, want string) (uint32, error) {
	end, err := r.length()
	if err != nil {
		return 0, err
	}
	for {
		tag, size, err := readBoxHeader(r)
		if err != nil {
			return 0, err
		}
		if tag == want {
			return size, nil
		}
		if size < 8 {
			return 0, corruptf("box %q declares size %d", tag, size)
		}
		cur, err := r.offset()
		if err != nil {
			return 0, err
		}
		if cur+int64(size)-8 > end {
			return 0, corruptf("box %q of %d bytes runs past end of file", tag, size)
		}
		if err := r.skip(int64(size) - 8); err != nil {
			return 0, err
		}
	}
}

// lsbBitReader reads bit fields least-significant-bit first, the
// packing used by the VP8L and JPEG XL headers.
type lsbBitReader struct {
	src  io.ByteReader
	bits uint64
	n    uint
}

func (b *lsbBitReader) read(n uint) (uint32, error) {
	for b.n < n {
		c, err := b.src.ReadByte()
		if err != nil {
			return 0, eofErr(err)
		}
		b.bits |= uint64(c) << b.n
		b.n += 8
	}
	v := uint32(b.bits & (1<<n - 1))
	b.bits >>= n
	b.n -= n
	return v, nil
}

// byteReader adapts a plain io.Reader (a RIFF chunk body) to
// io.ByteReader for bit-level parsing.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		return 0, err
	}
	return b.buf[0], nil
}

// ReadByte makes *reader usable as an io.ByteReader for bit parsing.
func (r *reader) ReadByte() (byte, error) {
	return r.readByte()
}
