package imgdim

import "math"

func matchPnm(header []byte, _ *reader) (ImageType, bool) {
	if header[0] != 'P' || header[1] < '1' || header[1] > '6' {
		return ImageType{}, false
	}
	return ImageType{Format: FormatPnm}, true
}

// The two integers after the P1-P6 magic are the dimensions, separated
// by whitespace and optional #-comment lines.
func sizePnm(r *reader) (Dimension, error) {
	if err := r.seek(2); err != nil {
		return Dimension{}, err
	}
	w, err := pnmInt(r)
	if err != nil {
		return Dimension{}, err
	}
	h, err := pnmInt(r)
	if err != nil {
		return Dimension{}, err
	}
	return Dimension{Width: w, Height: h}, nil
}

func pnmInt(r *reader) (int, error) {
	for {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		switch {
		case b == '#':
			for {
				c, err := r.readByte()
				if err != nil {
					return 0, err
				}
				if c == '\n' {
					break
				}
			}
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			// separator
		case b >= '0' && b <= '9':
			v := int64(b - '0')
			for {
				c, err := r.readByte()
				if err == ErrInsufficientData {
					return int(v), nil
				}
				if err != nil {
					return 0, err
				}
				if c < '0' || c > '9' {
					return int(v), nil
				}
				v = v*10 + int64(c-'0')
				if v > math.MaxInt32 {
					return 0, corruptf("pnm: dimension out of range")
				}
			}
		default:
			return 0, corruptf("pnm: unexpected byte %#x in header", b)
		}
	}
}
