package imgdim

import "bytes"

// JPEG XL files come in two shapes: a bare codestream starting with
// FF 0A, or an ISOBMFF container whose jxlc (or first jxlp) box wraps
// the codestream.

var jxlContainerSignature = []byte{
	0x00, 0x00, 0x00, 0x0C, 'J', 'X', 'L', ' ', 0x0D, 0x0A, 0x87, 0x0A,
}

func matchJxl(header []byte, _ *reader) (ImageType, bool) {
	if header[0] == 0xFF && header[1] == 0x0A {
		return ImageType{Format: FormatJxl}, true
	}
	if bytes.Equal(header[:12], jxlContainerSignature) {
		return ImageType{Format: FormatJxl}, true
	}
	return ImageType{}, false
}

func sizeJxl(r *reader) (Dimension, error) {
	if err := r.seek(0); err != nil {
		return Dimension{}, err
	}
	var sig [2]byte
	if err := r.readFull(sig[:]); err != nil {
		return Dimension{}, err
	}
	if sig[0] == 0xFF && sig[1] == 0x0A {
		return jxlSizeHeader(&lsbBitReader{src: r})
	}
	// Container: walk boxes to the codestream.
	if err := r.seek(12); err != nil {
		return Dimension{}, err
	}
	end, err := r.length()
	if err != nil {
		return Dimension{}, err
	}
	for {
		tag, size, err := readBoxHeader(r)
		if err != nil {
			return Dimension{}, err
		}
		payload := int64(size) - 8
		if size == 1 {
			// 64-bit extended size follows the compact header.
			big, err := r.u64be()
			if err != nil {
				return Dimension{}, err
			}
			if big < 16 {
				return Dimension{}, corruptf("jxl: extended box size %d", big)
			}
			payload = int64(big) - 16
		} else if size == 0 {
			// Box extends to the end of the file.
			payload = -1
		} else if size < 8 {
			return Dimension{}, corruptf("jxl: box %q size %d", tag, size)
		}

		switch tag {
		case "jxlc", "jxlp":
			if tag == "jxlp" {
				// Partial codestream boxes start with a 4-byte index;
				// the first one carries the codestream head.
				if _, err := r.u32be(); err != nil {
					return Dimension{}, err
				}
			}
			if err := r.readFull(sig[:]); err != nil {
				return Dimension{}, err
			}
			if sig[0] != 0xFF || sig[1] != 0x0A {
				return Dimension{}, corruptf("jxl: box %q does not hold a codestream", tag)
			}
			return jxlSizeHeader(&lsbBitReader{src: r})
		}
		if payload < 0 {
			return Dimension{}, corruptf("jxl: no codestream box")
		}
		cur, err := r.offset()
		if err != nil {
			return Dimension{}, err
		}
		if cur+payload > end {
			return Dimension{}, corruptf("jxl: box %q of %d bytes runs past end of file", tag, size)
		}
		if err := r.skip(payload); err != nil {
			return Dimension{}, err
		}
	}
}

// jxlSizeHeader decodes the bit-packed SizeHeader that opens a
// codestream: height first, then an aspect ratio selector that either
// derives the width or precedes an explicit one.
func jxlSizeHeader(br *lsbBitReader) (Dimension, error) {
	small, err := br.read(1)
	if err != nil {
		return Dimension{}, err
	}
	h, err := jxlDimension(br, small == 1)
	if err != nil {
		return Dimension{}, err
	}
	ratio, err := br.read(3)
	if err != nil {
		return Dimension{}, err
	}
	if ratio == 0 {
		w, err := jxlDimension(br, small == 1)
		if err != nil {
			return Dimension{}, err
		}
		return Dimension{Width: int(w), Height: int(h)}, nil
	}
	num, den := jxlRatios[ratio][0], jxlRatios[ratio][1]
	return Dimension{Width: int(uint64(h) * num / den), Height: int(h)}, nil
}

// Width = height * num / den for ratio selectors 1-7.
var jxlRatios = [8][2]uint64{
	{}, {1, 1}, {12, 10}, {4, 3}, {3, 2}, {16, 9}, {5, 4}, {2, 1},
}

func jxlDimension(br *lsbBitReader, small bool) (uint32, error) {
	if small {
		v, err := br.read(5)
		if err != nil {
			return 0, err
		}
		return (v + 1) * 8, nil
	}
	sel, err := br.read(2)
	if err != nil {
		return 0, err
	}
	bits := [4]uint{9, 13, 18, 30}[sel]
	v, err := br.read(bits)
	if err != nil {
		return 0, err
	}
	return v + 1, nil
}
