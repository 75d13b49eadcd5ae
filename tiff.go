package imgdim

import "encoding/binary"

// TIFF tags and IFD entry value types (TIFF 6.0 spec, p. 14-16).
const (
	tiffTagImageWidth  = 0x100
	tiffTagImageLength = 0x101

	tiffClassicMarker = 42
	tiffBigMarker     = 43
)

func matchTiff(header []byte, _ *reader) (ImageType, bool) {
	le := header[0] == 'I' && header[1] == 'I' &&
		(header[2] == tiffClassicMarker || header[2] == tiffBigMarker) && header[3] == 0
	be := header[0] == 'M' && header[1] == 'M' && header[2] == 0 &&
		(header[3] == tiffClassicMarker || header[3] == tiffBigMarker)
	if !le && !be {
		return ImageType{}, false
	}
	return ImageType{Format: FormatTiff}, true
}

// sizeTiff walks the first image file directory until it has seen both
// the width and the length tag, honoring each entry's declared value
// type. BigTIFF (marker 43) widens offsets and counts to 64 bits.
func sizeTiff(r *reader) (Dimension, error) {
	if err := r.seek(0); err != nil {
		return Dimension{}, err
	}
	var hdr [4]byte
	if err := r.readFull(hdr[:]); err != nil {
		return Dimension{}, err
	}
	var order binary.ByteOrder
	switch {
	case hdr[0] == 'I' && hdr[1] == 'I':
		order = binary.LittleEndian
	case hdr[0] == 'M' && hdr[1] == 'M':
		order = binary.BigEndian
	default:
		return Dimension{}, corruptf("tiff: bad byte-order marker")
	}

	u16 := func() (uint16, error) {
		var b [2]byte
		if err := r.readFull(b[:]); err != nil {
			return 0, err
		}
		return order.Uint16(b[:]), nil
	}
	u32 := func() (uint32, error) {
		var b [4]byte
		if err := r.readFull(b[:]); err != nil {
			return 0, err
		}
		return order.Uint32(b[:]), nil
	}
	u64 := func() (uint64, error) {
		var b [8]byte
		if err := r.readFull(b[:]); err != nil {
			return 0, err
		}
		return order.Uint64(b[:]), nil
	}

	marker := order.Uint16(hdr[2:4])
	big := marker == tiffBigMarker
	if marker != tiffClassicMarker && !big {
		return Dimension{}, corruptf("tiff: bad type marker %d", marker)
	}
	if big {
		// bigtiff.org defines the extra header fields as the constants
		// 8 and 0.
		offsetSize, err := u16()
		if err != nil {
			return Dimension{}, err
		}
		if offsetSize != 8 {
			return Dimension{}, corruptf("tiff: bigtiff offset size %d", offsetSize)
		}
		pad, err := u16()
		if err != nil {
			return Dimension{}, err
		}
		if pad != 0 {
			return Dimension{}, corruptf("tiff: bigtiff header padding %d", pad)
		}
	}

	var ifdOffset uint64
	if big {
		v, err := u64()
		if err != nil {
			return Dimension{}, err
		}
		ifdOffset = v
	} else {
		v, err := u32()
		if err != nil {
			return Dimension{}, err
		}
		ifdOffset = uint64(v)
	}
	if ifdOffset == 0 {
		return Dimension{}, corruptf("tiff: zero IFD offset")
	}
	if err := r.seek(int64(ifdOffset)); err != nil {
		return Dimension{}, err
	}

	var entries uint64
	if big {
		v, err := u64()
		if err != nil {
			return Dimension{}, err
		}
		entries = v
	} else {
		v, err := u16()
		if err != nil {
			return Dimension{}, err
		}
		entries = uint64(v)
	}

	valueFieldLen := 4
	if big {
		valueFieldLen = 8
	}

	var width, height uint32
	var haveWidth, haveHeight bool
	for i := uint64(0); i < entries; i++ {
		tag, err := u16()
		if err != nil {
			return Dimension{}, err
		}
		kind, err := u16()
		if err != nil {
			return Dimension{}, err
		}
		if big {
			if _, err := u64(); err != nil { // value count
				return Dimension{}, err
			}
		} else {
			if _, err := u32(); err != nil {
				return Dimension{}, err
			}
		}

		valueBytes, err := tiffValueBytes(kind, big)
		if err != nil {
			return Dimension{}, err
		}

		var raw [8]byte
		if err := r.readFull(raw[:valueFieldLen]); err != nil {
			return Dimension{}, err
		}
		var value uint32
		switch valueBytes {
		case 2:
			value = uint32(order.Uint16(raw[:2]))
		case 4:
			value = order.Uint32(raw[:4])
		default:
			continue // not a type a dimension tag uses
		}

		switch tag {
		case tiffTagImageWidth:
			width, haveWidth = value, true
		case tiffTagImageLength:
			height, haveHeight = value, true
		}
		if haveWidth && haveHeight {
			return Dimension{Width: int(width), Height: int(height)}, nil
		}
	}
	return Dimension{}, corruptf("tiff: no dimension tags in IFD")
}

// tiffValueBytes gives the byte width of one value of an IFD entry
// type. Types 16-18 exist only in BigTIFF.
func tiffValueBytes(kind uint16, big bool) (int, error) {
	switch kind {
	case 1, 2, 6, 7: // BYTE, ASCII, SBYTE, UNDEFINED
		return 1, nil
	case 3, 8: // SHORT, SSHORT
		return 2, nil
	case 4, 9, 11, 13: // LONG, SLONG, FLOAT, IFD
		return 4, nil
	case 5, 10: // RATIONAL, SRATIONAL
		return 8, nil
	case 12: // DOUBLE
		return 8, nil
	case 16, 17, 18: // LONG8, SLONG8, IFD8
		if !big {
			return 0, corruptf("tiff: bigtiff entry type %d in classic file", kind)
		}
		return 8, nil
	}
	return 0, corruptf("tiff: unknown IFD entry type %d", kind)
}
