package imgdim

// The .astc header encodes the block footprint directly instead of a
// compression enum: magic, three block dimensions, then 24-bit image
// dimensions.

var astcMagic = []byte{0x13, 0xAB, 0xA1, 0x5C}

func matchAstc(header []byte, _ *reader) (ImageType, bool) {
	for i, b := range astcMagic {
		if header[i] != b {
			return ImageType{}, false
		}
	}
	return ImageType{
		Format:      FormatAstc,
		Compression: astcBlockCompression(header[4], header[5]),
	}, true
}

func sizeAstc(r *reader) (Dimension, error) {
	if err := r.seek(7); err != nil {
		return Dimension{}, err
	}
	w, err := r.u24le()
	if err != nil {
		return Dimension{}, err
	}
	h, err := r.u24le()
	if err != nil {
		return Dimension{}, err
	}
	return Dimension{Width: int(w), Height: int(h)}, nil
}

func astcBlockCompression(bx, by byte) Compression {
	switch [2]byte{bx, by} {
	case [2]byte{4, 4}:
		return CompressionASTC4x4
	case [2]byte{5, 4}:
		return CompressionASTC5x4
	case [2]byte{5, 5}:
		return CompressionASTC5x5
	case [2]byte{6, 5}:
		return CompressionASTC6x5
	case [2]byte{6, 6}:
		return CompressionASTC6x6
	case [2]byte{8, 5}:
		return CompressionASTC8x5
	case [2]byte{8, 6}:
		return CompressionASTC8x6
	case [2]byte{8, 8}:
		return CompressionASTC8x8
	case [2]byte{10, 5}:
		return CompressionASTC10x5
	case [2]byte{10, 6}:
		return CompressionASTC10x6
	case [2]byte{10, 8}:
		return CompressionASTC10x8
	case [2]byte{10, 10}:
		return CompressionASTC10x10
	case [2]byte{12, 10}:
		return CompressionASTC12x10
	case [2]byte{12, 12}:
		return CompressionASTC12x12
	}
	return CompressionUnknown
}
