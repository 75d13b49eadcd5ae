package imgdim

// PKM is the container Ericsson's etcpack writes: "PKM " plus a "10" or
// "20" version, a big-endian data type, padded dimensions, then the
// original dimensions. The data type distinguishes ETC1, the ETC2
// variants and the EAC channel formats. Some AMD tooling also stores
// ATC payloads in PKM containers (see atc.go).

func isPkmHeader(header []byte) bool {
	if string(header[:4]) != "PKM " {
		return false
	}
	return (header[4] == '1' || header[4] == '2') && header[5] == '0'
}

func pkmDataType(header []byte) uint16 {
	return uint16(header[6])<<8 | uint16(header[7])
}

func matchPkm(header []byte, _ *reader) (ImageType, bool) {
	if !isPkmHeader(header) {
		return ImageType{}, false
	}
	return ImageType{
		Format:      FormatPkm,
		Compression: pkmCompression(pkmDataType(header)),
	}, true
}

// Original (unpadded) width and height follow the block-padded pair.
func sizePkm(r *reader) (Dimension, error) {
	if err := r.seek(12); err != nil {
		return Dimension{}, err
	}
	w, err := r.u16be()
	if err != nil {
		return Dimension{}, err
	}
	h, err := r.u16be()
	if err != nil {
		return Dimension{}, err
	}
	return Dimension{Width: int(w), Height: int(h)}, nil
}

func pkmCompression(dataType uint16) Compression {
	switch dataType {
	case 0x0000:
		return CompressionETC1
	case 0x0001:
		return CompressionETC2RGB
	case 0x0002, 0x0004:
		return CompressionETC2RGBA1
	case 0x0003, 0x0005:
		return CompressionETC2RGBA8
	case 0x1608:
		return CompressionEACRG11Signed
	case 0x1609:
		return CompressionEACR11Signed
	case 0x160A:
		return CompressionEACR11
	case 0x160B:
		return CompressionEACRG11
	}
	return CompressionUnknown
}
