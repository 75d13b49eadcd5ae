package imgdim

func matchDds(header []byte, r *reader) (ImageType, bool) {
	if string(header[:4]) != "DDS " {
		return ImageType{}, false
	}
	return ImageType{Format: FormatDds, Compression: ddsCompression(r)}, true
}

func sizeDds(r *reader) (Dimension, error) {
	if err := r.seek(12); err != nil {
		return Dimension{}, err
	}
	h, err := r.u32le()
	if err != nil {
		return Dimension{}, err
	}
	w, err := r.u32le()
	if err != nil {
		return Dimension{}, err
	}
	return Dimension{Width: int(w), Height: int(h)}, nil
}

// ddsCompression reads the pixel-format FourCC at offset 84. A DX10
// FourCC defers to the DXGI format enum in the extension header that
// follows the 128-byte main header; an all-zero FourCC means an
// uncompressed layout described by the RGB bit count.
func ddsCompression(r *reader) Compression {
	if err := r.seek(84); err != nil {
		return CompressionUnknown
	}
	var fourcc [4]byte
	if err := r.readFull(fourcc[:]); err != nil {
		return CompressionUnknown
	}
	switch string(fourcc[:]) {
	case "DXT1":
		return CompressionBC1
	case "DXT2", "DXT3":
		return CompressionBC2
	case "DXT4", "DXT5":
		return CompressionBC3
	case "ATI1", "BC4U", "BC4S":
		return CompressionBC4
	case "ATI2", "BC5U", "BC5S":
		return CompressionBC5
	case "BC6H":
		return CompressionBC6H
	case "BC7U", "BC7L":
		return CompressionBC7
	case "DX10":
		if err := r.seek(128); err != nil {
			return CompressionUnknown
		}
		dxgi, err := r.u32le()
		if err != nil {
			return CompressionUnknown
		}
		return dxgiCompression(dxgi)
	case "\x00\x00\x00\x00":
		bits, err := r.u32le()
		if err != nil {
			return CompressionUnknown
		}
		switch bits {
		case 32:
			return CompressionRGBA32
		case 24:
			return CompressionRGB24
		}
	}
	return CompressionUnknown
}

func dxgiCompression(format uint32) Compression {
	switch {
	case format >= 70 && format <= 72:
		return CompressionBC1
	case format >= 73 && format <= 75:
		return CompressionBC2
	case format >= 76 && format <= 78:
		return CompressionBC3
	case format >= 79 && format <= 81:
		return CompressionBC4
	case format >= 82 && format <= 84:
		return CompressionBC5
	case format >= 94 && format <= 96:
		return CompressionBC6H
	case format >= 97 && format <= 99:
		return CompressionBC7
	case format == 28 || format == 29: // R8G8B8A8_UNORM[_SRGB]
		return CompressionRGBA32
	}
	return CompressionUnknown
}
