package imgdim

// ATC textures ship in PKM containers with AMD-specific data types, so
// this matcher runs before the generic PKM one.

func matchAtc(header []byte, _ *reader) (ImageType, bool) {
	if !isPkmHeader(header) {
		return ImageType{}, false
	}
	c := atcCompression(pkmDataType(header))
	if c == CompressionUnknown {
		return ImageType{}, false
	}
	return ImageType{Format: FormatAtc, Compression: c}, true
}

func atcCompression(dataType uint16) Compression {
	switch dataType {
	case 0x8C92: // ATC_RGB_AMD
		return CompressionATCRGB
	case 0x8C93: // ATC_RGBA_EXPLICIT_ALPHA_AMD
		return CompressionATCRGBAExplicit
	case 0x87EE: // ATC_RGBA_INTERPOLATED_ALPHA_AMD
		return CompressionATCRGBAInterpolated
	}
	return CompressionUnknown
}
