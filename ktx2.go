package imgdim

import "bytes"

var ktx2Identifier = []byte{
	0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A,
}

func matchKtx2(header []byte, r *reader) (ImageType, bool) {
	if !bytes.Equal(header[:12], ktx2Identifier) {
		return ImageType{}, false
	}
	return ImageType{Format: FormatKtx2, Compression: ktx2Compression(r)}, true
}

// The fixed header after the 12-byte identifier: vkFormat, typeSize,
// pixelWidth, pixelHeight, each a little-endian u32.
func sizeKtx2(r *reader) (Dimension, error) {
	if err := r.seek(20); err != nil {
		return Dimension{}, err
	}
	w, err := r.u32le()
	if err != nil {
		return Dimension{}, err
	}
	h, err := r.u32le()
	if err != nil {
		return Dimension{}, err
	}
	return Dimension{Width: int(w), Height: int(h)}, nil
}

func ktx2Compression(r *reader) Compression {
	if err := r.seek(12); err != nil {
		return CompressionUnknown
	}
	vkFormat, err := r.u32le()
	if err != nil {
		return CompressionUnknown
	}
	return vkFormatCompression(vkFormat)
}

// vkFormatCompression maps the VkFormat enum to a compression code.
// UNORM/SRGB/SNORM siblings of the same scheme share a code.
func vkFormatCompression(f uint32) Compression {
	switch {
	case f >= 23 && f <= 36: // R8G8B8 and B8G8R8 layouts
		return CompressionRGB24
	case f >= 37 && f <= 50: // R8G8B8A8 and B8G8R8A8 layouts
		return CompressionRGBA32
	case f == 131 || f == 132 || f == 133 || f == 134:
		return CompressionBC1
	case f == 135 || f == 136:
		return CompressionBC2
	case f == 137 || f == 138:
		return CompressionBC3
	case f == 139 || f == 140:
		return CompressionBC4
	case f == 141 || f == 142:
		return CompressionBC5
	case f == 143 || f == 144:
		return CompressionBC6H
	case f == 145 || f == 146:
		return CompressionBC7
	case f == 147 || f == 148:
		return CompressionETC2RGB
	case f == 149 || f == 150:
		return CompressionETC2RGBA1
	case f == 151 || f == 152:
		return CompressionETC2RGBA8
	case f == 153:
		return CompressionEACR11
	case f == 154:
		return CompressionEACR11Signed
	case f == 155:
		return CompressionEACRG11
	case f == 156:
		return CompressionEACRG11Signed
	case f >= 157 && f <= 184:
		return astcVkCompression(f)
	}
	return CompressionUnknown
}

// VkFormat 157-184 are the ASTC footprints, two enum values (UNORM,
// SRGB) per footprint.
func astcVkCompression(f uint32) Compression {
	footprints := []Compression{
		CompressionASTC4x4, CompressionASTC5x4, CompressionASTC5x5,
		CompressionASTC6x5, CompressionASTC6x6, CompressionASTC8x5,
		CompressionASTC8x6, CompressionASTC8x8, CompressionASTC10x5,
		CompressionASTC10x6, CompressionASTC10x8, CompressionASTC10x10,
		CompressionASTC12x10, CompressionASTC12x12,
	}
	return footprints[(f-157)/2]
}
