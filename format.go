package imgdim

// Format identifies one of the supported image or texture formats. The
// set is closed; the dispatcher owns one table entry per value.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatAseprite
	FormatAstc
	FormatAtc
	FormatBmp
	FormatDds
	FormatExr
	FormatFarbfeld
	FormatGif
	FormatHdr
	FormatHeif
	FormatIco
	FormatIlbm
	FormatJpeg
	FormatJxl
	FormatKtx2
	FormatPkm
	FormatPng
	FormatPnm
	FormatPsd
	FormatPvr
	FormatQoi
	FormatTga
	FormatTiff
	FormatVtf
	FormatWebp
)

var formatNames = map[Format]string{
	FormatAseprite: "aseprite",
	FormatAstc:     "astc",
	FormatAtc:      "atc",
	FormatBmp:      "bmp",
	FormatDds:      "dds",
	FormatExr:      "exr",
	FormatFarbfeld: "farbfeld",
	FormatGif:      "gif",
	FormatHdr:      "hdr",
	FormatHeif:     "heif",
	FormatIco:      "ico",
	FormatIlbm:     "ilbm",
	FormatJpeg:     "jpeg",
	FormatJxl:      "jxl",
	FormatKtx2:     "ktx2",
	FormatPkm:      "pkm",
	FormatPng:      "png",
	FormatPnm:      "pnm",
	FormatPsd:      "psd",
	FormatPvr:      "pvr",
	FormatQoi:      "qoi",
	FormatTga:      "tga",
	FormatTiff:     "tiff",
	FormatVtf:      "vtf",
	FormatWebp:     "webp",
}

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return "unknown"
}

// Compression is the compression code a texture container declares in
// its header. Non-container formats always carry CompressionNone. HEIF
// brands reuse this enum to expose the codec wrapped by the container.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionUnknown

	// DDS / KTX2 block compression codes.
	CompressionBC1
	CompressionBC2
	CompressionBC3
	CompressionBC4
	CompressionBC5
	CompressionBC6H
	CompressionBC7

	// Uncompressed layouts a DDS or KTX2 file may declare.
	CompressionRGB24
	CompressionRGBA32

	// ETC family (PKM, PowerVR, KTX2).
	CompressionETC1
	CompressionETC2RGB
	CompressionETC2RGBA1
	CompressionETC2RGBA8

	// EAC family (PKM, PowerVR, KTX2).
	CompressionEACR11
	CompressionEACR11Signed
	CompressionEACRG11
	CompressionEACRG11Signed

	// PVRTC (PowerVR).
	CompressionPVRTC2BPPRGB
	CompressionPVRTC2BPPRGBA
	CompressionPVRTC4BPPRGB
	CompressionPVRTC4BPPRGBA

	// ASTC block footprints (.astc files, KTX2).
	CompressionASTC4x4
	CompressionASTC5x4
	CompressionASTC5x5
	CompressionASTC6x5
	CompressionASTC6x6
	CompressionASTC8x5
	CompressionASTC8x6
	CompressionASTC8x8
	CompressionASTC10x5
	CompressionASTC10x6
	CompressionASTC10x8
	CompressionASTC10x10
	CompressionASTC12x10
	CompressionASTC12x12

	// ATC (AMD, PKM-contained).
	CompressionATCRGB
	CompressionATCRGBAExplicit
	CompressionATCRGBAInterpolated

	// HEIF codec brands.
	CompressionAV1
	CompressionHEVC
	CompressionHEIFJpeg
)

// CompressionFamily is the coarse grouping used for cross-container
// queries: a BC3 DDS file and a BC3 KTX2 file are the same family.
type CompressionFamily uint8

const (
	FamilyNone CompressionFamily = iota
	FamilyBlockCompression
	FamilyEtc
	FamilyEac
	FamilyPvrtc
	FamilyAstc
	FamilyAtc
)

func (f CompressionFamily) String() string {
	switch f {
	case FamilyBlockCompression:
		return "block compression"
	case FamilyEtc:
		return "etc"
	case FamilyEac:
		return "eac"
	case FamilyPvrtc:
		return "pvrtc"
	case FamilyAstc:
		return "astc"
	case FamilyAtc:
		return "atc"
	}
	return "none"
}

// ImageType is the identity of a probed source: the format, and for
// texture containers the compression code found in the header.
type ImageType struct {
	Format      Format
	Compression Compression
}

// CompressionFamily maps the compression code to its coarse family.
// Non-texture formats, uncompressed layouts and unrecognized vendor
// codes all map to FamilyNone.
func (t ImageType) CompressionFamily() CompressionFamily {
	switch t.Compression {
	case CompressionBC1, CompressionBC2, CompressionBC3, CompressionBC4,
		CompressionBC5, CompressionBC6H, CompressionBC7:
		return FamilyBlockCompression
	case CompressionETC1, CompressionETC2RGB, CompressionETC2RGBA1,
		CompressionETC2RGBA8:
		return FamilyEtc
	case CompressionEACR11, CompressionEACR11Signed,
		CompressionEACRG11, CompressionEACRG11Signed:
		return FamilyEac
	case CompressionPVRTC2BPPRGB, CompressionPVRTC2BPPRGBA,
		CompressionPVRTC4BPPRGB, CompressionPVRTC4BPPRGBA:
		return FamilyPvrtc
	case CompressionASTC4x4, CompressionASTC5x4, CompressionASTC5x5,
		CompressionASTC6x5, CompressionASTC6x6, CompressionASTC8x5,
		CompressionASTC8x6, CompressionASTC8x8, CompressionASTC10x5,
		CompressionASTC10x6, CompressionASTC10x8, CompressionASTC10x10,
		CompressionASTC12x10, CompressionASTC12x12:
		return FamilyAstc
	case CompressionATCRGB, CompressionATCRGBAExplicit,
		CompressionATCRGBAInterpolated:
		return FamilyAtc
	}
	return FamilyNone
}

// IsBlockCompressed reports whether the payload uses one of the BC1-BC7
// block compression algorithms.
func (t ImageType) IsBlockCompressed() bool {
	return t.CompressionFamily() == FamilyBlockCompression
}

// ContainerFormat names the outer container for texture formats,
// independent of the compression inside it. Non-texture formats return
// the empty string. ATC textures are carried in PKM containers.
func (t ImageType) ContainerFormat() string {
	switch t.Format {
	case FormatDds:
		return "DDS"
	case FormatKtx2:
		return "KTX2"
	case FormatPvr:
		return "PowerVR"
	case FormatPkm, FormatAtc:
		return "PKM"
	case FormatAstc:
		return "ASTC"
	}
	return ""
}

// IsMultiCompressionContainer reports whether files of this container
// kind can legally carry more than one compression family, so the
// payload must be inspected to know the algorithm.
func (t ImageType) IsMultiCompressionContainer() bool {
	switch t.Format {
	case FormatDds, FormatKtx2, FormatPvr:
		return true
	}
	return false
}
