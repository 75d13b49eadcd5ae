package imgdim

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func le16(v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return b[:]
}

func be16(v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return b[:]
}

func le32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func be32(v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b[:]
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func gifBlob(w, h uint16) []byte {
	return cat([]byte("GIF89a"), le16(w), le16(h), []byte{0x00, 0x00, 0x00})
}

func pngBlob(w, h uint32) []byte {
	return cat(pngSignature, be32(13), []byte("IHDR"), be32(w), be32(h),
		[]byte{8, 6, 0, 0, 0})
}

func jpegBlob(w, h uint16) []byte {
	return cat(
		[]byte{0xFF, 0xD8},
		[]byte{0xFF, 0xE0, 0x00, 0x04, 'x', 'x'}, // APP0, skipped by length
		[]byte{0xFF, 0xC0, 0x00, 0x11, 0x08},     // SOF0, precision 8
		be16(h), be16(w),
		[]byte{0x03, 1, 0x22, 0, 2, 0x11, 1, 3, 0x11, 1},
	)
}

func tiffLEBlob(w, h uint32) []byte {
	return cat(
		[]byte{'I', 'I', 42, 0}, le32(8),
		le16(2),
		le16(0x100), le16(3), le32(1), le16(uint16(w)), le16(0), // SHORT
		le16(0x101), le16(4), le32(1), le32(h), // LONG
	)
}

func tiffBEBlob(w, h uint32) []byte {
	return cat(
		[]byte{'M', 'M', 0, 42}, be32(8),
		be16(2),
		be16(0x100), be16(3), be32(1), be16(uint16(w)), be16(0),
		be16(0x101), be16(4), be32(1), be32(h),
	)
}

func bigTiffBlob(w, h uint32) []byte {
	one := []byte{1, 0, 0, 0, 0, 0, 0, 0}
	return cat(
		[]byte{'I', 'I', 43, 0}, le16(8), le16(0),
		[]byte{16, 0, 0, 0, 0, 0, 0, 0}, // first IFD offset
		[]byte{2, 0, 0, 0, 0, 0, 0, 0},  // entry count
		le16(0x100), le16(3), one, le16(uint16(w)), make([]byte, 6),
		le16(0x101), le16(4), one, le32(h), make([]byte, 4),
	)
}

func webpChunk(fourcc string, payload []byte) []byte {
	chunk := cat([]byte(fourcc), le32(uint32(len(payload))), payload)
	if len(payload)&1 == 1 {
		chunk = append(chunk, 0)
	}
	return cat([]byte("RIFF"), le32(uint32(4+len(chunk))), []byte("WEBP"), chunk)
}

func heifBlob(brand string, w, h uint32) []byte {
	ispe := cat(be32(20), []byte("ispe"), be32(0), be32(w), be32(h))
	ipco := cat(be32(uint32(8+len(ispe))), []byte("ipco"), ispe)
	iprp := cat(be32(uint32(8+len(ipco))), []byte("iprp"), ipco)
	meta := cat(be32(uint32(12+len(iprp))), []byte("meta"), be32(0), iprp)
	ftyp := cat(be32(16), []byte("ftyp"), []byte(brand), be32(0))
	return cat(ftyp, meta)
}

func icoDir(entries ...[]byte) []byte {
	b := cat([]byte{0, 0, 1, 0}, le16(uint16(len(entries))))
	for _, e := range entries {
		b = append(b, e...)
	}
	return b
}

func icoEntry(w, h byte, size, offset uint32) []byte {
	return cat([]byte{w, h, 0, 0, 1, 0, 32, 0}, le32(size), le32(offset))
}

func ddsBlob(fourcc string, w, h uint32) []byte {
	b := make([]byte, 128)
	copy(b, "DDS ")
	binary.LittleEndian.PutUint32(b[4:], 124)
	binary.LittleEndian.PutUint32(b[12:], h)
	binary.LittleEndian.PutUint32(b[16:], w)
	copy(b[84:], fourcc)
	return b
}

func ktx2Blob(vkFormat, w, h uint32) []byte {
	b := make([]byte, 48)
	copy(b, ktx2Identifier)
	binary.LittleEndian.PutUint32(b[12:], vkFormat)
	binary.LittleEndian.PutUint32(b[16:], 1) // typeSize
	binary.LittleEndian.PutUint32(b[20:], w)
	binary.LittleEndian.PutUint32(b[24:], h)
	return b
}

func pkmBlob(version string, dataType, w, h uint16) []byte {
	return cat([]byte("PKM "), []byte(version), be16(dataType),
		be16((w+3)&^3), be16((h+3)&^3), be16(w), be16(h))
}

func pvr3Blob(pixelFormat uint64, w, h uint32) []byte {
	b := make([]byte, 52)
	copy(b, "PVR\x03")
	binary.LittleEndian.PutUint64(b[8:], pixelFormat)
	binary.LittleEndian.PutUint32(b[24:], h)
	binary.LittleEndian.PutUint32(b[28:], w)
	return b
}

func astcBlob(bx, by byte, w, h uint32) []byte {
	b := make([]byte, 16)
	copy(b, astcMagic)
	b[4], b[5], b[6] = bx, by, 1
	b[7], b[8], b[9] = byte(w), byte(w>>8), byte(w>>16)
	b[10], b[11], b[12] = byte(h), byte(h>>8), byte(h>>16)
	return b
}

func exrBlob(xMax, yMax uint32) []byte {
	return cat(
		exrMagic, le32(2),
		[]byte("dataWindow\x00box2i\x00"), le32(16),
		le32(0), le32(0), le32(xMax), le32(yMax),
		[]byte{0}, // end of attribute list
	)
}

func TestBlobSize(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
		want Dimension
	}{
		{"gif", gifBlob(100, 100), Dimension{100, 100}},
		{"png", pngBlob(800, 600), Dimension{800, 600}},
		{"png cgbi", cat(pngSignature, be32(4), []byte("CgBI"), make([]byte, 8),
			be32(13), []byte("IHDR"), be32(32), be32(16), []byte{8, 6, 0, 0, 0}),
			Dimension{32, 16}},
		{"jpeg", jpegBlob(600, 400), Dimension{600, 400}},
		{"tiff le", tiffLEBlob(800, 600), Dimension{800, 600}},
		{"tiff be", tiffBEBlob(800, 600), Dimension{800, 600}},
		{"bigtiff", bigTiffBlob(800, 600), Dimension{800, 600}},
		{"webp vp8", webpChunk("VP8 ",
			[]byte{0x00, 0x00, 0x00, 0x9D, 0x01, 0x2A, 0x10, 0x00, 0x20, 0x00}),
			Dimension{16, 32}},
		{"webp vp8l", webpChunk("VP8L",
			[]byte{0x2F, 0x0F, 0xC0, 0x07, 0x00}),
			Dimension{16, 32}},
		{"webp vp8x", webpChunk("VP8X",
			[]byte{0x00, 0x00, 0x00, 0x00, 0xFF, 0x03, 0x00, 0xFF, 0x02, 0x00}),
			Dimension{1024, 768}},
		{"heif", heifBlob("avif", 1200, 800), Dimension{1200, 800}},
		{"jxl raw", cat([]byte{0xFF, 0x0A, 0x18, 0x13}, make([]byte, 8)),
			Dimension{100, 100}},
		{"jxl container", cat(jxlContainerSignature,
			be32(12), []byte("jxlc"), []byte{0xFF, 0x0A, 0x18, 0x13}),
			Dimension{100, 100}},
		{"bmp", cat([]byte("BM"), le32(26), []byte{0, 0, 0, 0}, le32(26),
			le32(40), le32(640), le32(0xFFFFFE20)), // height -480, top-down
			Dimension{640, 480}},
		{"psd", cat([]byte("8BPS"), be16(1), make([]byte, 6), be16(3),
			be32(500), be32(800)),
			Dimension{800, 500}},
		{"ico picks largest", cat(icoDir(
			icoEntry(16, 16, 4, 70),
			icoEntry(48, 48, 4, 70),
			icoEntry(0, 0, 4, 70), // 0 means 256
			icoEntry(32, 32, 4, 70),
		), make([]byte, 4)), Dimension{256, 256}},
		{"ico png entry wins", cat(
			icoDir(icoEntry(1, 1, 29, 22)),
			pngBlob(777, 333),
		), Dimension{777, 333}},
		{"aseprite", cat(le32(128), []byte{0xE0, 0xA5}, le16(1),
			le16(320), le16(200)),
			Dimension{320, 200}},
		{"qoi", cat([]byte("qoif"), be32(256), be32(128), []byte{4, 0}),
			Dimension{256, 128}},
		{"farbfeld", cat([]byte("farbfeld"), be32(512), be32(256)),
			Dimension{512, 256}},
		{"pnm", []byte("P6\n# made up\n640 480\n255\n"), Dimension{640, 480}},
		{"hdr", []byte("#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y 768 +X 1024\n"),
			Dimension{1024, 768}},
		{"exr", exrBlob(1919, 1079), Dimension{1920, 1080}},
		{"ilbm", cat([]byte("FORM"), be32(32), []byte("ILBM"),
			[]byte("BMHD"), be32(20), be16(320), be16(200), make([]byte, 16)),
			Dimension{320, 200}},
		{"vtf", cat([]byte("VTF\x00"), le32(7), le32(2), le32(80),
			le16(1024), le16(512)),
			Dimension{1024, 512}},
		{"tga", cat([]byte{0, 0, 2}, make([]byte, 9),
			le16(320), le16(240), []byte{32, 8}),
			Dimension{320, 240}},
		{"dds", ddsBlob("DXT5", 1024, 512), Dimension{1024, 512}},
		{"ktx2", ktx2Blob(137, 800, 600), Dimension{800, 600}},
		{"pkm", pkmBlob("10", 0x0000, 128, 64), Dimension{128, 64}},
		{"atc", pkmBlob("20", 0x8C92, 64, 32), Dimension{64, 32}},
		{"pvr v3", pvr3Blob(2, 512, 256), Dimension{512, 256}},
		{"pvr legacy", cat(le32(52), le32(128), le32(256), make([]byte, 40)),
			Dimension{256, 128}},
		{"astc", astcBlob(6, 6, 640, 480), Dimension{640, 480}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BlobSize(tt.blob)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlobType(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
		want ImageType
	}{
		{"gif", gifBlob(1, 1), ImageType{FormatGif, CompressionNone}},
		{"png", pngBlob(1, 1), ImageType{FormatPng, CompressionNone}},
		{"webp", webpChunk("VP8X", make([]byte, 10)),
			ImageType{FormatWebp, CompressionNone}},
		{"heif avif", heifBlob("avif", 1, 1),
			ImageType{FormatHeif, CompressionAV1}},
		{"heif heic", heifBlob("heic", 1, 1),
			ImageType{FormatHeif, CompressionHEVC}},
		{"heif meta brand chain", cat(
			be32(24), []byte("ftyp"), []byte("mif1"), be32(0),
			[]byte("mif1"), []byte("heic"),
		), ImageType{FormatHeif, CompressionHEVC}},
		{"heif unknown brand", cat(
			be32(16), []byte("ftyp"), []byte("zzzz"), be32(0),
		), ImageType{FormatHeif, CompressionUnknown}},
		{"dds bc3", ddsBlob("DXT5", 4, 4),
			ImageType{FormatDds, CompressionBC3}},
		{"dds dx10 bc7", func() []byte {
			b := append(ddsBlob("DX10", 4, 4), le32(98)...)
			return b
		}(), ImageType{FormatDds, CompressionBC7}},
		{"dds rgba32", func() []byte {
			b := ddsBlob("\x00\x00\x00\x00", 4, 4)
			binary.LittleEndian.PutUint32(b[88:], 32)
			return b
		}(), ImageType{FormatDds, CompressionRGBA32}},
		{"dds vendor fourcc", ddsBlob("XXXX", 4, 4),
			ImageType{FormatDds, CompressionUnknown}},
		{"ktx2 bc3", ktx2Blob(137, 4, 4),
			ImageType{FormatKtx2, CompressionBC3}},
		{"ktx2 astc", ktx2Blob(157, 4, 4),
			ImageType{FormatKtx2, CompressionASTC4x4}},
		{"ktx2 eac", ktx2Blob(153, 4, 4),
			ImageType{FormatKtx2, CompressionEACR11}},
		{"pkm etc1", pkmBlob("10", 0x0000, 4, 4),
			ImageType{FormatPkm, CompressionETC1}},
		{"pkm etc2", pkmBlob("20", 0x0001, 4, 4),
			ImageType{FormatPkm, CompressionETC2RGB}},
		{"pkm eac", pkmBlob("20", 0x160A, 4, 4),
			ImageType{FormatPkm, CompressionEACR11}},
		{"atc", pkmBlob("20", 0x8C92, 4, 4),
			ImageType{FormatAtc, CompressionATCRGB}},
		{"pvr pvrtc", pvr3Blob(2, 4, 4),
			ImageType{FormatPvr, CompressionPVRTC4BPPRGB}},
		{"pvr etc2", pvr3Blob(22, 4, 4),
			ImageType{FormatPvr, CompressionETC2RGB}},
		{"pvr legacy", cat(le32(52), make([]byte, 48)),
			ImageType{FormatPvr, CompressionUnknown}},
		{"astc", astcBlob(8, 8, 4, 4),
			ImageType{FormatAstc, CompressionASTC8x8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BlobType(tt.blob)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlobSizeTruncated(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
	}{
		{"empty", nil},
		{"short header", []byte("GIF89a")},
		{"png mid chunk", cat(pngSignature, be32(13), []byte("IH"))},
		{"jpeg segment past end", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0xFF,
			0, 0, 0, 0, 0, 0}},
		{"heif ftyp only", cat(be32(16), []byte("ftyp"), []byte("avif"), be32(0))},
		{"dds header only", ddsBlob("DXT1", 4, 4)[:14]},
		{"pkm header only", pkmBlob("10", 0, 4, 4)[:13]},
		{"exr cut attribute", exrBlob(3, 3)[:20]},
		// The IFD may legitimately live in a not-yet-fetched tail, so an
		// offset past the end is truncation, not corruption.
		{"tiff ifd past end", cat([]byte{'I', 'I', 42, 0}, le32(4096), le32(0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BlobSize(tt.blob)
			assert.ErrorIs(t, err, ErrInsufficientData)
		})
	}
}

func TestBlobSizeCorrupted(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
	}{
		{"png no ihdr", cat(pngSignature, be32(13), []byte("IDAT"),
			make([]byte, 13))},
		{"jpeg eoi before frame", cat([]byte{0xFF, 0xD8, 0xFF, 0xD9},
			make([]byte, 8))},
		{"tiff zero ifd offset", cat([]byte{'I', 'I', 42, 0}, le32(0),
			make([]byte, 4))},
		{"tiff no dimension tags", cat([]byte{'I', 'I', 42, 0}, le32(8),
			le16(1), le16(0x103), le16(3), le32(1), le32(1))},
		{"ico entry past end", icoDir(icoEntry(16, 16, 50, 1000))},
		{"ilbm overlong chunk", cat([]byte("FORM"), be32(100), []byte("ILBM"),
			[]byte("BODY"), be32(0xFFFF), make([]byte, 8))},
		{"exr no data window", cat(exrMagic, le32(2), []byte{0},
			make([]byte, 3))},
		{"webp no image chunk", cat([]byte("RIFF"), le32(14), []byte("WEBP"),
			[]byte("META"), le32(2), []byte{0, 0})},
		{"vp8 bad sync", webpChunk("VP8 ",
			[]byte{0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0x10, 0x00, 0x20, 0x00})},
		{"psd bad version", cat([]byte("8BPS"), be16(9), make([]byte, 16))},
		{"pnm huge dimension", []byte("P6\n99999999999 1\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BlobSize(tt.blob)
			assert.ErrorIs(t, err, ErrCorruptedImage)
		})
	}
}

func TestBlobSizeUnsupported(t *testing.T) {
	blobs := [][]byte{
		bytes.Repeat([]byte{0xAA}, 32),
		// A RIFF envelope with a non-WEBP form type is another format,
		// not a broken WebP.
		cat([]byte("RIFF"), le32(4), []byte("WAVE"), make([]byte, 4)),
	}
	for _, blob := range blobs {
		_, err := BlobSize(blob)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		_, err = BlobType(blob)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	}
}

// Random input must produce an error or a result, never a panic.
func TestBlobSizeRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		blob := make([]byte, rng.Intn(64))
		rng.Read(blob)
		BlobSize(blob)
		BlobType(blob)
	}
	// Valid signatures followed by garbage.
	prefixes := [][]byte{
		pngSignature, []byte("GIF89a"), []byte{0xFF, 0xD8, 0xFF},
		[]byte("RIFF????WEBP"), []byte("FORM????ILBM"), []byte("8BPS"),
		ktx2Identifier, []byte("PKM 10"), []byte("qoif"), exrMagic,
		jxlContainerSignature, []byte("#?RADIANCE\n"),
	}
	for i := 0; i < 5000; i++ {
		p := prefixes[rng.Intn(len(prefixes))]
		blob := append(append([]byte{}, p...), make([]byte, rng.Intn(48))...)
		rng.Read(blob[len(p):])
		BlobSize(blob)
		BlobType(blob)
	}
}

func TestSizeFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.gif")
	require.NoError(t, os.WriteFile(path, gifBlob(100, 100), 0o600))

	got, err := Size(path)
	require.NoError(t, err)
	assert.Equal(t, Dimension{100, 100}, got)

	_, err = Size(filepath.Join(dir, "missing.gif"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestReaderSizeAndType(t *testing.T) {
	src := bytes.NewReader(pngBlob(12, 34))
	d, err := ReaderSize(src)
	require.NoError(t, err)
	assert.Equal(t, Dimension{12, 34}, d)

	it, err := ReaderType(src)
	require.NoError(t, err)
	assert.Equal(t, ImageType{FormatPng, CompressionNone}, it)
}
