package imgdim

// HEIF and AVIF share the ISOBMFF shell; the codec is identified by the
// ftyp box's brand chain, not the box structure.

var heifHevcBrands = []string{
	"heic", "heix", "heis", "hevs", "heim", "hevm", "hevc", "hevx",
}

var heifAv1Brands = []string{
	"avif", "avio", "avis", "MA1A", "MA1B",
}

var heifJpegBrands = []string{"jpeg", "jpgs"}

// Structural brands that defer codec identification to a later brand in
// the compatible-brands list.
var heifMetaBrands = []string{"mif1", "msf1", "mif2", "miaf"}

func heifBrandCompression(brand string) (Compression, bool) {
	for _, b := range heifHevcBrands {
		if brand == b {
			return CompressionHEVC, true
		}
	}
	for _, b := range heifAv1Brands {
		if brand == b {
			return CompressionAV1, true
		}
	}
	for _, b := range heifJpegBrands {
		if brand == b {
			return CompressionHEIFJpeg, true
		}
	}
	return CompressionUnknown, false
}

func isHeifMetaBrand(brand string) bool {
	for _, b := range heifMetaBrands {
		if brand == b {
			return true
		}
	}
	return false
}

func matchHeif(header []byte, r *reader) (ImageType, bool) {
	if string(header[4:8]) != "ftyp" {
		return ImageType{}, false
	}
	t := ImageType{Format: FormatHeif, Compression: CompressionUnknown}

	brand := string(header[8:12])
	if c, ok := heifBrandCompression(brand); ok {
		t.Compression = c
		return t, true
	}
	if isHeifMetaBrand(brand) {
		// The major brand is structural; the codec brand follows in the
		// compatible-brands list after the 4-byte minor version.
		var buf [12]byte
		if err := r.seek(12); err != nil {
			return t, true
		}
		if err := r.readFull(buf[:]); err != nil {
			return t, true
		}
		brand2 := string(buf[4:8])
		if c, ok := heifBrandCompression(brand2); ok {
			t.Compression = c
			return t, true
		}
		if isHeifMetaBrand(brand2) {
			if c, ok := heifBrandCompression(string(buf[8:12])); ok {
				t.Compression = c
			}
		}
	}
	return t, true
}

// sizeHeif walks meta > iprp > ipco and takes the largest ispe property
// by area; multi-image files record one ispe per image. An irot of 90
// or 270 degrees swaps the reported dimensions.
func sizeHeif(r *reader) (Dimension, error) {
	if err := r.seek(0); err != nil {
		return Dimension{}, err
	}
	ftypSize, err := r.u32be()
	if err != nil {
		return Dimension{}, err
	}
	if ftypSize < 8 {
		return Dimension{}, corruptf("heif: ftyp size %d", ftypSize)
	}
	if err := r.seek(int64(ftypSize)); err != nil {
		return Dimension{}, err
	}
	if _, err := findBox(r, "meta"); err != nil {
		return Dimension{}, err
	}
	if _, err := r.u32be(); err != nil { // meta version and flags
		return Dimension{}, err
	}
	if _, err := findBox(r, "iprp"); err != nil {
		return Dimension{}, err
	}
	ipcoSize, err := findBox(r, "ipco")
	if err != nil {
		return Dimension{}, err
	}

	var maxW, maxH int
	var found bool
	var rotation byte
walk:
	for {
		tag, size, err := readBoxHeader(r)
		if err != nil {
			break
		}
		if size < 8 {
			return Dimension{}, corruptf("heif: property box size %d", size)
		}
		switch {
		case tag == "ispe":
			if _, err := r.u32be(); err != nil { // version and flags
				return Dimension{}, err
			}
			w, err := r.u32be()
			if err != nil {
				return Dimension{}, err
			}
			h, err := r.u32be()
			if err != nil {
				return Dimension{}, err
			}
			found = true
			if int(w)*int(h) > maxW*maxH {
				maxW, maxH = int(w), int(h)
			}
		case tag == "irot":
			b, err := r.readByte()
			if err != nil {
				return Dimension{}, err
			}
			rotation = b
		case size >= ipcoSize:
			// Walked out of the property container.
			break walk
		default:
			ipcoSize -= size
			if err := r.skip(int64(size) - 8); err != nil {
				return Dimension{}, err
			}
		}
	}
	if !found {
		return Dimension{}, ErrInsufficientData
	}
	// irot counts 90-degree anti-clockwise steps.
	if rotation == 1 || rotation == 3 {
		maxW, maxH = maxH, maxW
	}
	return Dimension{Width: maxW, Height: maxH}, nil
}
