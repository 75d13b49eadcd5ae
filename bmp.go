package imgdim

func matchBmp(header []byte, _ *reader) (ImageType, bool) {
	// "BM", then file size, then four reserved bytes that are always
	// zero. Checking the reserved bytes keeps plain "BM" text out.
	if header[0] != 'B' || header[1] != 'M' {
		return ImageType{}, false
	}
	if header[6] != 0 || header[7] != 0 || header[8] != 0 || header[9] != 0 {
		return ImageType{}, false
	}
	return ImageType{Format: FormatBmp}, true
}

func sizeBmp(r *reader) (Dimension, error) {
	if err := r.seek(18); err != nil {
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
	// Both fields are signed; a negative height marks a top-down bitmap.
	width, height := int(int32(w)), int(int32(h))
	if width < 0 {
		width = -width
	}
	if height < 0 {
		height = -height
	}
	return Dimension{Width: width, Height: height}, nil
}
