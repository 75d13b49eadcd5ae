package imgdim

func matchGif(header []byte, _ *reader) (ImageType, bool) {
	if string(header[:4]) != "GIF8" || header[5] != 'a' {
		return ImageType{}, false
	}
	if header[4] != '7' && header[4] != '9' {
		return ImageType{}, false
	}
	return ImageType{Format: FormatGif}, true
}

// The logical screen descriptor follows the 6-byte version magic.
func sizeGif(r *reader) (Dimension, error) {
	if err := r.seek(6); err != nil {
		return Dimension{}, err
	}
	w, err := r.u16le()
	if err != nil {
		return Dimension{}, err
	}
	h, err := r.u16le()
	if err != nil {
		return Dimension{}, err
	}
	return Dimension{Width: int(w), Height: int(h)}, nil
}
