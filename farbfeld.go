package imgdim

func matchFarbfeld(header []byte, _ *reader) (ImageType, bool) {
	if string(header[:8]) != "farbfeld" {
		return ImageType{}, false
	}
	return ImageType{Format: FormatFarbfeld}, true
}

func sizeFarbfeld(r *reader) (Dimension, error) {
	if err := r.seek(8); err != nil {
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
	return Dimension{Width: int(w), Height: int(h)}, nil
}
