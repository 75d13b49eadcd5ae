package imgdim

func matchQoi(header []byte, _ *reader) (ImageType, bool) {
	if string(header[:4]) != "qoif" {
		return ImageType{}, false
	}
	return ImageType{Format: FormatQoi}, true
}

func sizeQoi(r *reader) (Dimension, error) {
	if err := r.seek(4); err != nil {
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
