package imgdim

// TGA has no magic bytes, so this matcher stays last in the dispatch
// table and only sanity-checks the color-map and image-type fields.
func matchTga(header []byte, _ *reader) (ImageType, bool) {
	if header[1] != 0 && header[1] != 1 {
		return ImageType{}, false
	}
	switch header[2] {
	case 1, 2, 3, 9, 10, 11:
		return ImageType{Format: FormatTga}, true
	}
	return ImageType{}, false
}

func sizeTga(r *reader) (Dimension, error) {
	if err := r.seek(12); err != nil {
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
