package imgdim

// The Aseprite header starts with the file size, so the 0xA5E0 magic
// word sits at offset 4.
func matchAseprite(header []byte, _ *reader) (ImageType, bool) {
	if header[4] != 0xE0 || header[5] != 0xA5 {
		return ImageType{}, false
	}
	return ImageType{Format: FormatAseprite}, true
}

func sizeAseprite(r *reader) (Dimension, error) {
	if err := r.seek(8); err != nil {
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
