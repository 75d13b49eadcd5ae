package imgdim

func matchPsd(header []byte, _ *reader) (ImageType, bool) {
	if string(header[:4]) != "8BPS" {
		return ImageType{}, false
	}
	return ImageType{Format: FormatPsd}, true
}

func sizePsd(r *reader) (Dimension, error) {
	if err := r.seek(4); err != nil {
		return Dimension{}, err
	}
	version, err := r.u16be()
	if err != nil {
		return Dimension{}, err
	}
	// 1 is PSD, 2 is PSB; the dimension fields sit at the same offsets
	// in both, only their permitted ranges differ.
	if version != 1 && version != 2 {
		return Dimension{}, corruptf("psd: version %d", version)
	}
	if err := r.seek(14); err != nil {
		return Dimension{}, err
	}
	h, err := r.u32be()
	if err != nil {
		return Dimension{}, err
	}
	w, err := r.u32be()
	if err != nil {
		return Dimension{}, err
	}
	return Dimension{Width: int(w), Height: int(h)}, nil
}
