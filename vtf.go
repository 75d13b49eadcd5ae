package imgdim

func matchVtf(header []byte, _ *reader) (ImageType, bool) {
	if string(header[:4]) != "VTF\x00" {
		return ImageType{}, false
	}
	return ImageType{Format: FormatVtf}, true
}

// Signature, two version words and the header size precede the 16-bit
// dimension fields.
func sizeVtf(r *reader) (Dimension, error) {
	if err := r.seek(16); err != nil {
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
