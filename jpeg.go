package imgdim

func matchJpeg(header []byte, _ *reader) (ImageType, bool) {
	if header[0] != 0xFF || header[1] != 0xD8 || header[2] != 0xFF {
		return ImageType{}, false
	}
	return ImageType{Format: FormatJpeg}, true
}

// sizeJpeg walks marker segments, skipping each by its declared length,
// until a start-of-frame marker carries the dimensions.
func sizeJpeg(r *reader) (Dimension, error) {
	if err := r.seek(2); err != nil {
		return Dimension{}, err
	}
	for {
		b, err := r.readByte()
		if err != nil {
			return Dimension{}, err
		}
		if b != 0xFF {
			// Stray padding between segments.
			continue
		}
		marker, err := r.readByte()
		if err != nil {
			return Dimension{}, err
		}
		for marker == 0xFF { // fill bytes
			if marker, err = r.readByte(); err != nil {
				return Dimension{}, err
			}
		}
		switch {
		case marker == 0x01 || (marker >= 0xD0 && marker <= 0xD8):
			// Standalone markers have no length field.
			continue
		case marker == 0xD9:
			return Dimension{}, corruptf("jpeg: end of image before frame header")
		}
		length, err := r.u16be()
		if err != nil {
			return Dimension{}, err
		}
		if isJpegSOF(marker) {
			if length < 7 {
				return Dimension{}, corruptf("jpeg: frame header length %d", length)
			}
			if _, err := r.readByte(); err != nil { // sample precision
				return Dimension{}, err
			}
			h, err := r.u16be()
			if err != nil {
				return Dimension{}, err
			}
			w, err := r.u16be()
			if err != nil {
				return Dimension{}, err
			}
			return Dimension{Width: int(w), Height: int(h)}, nil
		}
		if length < 2 {
			return Dimension{}, corruptf("jpeg: segment %#x length %d", marker, length)
		}
		if err := r.skip(int64(length) - 2); err != nil {
			return Dimension{}, err
		}
	}
}

func isJpegSOF(marker byte) bool {
	// SOF0-SOF15 minus DHT (C4), JPG (C8) and DAC (CC).
	switch marker {
	case 0xC0, 0xC1, 0xC2, 0xC3, 0xC5, 0xC6, 0xC7,
		0xC9, 0xCA, 0xCB, 0xCD, 0xCE, 0xCF:
		return true
	}
	return false
}
