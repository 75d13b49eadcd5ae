package imgdim

func matchIlbm(header []byte, _ *reader) (ImageType, bool) {
	if string(header[:4]) != "FORM" || string(header[8:12]) != "ILBM" {
		return ImageType{}, false
	}
	return ImageType{Format: FormatIlbm}, true
}

// sizeIlbm walks IFF chunks (4-byte tag, big-endian length, even
// padding) inside the FORM until the BMHD bitmap header.
func sizeIlbm(r *reader) (Dimension, error) {
	end, err := r.length()
	if err != nil {
		return Dimension{}, err
	}
	if err := r.seek(12); err != nil {
		return Dimension{}, err
	}
	for {
		cur, err := r.offset()
		if err != nil {
			return Dimension{}, err
		}
		if cur >= end {
			return Dimension{}, corruptf("ilbm: no BMHD chunk")
		}
		var tag [4]byte
		if err := r.readFull(tag[:]); err != nil {
			return Dimension{}, err
		}
		clen, err := r.u32be()
		if err != nil {
			return Dimension{}, err
		}
		if string(tag[:]) == "BMHD" {
			if clen < 4 {
				return Dimension{}, corruptf("ilbm: BMHD length %d", clen)
			}
			w, err := r.u16be()
			if err != nil {
				return Dimension{}, err
			}
			h, err := r.u16be()
			if err != nil {
				return Dimension{}, err
			}
			return Dimension{Width: int(w), Height: int(h)}, nil
		}
		skip := int64(clen)
		if clen&1 == 1 { // chunks are padded to even lengths
			skip++
		}
		cur, err = r.offset()
		if err != nil {
			return Dimension{}, err
		}
		if cur+skip > end {
			return Dimension{}, corruptf("ilbm: chunk %q of %d bytes runs past end of file", tag[:], clen)
		}
		if err := r.skip(skip); err != nil {
			return Dimension{}, err
		}
	}
}
