package imgdim

// An EXR header is a list of self-describing attributes; the dataWindow
// box2i attribute carries the image bounds as min/max coordinates.

var exrMagic = []byte{0x76, 0x2F, 0x31, 0x01}

func matchExr(header []byte, _ *reader) (ImageType, bool) {
	for i, b := range exrMagic {
		if header[i] != b {
			return ImageType{}, false
		}
	}
	return ImageType{Format: FormatExr}, true
}

func sizeExr(r *reader) (Dimension, error) {
	if err := r.seek(8); err != nil { // magic + version field
		return Dimension{}, err
	}
	end, err := r.length()
	if err != nil {
		return Dimension{}, err
	}
	for {
		name, err := r.readCString(256)
		if err != nil {
			return Dimension{}, err
		}
		if name == "" {
			// End of the attribute list without a data window.
			return Dimension{}, corruptf("exr: no dataWindow attribute")
		}
		attrType, err := r.readCString(256)
		if err != nil {
			return Dimension{}, err
		}
		attrSize, err := r.u32le()
		if err != nil {
			return Dimension{}, err
		}
		if name == "dataWindow" && attrType == "box2i" {
			if attrSize < 16 {
				return Dimension{}, corruptf("exr: dataWindow size %d", attrSize)
			}
			var box [4]int32
			for i := range box {
				v, err := r.u32le()
				if err != nil {
					return Dimension{}, err
				}
				box[i] = int32(v)
			}
			xMin, yMin, xMax, yMax := box[0], box[1], box[2], box[3]
			if xMax < xMin || yMax < yMin {
				return Dimension{}, corruptf("exr: inverted data window")
			}
			return Dimension{
				Width:  int(xMax-xMin) + 1,
				Height: int(yMax-yMin) + 1,
			}, nil
		}
		cur, err := r.offset()
		if err != nil {
			return Dimension{}, err
		}
		if cur+int64(attrSize) > end {
			return Dimension{}, corruptf("exr: attribute %q of %d bytes runs past end of file", name, attrSize)
		}
		if err := r.skip(int64(attrSize)); err != nil {
			return Dimension{}, err
		}
	}
}
