package imgdim

// PowerVR containers come in two generations: the legacy layout that
// opens with its own header size (always 52) and the versioned PVR3
// layout with a "PVR\x03" magic and a 64-bit pixel-format field.

func matchPvr(header []byte, r *reader) (ImageType, bool) {
	v3 := string(header[:4]) == "PVR\x03"
	legacy := uint32(header[0])|uint32(header[1])<<8|
		uint32(header[2])<<16|uint32(header[3])<<24 == 52
	if !v3 && !legacy {
		return ImageType{}, false
	}
	c := CompressionUnknown
	if v3 {
		c = pvr3Compression(r)
	}
	return ImageType{Format: FormatPvr, Compression: c}, true
}

func sizePvr(r *reader) (Dimension, error) {
	if err := r.seek(0); err != nil {
		return Dimension{}, err
	}
	var magic [4]byte
	if err := r.readFull(magic[:]); err != nil {
		return Dimension{}, err
	}
	at := int64(4) // legacy: height and width follow the header size
	if string(magic[:]) == "PVR\x03" {
		at = 24 // v3: height at 24, width at 28
	}
	if err := r.seek(at); err != nil {
		return Dimension{}, err
	}
	h, err := r.u32le()
	if err != nil {
		return Dimension{}, err
	}
	w, err := r.u32le()
	if err != nil {
		return Dimension{}, err
	}
	return Dimension{Width: int(w), Height: int(h)}, nil
}

// The legacy header has no pixel-format enum this map covers, so only
// PVR3 files get a concrete compression code.
func pvr3Compression(r *reader) Compression {
	if err := r.seek(8); err != nil {
		return CompressionUnknown
	}
	format, err := r.u64le()
	if err != nil {
		return CompressionUnknown
	}
	switch format {
	case 0:
		return CompressionPVRTC2BPPRGB
	case 1:
		return CompressionPVRTC2BPPRGBA
	case 2:
		return CompressionPVRTC4BPPRGB
	case 3:
		return CompressionPVRTC4BPPRGBA
	case 22:
		return CompressionETC2RGB
	case 23:
		return CompressionETC2RGBA8
	case 24:
		return CompressionETC2RGBA1
	case 25:
		return CompressionEACR11
	case 26:
		return CompressionEACRG11
	}
	return CompressionUnknown
}
