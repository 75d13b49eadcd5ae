package imgdim

import "bytes"

func matchIco(header []byte, _ *reader) (ImageType, bool) {
	// Reserved word zero, type 1 (icon) or 2 (cursor), nonzero count.
	if header[0] != 0 || header[1] != 0 || header[3] != 0 {
		return ImageType{}, false
	}
	if header[2] != 1 && header[2] != 2 {
		return ImageType{}, false
	}
	if header[4] == 0 && header[5] == 0 {
		return ImageType{}, false
	}
	return ImageType{Format: FormatIco}, true
}

// sizeIco scans every directory entry and keeps the one with the
// largest area; a stored dimension byte of zero means 256. Ties keep
// the first entry. If the winner embeds a PNG, the PNG header wins
// over the directory fields, which it is allowed to contradict.
func sizeIco(r *reader) (Dimension, error) {
	if err := r.seek(4); err != nil {
		return Dimension{}, err
	}
	count, err := r.u16le()
	if err != nil {
		return Dimension{}, err
	}
	if count == 0 {
		return Dimension{}, corruptf("ico: empty directory")
	}

	var best Dimension
	var bestOffset, bestSize uint32
	for i := 0; i < int(count); i++ {
		var e [16]byte
		if err := r.readFull(e[:]); err != nil {
			return Dimension{}, err
		}
		w, h := int(e[0]), int(e[1])
		if w == 0 {
			w = 256
		}
		if h == 0 {
			h = 256
		}
		if w*h > best.Width*best.Height {
			best = Dimension{Width: w, Height: h}
			bestSize = uint32(e[8]) | uint32(e[9])<<8 | uint32(e[10])<<16 | uint32(e[11])<<24
			bestOffset = uint32(e[12]) | uint32(e[13])<<8 | uint32(e[14])<<16 | uint32(e[15])<<24
		}
	}

	end, err := r.length()
	if err != nil {
		return Dimension{}, err
	}
	if int64(bestOffset)+int64(bestSize) > end {
		return Dimension{}, corruptf("ico: entry data at %d+%d runs past end of file", bestOffset, bestSize)
	}
	if bestSize < icoPngProbeLen {
		return best, nil
	}
	if err := r.seek(int64(bestOffset)); err != nil {
		return Dimension{}, err
	}
	var sig [8]byte
	if err := r.readFull(sig[:]); err != nil {
		return Dimension{}, err
	}
	if !bytes.Equal(sig[:], pngSignature) {
		return best, nil
	}
	return pngIHDR(r)
}

// Minimum bytes a PNG-encoded entry needs for signature plus IHDR.
const icoPngProbeLen = 8 + 8 + 13
