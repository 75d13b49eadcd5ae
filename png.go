package imgdim

import "bytes"

var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func matchPng(header []byte, _ *reader) (ImageType, bool) {
	if !bytes.HasPrefix(header, pngSignature) {
		return ImageType{}, false
	}
	return ImageType{Format: FormatPng}, true
}

func sizePng(r *reader) (Dimension, error) {
	if err := r.seek(8); err != nil {
		return Dimension{}, err
	}
	return pngIHDR(r)
}

// pngIHDR decodes the IHDR chunk at the cursor. Apple-flavored PNGs
// put a CgBI chunk before IHDR; it is skipped by its declared length.
// The ICO decoder also lands here for PNG-encoded directory entries.
func pngIHDR(r *reader) (Dimension, error) {
	clen, tag, err := pngChunkHeader(r)
	if err != nil {
		return Dimension{}, err
	}
	if tag == "CgBI" {
		if err := r.skip(int64(clen) + 4); err != nil {
			return Dimension{}, err
		}
		if clen, tag, err = pngChunkHeader(r); err != nil {
			return Dimension{}, err
		}
	}
	if tag != "IHDR" {
		return Dimension{}, corruptf("png: first chunk is %q, want IHDR", tag)
	}
	if clen < 8 {
		return Dimension{}, corruptf("png: IHDR length %d", clen)
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

func pngChunkHeader(r *reader) (uint32, string, error) {
	clen, err := r.u32be()
	if err != nil {
		return 0, "", err
	}
	var tag [4]byte
	if err := r.readFull(tag[:]); err != nil {
		return 0, "", err
	}
	return clen, string(tag[:]), nil
}
