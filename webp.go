// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgdim

import (
	"io"

	"golang.org/x/image/riff"
)

var (
	fccWEBP = riff.FourCC{'W', 'E', 'B', 'P'}
	fccVP8  = riff.FourCC{'V', 'P', '8', ' '}
	fccVP8L = riff.FourCC{'V', 'P', '8', 'L'}
	fccVP8X = riff.FourCC{'V', 'P', '8', 'X'}
)

func matchWebp(header []byte, _ *reader) (ImageType, bool) {
	if string(header[:4]) != "RIFF" || string(header[8:12]) != "WEBP" {
		return ImageType{}, false
	}
	return ImageType{Format: FormatWebp}, true
}

// sizeWebp walks the RIFF chunk list until one of the three image
// chunks appears; each carries the dimensions in its own layout.
func sizeWebp(r *reader) (Dimension, error) {
	if err := r.seek(0); err != nil {
		return Dimension{}, err
	}
	formType, rr, err := riff.NewReader(r.src)
	if err != nil {
		return Dimension{}, riffErr(err)
	}
	if formType != fccWEBP {
		return Dimension{}, corruptf("webp: RIFF form type %q", formType[:])
	}
	for {
		chunkID, chunkLen, chunkData, err := rr.Next()
		if err == io.EOF {
			return Dimension{}, corruptf("webp: no image chunk")
		}
		if err != nil {
			return Dimension{}, riffErr(err)
		}
		switch chunkID {
		case fccVP8:
			return sizeVP8(chunkData)
		case fccVP8L:
			return sizeVP8L(chunkData)
		case fccVP8X:
			if chunkLen != 10 {
				return Dimension{}, corruptf("webp: VP8X chunk length %d", chunkLen)
			}
			var b [10]byte
			if _, err := io.ReadFull(chunkData, b[:]); err != nil {
				return Dimension{}, eofErr(err)
			}
			w := int(b[4]) | int(b[5])<<8 | int(b[6])<<16
			h := int(b[7]) | int(b[8])<<8 | int(b[9])<<16
			return Dimension{Width: w + 1, Height: h + 1}, nil
		}
	}
}

// riffErr classifies errors from the RIFF walker: a clean end of data
// is a truncation, anything else is a malformed chunk list.
func riffErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrInsufficientData
	}
	return corruptf("webp: %v", err)
}

// sizeVP8 reads a VP8 key frame header: a 3-byte frame tag, the
// 0x9d012a sync code, then 14-bit dimensions.
func sizeVP8(chunk io.Reader) (Dimension, error) {
	var b [10]byte
	if _, err := io.ReadFull(chunk, b[:3]); err != nil {
		return Dimension{}, eofErr(err)
	}
	if b[0]&1 != 0 {
		return Dimension{}, corruptf("vp8: first frame is not a key frame")
	}
	if _, err := io.ReadFull(chunk, b[3:10]); err != nil {
		return Dimension{}, eofErr(err)
	}
	if b[3] != 0x9d || b[4] != 0x01 || b[5] != 0x2a {
		return Dimension{}, corruptf("vp8: bad sync code")
	}
	w := int(b[7]&0x3f)<<8 | int(b[6])
	h := int(b[9]&0x3f)<<8 | int(b[8])
	return Dimension{Width: w, Height: h}, nil
}

// sizeVP8L reads the bit-packed VP8L header: an 0x2f magic byte, two
// 14-bit dimension-minus-one fields, an alpha hint and a version.
func sizeVP8L(chunk io.Reader) (Dimension, error) {
	br := &lsbBitReader{src: &byteReader{r: chunk}}
	magic, err := br.read(8)
	if err != nil {
		return Dimension{}, err
	}
	if magic != 0x2f {
		return Dimension{}, corruptf("vp8l: bad magic %#x", magic)
	}
	w, err := br.read(14)
	if err != nil {
		return Dimension{}, err
	}
	h, err := br.read(14)
	if err != nil {
		return Dimension{}, err
	}
	if _, err := br.read(1); err != nil { // alpha hint
		return Dimension{}, err
	}
	version, err := br.read(3)
	if err != nil {
		return Dimension{}, err
	}
	if version != 0 {
		return Dimension{}, corruptf("vp8l: version %d", version)
	}
	return Dimension{Width: int(w) + 1, Height: int(h) + 1}, nil
}
