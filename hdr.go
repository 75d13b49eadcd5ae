package imgdim

import (
	"bytes"
	"strconv"
	"strings"
)

// Radiance HDR has a textual header; the resolution directive is an
// ASCII line like "-Y 768 +X 1024".

func matchHdr(header []byte, _ *reader) (ImageType, bool) {
	if bytes.HasPrefix(header, []byte("#?RADIANCE\n")) ||
		bytes.HasPrefix(header, []byte("#?RGBE\n")) {
		return ImageType{Format: FormatHdr}, true
	}
	return ImageType{}, false
}

func sizeHdr(r *reader) (Dimension, error) {
	if err := r.seek(0); err != nil {
		return Dimension{}, err
	}
	if _, err := r.readLine(16); err != nil { // format identifier
		return Dimension{}, err
	}
	for {
		// Header lines are short; a run-on line means this is not the
		// header we expect.
		line, err := r.readLine(256)
		if err != nil {
			return Dimension{}, err
		}
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-Y") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return Dimension{}, corruptf("hdr: resolution line %q", line)
		}
		height, err1 := strconv.Atoi(fields[1])
		width, err2 := strconv.Atoi(fields[3])
		if err1 != nil || err2 != nil {
			return Dimension{}, corruptf("hdr: resolution line %q", line)
		}
		return Dimension{Width: width, Height: height}, nil
	}
}
