package imgdim

import (
	"io"
)

// headerLen is how much of the source a signature matcher may inspect.
// No supported format needs more than 12 bytes to be identified, except
// HEIF brand chains and texture compression sniffs, whose matchers go
// back to the reader themselves.
const headerLen = 12

type matchFunc func(header []byte, r *reader) (ImageType, bool)
type sizeFunc func(r *reader) (Dimension, error)

type formatEntry struct {
	format Format
	match  matchFunc
	size   sizeFunc
}

// formatTable lists every decoder in match priority order. Specific
// signatures come before ambiguous ones: the RIFF and ISOBMFF shells are
// disambiguated inside their matchers, ATC's PKM data types are tested
// before the generic PKM matcher, and TGA stays last because it has no
// magic at all.
var formatTable = []formatEntry{
	{FormatJpeg, matchJpeg, sizeJpeg},
	{FormatPng, matchPng, sizePng},
	{FormatGif, matchGif, sizeGif},
	{FormatTiff, matchTiff, sizeTiff},
	{FormatWebp, matchWebp, sizeWebp},
	{FormatHeif, matchHeif, sizeHeif},
	{FormatJxl, matchJxl, sizeJxl},
	{FormatBmp, matchBmp, sizeBmp},
	{FormatPsd, matchPsd, sizePsd},
	{FormatIco, matchIco, sizeIco},
	{FormatAseprite, matchAseprite, sizeAseprite},
	{FormatAstc, matchAstc, sizeAstc},
	{FormatAtc, matchAtc, sizePkm},
	{FormatPvr, matchPvr, sizePvr},
	{FormatPkm, matchPkm, sizePkm},
	{FormatExr, matchExr, sizeExr},
	{FormatHdr, matchHdr, sizeHdr},
	{FormatDds, matchDds, sizeDds},
	{FormatKtx2, matchKtx2, sizeKtx2},
	{FormatQoi, matchQoi, sizeQoi},
	{FormatFarbfeld, matchFarbfeld, sizeFarbfeld},
	{FormatPnm, matchPnm, sizePnm},
	{FormatVtf, matchVtf, sizeVtf},
	{FormatIlbm, matchIlbm, sizeIlbm},
	{FormatTga, matchTga, sizeTga},
}

// Sniffer is a format-detection engine built from an explicit set of
// enabled formats. It holds no per-call state: one Sniffer may be used
// from any number of goroutines as long as each call owns its source.
type Sniffer struct {
	entries []formatEntry
	sizes   map[Format]sizeFunc
}

// Option configures a Sniffer at construction.
type Option func(*snifferConfig)

type snifferConfig struct {
	enabled map[Format]bool
}

// WithFormats restricts the Sniffer to exactly the given formats.
func WithFormats(formats ...Format) Option {
	return func(c *snifferConfig) {
		c.enabled = make(map[Format]bool, len(formats))
		for _, f := range formats {
			c.enabled[f] = true
		}
	}
}

// WithoutFormats removes formats from the enabled set.
func WithoutFormats(formats ...Format) Option {
	return func(c *snifferConfig) {
		if c.enabled == nil {
			c.enabled = make(map[Format]bool, len(formatTable))
			for _, e := range formatTable {
				c.enabled[e.format] = true
			}
		}
		for _, f := range formats {
			delete(c.enabled, f)
		}
	}
}

// New builds a Sniffer. With no options every format is enabled. The
// matcher table is filtered here once, so a disabled format costs
// nothing per call and probes of it report ErrUnsupportedFormat exactly
// like an unrecognized signature.
func New(opts ...Option) *Sniffer {
	var c snifferConfig
	for _, opt := range opts {
		opt(&c)
	}
	s := &Sniffer{sizes: make(map[Format]sizeFunc, len(formatTable))}
	for _, e := range formatTable {
		if c.enabled != nil && !c.enabled[e.format] {
			continue
		}
		s.entries = append(s.entries, e)
		s.sizes[e.format] = e.size
	}
	return s
}

var defaultSniffer = New()

// ReaderType identifies the format of a seekable source. The first
// matching signature commits: a structural failure inside the matched
// decoder is reported as is, never reinterpreted as another format.
func (s *Sniffer) ReaderType(src io.ReadSeeker) (ImageType, error) {
	r := newReader(src)
	return s.detect(r)
}

func (s *Sniffer) detect(r *reader) (ImageType, error) {
	header := make([]byte, headerLen)
	if err := r.seek(0); err != nil {
		return ImageType{}, err
	}
	if err := r.readFull(header); err != nil {
		return ImageType{}, err
	}
	for _, e := range s.entries {
		if t, ok := e.match(header, r); ok {
			return t, nil
		}
	}
	return ImageType{}, ErrUnsupportedFormat
}

// ReaderSize identifies the format of a seekable source and decodes its
// dimensions from the header alone.
func (s *Sniffer) ReaderSize(src io.ReadSeeker) (Dimension, error) {
	r := newReader(src)
	t, err := s.detect(r)
	if err != nil {
		return Dimension{}, err
	}
	size, ok := s.sizes[t.Format]
	if !ok {
		return Dimension{}, ErrUnsupportedFormat
	}
	return size(r)
}
