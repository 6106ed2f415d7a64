package tabular

import (
	"strings"
	"time"
)

// ContentType is the MIME type of the documents produced by this package.
const ContentType = "text/csv"

const defaultBufferSize = 4 * 1024

// Option configures a Writer or the CSV codec.
type Option func(*config)

type config struct {
	contentType string
	bufferSize  int
	hashers     map[HashAlgo]Hasher
	maskers     map[MaskType]Masker
	codecs      map[string]Codec
	observer    Observer
}

func newConfig(opts []Option) *config {
	cfg := &config{
		contentType: ContentType,
		bufferSize:  defaultBufferSize,
		hashers:     builtinHashers(),
		maskers:     builtinMaskers(),
		codecs:      make(map[string]Codec),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithHasher registers or replaces the hasher used for `csv.hash:"<algo>"`.
func WithHasher(algo HashAlgo, h Hasher) Option {
	return func(c *config) {
		c.hashers[algo] = h
	}
}

// WithMasker registers or replaces the masker used for `csv.mask:"<type>"`.
func WithMasker(mt MaskType, m Masker) Option {
	return func(c *config) {
		c.maskers[mt] = m
	}
}

// WithCellCodec registers a codec for `csv.encode:"<name>"`, where name is the
// subtype of the codec's content type ("application/json" registers "json").
func WithCellCodec(codec Codec) Option {
	return func(c *config) {
		c.codecs[CodecName(codec)] = codec
	}
}

// WithBufferSize sets the size of the write buffer in front of the sink.
// Values below 16 bytes are ignored.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n >= 16 {
			c.bufferSize = n
		}
	}
}

// WithContentType overrides the reported content type, for example to add a
// charset parameter. The encoding itself is unchanged.
func WithContentType(ct string) Option {
	return func(c *config) {
		if ct != "" {
			c.contentType = ct
		}
	}
}

// Stats summarises one finished encode.
type Stats struct {
	ContentType string
	TypeName    string
	Rows        int
	Size        int
	Duration    time.Duration
	Err         error
}

// Observer receives a Stats for every encode run by Encode, EncodeAll,
// EncodeFrom, EncodeRows or the CSV codec. It is called synchronously.
type Observer interface {
	ObserveEncode(Stats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Stats)

// ObserveEncode calls f(s).
func (f ObserverFunc) ObserveEncode(s Stats) {
	f(s)
}

// WithObserver reports encode outcomes to o.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}

// CodecName returns the short name a codec is registered under for csv.encode tags.
func CodecName(codec Codec) string {
	ct := codec.ContentType()
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	ct = strings.TrimSpace(ct)
	if i := strings.LastIndexByte(ct, '/'); i >= 0 {
		ct = ct[i+1:]
	}
	if i := strings.LastIndexByte(ct, '+'); i >= 0 {
		ct = ct[i+1:]
	}
	return strings.ToLower(ct)
}

// validate checks that every transformation named by the schema's tags has a
// registered handler.
func (c *config) validate(s *Schema) error {
	for _, f := range s.Fields {
		p := f.plan
		if p.encode != "" {
			if _, ok := c.codecs[p.encode]; !ok {
				return newConfigError(ErrMissingCodec, p.encode, f.Name)
			}
		}
		if p.hash != "" {
			if _, ok := c.hashers[p.hash]; !ok {
				return newConfigError(ErrMissingHasher, string(p.hash), f.Name)
			}
		}
		if p.mask != "" {
			if _, ok := c.maskers[p.mask]; !ok {
				return newConfigError(ErrMissingMasker, string(p.mask), f.Name)
			}
		}
	}
	return nil
}
