package barf

import "github.com/puzpuzpuz/xsync/v4"

// Encoding is a named variable-length integer encoder. Implementations
// convert one integer into an ordered, finite group of bytes and append
// it to a byte sink; the byte layout is entirely encoding-defined.
//
// The package defines no encodings of its own. Adapter packages such as
// leb128 and vint64 register theirs at init time, so importing an
// adapter is what makes its name resolvable.
type Encoding interface {
	// Name identifies the encoding, e.g. "leb128".
	Name() string

	// AppendUint appends the encoding of an unsigned integer.
	AppendUint(dst Barfer[byte], v uint64) error

	// AppendInt appends the encoding of a signed integer.
	AppendInt(dst Barfer[byte], v int64) error
}

// encodings maps encoding names to their implementations. A concurrent
// map because adapter init and lookups may race during program start.
var encodings = xsync.NewMap[string, Encoding]()

// RegisterEncoding makes e resolvable by name. Registering two encodings
// with the same name keeps the last one.
func RegisterEncoding(e Encoding) {
	encodings.Store(e.Name(), e)
}

// LookupEncoding resolves a registered encoding by name.
func LookupEncoding(name string) (Encoding, bool) {
	return encodings.Load(name)
}
