package confloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/file"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is the text encoding assumed for configuration files.
const DefaultEncoding = "utf-8"

var (
	// ErrReadBytesNotSupported is returned when ReadBytes is called on a map provider.
	ErrReadBytesNotSupported = errors.New("confloader: ReadBytes not supported by map provider, use Read() instead")

	// ErrReadNotSupported is returned when Read is called on a file provider.
	ErrReadNotSupported = errors.New("confloader: Read not supported by file provider, use ReadBytes() instead")

	// ErrUnknownEncoding is returned for encoding names that are not
	// registered in the WHATWG encoding index.
	ErrUnknownEncoding = errors.New("confloader: unknown encoding")
)

// mapProvider is a koanf provider that loads configuration from a map.
type mapProvider map[string]any

// ReadBytes returns an error as map provider doesn't support byte serialization.
func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

// Read returns the configuration map.
func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}

// encodedFile reads a file through koanf's file provider and converts its
// bytes to UTF-8. A nil enc passes bytes through unchanged.
type encodedFile struct {
	src *file.File
	enc encoding.Encoding
}

func (f encodedFile) ReadBytes() ([]byte, error) {
	b, err := f.src.ReadBytes()
	if err != nil {
		return nil, err
	}
	if f.enc == nil {
		return b, nil
	}
	return f.enc.NewDecoder().Bytes(b)
}

func (f encodedFile) Read() (map[string]any, error) {
	return nil, ErrReadNotSupported
}

// ResolveEncoding looks up an encoding by its WHATWG name or label
// ("utf-8", "latin1", "windows-1252", "shift_jis", ...). An empty name
// and any UTF-8 label resolve to nil, meaning no conversion.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if canonical, err := htmlindex.Name(enc); err == nil && canonical == DefaultEncoding {
		return nil, nil
	}
	return enc, nil
}
