package confloader

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/encoding"
)

// Loader merges configuration sources into a koanf instance.
type Loader struct {
	k   *koanf.Koanf
	enc encoding.Encoding
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithEncoding sets the encoding configuration files are decoded from.
// Resolve names with ResolveEncoding; nil means UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(l *Loader) {
		l.enc = enc
	}
}

// NewLoader creates a new, empty loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k: koanf.New("."),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// shallowMerge copies the top-level keys of src over dest. Nested maps
// are replaced, never merged.
func shallowMerge(src, dest map[string]any) error {
	for key, value := range src {
		dest[key] = value
	}
	return nil
}

// LoadMap merges a map of values.
func (l *Loader) LoadMap(data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	if err := l.k.Load(mapProvider(data), nil, koanf.WithMergeFunc(shallowMerge)); err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	return nil
}

// Set merges a single value.
func (l *Loader) Set(key string, value any) error {
	return l.LoadMap(map[string]any{key: value})
}

// LoadFile merges the top-level keys of a JSON object file. The returned
// error is the read or parse failure as is; callers name the file.
func (l *Loader) LoadFile(path string) error {
	provider := encodedFile{src: file.Provider(path), enc: l.enc}
	return l.k.Load(provider, json.Parser(), koanf.WithMergeFunc(shallowMerge))
}

// LoadEnv merges every environment variable starting with prefix. key
// maps the variable name without the prefix to a configuration key; an
// empty result skips the variable. An empty prefix loads nothing.
func (l *Loader) LoadEnv(prefix string, key func(name string) string) error {
	if prefix == "" {
		return nil
	}

	transform := func(s string) string {
		return key(strings.TrimPrefix(s, prefix))
	}

	provider := env.Provider(prefix, ".", transform)
	if err := l.k.Load(provider, nil, koanf.WithMergeFunc(shallowMerge)); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// All returns a deep copy of the merged configuration.
func (l *Loader) All() map[string]any {
	return l.k.Raw()
}
