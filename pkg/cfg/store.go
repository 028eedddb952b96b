package cfg

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/d3ck-org/d3ck-cfg/internal/infra/confloader"
	"github.com/d3ck-org/d3ck-cfg/internal/telemetry/logger"
)

// Store is an in-memory configuration mapping built from overrides and
// located files.
//
// A Store is not safe for concurrent mutation. The usual pattern is to
// Load once and read afterwards; callers that write from several
// goroutines must synchronise themselves.
type Store struct {
	opts  options
	data  map[string]Value
	files []string
	log   logger.Logger
}

// New creates an empty Store. Call Load to populate it.
func New(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		opts: o,
		data: make(map[string]Value),
		log:  newLogger(o.verbose, o.logOutput),
	}
}

func newLogger(verbose bool, w io.Writer) logger.Logger {
	if !verbose {
		return logger.Nop()
	}
	if w == nil {
		if def := logger.Default(); def.Enabled("debug") {
			return def
		}
		w = os.Stderr
	}
	l, err := logger.New(logger.Config{Level: "debug", Format: "text", Output: w})
	if err != nil {
		return logger.Nop()
	}
	return l
}

// Load rebuilds the mapping from scratch: initial overrides, the
// resolved stage under "_stage", the located files under "_cfgFiles",
// then every located file in order, each overwriting same-named keys.
//
// Load is all-or-nothing. If any file cannot be read or parsed the
// error is returned and the previous mapping stays in place.
func (s *Store) Load() (err error) {
	start := time.Now()
	log := s.log.With("load", ulid.Make().String())

	var files []string
	var keys int
	defer func() {
		if s.opts.observer != nil {
			s.opts.observer.ObserveLoad(LoadStats{
				Files:    len(files),
				Keys:     keys,
				Duration: time.Since(start),
				Err:      err,
			})
		}
	}()

	enc, err := confloader.ResolveEncoding(s.opts.encoding)
	if err != nil {
		return err
	}
	staging := confloader.NewLoader(confloader.WithEncoding(enc))

	overrides := make(map[string]any, len(s.opts.overrides))
	for k, v := range s.opts.overrides {
		overrides[k] = ValueOf(v).Raw()
	}
	if err := staging.LoadMap(overrides); err != nil {
		return err
	}

	stage := ResolveStage(s.opts.stage, s.opts.lookupEnv)
	if stage != "" {
		if err := staging.Set(KeyStage, stage); err != nil {
			return err
		}
	}

	files = locate(s.Locator(stage), log)
	if err := staging.Set(KeyFiles, ValueOf(files).Raw()); err != nil {
		return err
	}

	for _, file := range files {
		log.Debug("parsing cfg file", "path", file)
		if err := staging.LoadFile(file); err != nil {
			return &ParseError{File: file, Err: err}
		}
	}

	if err := staging.LoadEnv(s.opts.envPrefix, envKey); err != nil {
		return err
	}

	raw := staging.All()
	data := make(map[string]Value, len(raw))
	for k, v := range raw {
		data[k] = ValueOf(v)
	}
	keys = len(data)
	log.Debug(fmt.Sprintf("%d values added to cfg", keys), "stage", stage, "files", len(files))

	s.data = data
	s.files = files
	return nil
}

// Locate returns the files a Load would merge now, in merge order.
func (s *Store) Locate() []string {
	return locate(s.Locator(ResolveStage(s.opts.stage, s.opts.lookupEnv)), s.log)
}

// Locator returns the locate inputs this store uses for stage.
func (s *Store) Locator(stage string) LocateOptions {
	return LocateOptions{
		Stage:      stage,
		InstallDir: s.opts.installDir,
		EnvDirs:    EnvDirs(s.opts.lookupEnv),
		ScriptPath: s.opts.scriptPath,
		Dirs:       s.opts.dirs,
	}
}

// envKey maps an environment variable name without its prefix to a key:
// WEB_HOST becomes webHost.
func envKey(name string) string {
	var parts []string
	for _, p := range strings.Split(strings.ToLower(name), "_") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return JoinKey(parts...)
}

// Drop empties the mapping and forgets the loaded files.
func (s *Store) Drop() {
	s.data = make(map[string]Value)
	s.files = nil
}

// All returns the mapping itself, not a copy. Changes made through it
// are visible to every later accessor call.
func (s *Store) All() map[string]Value {
	return s.data
}

// Len returns the number of keys.
func (s *Store) Len() int {
	return len(s.data)
}

// Files returns the files merged by the last successful Load, in order.
// Unlike the "_cfgFiles" entry it cannot be overwritten by a file.
func (s *Store) Files() []string {
	out := make([]string, len(s.files))
	copy(out, s.files)
	return out
}

// Lookup returns the value stored under key and whether the key exists.
// A key explicitly set to null exists.
func (s *Store) Lookup(key string) (Value, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Get returns the value stored under key, or null.
func (s *Store) Get(key string) Value {
	return s.data[key]
}

// GetOr returns the value stored under key unless it is missing or null,
// in which case def is returned. false, 0 and "" are returned as stored.
func (s *Store) GetOr(key string, def Value) Value {
	if v, ok := s.data[key]; ok && !v.IsNull() {
		return v
	}
	return def
}

// JoinKey builds a key from name parts. The first part is used as is and
// every later part gets its first letter upper-cased:
// JoinKey("web", "host") is "webHost".
func JoinKey(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		r, size := utf8.DecodeRuneInString(p)
		if size == 0 {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}
	return b.String()
}

// JGet returns the value of the key composed from parts. Without parts it
// returns a shallow copy of the whole mapping as an object: adding or
// replacing its top-level keys does not change the store.
func (s *Store) JGet(parts ...string) Value {
	return s.JGetOr(Null(), parts...)
}

// JGetOr is JGet with a default for a missing or null key. Without parts
// it ignores def and returns the same copy as JGet.
func (s *Store) JGetOr(def Value, parts ...string) Value {
	if len(parts) == 0 {
		return ValueOf(s.data)
	}
	return s.GetOr(JoinKey(parts...), def)
}

// Set stores v under key and returns it. v may be null.
func (s *Store) Set(key string, v Value) Value {
	s.data[key] = v
	return v
}

// SetOr stores v under key, or def if v is null, and returns what was
// stored.
func (s *Store) SetOr(key string, v, def Value) Value {
	if v.IsNull() {
		v = def
	}
	return s.Set(key, v)
}

// SetMany stores every entry of values, overwriting existing keys, and
// returns the whole mapping (see All).
func (s *Store) SetMany(values map[string]any) map[string]Value {
	for k, v := range values {
		s.data[k] = ValueOf(v)
	}
	return s.data
}

// Stage returns the "_stage" entry if it holds a non-empty string.
func (s *Store) Stage() (string, bool) {
	stage, ok := s.data[KeyStage].Str()
	return stage, ok && stage != ""
}

// IsStage reports whether the "_stage" entry is exactly name.
func (s *Store) IsStage(name string) bool {
	stage, ok := s.data[KeyStage].Str()
	return ok && stage == name
}
