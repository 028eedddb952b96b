package cfg

import "sync/atomic"

var defaultStore atomic.Pointer[Store]

func init() {
	defaultStore.Store(New())
}

// Default returns the process-wide store used by the package-level
// functions. Before Init it is empty.
func Default() *Store {
	return defaultStore.Load()
}

// SetDefault replaces the process-wide store. A nil store is ignored.
func SetDefault(s *Store) {
	if s != nil {
		defaultStore.Store(s)
	}
}

// Init creates a store with opts, loads it and makes it the default.
// On error the previous default store is kept.
//
//	// read cfg.json and cfg.prod.json from two extra directories
//	err := cfg.Init(cfg.WithStage("prod"), cfg.WithDirs("/etc/app1", "/etc/app2"))
func Init(opts ...Option) error {
	s := New(opts...)
	if err := s.Load(); err != nil {
		return err
	}
	defaultStore.Store(s)
	return nil
}

// All returns the default store's mapping.
func All() map[string]Value { return Default().All() }

// Get reads key from the default store.
func Get(key string) Value { return Default().Get(key) }

// GetOr reads key from the default store with a default.
func GetOr(key string, def Value) Value { return Default().GetOr(key, def) }

// JGet reads a composed key from the default store.
func JGet(parts ...string) Value { return Default().JGet(parts...) }

// JGetOr reads a composed key from the default store with a default.
func JGetOr(def Value, parts ...string) Value { return Default().JGetOr(def, parts...) }

// Set writes key in the default store.
func Set(key string, v Value) Value { return Default().Set(key, v) }

// SetOr writes key in the default store, substituting def for null.
func SetOr(key string, v, def Value) Value { return Default().SetOr(key, v, def) }

// SetMany writes several keys in the default store.
func SetMany(values map[string]any) map[string]Value { return Default().SetMany(values) }

// IsStage checks the active stage of the default store.
func IsStage(name string) bool { return Default().IsStage(name) }
