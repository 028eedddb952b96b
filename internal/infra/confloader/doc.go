// Package confloader stages configuration sources in a koanf instance.
//
// Sources are merged in the order they are loaded and later sources win.
// Merging is shallow: a top-level key from a later source replaces the
// earlier value wholesale, nested objects included. Supported sources:
//
//   - Maps (programmatic overrides and bookkeeping entries)
//   - JSON files, decoded from a configurable text encoding
//   - Environment variables with a common prefix
//
// A Loader is a staging area. Callers copy the result out with All once
// every source loaded successfully, which keeps a failed load from
// leaking into state that is already in use.
package confloader
