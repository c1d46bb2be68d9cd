// Package config holds the process-scoped startup configuration for the
// corvid engine binary: transposition table size, worker count, default
// time budget and an optional opening book path. All of it is fixed for
// the lifetime of the process; there is no per-request reconfiguration.
package config

import "time"

// Config is parsed once from command-line flags in cmd/corvid.
type Config struct {
	// HashBits is the transposition table size as log2(slot count).
	HashBits uint
	// Workers is the number of goroutines the coordinator fans root moves
	// across during a search. One disables the root split.
	Workers int
	// DefaultTimeLimit is used by the UCI adapter for every "go" that gives
	// neither depth nor movetime, including one that carries clock data.
	DefaultTimeLimit time.Duration
	// BookPath, if non-empty, is a Polyglot-format opening book to load
	// at startup.
	BookPath string
}

// Default returns the configuration the binary starts with absent flags.
func Default() Config {
	return Config{
		HashBits:         20, // 2^20 slots, 24 MB
		Workers:          1,
		DefaultTimeLimit: 2 * time.Second,
	}
}
