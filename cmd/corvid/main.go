// corvid is a UCI chess engine built around an alpha-beta search
// coordinator over a mailbox move generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/corvidchess/corvid/pkg/book"
	"github.com/corvidchess/corvid/pkg/config"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/protocol/uci"
	"github.com/seekerror/logw"
)

var (
	hashMB   = flag.Uint("hash", 32, "Transposition table size in MB")
	workers  = flag.Int("workers", 1, "Number of search workers (root split)")
	bookFlag = flag.String("book", "", "Path to a Polyglot opening book (optional)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: corvid [options]

corvid is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	cfg := config.Default()
	cfg.Workers = *workers
	cfg.BookPath = *bookFlag
	if *hashMB > 0 {
		// Roughly 24 bytes/slot; pick log2(slots) from the requested MB.
		slots := (uint64(*hashMB) << 20) / 24
		bits := uint(0)
		for uint64(1)<<(bits+1) <= slots {
			bits++
		}
		cfg.HashBits = bits
	}

	var b *book.Book
	if cfg.BookPath != "" {
		loaded, err := book.Load(cfg.BookPath)
		if err != nil {
			logw.Exitf(ctx, "Failed to load book %v: %v", cfg.BookPath, err)
		}
		b = loaded
	}

	e := engine.New(ctx, "corvid", "corvidchess", engine.Options{
		HashBits: cfg.HashBits,
		Workers:  cfg.Workers,
		Book:     b,
	})

	in := uci.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in, cfg.DefaultTimeLimit)
		go uci.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
