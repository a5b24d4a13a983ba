// ocrfix rewrites known OCR misrecognitions in a text file written by tatekumi.
//
// The correction table is a CSV file with an "error" and a "correct" column.
// Every rule is applied to every line, in table order.
//
// Usage:
//
//	ocrfix [flags] <source> <save>
//
// Flags:
//
//	-t, --table string     Correction table (default error.csv)
//	-e, --encoding string  Encoding of the table, e.g. utf-8 or shift_jis (default utf-8)
//	-v, --verbose          Debug logging
//
// Example:
//
//	ocrfix --table fixes.csv --encoding shift_jis book.txt book_fixed.txt
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gardar/tatekumi/internal/logger"
	"github.com/gardar/tatekumi/pkg/correct"
	"github.com/gardar/tatekumi/pkg/layout"
)

var log = logger.GetLogger("ocrfix")

// CLI defines the command-line interface using Kong
type CLI struct {
	Source   string `arg:"" type:"existingfile" help:"Text file to correct"`
	Save     string `arg:"" type:"path" help:"Where to write the corrected text"`
	Table    string `name:"table" short:"t" type:"path" default:"error.csv" help:"Correction table"`
	Encoding string `name:"encoding" short:"e" default:"utf-8" help:"Encoding of the correction table"`
	Verbose  bool   `name:"verbose" short:"v" help:"Debug logging"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("ocrfix"),
		kong.Description("Apply a correction table to reconstructed OCR text"),
		kong.UsageOnError(),
	)
	if cli.Verbose {
		logger.SetLevel(slog.LevelDebug)
	}
	if err := run(&cli); err != nil {
		log.Error("failed", "err", err)
		kctx.Exit(1)
	}
}

func run(cli *CLI) error {
	table, err := correct.LoadTableFile(cli.Table, cli.Encoding)
	if err != nil {
		return fmt.Errorf("failed to load correction table: %w", err)
	}

	src, err := os.Open(cli.Source)
	if err != nil {
		return err
	}
	lines, err := correct.ReadLines(src)
	src.Close()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cli.Source, err)
	}

	out, err := os.Create(cli.Save)
	if err != nil {
		return err
	}
	if err := layout.WriteLines(out, table.Apply(lines)); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", cli.Save, err)
	}
	log.Info("corrected text", "lines", len(lines), "rules", len(table.Rules), "output", cli.Save)
	return out.Close()
}
