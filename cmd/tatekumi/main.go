// tatekumi reconstructs the reading order of OCR output for scanned, vertically
// set Japanese books and writes it as plain text, one logical line per line.
//
// Paragraph openings are marked with an ideographic space, blank separator
// lines are kept as empty lines, and lines split across pages are joined.
//
// Usage:
//
//	tatekumi [flags] <input> <output> <columns>
//
// Arguments:
//
//	input    OCR result (NDL OCR XML/JSON, hOCR, Document AI JSON) or a scan for Document AI
//	output   Text file to write
//	columns  Number of column tiers per page, 1 or 2
//
// Flags:
//
//	-f, --format string     Input format: auto, ndl-xml, ndl-json, hocr, docai-json, docai (default auto)
//	-c, --config string     YAML file with layout tunables
//	--docai-config string   YAML file with Document AI settings, required for --format docai
//	--docai-dump string     Save the Document AI response as JSON for later runs
//	--debug-pdf string      Write a PDF showing fragments in reading order
//	-v, --verbose           Debug logging
//
// Tunables file:
//
//	indent_head_rate: 0.7
//	indent_tail_rate: 1.5
//	empty_line_rate: 2.0
//	baseline_prefix_pages: 5
//	body_type: 本文
//	workers: 8
//
// Example:
//
//	tatekumi book.xml book.txt 2
//	tatekumi --docai-config docai.yml --docai-dump scan.json scan.pdf scan.txt 1
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/gardar/tatekumi/internal/logger"
	"github.com/gardar/tatekumi/pkg/debugpdf"
	"github.com/gardar/tatekumi/pkg/layout"
)

var log = logger.GetLogger("tatekumi")

// CLI defines the command-line interface using Kong
type CLI struct {
	Input   string `arg:"" type:"existingfile" help:"OCR result to read, or a scan when --format is docai"`
	Output  string `arg:"" type:"path" help:"Text file to write"`
	Columns int    `arg:"" enum:"1,2" help:"Number of column tiers per page (1 or 2)"`

	Format      string `name:"format" short:"f" enum:"auto,ndl-xml,ndl-json,hocr,docai-json,docai" default:"auto" help:"Input format (${enum})"`
	Config      string `name:"config" short:"c" type:"existingfile" help:"YAML file with layout tunables"`
	DocAIConfig string `name:"docai-config" type:"existingfile" help:"YAML file with Document AI settings"`
	DocAIDump   string `name:"docai-dump" type:"path" help:"Save the Document AI response as JSON"`
	DebugPDF    string `name:"debug-pdf" type:"path" help:"Write a PDF showing fragments in reading order"`
	Verbose     bool   `name:"verbose" short:"v" help:"Debug logging"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("tatekumi"),
		kong.Description("Reconstruct reading order of vertical Japanese OCR output"),
		kong.UsageOnError(),
	)
	if cli.Verbose {
		logger.SetLevel(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, &cli); err != nil {
		log.Error("failed", "err", err)
		kctx.Exit(1)
	}
}

func run(ctx context.Context, cli *CLI) error {
	cfg := layout.DefaultConfig()
	if cli.Config != "" {
		var err error
		if cfg, err = layout.LoadConfig(cli.Config); err != nil {
			return err
		}
	}
	cfg.Columns = cli.Columns

	doc, err := loadDocument(ctx, cli)
	if err != nil {
		return err
	}
	log.Info("loaded OCR result", "input", cli.Input, "pages", len(doc.Pages))

	lines, err := layout.Reconstruct(ctx, doc, cfg)
	if err != nil {
		return fmt.Errorf("failed to reconstruct %s: %w", cli.Input, err)
	}
	if err := writeText(cli.Output, lines); err != nil {
		return err
	}
	log.Info("wrote text", "output", cli.Output, "lines", len(lines))

	if cli.DebugPDF != "" {
		return writeDebugPDF(ctx, cli.DebugPDF, doc, cfg)
	}
	return nil
}

func writeText(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := layout.WriteLines(f, lines); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func writeDebugPDF(ctx context.Context, path string, doc layout.Document, cfg layout.Config) error {
	if len(doc.Pages) == 0 {
		log.Warn("no pages, debug PDF not written")
		return nil
	}
	baseline := layout.Baseline(doc, cfg)
	pages, err := layout.PreparePages(ctx, doc.Pages, baseline, cfg)
	if err != nil {
		return err
	}
	data, err := debugpdf.Render(pages, baseline, debugpdf.DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	log.Info("wrote debug PDF", "output", path)
	return nil
}
