package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gardar/tatekumi/pkg/gdocai"
	"github.com/gardar/tatekumi/pkg/hocr"
	"github.com/gardar/tatekumi/pkg/layout"
	"github.com/gardar/tatekumi/pkg/ndlocr"
)

const (
	formatAuto      = "auto"
	formatNDLXML    = "ndl-xml"
	formatNDLJSON   = "ndl-json"
	formatHOCR      = "hocr"
	formatDocAIJSON = "docai-json"
	formatDocAI     = "docai"
)

// detectFormat picks the input format from the file extension, looking at the
// first byte of JSON files to tell NDL OCR arrays from Document AI objects
func detectFormat(path string, data []byte) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xml":
		return formatNDLXML, nil
	case ".hocr", ".html", ".htm", ".xhtml":
		return formatHOCR, nil
	case ".json":
		trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
		switch {
		case bytes.HasPrefix(trimmed, []byte("[")):
			return formatNDLJSON, nil
		case bytes.HasPrefix(trimmed, []byte("{")):
			return formatDocAIJSON, nil
		}
		return "", fmt.Errorf("cannot tell the format of %s, use --format", path)
	default:
		if _, err := gdocai.MimeType(path); err == nil {
			return formatDocAI, nil
		}
		return "", fmt.Errorf("unknown input type %q, use --format", ext)
	}
}

func loadDocument(ctx context.Context, cli *CLI) (layout.Document, error) {
	data, err := os.ReadFile(cli.Input)
	if err != nil {
		return layout.Document{}, err
	}
	format := cli.Format
	if format == formatAuto || format == "" {
		if format, err = detectFormat(cli.Input, data); err != nil {
			return layout.Document{}, err
		}
		log.Debug("detected input format", "format", format)
	}

	switch format {
	case formatNDLXML:
		return ndlocr.ParseXML(bytes.NewReader(data))
	case formatNDLJSON:
		return ndlocr.ParseJSON(bytes.NewReader(data))
	case formatHOCR:
		h, err := hocr.ParseHOCR(data)
		if err != nil {
			return layout.Document{}, err
		}
		return hocr.ToDocument(h), nil
	case formatDocAIJSON:
		doc, err := gdocai.LoadDocumentJSON(data)
		if err != nil {
			return layout.Document{}, err
		}
		return gdocai.ToDocument(doc)
	case formatDocAI:
		return processDocAI(ctx, cli, data)
	}
	return layout.Document{}, fmt.Errorf("unsupported format %q", format)
}

func processDocAI(ctx context.Context, cli *CLI, content []byte) (layout.Document, error) {
	if cli.DocAIConfig == "" {
		return layout.Document{}, fmt.Errorf("--docai-config is required to call Document AI")
	}
	cfg, err := gdocai.LoadConfig(cli.DocAIConfig)
	if err != nil {
		return layout.Document{}, err
	}
	mimeType, err := gdocai.MimeType(cli.Input)
	if err != nil {
		return layout.Document{}, err
	}

	doc, err := gdocai.ProcessDocument(ctx, content, mimeType, cfg)
	if err != nil {
		return layout.Document{}, err
	}
	if cli.DocAIDump != "" {
		data, err := gdocai.MarshalDocumentJSON(doc)
		if err != nil {
			return layout.Document{}, fmt.Errorf("failed to serialize Document AI response: %w", err)
		}
		if err := os.WriteFile(cli.DocAIDump, data, 0o644); err != nil {
			return layout.Document{}, err
		}
		log.Info("saved Document AI response", "output", cli.DocAIDump)
	}
	return gdocai.ToDocument(doc)
}
