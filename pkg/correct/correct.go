// Package correct applies a table of known OCR misrecognitions to
// reconstructed text.
//
// The table is a CSV file with an "error" and a "correct" column. Every rule is
// applied to every line, in table order, as a literal replace-all, so a later
// rule sees the output of the earlier ones.
//
// Main Functions:
//
// - LoadTable / LoadTableFile: read a correction table in any WHATWG encoding
// - Table.Apply: rewrite lines
// - ReadLines: split text output back into lines
package correct

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/gardar/tatekumi/internal/logger"
)

var Logger = logger.GetLogger("correct")

// Rule replaces every occurrence of Error with Correct
type Rule struct {
	Error   string
	Correct string
}

// Table is an ordered list of rules
type Table struct {
	Rules []Rule
}

// LoadTableFile reads the table at path
func LoadTableFile(path, encodingName string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := LoadTable(f, encodingName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadTable reads a CSV correction table. encodingName is a WHATWG label such
// as "utf-8" or "shift_jis"; an empty name means UTF-8. Rows with an empty
// error column are skipped.
func LoadTable(r io.Reader, encodingName string) (*Table, error) {
	if encodingName != "" {
		enc, err := htmlindex.Get(encodingName)
		if err != nil {
			return nil, fmt.Errorf("unknown encoding %q: %w", encodingName, err)
		}
		r = transform.NewReader(r, enc.NewDecoder())
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("correction table is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read correction table: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	errCol, okCol := slices.Index(header, "error"), slices.Index(header, "correct")
	if errCol < 0 || okCol < 0 {
		return nil, fmt.Errorf("correction table needs error and correct columns, got %q", header)
	}

	t := &Table{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read correction table: %w", err)
		}
		if len(record) <= max(errCol, okCol) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("correction table line %d: expected %d fields, got %d", line, len(header), len(record))
		}
		if record[errCol] == "" {
			line, _ := reader.FieldPos(0)
			Logger.Warn("skipping rule with empty error text", "line", line)
			continue
		}
		t.Rules = append(t.Rules, Rule{Error: record[errCol], Correct: record[okCol]})
	}
	Logger.Debug("loaded correction table", "rules", len(t.Rules))
	return t, nil
}

// Apply returns the corrected lines. The input is not modified.
func (t *Table) Apply(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		for _, rule := range t.Rules {
			line = strings.ReplaceAll(line, rule.Error, rule.Correct)
		}
		out[i] = line
	}
	return out
}

// ReadLines splits text into lines. A final newline ends the last line instead
// of starting an empty one, so ReadLines undoes layout.WriteLines.
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), nil
}
