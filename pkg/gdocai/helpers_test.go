package gdocai

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const savedResponse = `{
  "text": "あい\n",
  "pages": [{
    "pageNumber": 1,
    "dimension": {"width": 100, "height": 200, "unit": "pixels"},
    "lines": [{
      "layout": {
        "textAnchor": {"textSegments": [{"startIndex": "0", "endIndex": "3"}]},
        "boundingPoly": {"vertices": [{"x": 10, "y": 20}, {"x": 30, "y": 20}, {"x": 30, "y": 80}, {"x": 10, "y": 80}]}
      }
    }],
    "image": {"content": "", "mimeType": "image/png"}
  }],
  "someFutureField": true
}`

func TestLoadDocumentJSON(t *testing.T) {
	doc, err := LoadDocumentJSON([]byte(savedResponse))
	require.NoError(t, err)

	got, err := ToDocument(doc)
	require.NoError(t, err)
	require.Len(t, got.Pages, 1)
	assert.Equal(t, "あい", got.Pages[0].Fragments[0].Text)
	assert.Equal(t, 20, got.Pages[0].Fragments[0].Width)
	assert.Equal(t, 60, got.Pages[0].Fragments[0].Height)
}

func TestMarshalDocumentJSONRoundTrip(t *testing.T) {
	doc, err := LoadDocumentJSON([]byte(savedResponse))
	require.NoError(t, err)

	data, err := MarshalDocumentJSON(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "image")

	again, err := LoadDocumentJSON(data)
	require.NoError(t, err)
	assert.Equal(t, doc.GetText(), again.GetText())
	assert.Len(t, again.GetPages()[0].GetLines(), 1)
}

func TestLoadDocumentJSONMalformed(t *testing.T) {
	_, err := LoadDocumentJSON([]byte(`{"pages": 3}`))
	assert.Error(t, err)
}

func TestMimeType(t *testing.T) {
	mt, err := MimeType("scan/Page01.TIF")
	require.NoError(t, err)
	assert.Equal(t, "image/tiff", mt)

	_, err = MimeType("notes.txt")
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "docai.yml")
	require.NoError(t, os.WriteFile(good, []byte("project_id: p\nlocation: eu\nprocessor_id: abc\n"), 0o644))

	cfg, err := LoadConfig(good)
	require.NoError(t, err)
	assert.Equal(t, "projects/p/locations/eu/processors/abc", cfg.ProcessorName())
	assert.Equal(t, "eu-documentai.googleapis.com:443", cfg.Endpoint())

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("project_id: p\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}
