package correct

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTableAndApply(t *testing.T) {
	src := "\ufefferror,correct,note\n縦害き,縦書き,\nロ本,日本,kana ro\n,空,ignored\n"
	table, err := LoadTable(strings.NewReader(src), "")
	require.NoError(t, err)
	assert.Equal(t, []Rule{{"縦害き", "縦書き"}, {"ロ本", "日本"}}, table.Rules)

	in := []string{"　ロ本の縦害き", "", "縦害き縦害き"}
	got := table.Apply(in)
	assert.Equal(t, []string{"　日本の縦書き", "", "縦書き縦書き"}, got)
	assert.Equal(t, "　ロ本の縦害き", in[0])
}

func TestApplyIsSequential(t *testing.T) {
	table := &Table{Rules: []Rule{{"a", "b"}, {"b", "c"}}}
	assert.Equal(t, []string{"cc"}, table.Apply([]string{"ab"}))
}

func TestLoadTableColumnOrder(t *testing.T) {
	table, err := LoadTable(strings.NewReader("correct,error\n正,誤\n"), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, []Rule{{Error: "誤", Correct: "正"}}, table.Rules)
}

func TestLoadTableShiftJIS(t *testing.T) {
	table, err := LoadTableFile("testdata/sjis.csv", "shift_jis")
	require.NoError(t, err)
	assert.Equal(t, []Rule{{"縦害き", "縦書き"}}, table.Rules)
}

func TestLoadTableErrors(t *testing.T) {
	tests := []struct {
		name, src, enc string
	}{
		{"empty", "", ""},
		{"missing column", "wrong,correct\na,b\n", ""},
		{"short row", "error,correct\na\n", ""},
		{"unknown encoding", "error,correct\n", "klingon"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadTable(strings.NewReader(tc.src), tc.enc)
			assert.Error(t, err)
		})
	}

	_, err := LoadTableFile("testdata/missing.csv", "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"あ\n", []string{"あ"}},
		{"あ\n\n　い\n", []string{"あ", "", "　い"}},
		{"あ\nい", []string{"あ", "い"}},
		{"\n", []string{""}},
	}
	for _, tc := range tests {
		got, err := ReadLines(strings.NewReader(tc.in))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "ReadLines(%q)", tc.in)
	}
}
