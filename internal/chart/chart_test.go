package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readCSV = `[1000],vanilla,9.0
[10],vanilla,1.0
[100],vanilla,4.0
[10],vanilla,3.0
"[50]",vanilla, 2.5
[1000],vanilla,11.0
[100],vanilla,6.0
[50],vanilla,1.5
`

var keyedDefaults = KeyedOptions{KeyField: 0, ValueField: 2, ExpectedGroups: 4}

func TestReadKeyedAlignsValuesWithKeys(t *testing.T) {
	bars, err := ReadKeyed(strings.NewReader(readCSV), keyedDefaults)
	require.NoError(t, err)

	assert.Equal(t, []string{"10", "50", "100", "1000"}, bars.Labels)
	assert.Equal(t, []float64{2, 2, 5, 10}, bars.Values)
}

func TestReadKeyedKeepsKeyOrderWhenValuesDisagree(t *testing.T) {
	// The largest key has the smallest mean; its bar must stay last.
	input := "[1],x,5\n[2],x,3\n[3],x,1\n"
	bars, err := ReadKeyed(strings.NewReader(input), KeyedOptions{ValueField: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, bars.Labels)
	assert.Equal(t, []float64{5, 3, 1}, bars.Values)
}

func TestReadKeyedErrors(t *testing.T) {
	cases := map[string]string{
		"short record": "[1],x\n",
		"bad key":      "[one],x,1\n",
		"bad value":    "[1],x,fast\n",
		"empty key":    ",x,1\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadKeyed(strings.NewReader(input), keyedDefaults)
			assert.Error(t, err)
		})
	}
}

func TestReadKeyedFileMissing(t *testing.T) {
	_, err := ReadKeyedFile(filepath.Join(t.TempDir(), "absent.csv"), keyedDefaults)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

var mountLabels = []string{"10,10", "50,50", "100,100", "1000,1000"}

func writeMountLogs(t *testing.T, dir string) {
	t.Helper()
	contents := map[string]string{
		"10,10":     "real\t0m4.000s\nreal\t0m2.000s\n",
		"50,50":     "real\t0m1.500s\n\nreal\t0m0.500s\n",
		"100,100":   "real 0m3.000s\n",
		"1000,1000": "real\t0m0.250s\nreal\t0m0.750s\n",
	}
	for label, body := range contents {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "mount"+label), []byte(body), 0o644))
	}
}

func labeledOptions(dir string) LabeledOptions {
	return LabeledOptions{
		Dir:          dir,
		Prefix:       "mount",
		Labels:       mountLabels,
		TokenField:   1,
		TrimLeading:  2,
		TrimTrailing: 1,
	}
}

func TestReadLabeledKeepsLabelOrder(t *testing.T) {
	dir := t.TempDir()
	writeMountLogs(t, dir)

	bars, err := ReadLabeled(labeledOptions(dir))
	require.NoError(t, err)

	require.Equal(t, 4, bars.Len())
	assert.Equal(t, mountLabels, bars.Labels)
	assert.Equal(t, []float64{3, 1, 3, 0.5}, bars.Values)
}

func TestReadLabeledMissingFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeMountLogs(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "mount100,100")))

	_, err := ReadLabeled(labeledOptions(dir))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadLabeledMalformedLineIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeMountLogs(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mount50,50"), []byte("real\n"), 0o644))

	_, err := ReadLabeled(labeledOptions(dir))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "mount50,50"), []byte("real 0mfast\n"), 0o644))
	_, err = ReadLabeled(labeledOptions(dir))
	assert.Error(t, err)
}

func TestReadLabeledEmptyFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeMountLogs(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mount10,10"), nil, 0o644))

	_, err := ReadLabeled(labeledOptions(dir))
	assert.Error(t, err)
}

var testStyle = Style{
	Title:  "read comparison",
	XLabel: "read times",
	YLabel: "time(ms)",
	Legend: "vanilla",
}

func TestRenderWritesImage(t *testing.T) {
	bars := Bars{Labels: []string{"10", "50", "100", "1000"}, Values: []float64{2, 2, 5, 10}}
	for _, ext := range []string{"png", "svg"} {
		path := filepath.Join(t.TempDir(), "charts", "read."+ext)
		require.NoError(t, Render(bars, testStyle, path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestWriteSVG(t *testing.T) {
	bars := Bars{Labels: []string{"10,10", "50,50"}, Values: []float64{1, 2}}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, bars, testStyle, "svg"))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderRejectsEmptyBars(t *testing.T) {
	err := Render(Bars{}, testStyle, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}

func TestRenderBarsScalesToLargest(t *testing.T) {
	bars := Bars{Labels: []string{"a", "bb"}, Values: []float64{1, 4}}
	out := renderBars(bars, 40)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	// area = 40 - len("bb") - len("4.000") - 4
	assert.Equal(t, 29, strings.Count(lines[1], barGlyph))
	assert.Equal(t, 7, strings.Count(lines[0], barGlyph))
	assert.Contains(t, lines[0], "1.000")
	assert.Contains(t, lines[1], "bb")
}

func TestViewModelQuits(t *testing.T) {
	m := newViewModel(Bars{Labels: []string{"a"}, Values: []float64{1}}, testStyle)
	assert.Equal(t, "loading...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, next.View(), "read comparison")

	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
