package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"io"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/plotaid/internal/input"
	"github.com/Sumatoshi-tech/plotaid/pkg/config"
	"github.com/Sumatoshi-tech/plotaid/pkg/dendrogram"
)

const (
	testBarsJSON = `{"title": "Scores", "y_axis": "points",
  "categories": ["a", "b"], "values": [1.005, 2.0]}`

	testStackedYAML = `title: Stack
categories: [q1, q2]
series:
  - name: x
    values: [1, 0]
  - name: y
    values: [3.5, 2]
`

	testModelYAML = `title: four points
children: [[0, 1], [2, 3], [4, 5]]
distances: [0.5, 0.7, 1.2]
labels: [0, 0, 1, 1]
leaf_names: [a, b, c, d]
`
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "plotaid ")
	assert.Contains(t, stdout, "commit:")
}

func TestBarsCommand(t *testing.T) {
	in := writeInput(t, "bars.json", testBarsJSON)
	out := filepath.Join(t.TempDir(), "bars.html")

	stdout, _, err := execute(t, "bars", in, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Scores")
	assert.Contains(t, string(data), "echarts")
}

func TestBarsCommand_RequiresOutput(t *testing.T) {
	in := writeInput(t, "bars.json", testBarsJSON)

	_, _, err := execute(t, "bars", in)
	require.ErrorIs(t, err, ErrNoOutput)
}

func TestBarsCommand_ShapeMismatch(t *testing.T) {
	in := writeInput(t, "bars.json", `{"categories": ["a"], "values": [1, 2]}`)
	out := filepath.Join(t.TempDir(), "bars.html")

	_, _, err := execute(t, "bars", in, "-o", out)
	require.ErrorIs(t, err, input.ErrShape)
	assert.NoFileExists(t, out)
}

func TestStackedCommand(t *testing.T) {
	in := writeInput(t, "stacked.yaml", testStackedYAML)
	out := filepath.Join(t.TempDir(), "stacked.html")

	_, _, err := execute(t, "stacked", in, "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Stack")
}

func TestStackedCommand_Quiet(t *testing.T) {
	in := writeInput(t, "stacked.yaml", testStackedYAML)
	out := filepath.Join(t.TempDir(), "stacked.html")

	stdout, _, err := execute(t, "--quiet", "stacked", in, "-o", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.FileExists(t, out)
}

func TestDendrogramCommand_Formats(t *testing.T) {
	in := writeInput(t, "model.yaml", testModelYAML)
	dir := t.TempDir()

	tests := []struct {
		file string
		want string
	}{
		{"tree.html", "four points"},
		{"tree.dot", "digraph dendrogram {"},
		{"tree.svg", "<svg"},
	}

	for _, tt := range tests {
		out := filepath.Join(dir, tt.file)

		_, _, err := execute(t, "dendrogram", in, "-o", out)
		require.NoError(t, err, tt.file)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), tt.want, tt.file)
	}
}

func TestDendrogramCommand_DryRunPrintLinkage(t *testing.T) {
	in := writeInput(t, "model.yaml", testModelYAML)

	stdout, _, err := execute(t, "dendrogram", in, "--dry-run", "--print-linkage")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dry run: 3 links, 4 leaves")
	assert.Contains(t, stdout, "c6")
	assert.Contains(t, stdout, "1.2")
	assert.Contains(t, stdout, "#ff7f0e")
}

func TestDendrogramCommand_TruncateFlags(t *testing.T) {
	in := writeInput(t, "model.yaml", testModelYAML)

	stdout, _, err := execute(t, "dendrogram", in, "--dry-run",
		"--truncate-mode", "lastp", "--p", "2", "--show-leaf-counts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dry run: 1 links, 2 leaves")
}

func TestDendrogramCommand_Errors(t *testing.T) {
	in := writeInput(t, "model.yaml", testModelYAML)
	dir := t.TempDir()

	_, _, err := execute(t, "dendrogram", in, "-o", filepath.Join(dir, "tree.png"))
	require.ErrorIs(t, err, ErrOutputFormat)

	_, _, err = execute(t, "dendrogram", in, "--dry-run", "--orientation", "diagonal")
	require.ErrorIs(t, err, dendrogram.ErrOrientation)

	_, _, err = execute(t, "dendrogram", in)
	require.ErrorIs(t, err, ErrNoOutput)
}

func TestDendrogramCommand_ConfigFile(t *testing.T) {
	in := writeInput(t, "model.yaml", testModelYAML)
	cfg := writeInput(t, "plotaid.yaml", "dendrogram:\n  truncate_mode: lastp\n  p: 3\nlogging:\n  level: debug\n")

	stdout, stderr, err := execute(t, "--config", cfg, "dendrogram", in, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dry run: 2 links, 3 leaves")
	assert.Contains(t, stderr, "linkage matrix built")
}

func TestDendrogramCommand_InvalidConfig(t *testing.T) {
	in := writeInput(t, "model.yaml", testModelYAML)
	cfg := writeInput(t, "plotaid.yaml", "output:\n  theme: sepia\n")

	_, _, err := execute(t, "--config", cfg, "dendrogram", in, "--dry-run")
	require.ErrorIs(t, err, config.ErrInvalidTheme)
}

func TestVerboseLogsToStderr(t *testing.T) {
	in := writeInput(t, "bars.json", testBarsJSON)
	out := filepath.Join(t.TempDir(), "bars.html")

	_, stderr, err := execute(t, "--verbose", "bars", in, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "bars loaded")
	assert.Contains(t, stderr, "output written")
}

func TestDendrogramCommand_CompressedOutput(t *testing.T) {
	in := writeInput(t, "model.yaml", testModelYAML)
	out := filepath.Join(t.TempDir(), "tree.dot.lz4")

	stdout, _, err := execute(t, "dendrogram", in, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out)

	f, err := os.Open(out)
	require.NoError(t, err)

	defer f.Close()

	data, err := io.ReadAll(lz4.NewReader(f))
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph dendrogram {")
}
