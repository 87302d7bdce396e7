package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/plotaid/internal/input"
	"github.com/Sumatoshi-tech/plotaid/pkg/linkage"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

const modelYAML = `
title: four points
children: [[0, 1], [2, 3], [4, 5]]
distances: [0.5, 0.7, 1.2]
labels: [0, 0, 1, 1]
leaf_names: [a, b, c, d]
`

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path       string
		format     input.Format
		compressed bool
	}{
		{"bars.json", input.FormatJSON, false},
		{"model.YAML", input.FormatYAML, false},
		{"model.yml.lz4", input.FormatYAML, true},
		{"dir/stacked.json.lz4", input.FormatJSON, true},
	}

	for _, tt := range tests {
		format, compressed, err := input.DetectFormat(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.format, format, tt.path)
		assert.Equal(t, tt.compressed, compressed, tt.path)
	}

	_, _, err := input.DetectFormat("data.csv")
	require.ErrorIs(t, err, input.ErrFormat)
}

func TestLoadModel_YAML(t *testing.T) {
	t.Parallel()

	doc, err := input.LoadModel(writeFile(t, "model.yaml", []byte(modelYAML)))
	require.NoError(t, err)

	assert.Equal(t, "four points", doc.Title)
	assert.Equal(t, []string{"a", "b", "c", "d"}, doc.LeafNames)

	m := doc.Linkage()
	assert.Equal(t, []linkage.Merge{{0, 1}, {2, 3}, {4, 5}}, m.Children)
	assert.Equal(t, 4, m.Leaves())

	z, err := linkage.Matrix(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 1.2, 4}, z.RawRowView(2))
}

func TestLoadModel_CompressedJSON(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"children": [[0, 1]], "distances": [0.3], "labels": [0, 0]}`)
	packed, err := input.Compress(raw)
	require.NoError(t, err)

	doc, err := input.LoadModel(writeFile(t, "model.json.lz4", packed))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}}, doc.Children)
	assert.Nil(t, doc.LeafNames)
}

func TestLoadModel_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"missing labels", `{"children": [[0, 1]], "distances": [0.3]}`},
		{"negative distance", `{"children": [[0, 1]], "distances": [-1], "labels": [0, 0]}`},
		{"three children", `{"children": [[0, 1, 2]], "distances": [1], "labels": [0, 0]}`},
		{"unknown field", `{"children": [], "distances": [], "labels": [0], "extra": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := input.LoadModel(writeFile(t, "model.json", []byte(tt.doc)))
			require.ErrorIs(t, err, input.ErrSchema)
		})
	}
}

func TestLoadModel_LeafNameCount(t *testing.T) {
	t.Parallel()

	doc := `{"children": [[0, 1]], "distances": [1], "labels": [0, 0], "leaf_names": ["x"]}`

	_, err := input.LoadModel(writeFile(t, "model.json", []byte(doc)))
	require.ErrorIs(t, err, input.ErrShape)
}

func TestLoadBars(t *testing.T) {
	t.Parallel()

	doc, err := input.LoadBars(writeFile(t, "bars.yml", []byte(`
title: Totals
y_axis: count
categories: [north, south]
values: [1.005, 2]
`)))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.005, 2}, doc.Values)
	assert.Equal(t, "count", doc.YAxis)

	_, err = input.LoadBars(writeFile(t, "bad.json", []byte(`{"categories": ["a"], "values": [1, 2]}`)))
	require.ErrorIs(t, err, input.ErrShape)

	_, err = input.LoadBars(writeFile(t, "bad.json", []byte(`{"categories": ["a"], "values": ["x"]}`)))
	require.ErrorIs(t, err, input.ErrSchema)
}

func TestLoadStacked(t *testing.T) {
	t.Parallel()

	doc, err := input.LoadStacked(writeFile(t, "stacked.json", []byte(`{
		"categories": ["q1", "q2"],
		"series": [{"name": "a", "values": [0, 3.5]}, {"name": "b", "values": [1, -2]}]
	}`)))
	require.NoError(t, err)
	require.Len(t, doc.Series, 2)
	assert.Equal(t, []float64{1, -2}, doc.Series[1].Values)

	_, err = input.LoadStacked(writeFile(t, "short.json", []byte(`{
		"categories": ["q1", "q2"],
		"series": [{"name": "a", "values": [1]}]
	}`)))
	require.ErrorIs(t, err, input.ErrShape)

	_, err = input.LoadStacked(writeFile(t, "empty.json", []byte(`{"categories": [], "series": []}`)))
	require.ErrorIs(t, err, input.ErrSchema)
}

func TestDecode_MalformedInput(t *testing.T) {
	t.Parallel()

	var doc input.Bars

	err := input.Decode(input.KindBars, input.FormatJSON, []byte(`{`), &doc)
	require.Error(t, err)
	require.NotErrorIs(t, err, input.ErrSchema)

	err = input.Decode(input.Kind("pie"), input.FormatJSON, []byte(`{}`), &doc)
	require.ErrorIs(t, err, input.ErrKind)
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()

	_, _, err := input.ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestSplitCompressed(t *testing.T) {
	t.Parallel()

	base, compressed := input.SplitCompressed("out/tree.dot.LZ4")
	assert.True(t, compressed)
	assert.Equal(t, "out/tree.dot", base)

	base, compressed = input.SplitCompressed("tree.svg")
	assert.False(t, compressed)
	assert.Equal(t, "tree.svg", base)
}
