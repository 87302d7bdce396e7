package input

import (
	"fmt"

	"github.com/Sumatoshi-tech/plotaid/pkg/linkage"
)

// Bars is a single-series bar chart document.
type Bars struct {
	Title      string    `json:"title"      yaml:"title"`
	YAxis      string    `json:"y_axis"     yaml:"y_axis"`
	Categories []string  `json:"categories" yaml:"categories"`
	Values     []float64 `json:"values"     yaml:"values"`
}

// Series is one stacked layer.
type Series struct {
	Name   string    `json:"name"   yaml:"name"`
	Values []float64 `json:"values" yaml:"values"`
}

// Stacked is a stacked bar chart document.
type Stacked struct {
	Title      string   `json:"title"      yaml:"title"`
	YAxis      string   `json:"y_axis"     yaml:"y_axis"`
	Categories []string `json:"categories" yaml:"categories"`
	Series     []Series `json:"series"     yaml:"series"`
}

// Model is a fitted agglomerative clustering result: the merge history,
// merge distances and per-observation cluster labels, plus optional
// display names for the leaves.
type Model struct {
	Title     string    `json:"title"      yaml:"title"`
	Children  [][2]int  `json:"children"   yaml:"children"`
	Distances []float64 `json:"distances"  yaml:"distances"`
	Labels    []int     `json:"labels"     yaml:"labels"`
	LeafNames []string  `json:"leaf_names" yaml:"leaf_names"`
}

// LoadBars reads and validates a bar chart document.
func LoadBars(path string) (*Bars, error) {
	var doc Bars

	err := load(path, KindBars, &doc)
	if err != nil {
		return nil, err
	}

	if len(doc.Categories) != len(doc.Values) {
		return nil, fmt.Errorf("%w: %d categories, %d values", ErrShape, len(doc.Categories), len(doc.Values))
	}

	return &doc, nil
}

// LoadStacked reads and validates a stacked bar chart document.
func LoadStacked(path string) (*Stacked, error) {
	var doc Stacked

	err := load(path, KindStacked, &doc)
	if err != nil {
		return nil, err
	}

	for _, s := range doc.Series {
		if len(s.Values) != len(doc.Categories) {
			return nil, fmt.Errorf("%w: series %q has %d values for %d categories",
				ErrShape, s.Name, len(s.Values), len(doc.Categories))
		}
	}

	return &doc, nil
}

// LoadModel reads and validates a clustering model document.
func LoadModel(path string) (*Model, error) {
	var doc Model

	err := load(path, KindModel, &doc)
	if err != nil {
		return nil, err
	}

	if doc.LeafNames != nil && len(doc.LeafNames) != len(doc.Labels) {
		return nil, fmt.Errorf("%w: %d leaf names for %d observations", ErrShape, len(doc.LeafNames), len(doc.Labels))
	}

	return &doc, nil
}

// Linkage converts the document into the linkage package's model.
func (m *Model) Linkage() linkage.Model {
	children := make([]linkage.Merge, len(m.Children))
	for i, c := range m.Children {
		children[i] = linkage.Merge(c)
	}

	return linkage.Model{
		Children:  children,
		Distances: m.Distances,
		Labels:    m.Labels,
	}
}
