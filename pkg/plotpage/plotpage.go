// Package plotpage assembles go-echarts charts into a single themed HTML
// page with a header, one section per chart and a light/dark toggle.
package plotpage

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
)

const styleTagLen = len("</style>")

// ProjectName is shown in every page header.
const ProjectName = "plotaid"

// Style defines chart dimensions.
type Style struct {
	Width  string
	Height string
}

// DefaultStyle returns the default chart style.
func DefaultStyle() Style {
	return Style{Width: "100%", Height: "520px"}
}

// Section is one chart with its heading and optional notes.
type Section struct {
	Title    string
	Subtitle string
	Notes    []string
	Chart    Renderable
}

// Page is a complete visualization page.
type Page struct {
	Title       string
	Description string
	Theme       Theme
	Sections    []Section
}

// NewPage creates a new visualization page.
func NewPage(title, description string) *Page {
	return &Page{
		Title:       title,
		Description: description,
		Theme:       ThemeLight,
	}
}

// WithTheme sets the theme for the page.
func (p *Page) WithTheme(theme Theme) *Page {
	p.Theme = theme

	return p
}

// Add appends sections to the page.
func (p *Page) Add(sections ...Section) {
	p.Sections = append(p.Sections, sections...)
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	return HTMLRenderer{}.Render(w, p)
}

// Renderable is implemented by every go-echarts chart.
type Renderable interface {
	Render(w io.Writer) error
}

// HTMLRenderer renders pages as HTML.
type HTMLRenderer struct {
	ExtraCSS string
}

// Render writes the page as HTML to the writer.
func (r HTMLRenderer) Render(w io.Writer, page *Page) error {
	header, err := renderTemplate("header.html", headerData{
		ProjectName: ProjectName,
		Title:       page.Title,
		Description: page.Description,
	})
	if err != nil {
		return fmt.Errorf("render header: %w", err)
	}

	var sections bytes.Buffer

	for i, section := range page.Sections {
		html, sectionErr := renderSection(section)
		if sectionErr != nil {
			return fmt.Errorf("render section %d: %w", i, sectionErr)
		}

		sections.WriteString(string(html))
	}

	scripts, err := renderTemplate("scripts.html", nil)
	if err != nil {
		return fmt.Errorf("render scripts: %w", err)
	}

	darkClass := ""
	if page.Theme == ThemeDark {
		darkClass = "dark"
	}

	html, err := renderTemplate("page.html", pageData{
		Title:     page.Title,
		DarkClass: darkClass,
		Theme:     GetThemeConfig(page.Theme),
		Light:     GetThemeConfig(ThemeLight),
		Dark:      GetThemeConfig(ThemeDark),
		ExtraCSS:  template.CSS(r.ExtraCSS),
		Header:    header,
		Content:   template.HTML(sections.String()), //nolint:gosec // rendered by our own templates.
		Scripts:   scripts,
	})
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	_, err = io.WriteString(w, string(html))
	if err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	return nil
}

func renderSection(section Section) (template.HTML, error) {
	chart, err := renderChart(section.Chart)
	if err != nil {
		return "", err
	}

	return renderTemplate("section.html", sectionData{
		Title:    section.Title,
		Subtitle: section.Subtitle,
		Notes:    section.Notes,
		Chart:    template.HTML(chart), //nolint:gosec // go-echarts output.
	})
}

func renderChart(chart Renderable) (string, error) {
	if chart == nil {
		return "", nil
	}

	var buf bytes.Buffer

	err := chart.Render(&buf)
	if err != nil {
		return "", fmt.Errorf("rendering chart: %w", err)
	}

	return extractChartContent(buf.String()), nil
}

// extractChartContent keeps the chart element and its script from a full
// go-echarts page. Fragments are returned unchanged.
func extractChartContent(html string) string {
	trimmed := strings.TrimSpace(html)
	if !strings.HasPrefix(trimmed, "<!DOCTYPE") && !strings.HasPrefix(trimmed, "<html") {
		return html
	}

	start := strings.Index(html, `<div class="container">`)
	end := strings.Index(html, `</body>`)

	if start == -1 || end == -1 || end < start {
		return html
	}

	content := strings.ReplaceAll(html[start:end], `class="container"`, `class="echart-box"`)

	return removeStyleTags(content)
}

func removeStyleTags(content string) string {
	for {
		i := strings.Index(content, `<style>`)
		if i == -1 {
			return content
		}

		j := strings.Index(content[i:], `</style>`)
		if j == -1 {
			return content
		}

		content = content[:i] + content[i+j+styleTagLen:]
	}
}
