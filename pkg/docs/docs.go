// Package docs generates the Markdown reference for theme authors: the
// theme and preset document schemas, the configuration file, and the
// built-in catalogue.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Section is one documentation page with optional subsections.
type Section struct {
	Title string
	// Slug is the filename-safe identifier.
	Slug    string
	Content string
	// Order controls the sort position (lower = earlier).
	Order       int
	SubSections []Section
}

// DocGenerator collects sections and writes them out.
type DocGenerator struct {
	OutputDir string
	Sections  []Section
}

// New creates a DocGenerator that writes to outputDir.
func New(outputDir string) *DocGenerator {
	return &DocGenerator{OutputDir: outputDir}
}

// Reference returns a generator holding every reference page.
func Reference(outputDir string) *DocGenerator {
	g := New(outputDir)
	g.AddSection(Section{Title: "Theme Documents", Slug: "themes", Order: 10, Content: dcRenderFields(ThemeFields())})
	g.AddSection(Section{Title: "Preset Documents", Slug: "presets", Order: 20, Content: dcRenderFields(PresetFields())})
	g.AddSection(Section{Title: "Configuration", Slug: "config", Order: 30, Content: dcRenderConfig(ConfigTables())})
	g.AddSection(Section{Title: "Built-in Themes and Presets", Slug: "builtins", Order: 40, Content: dcRenderBuiltins()})
	return g
}

// Add appends a new top-level section.
func (g *DocGenerator) Add(title, slug, content string, order int) {
	g.Sections = append(g.Sections, Section{
		Title:   title,
		Slug:    slug,
		Content: content,
		Order:   order,
	})
}

// AddSection appends a pre-built Section.
func (g *DocGenerator) AddSection(s Section) {
	g.Sections = append(g.Sections, s)
}

// Generate writes each section to "<slug>.md" in OutputDir and returns the
// paths written.
func (g *DocGenerator) Generate() ([]string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("docs: create output dir: %w", err)
	}
	var written []string
	for _, s := range dcSortedSections(g.Sections) {
		filename := filepath.Join(g.OutputDir, s.Slug+".md")
		if err := os.WriteFile(filename, []byte(dcRenderSection(s, 1)), 0o644); err != nil {
			return written, fmt.Errorf("docs: write %s: %w", filename, err)
		}
		written = append(written, filename)
	}
	return written, nil
}

// GenerateSingle combines all sections into one document.
func (g *DocGenerator) GenerateSingle() string {
	sorted := dcSortedSections(g.Sections)

	var b strings.Builder
	b.WriteString("# investigator-themes Reference\n\n")
	b.WriteString("## Table of Contents\n\n")
	for i, s := range sorted {
		fmt.Fprintf(&b, "%d. [%s](#%s)\n", i+1, s.Title, s.Slug)
	}
	b.WriteString("\n---\n\n")

	for _, s := range sorted {
		b.WriteString(dcRenderSection(s, 2))
		b.WriteString("\n---\n\n")
	}
	return b.String()
}

// dcSortedSections returns a copy of sections sorted by Order.
func dcSortedSections(sections []Section) []Section {
	sorted := make([]Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

func dcRenderSection(s Section, level int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", level), s.Title)

	if s.Content != "" {
		b.WriteString(s.Content)
		if !strings.HasSuffix(s.Content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	for _, ss := range dcSortedSections(s.SubSections) {
		b.WriteString(dcRenderSection(ss, level+1))
	}
	return b.String()
}
