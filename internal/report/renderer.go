// internal/report/renderer.go
// Package report turns a score table into per-model radar sections, a
// summary table and a ranking, and writes them as HTML or terminal output.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/mwiater/ttsreport/internal/assets"
	"github.com/mwiater/ttsreport/internal/content"
	"github.com/mwiater/ttsreport/internal/logging"
	"github.com/mwiater/ttsreport/internal/scores"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Options tunes rendering.
type Options struct {
	// Palette overrides DefaultPalette.
	Palette []Color
	// EmbedAssets inlines audio clips as data URIs instead of linking them.
	EmbedAssets bool
	// Locale selects number formatting, e.g. "nl" or "en".
	Locale string
}

// Block is the rendered section of a single model.
type Block struct {
	Index           int           `json:"index"`
	Model           scores.Model  `json:"model"`
	DescriptionHTML template.HTML `json:"-"`
	Chart           RadarChart    `json:"chart"`
	Average         float64       `json:"average"`
	Audio           *assets.Asset `json:"-"`
	Example         *assets.Asset `json:"-"`
	// Missing lists the assets that could not be attached to this block.
	Missing []string `json:"missing,omitempty"`
}

// SummaryTable is the models by criteria score grid.
type SummaryTable struct {
	Header []string     `json:"header"`
	Rows   []SummaryRow `json:"rows"`
}

// SummaryRow is one model's line in the summary table.
type SummaryRow struct {
	Model  string `json:"model"`
	Scores []int  `json:"scores"`
}

// RankEntry is one position in the ranking by average score.
type RankEntry struct {
	Position int     `json:"position"`
	Model    string  `json:"model"`
	Average  float64 `json:"average"`
	Cloud    bool    `json:"cloud"`
}

// Highlight is a ranking entry singled out in the conclusion.
type Highlight struct {
	Label   string    `json:"label"`
	Entry   RankEntry `json:"entry"`
	URL     string    `json:"url,omitempty"`
	Verdict string    `json:"verdict,omitempty"`
}

// Prose is a titled piece of rendered markdown.
type Prose struct {
	Title string
	HTML  template.HTML
}

// Report is the complete rendered document.
type Report struct {
	Title      string             `json:"title"`
	Survey     scores.Survey      `json:"survey"`
	Rubric     []scores.Criterion `json:"rubric"`
	Sections   []Block            `json:"sections"`
	Summary    SummaryTable       `json:"summary"`
	Ranking    []RankEntry        `json:"ranking"`
	Highlights []Highlight        `json:"highlights"`
	Intro      []Prose            `json:"-"`
	Closing    template.HTML      `json:"-"`
	Author     template.HTML      `json:"-"`
	Links      template.HTML      `json:"-"`
}

// Renderer renders report pieces from a validated table.
type Renderer struct {
	table    *scores.Table
	resolver *assets.Resolver
	palette  []Color
	opts     Options
	printer  *message.Printer
	md       goldmark.Markdown
}

// NewRenderer checks that every model can get its own palette color.
func NewRenderer(table *scores.Table, resolver *assets.Resolver, opts Options) (*Renderer, error) {
	if table == nil {
		return nil, errors.New("report renderer needs a score table")
	}
	if resolver == nil {
		resolver = assets.NewResolver("")
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if err := checkPalette(palette, table.Len()); err != nil {
		return nil, err
	}

	tag, err := language.Parse(strings.TrimSpace(opts.Locale))
	if err != nil {
		tag = language.Dutch
	}

	return &Renderer{
		table:    table,
		resolver: resolver,
		palette:  palette,
		opts:     opts,
		printer:  message.NewPrinter(tag),
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}, nil
}

// Table returns the table being rendered.
func (r *Renderer) Table() *scores.Table { return r.table }

// FormatAverage formats an average score for the configured locale.
func (r *Renderer) FormatAverage(v float64) string {
	return r.printer.Sprintf("%.1f", v)
}

// RenderModelSection renders one model. index is the model's position in the
// table and selects its palette color. Missing assets are recorded on the
// block and never returned as errors.
func (r *Renderer) RenderModelSection(model scores.Model, index int) (Block, error) {
	if index < 0 || index >= len(r.palette) {
		return Block{}, &PaletteOverflowError{Models: index + 1, Palette: len(r.palette)}
	}

	ordered, err := r.table.OrderedScores(model.Name)
	if err != nil {
		return Block{}, err
	}
	chart, err := NewRadarChart(model.Name, r.table.Criteria(), ordered, r.palette[index])
	if err != nil {
		return Block{}, err
	}
	avg, err := r.table.AverageScore(model.Name)
	if err != nil {
		return Block{}, err
	}
	desc, err := r.markdown(model.Description)
	if err != nil {
		return Block{}, fmt.Errorf("unable to render description of %s: %w", model.Name, err)
	}

	block := Block{
		Index:           index,
		Model:           model,
		DescriptionHTML: desc,
		Chart:           chart,
		Average:         avg,
	}

	block.Audio = r.attach(&block, assets.KindAudio, model)
	block.Example = r.attach(&block, assets.KindExample, model)

	logging.LogRenderEvent("section", model.Name, map[string]any{
		"index":   index,
		"points":  len(chart.R),
		"color":   chart.Color.Name,
		"missing": len(block.Missing),
	})
	return block, nil
}

func (r *Renderer) attach(block *Block, kind string, model scores.Model) *assets.Asset {
	var (
		a   *assets.Asset
		err error
	)
	switch kind {
	case assets.KindAudio:
		a, err = r.resolver.Audio(model.AssetKey)
	default:
		a, err = r.resolver.Example(model.AssetKey)
	}
	if err == nil {
		logging.LogAssetEvent(kind, model.Name, a.Path, "attached "+a.Size())
		return a
	}

	var missing *assets.MissingAssetError
	if errors.As(err, &missing) {
		logging.LogAssetEvent(kind, model.Name, missing.Path, "missing")
	} else {
		logging.Warn("skipping %s asset for %s: %v", kind, model.Name, err)
	}
	block.Missing = append(block.Missing, err.Error())
	return nil
}

// RenderSummaryTable dumps every score in table order.
func (r *Renderer) RenderSummaryTable() SummaryTable {
	header := append([]string{"Model"}, r.table.Criteria()...)
	models := r.table.AllModels()
	rows := make([]SummaryRow, 0, len(models))
	for _, m := range models {
		ordered := mustLookup(r.table.OrderedScores(m.Name))
		rows = append(rows, SummaryRow{Model: m.Name, Scores: ordered})
	}
	return SummaryTable{Header: header, Rows: rows}
}

// mustLookup unwraps a lookup of a name taken from the table itself. A
// failure means the table is corrupt.
func mustLookup[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("score table is inconsistent: %v", err))
	}
	return v
}

// RenderRanking sorts the models by average score, highest first. Equal
// averages keep table order.
func (r *Renderer) RenderRanking() []RankEntry {
	return Ranking(r.table)
}

// Ranking sorts the table's models by average score, highest first, keeping
// table order for ties.
func Ranking(table *scores.Table) []RankEntry {
	models := table.AllModels()
	entries := make([]RankEntry, 0, len(models))
	for _, m := range models {
		avg := mustLookup(table.AverageScore(m.Name))
		entries = append(entries, RankEntry{Model: m.Name, Average: avg, Cloud: m.Cloud})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Average > entries[j].Average
	})
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}

// Highlights picks the best model, the best offline model and the weakest
// model out of a ranking.
func (r *Renderer) Highlights(ranking []RankEntry) []Highlight {
	if len(ranking) == 0 {
		return nil
	}
	var out []Highlight
	add := func(label string, e RankEntry) {
		h := Highlight{Label: label, Entry: e, Verdict: content.Verdict(e.Model)}
		if m, err := r.table.Model(e.Model); err == nil {
			h.URL = m.URL
		}
		out = append(out, h)
	}

	best := ranking[0]
	add("Beste model", best)
	if best.Cloud {
		for _, e := range ranking[1:] {
			if !e.Cloud {
				add("Beste offline model", e)
				break
			}
		}
	}
	if len(ranking) > 1 {
		add("Slechtst presterende model", ranking[len(ranking)-1])
	}
	return out
}

// Render builds the whole report: prose, one section per model in table
// order, the summary table, the ranking and its highlights.
func (r *Renderer) Render() (*Report, error) {
	rep := &Report{
		Title:  content.Title,
		Survey: r.table.Survey(),
		Rubric: r.table.CriteriaDetails(),
	}

	for _, s := range content.Page() {
		html, err := r.markdown(s.Markdown)
		if err != nil {
			return nil, err
		}
		rep.Intro = append(rep.Intro, Prose{Title: s.Title, HTML: html})
	}

	for i, m := range r.table.AllModels() {
		block, err := r.RenderModelSection(m, i)
		if err != nil {
			return nil, err
		}
		rep.Sections = append(rep.Sections, block)
	}

	rep.Summary = r.RenderSummaryTable()
	rep.Ranking = r.RenderRanking()
	rep.Highlights = r.Highlights(rep.Ranking)

	var err error
	if rep.Closing, err = r.markdown(content.Closing()); err != nil {
		return nil, err
	}
	if rep.Author, err = r.markdown(content.Author()); err != nil {
		return nil, err
	}
	if rep.Links, err = r.markdown(content.Links()); err != nil {
		return nil, err
	}
	return rep, nil
}

func (r *Renderer) markdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
