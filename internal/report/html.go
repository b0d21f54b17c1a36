// internal/report/html.go
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const chartSize = 420

type htmlReportData struct {
	*Report
	Sections    []htmlSection
	RankingText []string
	ScaleLabels []int
}

type htmlSection struct {
	Block
	Geometry    chartGeometry
	AverageText string
	AudioSrc    template.URL
	AudioType   string
	AudioSize   string
	ExampleCode string
	ExampleLang string
}

// WriteHTML renders the report as an HTML page. Linked audio paths are
// written as resolved, so they work when the page is opened from the working
// directory; use WriteHTMLFile to link them relative to the page instead.
func (r *Renderer) WriteHTML(w io.Writer, rep *Report) error {
	return r.writeHTML(w, rep, "")
}

func (r *Renderer) writeHTML(w io.Writer, rep *Report, pageDir string) error {
	data := htmlReportData{Report: rep, ScaleLabels: []int{5, 4, 3, 2, 1}}
	for _, b := range rep.Sections {
		s := htmlSection{
			Block:       b,
			Geometry:    b.Chart.geometry(chartSize),
			AverageText: r.FormatAverage(b.Average),
		}
		if b.Audio != nil {
			s.AudioType = b.Audio.ContentType
			s.AudioSize = b.Audio.Size()
			if r.opts.EmbedAssets {
				s.AudioSrc = template.URL(b.Audio.DataURI())
			} else {
				s.AudioSrc = template.URL(assetLink(pageDir, b.Audio.Path))
			}
		}
		if b.Example != nil {
			s.ExampleCode = b.Example.Text()
			s.ExampleLang = b.Example.Language
		}
		data.Sections = append(data.Sections, s)
	}
	for _, e := range rep.Ranking {
		data.RankingText = append(data.RankingText, r.FormatAverage(e.Average))
	}

	var buf bytes.Buffer
	if err := htmlReportTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("unable to render HTML report: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteHTMLFile renders the report into path, creating parent directories.
func (r *Renderer) WriteHTMLFile(path string, rep *Report) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", path, err)
		}
	}
	var buf bytes.Buffer
	if err := r.writeHTML(&buf, rep, filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("unable to write HTML report %s: %w", path, err)
	}
	return nil
}

// assetLink returns the href of path as seen from a page in pageDir. An empty
// pageDir keeps path as is; paths that cannot be made relative become absolute.
func assetLink(pageDir, path string) string {
	if pageDir == "" {
		return filepath.ToSlash(path)
	}
	absPage, errPage := filepath.Abs(pageDir)
	absAsset, errAsset := filepath.Abs(path)
	if errPage != nil || errAsset != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(absPage, absAsset)
	if err != nil {
		return filepath.ToSlash(absAsset)
	}
	return filepath.ToSlash(rel)
}

var htmlReportTemplate = template.Must(template.New("tts-report").Funcs(template.FuncMap{
	"inc":   func(i int) int { return i + 1 },
	"coord": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"lower": strings.ToLower,
	"label": func(labels []string, i int) string {
		if i < 0 || i >= len(labels) {
			return ""
		}
		return labels[i]
	},
}).Parse(htmlReportTemplateHTML))

const htmlReportTemplateHTML = `<!DOCTYPE html>
<html lang="nl">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    :root {
      --primary: #334155;
      --secondary: #64748B;
      --accent: #3B82F6;
      --light: #F1F5F9;
      --background: #FFFFFF;
      --text: #0F172A;
      --border: #E2E8F0;
    }
    body {
      margin: 0;
      font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif;
      background-color: var(--light);
      color: var(--text);
      line-height: 1.55;
    }
    header.navbar {
      background-color: var(--primary);
      color: var(--light);
      padding: 1rem 2rem;
    }
    header.navbar h1 { margin: 0; font-size: 1.5rem; }
    main { max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
    .card {
      background-color: var(--background);
      border: 1px solid var(--border);
      border-radius: 16px;
      padding: 1.5rem;
      margin-bottom: 1.5rem;
      box-shadow: 0 1px 3px rgba(15, 23, 42, 0.1);
    }
    .chart-title { font-size: 1.35rem; font-weight: 700; margin: 0 0 .25rem; }
    .chart-subtitle { color: var(--secondary); margin-bottom: 1rem; }
    .badge {
      display: inline-block;
      border-radius: 999px;
      padding: .1rem .6rem;
      font-size: .8rem;
      color: var(--background);
      background-color: var(--secondary);
    }
    .badge.cloud { background-color: var(--accent); }
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid var(--border); padding: .4rem .6rem; text-align: left; }
    th { background-color: var(--light); }
    td.num { text-align: center; }
    svg text { font-size: 12px; fill: var(--secondary); }
    pre { background: var(--light); padding: 1rem; overflow-x: auto; border-radius: 8px; }
    .missing { color: var(--secondary); font-style: italic; }
    footer { color: var(--secondary); text-align: center; margin: 2rem 0; }
  </style>
</head>
<body>
  <header class="navbar"><h1>{{ .Title }}</h1></header>
  <main>
    {{- range .Intro }}
    <section class="card">
      {{- if .Title }}<h2>{{ .Title }}</h2>{{ end }}
      {{ .HTML }}
    </section>
    {{- end }}

    <section class="card" id="rubric">
      <h2>Beoordelingscriteria</h2>
      <p>{{ .Survey.Raters }} deelnemers beoordeelden elk fragment per criterium van 1 (slechtst) tot 5 (best).</p>
      {{- if .Survey.Sentence }}
      <blockquote><em>{{ .Survey.Sentence }}</em></blockquote>
      {{- end }}
      <table>
        <thead>
          <tr><th>Categorie</th><th>Betekenis</th>{{ range $.ScaleLabels }}<th>{{ . }}</th>{{ end }}</tr>
        </thead>
        <tbody>
          {{- range .Rubric }}
          <tr>
            <td><strong>{{ .Name }}</strong></td>
            <td>{{ .Meaning }}</td>
            {{- $labels := .Labels }}
            {{- range $i, $_ := $.ScaleLabels }}<td>{{ label $labels $i }}</td>{{ end }}
          </tr>
          {{- end }}
        </tbody>
      </table>
    </section>

    <h2>Modellen en Prestaties</h2>
    {{- range .Sections }}
    <section class="card model" id="model-{{ inc .Index }}">
      <h3 class="chart-title">{{ .Model.Name }}</h3>
      <div class="chart-subtitle">
        Gemiddelde score: <strong>{{ .AverageText }}</strong>
        {{ if .Model.Cloud }}<span class="badge cloud">cloud</span>{{ else }}<span class="badge">offline</span>{{ end }}
      </div>
      {{ .DescriptionHTML }}
      <svg class="radar" width="{{ .Geometry.Size }}" height="{{ .Geometry.Size }}" viewBox="0 0 {{ .Geometry.Size }} {{ .Geometry.Size }}" role="img" aria-label="Radar chart {{ .Model.Name }}">
        {{- range .Geometry.Rings }}
        <polygon points="{{ . }}" fill="none" stroke="#E2E8F0" stroke-width="1"></polygon>
        {{- end }}
        {{- $c := .Geometry.Center }}
        {{- range .Geometry.Spokes }}
        <line x1="{{ coord $c.X }}" y1="{{ coord $c.Y }}" x2="{{ coord .X }}" y2="{{ coord .Y }}" stroke="#CBD5E1" stroke-width="1"></line>
        {{- end }}
        {{- range .Geometry.Labels }}
        <text x="{{ coord .At.X }}" y="{{ coord .At.Y }}" text-anchor="{{ .Anchor }}" dominant-baseline="middle">{{ .Text }}</text>
        {{- end }}
        <polygon class="scores" points="{{ .Geometry.Polygon }}" fill="{{ .Chart.Color.Hex }}" fill-opacity="0.35" stroke="{{ .Chart.Color.Hex }}" stroke-width="2"></polygon>
        {{- $color := .Chart.Color.Hex }}
        {{- range .Geometry.Markers }}
        <circle cx="{{ coord .X }}" cy="{{ coord .Y }}" r="3" fill="{{ $color }}"></circle>
        {{- end }}
      </svg>
      {{- if .AudioSrc }}
      <audio controls preload="none">
        <source src="{{ .AudioSrc }}" type="{{ .AudioType }}">
      </audio>
      <div class="chart-subtitle">{{ .AudioSize }}</div>
      {{- end }}
      {{- if .ExampleCode }}
      <details>
        <summary>Laat voorbeeldcode zien voor {{ .Model.Name }}</summary>
        <pre><code class="language-{{ lower .ExampleLang }}">{{ .ExampleCode }}</code></pre>
      </details>
      {{- end }}
      {{- range .Missing }}
      <p class="missing">{{ . }}</p>
      {{- end }}
    </section>
    {{- end }}

    <section class="card" id="summary">
      <h2>Overzicht van Model Scores</h2>
      <table>
        <thead>
          <tr>{{ range .Summary.Header }}<th>{{ . }}</th>{{ end }}</tr>
        </thead>
        <tbody>
          {{- range .Summary.Rows }}
          <tr><td>{{ .Model }}</td>{{ range .Scores }}<td class="num">{{ . }}</td>{{ end }}</tr>
          {{- end }}
        </tbody>
      </table>
    </section>

    <section class="card" id="conclusion">
      <h2>Conclusie en Aanbevelingen</h2>
      <p><strong>Algemene rangschikking op gemiddelde score:</strong></p>
      <ol>
        {{- range $i, $e := .Ranking }}
        <li><strong>{{ $e.Model }}</strong> ({{ index $.RankingText $i }})</li>
        {{- end }}
      </ol>
      {{- range .Highlights }}
      <p><strong>{{ .Label }}:</strong>
        {{ if .URL }}<a href="{{ .URL }}">{{ .Entry.Model }}</a>{{ else }}{{ .Entry.Model }}{{ end }}
        {{- if .Verdict }} {{ .Verdict }}{{ end }}
      </p>
      {{- end }}
      {{ .Closing }}
      {{ .Author }}
    </section>

    <section class="card" id="links">
      <h2>Links</h2>
      {{ .Links }}
    </section>
  </main>
  <footer>{{ len .Sections }} modellen &middot; {{ .Survey.Raters }} beoordelaars</footer>
</body>
</html>
`
