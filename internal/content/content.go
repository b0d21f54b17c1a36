// internal/content/content.go
// Package content holds the static prose of the report as embedded markdown.
package content

import (
	"embed"
	"path"
	"strings"
)

//go:embed text
var files embed.FS

// Title is the report headline.
const Title = "Een Analyse van Non-Cloudbased Nederlandse Tekst-naar-Spraak Modellen"

// Section is a titled block of markdown prose.
type Section struct {
	Title    string
	Markdown string
}

// Page returns the introductory sections in display order.
func Page() []Section {
	return []Section{
		{Title: "", Markdown: read("intro.md")},
		{Title: "Waarom Non-Cloudbased TTS?", Markdown: read("why_offline.md")},
		{Title: "Evaluatie van de TTS-modellen", Markdown: read("methodology.md")},
	}
}

// Closing returns the closing remarks shown after the conclusion.
func Closing() string { return read("closing.md") }

// Author returns the byline.
func Author() string { return read("author.md") }

// Links returns the further-reading list.
func Links() string { return read("links.md") }

// ModelDescription returns the description blurb of the named model, or "".
func ModelDescription(name string) string {
	return read(path.Join("models", name+".md"))
}

// Verdict returns the conclusion remark about the named model, or "".
func Verdict(name string) string {
	return read(path.Join("verdicts", name+".md"))
}

func read(name string) string {
	data, err := files.ReadFile(path.Join("text", name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
