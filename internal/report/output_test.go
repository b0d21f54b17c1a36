// internal/report/output_test.go
package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteHTMLLinksAssets(t *testing.T) {
	dir := writeMedia(t, []string{"1", "2", "4", "5"}, "1")
	r := newTestRenderer(t, dir, Options{Locale: "en"})
	rep, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.WriteHTML(&buf, rep); err != nil {
		t.Fatalf("WriteHTML error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<title>Een Analyse van Non-Cloudbased Nederlandse Tekst-naar-Spraak Modellen</title>",
		`id="model-1"`,
		`id="model-5"`,
		`class="scores"`,
		"Overzicht van Model Scores",
		"Laat voorbeeldcode zien voor parler-tts-mini-multilingual-v1.1",
		"Zeer natuurlijk",
		"<strong>OpenAI-TTS-1-hd</strong> (4.8)",
		"Beste offline model",
		"Massively Multilingual Speech",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected HTML to contain %q", want)
		}
	}

	if got := strings.Count(html, "<audio"); got != 4 {
		t.Fatalf("expected 4 audio players, got %d", got)
	}
	if got := strings.Count(html, "<details>"); got != 1 {
		t.Fatalf("expected 1 example snippet, got %d", got)
	}
	if got := strings.Count(html, `<svg class="radar"`); got != 5 {
		t.Fatalf("expected 5 radar charts, got %d", got)
	}
	if strings.Contains(html, "data:audio") {
		t.Fatal("expected linked audio, found embedded data URI")
	}
	if !strings.Contains(html, filepath.ToSlash(filepath.Join(dir, "1.wav"))) {
		t.Fatal("expected audio path in HTML")
	}
}

func TestWriteHTMLEmbedsAssets(t *testing.T) {
	dir := writeMedia(t, []string{"1"})
	r := newTestRenderer(t, dir, Options{EmbedAssets: true})
	rep, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := r.WriteHTML(&buf, rep); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `src="data:audio/`) {
		t.Fatal("expected embedded audio data URI")
	}
	if strings.Contains(buf.String(), "ZgotmplZ") {
		t.Fatal("template sanitized a value it should have kept")
	}
}

func TestWriteHTMLFileIsDeterministic(t *testing.T) {
	out := t.TempDir()
	r := newTestRenderer(t, t.TempDir(), Options{})
	rep, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}

	first := filepath.Join(out, "a", "report.html")
	second := filepath.Join(out, "b", "report.html")
	if err := r.WriteHTMLFile(first, rep); err != nil {
		t.Fatal(err)
	}
	if err := r.WriteHTMLFile(second, rep); err != nil {
		t.Fatal(err)
	}
	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if len(a) == 0 || !bytes.Equal(a, b) {
		t.Fatal("expected identical, non-empty HTML output")
	}
}

func TestWriteHTMLFileLinksAudioRelativeToPage(t *testing.T) {
	root := t.TempDir()
	oldCwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldCwd) })

	if err := os.MkdirAll("media", 0o755); err != nil {
		t.Fatal(err)
	}
	wav := append([]byte("RIFF\x24\x00\x00\x00WAVEfmt "), make([]byte, 28)...)
	if err := os.WriteFile(filepath.Join("media", "1.wav"), wav, 0o644); err != nil {
		t.Fatal(err)
	}

	r := newTestRenderer(t, "media", Options{})
	rep, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	page := filepath.Join("reports", "tts-report.html")
	if err := r.WriteHTMLFile(page, rep); err != nil {
		t.Fatalf("WriteHTMLFile error: %v", err)
	}
	data, err := os.ReadFile(page)
	if err != nil {
		t.Fatal(err)
	}

	html := string(data)
	const marker = `<source src="`
	start := strings.Index(html, marker)
	if start < 0 {
		t.Fatal("expected an audio source in the page")
	}
	src := html[start+len(marker):]
	src = src[:strings.IndexByte(src, '"')]
	if src != "../media/1.wav" {
		t.Fatalf("audio src = %q, want ../media/1.wav", src)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(page), filepath.FromSlash(src))); err != nil {
		t.Fatalf("audio link does not resolve from the page: %v", err)
	}
}

func TestAssetLink(t *testing.T) {
	if got := assetLink("", "media/1.wav"); got != "media/1.wav" {
		t.Fatalf("empty page dir: %q", got)
	}
	if got := assetLink(".", "media/1.wav"); got != "media/1.wav" {
		t.Fatalf("page in working dir: %q", got)
	}
	if got := assetLink("out/html", "media/1.wav"); got != "../../media/1.wav" {
		t.Fatalf("nested page dir: %q", got)
	}
	abs := filepath.Join(t.TempDir(), "clip.wav")
	want, err := filepath.Rel(mustAbs(t, "reports"), abs)
	if err != nil {
		t.Fatal(err)
	}
	if got := assetLink("reports", abs); got != filepath.ToSlash(want) {
		t.Fatalf("absolute asset: %q, want %q", got, filepath.ToSlash(want))
	}
}

func mustAbs(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatal(err)
	}
	return abs
}

func TestWriteTerminal(t *testing.T) {
	r := newTestRenderer(t, t.TempDir(), Options{Locale: "en"})
	rep, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := r.WriteTerminal(&buf, rep); err != nil {
		t.Fatalf("WriteTerminal error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"speecht5_finetuned_facebook_voxpopuli_dutch",
		"gemiddeld 4.8",
		"Overzicht van Model Scores",
		"1. OpenAI-TTS-1-hd (4.8)",
		"5. speecht5_finetuned_facebook_voxpopuli_dutch (1.8)",
		"Zeer natuurlijk",
		"█",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected terminal output to contain %q\n%s", want, out)
		}
	}
}

func TestWriteRankingText(t *testing.T) {
	r := newTestRenderer(t, t.TempDir(), Options{Locale: "en"})
	var buf bytes.Buffer
	if err := r.WriteRankingText(&buf, r.RenderRanking()); err != nil {
		t.Fatal(err)
	}
	want := "1. OpenAI-TTS-1-hd (4.8)\n" +
		"2. parler-tts-mini-multilingual-v1.1 (4.0)\n" +
		"3. mms-tts-nld (3.8)\n" +
		"4. training_tts_nl_v2 (2.8)\n" +
		"5. speecht5_finetuned_facebook_voxpopuli_dutch (1.8)\n"
	if buf.String() != want {
		t.Fatalf("unexpected ranking text:\n%s", buf.String())
	}
}

func TestRadarGeometry(t *testing.T) {
	chart, err := NewRadarChart("m", []string{"a", "b", "c", "d"}, []int{5, 5, 5, 5}, DefaultPalette[0])
	if err != nil {
		t.Fatal(err)
	}
	g := chart.geometry(400)
	if len(g.Rings) != RadialMax || len(g.Spokes) != 4 || len(g.Markers) != 4 || len(g.Labels) != 4 {
		t.Fatalf("unexpected geometry: rings=%d spokes=%d markers=%d labels=%d", len(g.Rings), len(g.Spokes), len(g.Markers), len(g.Labels))
	}
	// Axis 0 points straight up from the center.
	if g.Markers[0].String() != "200.00,72.00" {
		t.Fatalf("first axis should point up, got %+v", g.Markers[0])
	}
	pts := strings.Fields(g.Polygon)
	if len(pts) != 5 || pts[0] != pts[4] {
		t.Fatalf("polygon should be closed, got %v", pts)
	}
	if g.Polygon != g.Rings[RadialMax-1]+" "+pts[0] {
		t.Fatalf("full scores should trace the outer ring:\n%s\n%s", g.Polygon, g.Rings[RadialMax-1])
	}

	if _, err := NewRadarChart("m", []string{"a"}, []int{1, 2}, Color{}); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if _, err := NewRadarChart("m", nil, nil, Color{}); err == nil {
		t.Fatal("expected empty criteria error")
	}
}
