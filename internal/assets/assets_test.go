// internal/assets/assets_test.go
package assets

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// wavHeader builds a minimal RIFF/WAVE header followed by a few silent samples.
func wavHeader() []byte {
	data := make([]byte, 8)
	buf := make([]byte, 0, 44+len(data))
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+len(data)))
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16)
	buf = binary.LittleEndian.AppendUint16(buf, 1)
	buf = binary.LittleEndian.AppendUint16(buf, 1)
	buf = binary.LittleEndian.AppendUint32(buf, 16000)
	buf = binary.LittleEndian.AppendUint32(buf, 32000)
	buf = binary.LittleEndian.AppendUint16(buf, 2)
	buf = binary.LittleEndian.AppendUint16(buf, 16)
	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(data)))
	return append(buf, data...)
}

func TestAudioDetectsWav(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "1.wav"), wavHeader(), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := NewResolver(dir).Audio("1")
	if err != nil {
		t.Fatalf("Audio error: %v", err)
	}
	if !strings.HasPrefix(a.ContentType, "audio/") {
		t.Fatalf("expected audio content type, got %q", a.ContentType)
	}
	if !strings.HasPrefix(a.DataURI(), "data:"+a.ContentType+";base64,") {
		t.Fatalf("unexpected data URI prefix: %.40s", a.DataURI())
	}
	if a.Size() != "52 B" {
		t.Fatalf("unexpected size label %q", a.Size())
	}
}

func TestExampleLoadsSnippet(t *testing.T) {
	dir := t.TempDir()
	src := "print('hallo')\n"
	if err := os.WriteFile(filepath.Join(dir, "3.py"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := NewResolver(dir).Example("3")
	if err != nil {
		t.Fatalf("Example error: %v", err)
	}
	if a.Text() != src || a.Language != "python" {
		t.Fatalf("unexpected example asset: %+v", a)
	}
}

func TestMissingAssetsAreReportedAsMissing(t *testing.T) {
	r := NewResolver(t.TempDir())

	_, err := r.Audio("9")
	if !IsMissing(err) {
		t.Fatalf("expected MissingAssetError for audio, got %v", err)
	}
	_, err = r.Example("9")
	if !IsMissing(err) {
		t.Fatalf("expected MissingAssetError for example, got %v", err)
	}
	if !strings.Contains(err.Error(), "example asset \"9\"") {
		t.Fatalf("unexpected message: %v", err)
	}
	if _, err := r.Audio(" "); !IsMissing(err) {
		t.Fatalf("expected MissingAssetError for blank key, got %v", err)
	}
}

func TestReadErrorIsNotMissing(t *testing.T) {
	dir := t.TempDir()
	// A directory where a file is expected produces a read error, not a missing asset.
	if err := os.Mkdir(filepath.Join(dir, "2.wav"), 0o755); err != nil {
		t.Fatal(err)
	}
	_, err := NewResolver(dir).Audio("2")
	if err == nil {
		t.Fatal("expected read error")
	}
	if IsMissing(err) {
		t.Fatalf("directory should not be reported as missing: %v", err)
	}
}

func TestNewResolverDefaultsDir(t *testing.T) {
	if got := NewResolver("  ").Dir; got != "." {
		t.Fatalf("expected '.', got %q", got)
	}
	r := NewResolver("media")
	if r.AudioPath("4") != filepath.Join("media", "4.wav") || r.ExamplePath("4") != filepath.Join("media", "4.py") {
		t.Fatalf("unexpected paths %s %s", r.AudioPath("4"), r.ExamplePath("4"))
	}
}
