// internal/assets/assets.go
// Package assets resolves the audio clips and example snippets that belong to
// each model in the score table.
package assets

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// Asset kinds.
const (
	KindAudio   = "audio"
	KindExample = "example"
)

const (
	audioExt   = ".wav"
	exampleExt = ".py"
)

// MissingAssetError reports an asset that is not present on disk. Callers
// drop the affected element instead of failing.
type MissingAssetError struct {
	Kind string
	Key  string
	Path string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("%s asset %q not found at %s", e.Kind, e.Key, e.Path)
}

// IsMissing reports whether err wraps a *MissingAssetError.
func IsMissing(err error) bool {
	var missing *MissingAssetError
	return errors.As(err, &missing)
}

// Asset is a loaded media or source file.
type Asset struct {
	Kind        string
	Key         string
	Path        string
	ContentType string
	// Language is the highlight hint for example snippets.
	Language string
	Data     []byte
}

// Size returns the human readable size of the asset.
func (a *Asset) Size() string {
	return humanize.Bytes(uint64(len(a.Data)))
}

// Text returns the asset contents as a string.
func (a *Asset) Text() string {
	return string(a.Data)
}

// DataURI returns the asset encoded as a data: URI.
func (a *Asset) DataURI() string {
	return "data:" + a.ContentType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// Resolver locates assets inside a media directory by asset key.
type Resolver struct {
	Dir string
}

// NewResolver returns a resolver rooted at dir.
func NewResolver(dir string) *Resolver {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	return &Resolver{Dir: dir}
}

// AudioPath returns where the audio clip for key is expected.
func (r *Resolver) AudioPath(key string) string {
	return filepath.Join(r.Dir, key+audioExt)
}

// ExamplePath returns where the example snippet for key is expected.
func (r *Resolver) ExamplePath(key string) string {
	return filepath.Join(r.Dir, key+exampleExt)
}

// Audio loads the audio clip for key.
func (r *Resolver) Audio(key string) (*Asset, error) {
	a, err := r.load(KindAudio, key, r.AudioPath(key))
	if err != nil {
		return nil, err
	}
	mt := mimetype.Detect(a.Data)
	a.ContentType = mt.String()
	if mt.Is("application/octet-stream") {
		a.ContentType = "audio/wav"
	}
	// Drop parameters such as charset so the value fits an <audio> source type.
	if i := strings.IndexByte(a.ContentType, ';'); i >= 0 {
		a.ContentType = strings.TrimSpace(a.ContentType[:i])
	}
	return a, nil
}

// Example loads the example snippet for key.
func (r *Resolver) Example(key string) (*Asset, error) {
	a, err := r.load(KindExample, key, r.ExamplePath(key))
	if err != nil {
		return nil, err
	}
	a.ContentType = "text/x-python"
	a.Language = "python"
	return a, nil
}

func (r *Resolver) load(kind, key, path string) (*Asset, error) {
	if strings.TrimSpace(key) == "" {
		return nil, &MissingAssetError{Kind: kind, Key: key, Path: path}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingAssetError{Kind: kind, Key: key, Path: path}
		}
		return nil, fmt.Errorf("unable to read %s asset %s: %w", kind, path, err)
	}
	return &Asset{Kind: kind, Key: key, Path: path, Data: data}, nil
}
