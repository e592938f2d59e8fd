package banner

import (
	"context"
	"errors"
	"net/url"

	errorvalues "github.com/limbo/ascent/internal/error_values"
)

// ArtifactStore keeps exported banners and hands back a URL that can be shared.
type ArtifactStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type ExportRequest struct {
	// Demo viewers never receive an artifact
	Demo      bool
	Document  *Document
	Key       string
	Upload    bool
	ShareText string
}

type Artifact struct {
	PNG      []byte            `json:"-"`
	Filename string            `json:"filename"`
	URL      string            `json:"url,omitempty"`
	Intents  map[string]string `json:"intents,omitempty"`
}

type Exporter struct {
	r     Rasterizer
	store ArtifactStore
}

// NewExporter accepts a nil store, uploads then fail with ErrStorageDisabled.
func NewExporter(r Rasterizer, store ArtifactStore) *Exporter {
	return &Exporter{r: r, store: store}
}

func (e *Exporter) Export(ctx context.Context, req ExportRequest) (*Artifact, error) {
	if req.Demo {
		return nil, errorvalues.ErrDemoMode
	}
	if req.Document == nil {
		return nil, errors.New("nothing to export")
	}
	if req.Upload && e.store == nil {
		return nil, errorvalues.ErrStorageDisabled
	}
	png, err := e.r.Rasterize(ctx, req.Document)
	if err != nil {
		return nil, errors.New("rasterizing banner error: " + err.Error())
	}
	artifact := &Artifact{
		PNG:      png,
		Filename: "shift-ascent-" + req.Document.Format.Name + ".png",
	}
	if !req.Upload {
		return artifact, nil
	}
	link, err := e.store.Put(ctx, req.Key, png, "image/png")
	if err != nil {
		return nil, errors.New("uploading banner error: " + err.Error())
	}
	artifact.URL = link
	artifact.Intents = ShareIntents(link, req.ShareText)
	return artifact, nil
}

// ShareIntents builds the compose links of the supported networks.
func ShareIntents(link, text string) map[string]string {
	x := url.Values{}
	x.Set("url", link)
	if text != "" {
		x.Set("text", text)
	}
	li := url.Values{}
	li.Set("url", link)
	return map[string]string{
		"x":        "https://twitter.com/intent/tweet?" + x.Encode(),
		"linkedin": "https://www.linkedin.com/sharing/share-offsite/?" + li.Encode(),
	}
}
