package banner_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/limbo/ascent/internal/banner"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRasterizer struct {
	calls atomic.Int32
	mu    sync.Mutex
	fail  bool
}

func (fr *fakeRasterizer) Rasterize(ctx context.Context, doc *banner.Document) ([]byte, error) {
	fr.calls.Add(1)
	fr.mu.Lock()
	defer fr.mu.Unlock()
	if fr.fail {
		return nil, errors.New("canvas exploded")
	}
	return []byte(doc.HTML), nil
}

func (fr *fakeRasterizer) setFail(v bool) {
	fr.mu.Lock()
	fr.fail = v
	fr.mu.Unlock()
}

type memStore struct {
	keys []string
}

func (ms *memStore) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	ms.keys = append(ms.keys, key)
	return "https://cdn.example.com/" + key, nil
}

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestRenderEveryLayout(t *testing.T) {
	snap := banner.DemoSnapshot(now)
	for _, name := range banner.Layouts() {
		t.Run(name, func(t *testing.T) {
			doc, err := banner.Render(snap, banner.Options{Layout: name, Theme: "sunrise", Format: "story", ShowStats: true}, now)
			require.NoError(t, err)
			assert.Equal(t, name, doc.Layout)
			assert.Equal(t, 1080, doc.Format.Width)
			assert.Equal(t, 1920, doc.Format.Height)
			assert.Contains(t, doc.HTML, "width: 1080px")
			assert.Contains(t, doc.HTML, "#ec4899")
		})
	}
}

func TestRenderDefaultsAndUnknownNames(t *testing.T) {
	snap := banner.DemoSnapshot(now)
	doc, err := banner.Render(snap, banner.Options{}, now)
	require.NoError(t, err)
	assert.Equal(t, banner.DefaultLayout, doc.Layout)
	assert.Equal(t, 1500, doc.Format.Width)
	assert.Equal(t, banner.DefaultTheme, doc.Theme.Name)

	_, err = banner.Render(snap, banner.Options{Format: "billboard"}, now)
	assert.ErrorIs(t, err, errorvalues.ErrUnknownFormat)
	_, err = banner.Render(snap, banner.Options{Theme: "neon"}, now)
	assert.ErrorIs(t, err, errorvalues.ErrUnknownTheme)
	_, err = banner.Render(snap, banner.Options{Layout: "collage"}, now)
	assert.ErrorIs(t, err, errorvalues.ErrUnknownLayout)
}

func TestRenderDerivedValues(t *testing.T) {
	snap := banner.DemoSnapshot(now)
	doc, err := banner.Render(snap, banner.Options{Layout: "stats-flex"}, now)
	require.NoError(t, err)
	// demo journey: 3 resolved, 2 wins, started 23 days ago
	assert.Contains(t, doc.HTML, "<b>24</b>days")
	assert.Contains(t, doc.HTML, "<b>3</b>steps resolved")
	assert.Contains(t, doc.HTML, "<b>67%</b>win rate")
	assert.Contains(t, doc.HTML, "Consistency compounds.")

	doc, err = banner.Render(snap, banner.Options{Layout: "wisdom-drop"}, now)
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, "Consistency compounds.")

	doc, err = banner.Render(snap, banner.Options{Layout: "wisdom-drop", Quote: "Ship it"}, now)
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, "Ship it")
	assert.NotContains(t, doc.HTML, "Consistency compounds.")
}

func TestRenderEscapesUserText(t *testing.T) {
	doc, err := banner.Render(banner.DemoSnapshot(now), banner.Options{Hook: `<script>alert(1)</script>`}, now)
	require.NoError(t, err)
	assert.NotContains(t, doc.HTML, "<script>")
}

func TestRenderDrawsAtMostThreeImages(t *testing.T) {
	img := "data:image/png;base64,iVBORw0KGgo="
	doc, err := banner.Render(banner.DemoSnapshot(now), banner.Options{Images: []string{img, img, img, img}}, now)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(doc.HTML, "<img "))
}

func TestPreviewerDebounces(t *testing.T) {
	fr := &fakeRasterizer{}
	p := banner.NewPreviewer(fr, 30*time.Millisecond, nil)
	defer p.Stop()

	_, err := p.Latest("session")
	assert.ErrorIs(t, err, errorvalues.ErrNoPreview)

	var last *banner.Document
	for _, hook := range []string{"a", "ab", "abc", "abcd"} {
		last, err = banner.Render(banner.DemoSnapshot(now), banner.Options{Hook: hook}, now)
		require.NoError(t, err)
		p.Schedule("session", last)
	}
	assert.Eventually(t, func() bool {
		png, err := p.Latest("session")
		return err == nil && string(png) == last.HTML
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), fr.calls.Load())
}

func TestPreviewerKeepsPreviousOnFailure(t *testing.T) {
	fr := &fakeRasterizer{}
	p := banner.NewPreviewer(fr, 10*time.Millisecond, nil)
	defer p.Stop()

	first, err := banner.Render(banner.DemoSnapshot(now), banner.Options{Hook: "first"}, now)
	require.NoError(t, err)
	p.Schedule("s", first)
	assert.Eventually(t, func() bool {
		_, err := p.Latest("s")
		return err == nil
	}, time.Second, 5*time.Millisecond)

	fr.setFail(true)
	second, err := banner.Render(banner.DemoSnapshot(now), banner.Options{Hook: "second"}, now)
	require.NoError(t, err)
	p.Schedule("s", second)
	assert.Eventually(t, func() bool { return fr.calls.Load() == 2 }, time.Second, 5*time.Millisecond)

	png, err := p.Latest("s")
	require.NoError(t, err)
	assert.Equal(t, first.HTML, string(png))
}

func TestPreviewerKeysAreIndependent(t *testing.T) {
	fr := &fakeRasterizer{}
	p := banner.NewPreviewer(fr, 10*time.Millisecond, nil)
	defer p.Stop()
	doc, err := banner.Render(banner.DemoSnapshot(now), banner.Options{}, now)
	require.NoError(t, err)
	p.Schedule("a", doc)
	p.Schedule("b", doc)
	assert.Eventually(t, func() bool { return fr.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	p.Forget("a")
	_, err = p.Latest("a")
	assert.ErrorIs(t, err, errorvalues.ErrNoPreview)
}

type gatedRasterizer struct {
	release  chan struct{}
	inFlight atomic.Int32
	peak     atomic.Int32
	calls    atomic.Int32
}

func (gr *gatedRasterizer) Rasterize(ctx context.Context, doc *banner.Document) ([]byte, error) {
	gr.calls.Add(1)
	n := gr.inFlight.Add(1)
	defer gr.inFlight.Add(-1)
	for {
		peak := gr.peak.Load()
		if n <= peak || gr.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	select {
	case <-gr.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return []byte("png"), nil
}

func TestPreviewerBoundsConcurrentRenders(t *testing.T) {
	gr := &gatedRasterizer{release: make(chan struct{})}
	p := banner.NewPreviewer(gr, time.Millisecond, nil, banner.WithMaxRenders(2))
	defer p.Stop()
	doc, err := banner.Render(banner.DemoSnapshot(now), banner.Options{}, now)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		p.Schedule(fmt.Sprintf("demo:%d", i), doc)
	}
	assert.Eventually(t, func() bool { return gr.inFlight.Load() == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(2), gr.peak.Load())

	close(gr.release)
	assert.Eventually(t, func() bool { return gr.calls.Load() == 10 }, time.Second, 5*time.Millisecond)
	assert.LessOrEqual(t, gr.peak.Load(), int32(2))
}

func TestPreviewerCapsRetainedKeys(t *testing.T) {
	fr := &fakeRasterizer{}
	p := banner.NewPreviewer(fr, time.Millisecond, nil, banner.WithMaxPreviews(50))
	defer p.Stop()
	doc, err := banner.Render(banner.DemoSnapshot(now), banner.Options{}, now)
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		p.Schedule(fmt.Sprintf("demo:%d", i), doc)
		assert.LessOrEqual(t, p.Retained(), 50)
	}
	assert.Eventually(t, func() bool {
		_, err := p.Latest("demo:1999")
		return err == nil
	}, time.Second, 5*time.Millisecond)
	_, err = p.Latest("demo:0")
	assert.ErrorIs(t, err, errorvalues.ErrNoPreview)
	assert.LessOrEqual(t, p.Retained(), 50)
}

func TestPreviewerExpiresIdlePreviews(t *testing.T) {
	fr := &fakeRasterizer{}
	p := banner.NewPreviewer(fr, time.Millisecond, nil, banner.WithPreviewTTL(40*time.Millisecond))
	defer p.Stop()
	doc, err := banner.Render(banner.DemoSnapshot(now), banner.Options{}, now)
	require.NoError(t, err)

	p.Schedule("demo:idle", doc)
	assert.Eventually(t, func() bool {
		_, err := p.Latest("demo:idle")
		return err == nil
	}, time.Second, 2*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	_, err = p.Latest("demo:idle")
	assert.ErrorIs(t, err, errorvalues.ErrNoPreview)
	assert.Zero(t, p.Retained())
}

func TestPreviewerDropsKeysWhoseOnlyRenderFailed(t *testing.T) {
	fr := &fakeRasterizer{}
	fr.setFail(true)
	p := banner.NewPreviewer(fr, time.Millisecond, nil)
	defer p.Stop()
	doc, err := banner.Render(banner.DemoSnapshot(now), banner.Options{}, now)
	require.NoError(t, err)

	p.Schedule("demo:broken", doc)
	assert.Eventually(t, func() bool { return p.Retained() == 0 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), fr.calls.Load())
}

func TestExporter(t *testing.T) {
	doc, err := banner.Render(banner.DemoSnapshot(now), banner.Options{Format: "linkedin-post"}, now)
	require.NoError(t, err)

	t.Run("demo viewer is turned away before rendering", func(t *testing.T) {
		fr := &fakeRasterizer{}
		_, err := banner.NewExporter(fr, &memStore{}).Export(context.Background(), banner.ExportRequest{Demo: true, Document: doc})
		assert.ErrorIs(t, err, errorvalues.ErrDemoMode)
		assert.Zero(t, fr.calls.Load())
	})
	t.Run("download", func(t *testing.T) {
		a, err := banner.NewExporter(&fakeRasterizer{}, nil).Export(context.Background(), banner.ExportRequest{Document: doc})
		require.NoError(t, err)
		assert.Equal(t, "shift-ascent-linkedin-post.png", a.Filename)
		assert.Equal(t, doc.HTML, string(a.PNG))
		assert.Empty(t, a.URL)
	})
	t.Run("upload without storage", func(t *testing.T) {
		_, err := banner.NewExporter(&fakeRasterizer{}, nil).Export(context.Background(), banner.ExportRequest{Document: doc, Upload: true})
		assert.ErrorIs(t, err, errorvalues.ErrStorageDisabled)
	})
	t.Run("upload builds share links", func(t *testing.T) {
		store := &memStore{}
		a, err := banner.NewExporter(&fakeRasterizer{}, store).Export(context.Background(), banner.ExportRequest{
			Document:  doc,
			Upload:    true,
			Key:       "banners/u1/1.png",
			ShareText: "Day 24",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"banners/u1/1.png"}, store.keys)
		assert.Equal(t, "https://cdn.example.com/banners/u1/1.png", a.URL)
		assert.Contains(t, a.Intents["x"], "text=Day+24")
		assert.Contains(t, a.Intents["linkedin"], "url=https%3A%2F%2Fcdn.example.com")
	})
	t.Run("rasterizer failure", func(t *testing.T) {
		fr := &fakeRasterizer{}
		fr.setFail(true)
		_, err := banner.NewExporter(fr, nil).Export(context.Background(), banner.ExportRequest{Document: doc})
		assert.Error(t, err)
	})
}
