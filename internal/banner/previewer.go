package banner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	errorvalues "github.com/limbo/ascent/internal/error_values"
	"golang.org/x/sync/semaphore"
)

const (
	DefaultDebounce    = 400 * time.Millisecond
	DefaultPreviewTTL  = 15 * time.Minute
	DefaultMaxPreviews = 512
	DefaultMaxRenders  = 2
)

const rasterizeTimeout = 30 * time.Second

type PreviewerOption func(*Previewer)

// WithPreviewTTL drops previews nobody scheduled or read for ttl.
func WithPreviewTTL(ttl time.Duration) PreviewerOption {
	return func(p *Previewer) {
		if ttl > 0 {
			p.ttl = ttl
		}
	}
}

// WithMaxPreviews caps the number of keys kept, least recently used go first.
func WithMaxPreviews(n int) PreviewerOption {
	return func(p *Previewer) {
		if n > 0 {
			p.maxEntries = n
		}
	}
}

// WithMaxRenders bounds how many documents are rasterized at once.
func WithMaxRenders(n int) PreviewerOption {
	return func(p *Previewer) {
		if n > 0 {
			p.renders = semaphore.NewWeighted(int64(n))
		}
	}
}

type preview struct {
	timer   *time.Timer
	gen     uint64
	shown   uint64
	png     []byte
	touched time.Time
}

// Previewer rasterizes the latest scheduled document per key after a quiet period.
// A failed render keeps whatever preview was shown before.
type Previewer struct {
	r          Rasterizer
	delay      time.Duration
	ttl        time.Duration
	maxEntries int
	renders    *semaphore.Weighted
	logger     *slog.Logger
	now        func() time.Time

	mu      sync.Mutex
	seq     uint64
	entries map[string]*preview
	stopped bool
}

func NewPreviewer(r Rasterizer, delay time.Duration, logger *slog.Logger, opts ...PreviewerOption) *Previewer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	p := &Previewer{
		r:          r,
		delay:      delay,
		ttl:        DefaultPreviewTTL,
		maxEntries: DefaultMaxPreviews,
		renders:    semaphore.NewWeighted(DefaultMaxRenders),
		logger:     logger,
		now:        time.Now,
		entries:    make(map[string]*preview),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Schedule replaces any pending render for key.
func (p *Previewer) Schedule(key string, doc *Document) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	now := p.now()
	e, ok := p.entries[key]
	if !ok {
		e = &preview{}
		p.entries[key] = e
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	p.seq++
	g := p.seq
	e.gen = g
	e.touched = now
	e.timer = time.AfterFunc(p.delay, func() {
		p.render(key, g, doc)
	})
	p.evictLocked(now)
}

// claim reports whether g is still the newest request for key and clears its fired timer.
func (p *Previewer) claim(key string, g uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.entries[key]
	if !ok || e.gen != g {
		return false
	}
	e.timer = nil
	return true
}

func (p *Previewer) render(key string, g uint64, doc *Document) {
	if !p.claim(key, g) {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), rasterizeTimeout)
	defer cancel()
	if err := p.renders.Acquire(ctx, 1); err != nil {
		p.logger.Error("banner preview dropped, renderer busy", slog.String("key", key))
		p.dropEmpty(key, g)
		return
	}
	defer p.renders.Release(1)
	// a newer request may have arrived while waiting for a slot
	p.mu.Lock()
	e, ok := p.entries[key]
	stale := !ok || e.gen != g
	p.mu.Unlock()
	if stale {
		return
	}

	png, err := p.r.Rasterize(ctx, doc)
	if err != nil {
		p.logger.Error("banner preview failed", slog.String("key", key), slog.String("layout", doc.Layout), slog.String("error", err.Error()))
		p.dropEmpty(key, g)
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok = p.entries[key]
	// a slower, older render must not replace a newer one
	if !ok || g <= e.shown {
		return
	}
	e.shown = g
	e.png = png
	e.touched = p.now()
}

// dropEmpty forgets a key whose only request failed.
func (p *Previewer) dropEmpty(key string, g uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.entries[key]; ok && e.gen == g && e.png == nil && e.timer == nil {
		delete(p.entries, key)
	}
}

// evictLocked drops expired idle previews, then the least recently used ones over the cap.
func (p *Previewer) evictLocked(now time.Time) {
	for key, e := range p.entries {
		if e.timer == nil && now.Sub(e.touched) > p.ttl {
			delete(p.entries, key)
		}
	}
	for len(p.entries) > p.maxEntries {
		var oldest string
		var at time.Time
		for key, e := range p.entries {
			if oldest == "" || e.touched.Before(at) {
				oldest, at = key, e.touched
			}
		}
		if e := p.entries[oldest]; e.timer != nil {
			e.timer.Stop()
		}
		delete(p.entries, oldest)
	}
}

func (p *Previewer) Latest(key string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.entries[key]
	if !ok || e.png == nil {
		return nil, errorvalues.ErrNoPreview
	}
	now := p.now()
	if e.timer == nil && now.Sub(e.touched) > p.ttl {
		delete(p.entries, key)
		return nil, errorvalues.ErrNoPreview
	}
	e.touched = now
	return e.png, nil
}

// Retained is the number of keys holding a preview or a pending render.
func (p *Previewer) Retained() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

func (p *Previewer) Forget(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.entries[key]; ok && e.timer != nil {
		e.timer.Stop()
	}
	delete(p.entries, key)
}

func (p *Previewer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	for _, e := range p.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
}
