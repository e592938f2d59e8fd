package banner

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"math"
	"strings"
	"time"

	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/journey"
	"github.com/limbo/ascent/pkg/entity"
)

const DefaultLayout = "building-in-public"

// Options is what the user picks in the banner editor.
type Options struct {
	Format    string `json:"format"`
	Theme     string `json:"theme"`
	Layout    string `json:"layout"`
	Hook      string `json:"hook"`
	Quote     string `json:"quote"`
	ShowStats bool   `json:"show_stats"`
	// Data URIs of product images, at most three are drawn
	Images []string `json:"-"`
}

// Document is a self-contained HTML page sized to its format.
type Document struct {
	Format Format
	Theme  Theme
	Layout string
	HTML   string
}

type frameData struct {
	Format Format
	Theme  Theme
	Images []template.URL
	Body   any
}

type layout struct {
	tmpl *template.Template
	view func(snap journey.Snapshot, opts Options, now time.Time) any
}

const frameTemplate = `<!DOCTYPE html>
<html><head><meta charset="utf-8">
<style>
* { box-sizing: border-box; margin: 0; padding: 0; }
html, body { width: {{.Format.Width}}px; height: {{.Format.Height}}px; overflow: hidden; }
body { font-family: "Inter", "Helvetica Neue", Arial, sans-serif; color: {{.Theme.Text}};
  background: linear-gradient(135deg, {{.Theme.From}}, {{.Theme.To}}); }
.frame { position: relative; width: 100%; height: 100%; padding: 6%; display: flex; flex-direction: column; justify-content: center; gap: 24px; }
.accent { color: {{.Theme.Accent}}; }
.bar { height: 14px; border-radius: 7px; background: rgba(255,255,255,0.2); overflow: hidden; }
.bar > div { height: 100%; background: {{.Theme.Accent}}; }
.stats { display: flex; gap: 48px; font-size: 28px; }
.stats b { display: block; font-size: 56px; color: {{.Theme.Accent}}; }
.images { position: absolute; right: 4%; bottom: 6%; display: flex; gap: 12px; }
.images img { width: 120px; height: 120px; object-fit: cover; border-radius: 16px; }
.muted { opacity: 0.75; }
</style></head>
<body><div class="frame">{{template "body" .Body}}</div>
{{if .Images}}<div class="images">{{range .Images}}<img src="{{.}}">{{end}}</div>{{end}}
</body></html>`

var frame = template.Must(template.New("frame").Parse(frameTemplate))

func newLayout(body string, view func(journey.Snapshot, Options, time.Time) any) layout {
	t := template.Must(frame.Clone())
	template.Must(t.New("body").Funcs(template.FuncMap{"pct": pct}).Parse(body))
	return layout{tmpl: t, view: view}
}

func pct(v float64) string {
	return fmt.Sprintf("%.0f%%", math.Round(v))
}

var layouts = map[string]layout{
	"building-in-public": newLayout(buildingInPublicBody, buildingInPublic),
	"thread-starter":     newLayout(threadStarterBody, threadStarter),
	"wisdom-drop":        newLayout(wisdomDropBody, wisdomDrop),
	"stats-flex":         newLayout(statsFlexBody, statsFlex),
}

func Layouts() []string {
	return []string{"building-in-public", "thread-starter", "wisdom-drop", "stats-flex"}
}

// Render builds the banner document. Unknown names fail, empty ones fall back to defaults.
func Render(snap journey.Snapshot, opts Options, now time.Time) (*Document, error) {
	format, err := FormatByName(opts.Format)
	if err != nil {
		return nil, err
	}
	theme, err := ThemeByName(opts.Theme)
	if err != nil {
		return nil, err
	}
	name := opts.Layout
	if name == "" {
		name = DefaultLayout
	}
	l, ok := layouts[name]
	if !ok {
		return nil, errorvalues.ErrUnknownLayout
	}
	data := frameData{
		Format: format,
		Theme:  theme,
		Body:   l.view(snap, opts, now),
	}
	for i, img := range opts.Images {
		if i == 3 {
			break
		}
		// Images are sniffed and re-encoded on upload.
		data.Images = append(data.Images, template.URL(img))
	}
	var buf bytes.Buffer
	if err := l.tmpl.ExecuteTemplate(&buf, "frame", data); err != nil {
		return nil, errors.New("executing banner template error: " + err.Error())
	}
	return &Document{Format: format, Theme: theme, Layout: name, HTML: buf.String()}, nil
}

func mountainTitle(m *entity.Mountain) string {
	if m == nil || m.Title == "" {
		return "My mountain"
	}
	return m.Title
}

func metricLine(m *entity.Mountain) string {
	if m == nil {
		return ""
	}
	if m.TargetValue == nil {
		return m.Target
	}
	current := 0.0
	if m.CurrentValue != nil {
		current = *m.CurrentValue
	}
	return fmt.Sprintf("%s%s%s / %s%s%s",
		m.MetricPrefix, trimFloat(current), m.MetricSuffix,
		m.MetricPrefix, trimFloat(*m.TargetValue), m.MetricSuffix)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

const buildingInPublicBody = `<div class="muted">Day {{.Day}} of building in public</div>
<h1 style="font-size: 72px;">{{.Title}}</h1>
{{if .Hook}}<div style="font-size: 34px;">{{.Hook}}</div>{{end}}
<div class="accent" style="font-size: 32px;">{{.Metric}}</div>
<div class="bar"><div style="width: {{pct .Progress}};"></div></div>
{{if .ShowStats}}<div class="stats"><div><b>{{.Resolved}}/{{.Total}}</b>steps</div><div><b>{{pct .WinRate}}</b>win rate</div></div>{{end}}`

func buildingInPublic(snap journey.Snapshot, opts Options, now time.Time) any {
	var created time.Time
	if snap.Mountain != nil {
		created = snap.Mountain.CreatedAt
	}
	day := 1
	if !created.IsZero() && now.After(created) {
		day = int(now.Sub(created).Hours()/24) + 1
	}
	return struct {
		Day       int
		Title     string
		Hook      string
		Metric    string
		Progress  float64
		ShowStats bool
		Resolved  int
		Total     int
		WinRate   float64
	}{
		Day:       day,
		Title:     mountainTitle(snap.Mountain),
		Hook:      opts.Hook,
		Metric:    metricLine(snap.Mountain),
		Progress:  snap.Progress(),
		ShowStats: opts.ShowStats,
		Resolved:  snap.ResolvedSteps(),
		Total:     snap.TotalPlanned(),
		WinRate:   snap.WinRate(),
	}
}

const threadStarterBody = `<div class="accent" style="font-size: 30px;">🧵 Thread</div>
<h1 style="font-size: 64px;">{{if .Hook}}{{.Hook}}{{else}}How I'm climbing: {{.Title}}{{end}}</h1>
<ol style="font-size: 30px; padding-left: 36px;">{{range .Steps}}<li>{{.Title}}{{if .Done}} <span class="accent">✓</span>{{end}}</li>{{end}}</ol>
<div class="muted" style="font-size: 26px;">Day {{.Day}}. {{.Successes}} wins so far.</div>`

func threadStarter(snap journey.Snapshot, opts Options, now time.Time) any {
	type stepLine struct {
		Title string
		Done  bool
	}
	var steps []stepLine
	successes := 0
	for _, sv := range snap.Steps {
		status := sv.EffectiveStatus()
		if status == entity.StepSuccess {
			successes++
		}
		if len(steps) < 5 {
			steps = append(steps, stepLine{Title: sv.Title, Done: status == entity.StepSuccess})
		}
	}
	return struct {
		Hook      string
		Title     string
		Steps     []stepLine
		Day       int
		Successes int
	}{
		Hook:      opts.Hook,
		Title:     mountainTitle(snap.Mountain),
		Steps:     steps,
		Day:       snap.DaysSinceStart(now),
		Successes: successes,
	}
}

const wisdomDropBody = `<div class="accent" style="font-size: 120px; line-height: 0.6;">“</div>
<blockquote style="font-size: 52px; font-style: italic;">{{.Quote}}</blockquote>
<div class="muted" style="font-size: 28px;">Lesson {{.Count}} from climbing {{.Title}}</div>`

func wisdomDrop(snap journey.Snapshot, opts Options, now time.Time) any {
	// Latest lesson wins unless the user typed a quote.
	quote := opts.Quote
	count := 0
	var latest time.Time
	for _, sv := range snap.Steps {
		for _, n := range sv.Notes {
			if n.LessonLearned == "" {
				continue
			}
			count++
			if opts.Quote == "" && !n.CreatedAt.Before(latest) {
				latest = n.CreatedAt
				quote = n.LessonLearned
			}
		}
	}
	if quote == "" {
		quote = "Every failed step is data."
	}
	return struct {
		Quote string
		Count int
		Title string
	}{Quote: quote, Count: max(count, 1), Title: mountainTitle(snap.Mountain)}
}

const statsFlexBody = `<h1 style="font-size: 56px;">{{.Title}}</h1>
<div class="stats">
<div><b>{{.Days}}</b>days</div>
<div><b>{{.Resolved}}</b>steps resolved</div>
<div><b>{{pct .WinRate}}</b>win rate</div>
<div><b>{{pct .Progress}}</b>to the summit</div>
</div>
{{if .Lesson}}<div class="muted" style="font-size: 26px;">Latest lesson: {{.Lesson}}</div>{{end}}`

func statsFlex(snap journey.Snapshot, opts Options, now time.Time) any {
	resolved, wins := 0, 0
	for _, sv := range snap.Steps {
		switch sv.EffectiveStatus() {
		case entity.StepSuccess:
			resolved++
			wins++
		case entity.StepFailed:
			resolved++
		}
	}
	winRate := 0.0
	if resolved > 0 {
		winRate = float64(wins) / float64(resolved) * 100
	}
	return struct {
		Title    string
		Days     int
		Resolved int
		WinRate  float64
		Progress float64
		Lesson   string
	}{
		Title:    mountainTitle(snap.Mountain),
		Days:     snap.DaysSinceStart(now),
		Resolved: resolved,
		WinRate:  winRate,
		Progress: snap.Progress(),
		Lesson:   snap.LatestLesson(),
	}
}
