package journey

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/limbo/ascent/pkg/plan"
)

// StepView is a step with its notes, oldest first.
type StepView struct {
	entity.Step
	Notes []entity.JourneyNote `json:"notes"`
}

// EffectiveStatus is the stored status. Note writes set it from the result
// and note deletes send it back to pending.
func (sv StepView) EffectiveStatus() entity.StepStatus {
	return sv.Status
}

// LatestNote returns nil when the step has no notes.
func (sv StepView) LatestNote() *entity.JourneyNote {
	if n := len(sv.Notes); n > 0 {
		note := sv.Notes[n-1]
		return &note
	}
	return nil
}

// Snapshot is a detached copy of a journey. Mutating it never touches the journey.
type Snapshot struct {
	UserID     uuid.UUID          `json:"user_id"`
	Tier       entity.PlanTier    `json:"plan_tier"`
	Mountain   *entity.Mountain   `json:"mountain"`
	Steps      []StepView         `json:"steps"`
	Milestones []entity.Milestone `json:"milestones"`
	TakenAt    time.Time          `json:"taken_at"`
}

func (s Snapshot) ResolvedSteps() int {
	n := 0
	for _, st := range s.Steps {
		if st.EffectiveStatus().Resolved() {
			n++
		}
	}
	return n
}

func (s Snapshot) SuccessfulSteps() int {
	n := 0
	for _, st := range s.Steps {
		if st.EffectiveStatus() == entity.StepSuccess {
			n++
		}
	}
	return n
}

// TotalPlanned falls back from the declared plan to the step count and finally to 1.
func (s Snapshot) TotalPlanned() int {
	if s.Mountain != nil && s.Mountain.TotalStepsPlanned > 0 {
		return s.Mountain.TotalStepsPlanned
	}
	if len(s.Steps) > 0 {
		return len(s.Steps)
	}
	return 1
}

// Progress is a percentage in [0, 100].
func (s Snapshot) Progress() float64 {
	return math.Min(float64(s.ResolvedSteps())/float64(s.TotalPlanned())*100, 100)
}

// WinRate is the share of resolved steps that succeeded, in percent.
func (s Snapshot) WinRate() float64 {
	resolved := s.ResolvedSteps()
	if resolved == 0 {
		return 0
	}
	return float64(s.SuccessfulSteps()) / float64(resolved) * 100
}

// DaysSinceStart counts calendar days from mountain creation, starting at day 1.
func (s Snapshot) DaysSinceStart(now time.Time) int {
	if s.Mountain == nil || s.Mountain.CreatedAt.IsZero() {
		return 0
	}
	days := int(now.Sub(s.Mountain.CreatedAt).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// LatestLesson is the most recently written non-empty lesson across all steps.
func (s Snapshot) LatestLesson() string {
	var (
		lesson string
		at     time.Time
	)
	for _, st := range s.Steps {
		for _, n := range st.Notes {
			if n.LessonLearned == "" {
				continue
			}
			if lesson == "" || !n.CreatedAt.Before(at) {
				lesson, at = n.LessonLearned, n.CreatedAt
			}
		}
	}
	return lesson
}

// CurrentMilestone is the locked milestone with the lowest target.
func (s Snapshot) CurrentMilestone() *entity.Milestone {
	var current *entity.Milestone
	for i := range s.Milestones {
		m := s.Milestones[i]
		if m.Unlocked {
			continue
		}
		if current == nil || m.TargetValue < current.TargetValue {
			current = &m
		}
	}
	return current
}

func (s Snapshot) Usage() plan.Usage {
	u := plan.Usage{Steps: len(s.Steps)}
	if s.Mountain != nil {
		u.Mountains = 1
		u.Shares = s.Mountain.ShareCount
	}
	return u
}

// Stats groups the derived values for clients that render them directly.
type Stats struct {
	ResolvedSteps   int     `json:"resolved_steps"`
	SuccessfulSteps int     `json:"successful_steps"`
	TotalPlanned    int     `json:"total_planned"`
	Progress        float64 `json:"progress"`
	WinRate         float64 `json:"win_rate"`
	DaysSinceStart  int     `json:"days_since_start"`
	LatestLesson    string  `json:"latest_lesson"`
}

func (s Snapshot) Stats(now time.Time) Stats {
	return Stats{
		ResolvedSteps:   s.ResolvedSteps(),
		SuccessfulSteps: s.SuccessfulSteps(),
		TotalPlanned:    s.TotalPlanned(),
		Progress:        s.Progress(),
		WinRate:         s.WinRate(),
		DaysSinceStart:  s.DaysSinceStart(now),
		LatestLesson:    s.LatestLesson(),
	}
}
