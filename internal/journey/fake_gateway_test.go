package journey_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/journey"
	"github.com/limbo/ascent/pkg/entity"
)

// memStore mimics the postgres repositories closely enough for the journey model.
type memStore struct {
	mu         sync.Mutex
	mountains  map[uuid.UUID]*entity.Mountain
	steps      map[int64]*entity.Step
	notes      map[int64]*entity.JourneyNote
	milestones map[uuid.UUID]*entity.Milestone
	nextStep   int64
	nextNote   int64
	clock      time.Time

	failNoteDelete error
	createCalls    int
}

func newMemStore() *memStore {
	return &memStore{
		mountains:  make(map[uuid.UUID]*entity.Mountain),
		steps:      make(map[int64]*entity.Step),
		notes:      make(map[int64]*entity.JourneyNote),
		milestones: make(map[uuid.UUID]*entity.Milestone),
		clock:      time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) gateway() journey.Gateway {
	return journey.Gateway{
		Mountains:  mountainsFake{s},
		Steps:      stepsFake{s},
		Notes:      notesFake{s},
		Milestones: milestonesFake{s},
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *memStore) latestNote(stepID int64) *entity.JourneyNote {
	var latest *entity.JourneyNote
	for _, n := range s.notes {
		if n.StepID != stepID {
			continue
		}
		if latest == nil || n.CreatedAt.After(latest.CreatedAt) || (n.CreatedAt.Equal(latest.CreatedAt) && n.ID > latest.ID) {
			latest = n
		}
	}
	return latest
}

func (s *memStore) stepsOf(mid uuid.UUID) []entity.Step {
	out := make([]entity.Step, 0)
	for _, st := range s.steps {
		if st.MountainID == mid {
			out = append(out, *st)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})
	return out
}

type mountainsFake struct{ s *memStore }

func (f mountainsFake) FetchForUser(_ context.Context, uid uuid.UUID) (*entity.Mountain, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, m := range f.s.mountains {
		if m.UserID == uid {
			out := *m
			return &out, nil
		}
	}
	return nil, errorvalues.ErrMountainNotFound
}

func (f mountainsFake) Create(_ context.Context, m *entity.Mountain) (*entity.Mountain, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.createCalls++
	for _, existing := range f.s.mountains {
		if existing.UserID == m.UserID {
			out := *existing
			return &out, nil
		}
	}
	created := *m
	created.ID = uuid.New()
	created.CreatedAt = f.s.tick()
	if created.TotalStepsPlanned <= 0 {
		created.TotalStepsPlanned = entity.DefaultTotalStepsPlanned
	}
	f.s.mountains[created.ID] = &created
	out := created
	return &out, nil
}

func (f mountainsFake) Update(_ context.Context, m *entity.Mountain) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.mountains[m.ID]; !ok {
		return errorvalues.ErrMountainNotFound
	}
	cp := *m
	f.s.mountains[m.ID] = &cp
	return nil
}

func (f mountainsFake) UpdateProgress(_ context.Context, id uuid.UUID, v float64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	m, ok := f.s.mountains[id]
	if !ok {
		return errorvalues.ErrMountainNotFound
	}
	m.CurrentValue = &v
	return nil
}

func (f mountainsFake) IncrementShareCount(_ context.Context, id uuid.UUID, limit int) (int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	m, ok := f.s.mountains[id]
	if !ok {
		return 0, errorvalues.ErrMountainNotFound
	}
	if limit >= 0 && m.ShareCount >= limit {
		return 0, errorvalues.ErrShareLimitReached
	}
	m.ShareCount++
	return m.ShareCount, nil
}

func (f mountainsFake) ClaimProfile(_ context.Context, id uuid.UUID, username string, isPublic bool, bio string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, m := range f.s.mountains {
		if m.ID != id && m.Username != nil && *m.Username == username {
			return errorvalues.ErrUsernameTaken
		}
	}
	m, ok := f.s.mountains[id]
	if !ok {
		return errorvalues.ErrMountainNotFound
	}
	m.Username, m.IsPublic, m.PublicBio = &username, isPublic, bio
	return nil
}

func (f mountainsFake) FetchPublic(_ context.Context, username string) (*entity.Mountain, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, m := range f.s.mountains {
		if m.Username != nil && *m.Username == username && m.IsPublic {
			out := *m
			return &out, nil
		}
	}
	return nil, errorvalues.ErrMountainNotFound
}

type stepsFake struct{ s *memStore }

func (f stepsFake) FetchForMountain(_ context.Context, mid uuid.UUID) ([]entity.Step, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.stepsOf(mid), nil
}

func (f stepsFake) Add(_ context.Context, step *entity.Step) (*entity.Step, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.mountains[step.MountainID]; !ok {
		return nil, errorvalues.ErrMountainNotFound
	}
	existing := f.s.stepsOf(step.MountainID)
	if n := len(existing); n > 0 {
		last := existing[n-1]
		switch {
		case !last.Status.Resolved():
			return nil, errorvalues.ErrPreviousStepUnresolved
		case f.s.latestNote(last.ID) == nil:
			return nil, errorvalues.ErrPreviousStepNeedsNote
		}
	}
	f.s.nextStep++
	created := *step
	created.ID = f.s.nextStep
	created.OrderIndex = len(existing)
	if created.Status == "" {
		created.Status = entity.StepPending
	}
	f.s.steps[created.ID] = &created
	out := created
	return &out, nil
}

func (f stepsFake) UpdateStatus(_ context.Context, id int64, status entity.StepStatus) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	st, ok := f.s.steps[id]
	if !ok {
		return errorvalues.ErrStepNotFound
	}
	st.Status = status
	return nil
}

func (f stepsFake) Update(_ context.Context, step *entity.Step) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	st, ok := f.s.steps[step.ID]
	if !ok {
		return errorvalues.ErrStepNotFound
	}
	st.Title, st.Description, st.ExpectedOutcome = step.Title, step.Description, step.ExpectedOutcome
	return nil
}

func (f stepsFake) Delete(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.steps[id]; !ok {
		return errorvalues.ErrStepNotFound
	}
	for nid, n := range f.s.notes {
		if n.StepID == id {
			delete(f.s.notes, nid)
		}
	}
	delete(f.s.steps, id)
	return nil
}

func (f stepsFake) CountForMountain(_ context.Context, mid uuid.UUID) (int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return len(f.s.stepsOf(mid)), nil
}

type notesFake struct{ s *memStore }

func (f notesFake) FetchForSteps(_ context.Context, ids []int64) ([]entity.JourneyNote, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]entity.JourneyNote, 0)
	for _, n := range f.s.notes {
		if want[n.StepID] {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f notesFake) FetchForStep(_ context.Context, stepID int64) (*entity.JourneyNote, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if n := f.s.latestNote(stepID); n != nil {
		out := *n
		return &out, nil
	}
	return nil, errorvalues.ErrNoteNotFound
}

func (f notesFake) write(note *entity.JourneyNote, upsert bool) (*entity.JourneyNote, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	result, ok := entity.NormalizeResult(string(note.Result))
	if !ok {
		return nil, errorvalues.ErrInvalidResult
	}
	st, ok := f.s.steps[note.StepID]
	if !ok {
		return nil, errorvalues.ErrStepNotFound
	}
	now := f.s.tick()
	saved := f.s.latestNote(note.StepID)
	if !upsert || saved == nil {
		f.s.nextNote++
		saved = &entity.JourneyNote{ID: f.s.nextNote, StepID: note.StepID, CreatedAt: now}
		f.s.notes[saved.ID] = saved
	}
	saved.Result = result
	saved.ReflectionText, saved.LessonLearned, saved.Title = note.ReflectionText, note.LessonLearned, note.Title
	saved.UpdatedAt = now
	st.Status = result.StepStatus()
	out := *saved
	return &out, nil
}

func (f notesFake) Save(_ context.Context, note *entity.JourneyNote) (*entity.JourneyNote, error) {
	return f.write(note, true)
}

func (f notesFake) Append(_ context.Context, note *entity.JourneyNote) (*entity.JourneyNote, error) {
	return f.write(note, false)
}

func (f notesFake) reset(stepID int64) {
	if st, ok := f.s.steps[stepID]; ok {
		st.Status = entity.StepPending
	}
}

func (f notesFake) Delete(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	n, ok := f.s.notes[id]
	if !ok {
		return errorvalues.ErrNoteNotFound
	}
	delete(f.s.notes, id)
	f.reset(n.StepID)
	return nil
}

func (f notesFake) DeleteAndResetStep(_ context.Context, stepID, noteID int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.failNoteDelete != nil {
		return f.s.failNoteDelete
	}
	n, ok := f.s.notes[noteID]
	if !ok || n.StepID != stepID {
		return errorvalues.ErrNoteNotFound
	}
	delete(f.s.notes, noteID)
	f.reset(stepID)
	return nil
}

type milestonesFake struct{ s *memStore }

func (f milestonesFake) ListForMountain(_ context.Context, mid uuid.UUID) ([]entity.Milestone, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]entity.Milestone, 0)
	for _, m := range f.s.milestones {
		if m.MountainID == mid {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TargetValue < out[j].TargetValue })
	return out, nil
}

func (f milestonesFake) Create(_ context.Context, m *entity.Milestone) (*entity.Milestone, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.mountains[m.MountainID]; !ok {
		return nil, errorvalues.ErrMountainNotFound
	}
	created := *m
	created.ID = uuid.New()
	f.s.milestones[created.ID] = &created
	out := created
	return &out, nil
}

func (f milestonesFake) Delete(_ context.Context, mid, id uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	m, ok := f.s.milestones[id]
	if !ok || m.MountainID != mid {
		return errorvalues.ErrMilestoneNotFound
	}
	delete(f.s.milestones, id)
	return nil
}

func (f milestonesFake) UnlockReached(_ context.Context, mid uuid.UUID, value float64) ([]entity.Milestone, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	now := f.s.tick()
	out := make([]entity.Milestone, 0)
	for _, m := range f.s.milestones {
		if m.MountainID == mid && !m.Unlocked && m.TargetValue <= value {
			m.Unlocked = true
			at := now
			m.UnlockedAt = &at
			out = append(out, *m)
		}
	}
	return out, nil
}

var errGatewayDown = errors.New("gateway down")
