// Package journey keeps the in-memory view of one user's mountain, steps and notes
// and routes every mutation through the persistence gateway.
package journey

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/limbo/ascent/pkg/plan"
)

// Gateway is the set of repositories a journey writes through.
type Gateway struct {
	Mountains  repository.MountainsRepositoryI
	Steps      repository.StepsRepositoryI
	Notes      repository.NotesRepositoryI
	Milestones repository.MilestonesRepositoryI
}

type MountainFields struct {
	Title             string
	Target            string
	TargetValue       *float64
	CurrentValue      *float64
	MetricPrefix      string
	MetricSuffix      string
	TotalStepsPlanned int
}

type StepFields struct {
	Title           string
	Description     string
	ExpectedOutcome string
}

type NoteFields struct {
	Title          string
	ReflectionText string
	LessonLearned  string
}

type MilestoneFields struct {
	TargetValue float64
	Commitment  string
	Reward      string
}

// Journey is safe for concurrent use. Mutations are serialized, and local state
// changes only after the gateway confirms.
type Journey struct {
	mu         sync.Mutex
	gw         Gateway
	userID     uuid.UUID
	tier       entity.PlanTier
	mountain   *entity.Mountain
	steps      []entity.Step
	notes      map[int64][]entity.JourneyNote
	milestones []entity.Milestone
	now        func() time.Time
}

// New returns an empty journey. A zero userID stands for a signed-out viewer.
func New(gw Gateway, userID uuid.UUID, tier entity.PlanTier) *Journey {
	return &Journey{
		gw:     gw,
		userID: userID,
		tier:   tier,
		notes:  make(map[int64][]entity.JourneyNote),
		now:    time.Now,
	}
}

// Load builds the journey of userID from the gateway. A user without a mountain gets an empty journey.
func Load(ctx context.Context, gw Gateway, userID uuid.UUID, tier entity.PlanTier) (*Journey, error) {
	j := New(gw, userID, tier)
	m, err := gw.Mountains.FetchForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMountainNotFound) {
			return j, nil
		}
		return nil, err
	}
	if err = j.adopt(ctx, m); err != nil {
		return nil, err
	}
	return j, nil
}

// adopt makes m current and loads everything hanging off it.
func (j *Journey) adopt(ctx context.Context, m *entity.Mountain) error {
	steps, err := j.gw.Steps.FetchForMountain(ctx, m.ID)
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(steps))
	for _, s := range steps {
		ids = append(ids, s.ID)
	}
	notes, err := j.gw.Notes.FetchForSteps(ctx, ids)
	if err != nil {
		return err
	}
	milestones, err := j.gw.Milestones.ListForMountain(ctx, m.ID)
	if err != nil {
		return err
	}
	byStep := make(map[int64][]entity.JourneyNote, len(steps))
	for _, n := range notes {
		byStep[n.StepID] = append(byStep[n.StepID], n)
	}
	j.mountain = m
	j.steps = steps
	j.notes = byStep
	j.milestones = milestones
	return nil
}

func (j *Journey) UserID() uuid.UUID {
	return j.userID
}

func (j *Journey) SetTier(tier entity.PlanTier) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.tier = tier
}

func (j *Journey) Tier() entity.PlanTier {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.tier
}

func (j *Journey) stepIndex(id int64) int {
	return slices.IndexFunc(j.steps, func(s entity.Step) bool { return s.ID == id })
}

func (j *Journey) requireMountain() error {
	if j.userID == uuid.Nil {
		return errorvalues.ErrNotAuthenticated
	}
	if j.mountain == nil {
		return errorvalues.ErrNoMountain
	}
	return nil
}

func (j *Journey) CreateMountain(ctx context.Context, f MountainFields) (*entity.Mountain, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.userID == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	if j.mountain != nil {
		m := *j.mountain
		return &m, nil
	}
	m, err := j.gw.Mountains.Create(ctx, &entity.Mountain{
		UserID:            j.userID,
		Title:             f.Title,
		Target:            f.Target,
		TargetValue:       f.TargetValue,
		CurrentValue:      f.CurrentValue,
		MetricPrefix:      f.MetricPrefix,
		MetricSuffix:      f.MetricSuffix,
		TotalStepsPlanned: f.TotalStepsPlanned,
	})
	if err != nil {
		return nil, err
	}
	// The gateway may hand back a mountain created elsewhere, with steps of its own.
	if err = j.adopt(ctx, m); err != nil {
		return nil, err
	}
	out := *m
	return &out, nil
}

// gate reports why no step may follow the current last step, or nil.
func (j *Journey) gate() error {
	if len(j.steps) == 0 {
		return nil
	}
	last := j.steps[len(j.steps)-1]
	if !last.Status.Resolved() {
		return errorvalues.ErrPreviousStepUnresolved
	}
	if len(j.notes[last.ID]) == 0 {
		return errorvalues.ErrPreviousStepNeedsNote
	}
	return nil
}

func (j *Journey) AddStep(ctx context.Context, f StepFields) (*entity.Step, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.requireMountain(); err != nil {
		return nil, err
	}
	if !plan.CheckLimit(j.tier, plan.FeatureAddStep, plan.Usage{Steps: len(j.steps)}) {
		return nil, errorvalues.ErrStepLimitReached
	}
	if err := j.gate(); err != nil {
		return nil, err
	}
	s, err := j.gw.Steps.Add(ctx, &entity.Step{
		MountainID:      j.mountain.ID,
		Title:           f.Title,
		Description:     f.Description,
		ExpectedOutcome: f.ExpectedOutcome,
		Status:          entity.StepPending,
		OrderIndex:      len(j.steps),
	})
	if err != nil {
		return nil, err
	}
	j.steps = append(j.steps, *s)
	out := *s
	return &out, nil
}

// UpdateStepStatus sets the stored status. Steps with notes change status only through
// note writes and deletes, so only a no-op update is accepted for them.
func (j *Journey) UpdateStepStatus(ctx context.Context, stepID int64, status entity.StepStatus) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !status.Valid() {
		return errorvalues.ErrInvalidStatus
	}
	if err := j.requireMountain(); err != nil {
		return err
	}
	i := j.stepIndex(stepID)
	if i < 0 {
		return errorvalues.ErrStepNotFound
	}
	if len(j.notes[stepID]) > 0 {
		if j.steps[i].Status == status {
			return nil
		}
		return errorvalues.ErrStatusFollowsNotes
	}
	if err := j.gw.Steps.UpdateStatus(ctx, stepID, status); err != nil {
		return err
	}
	j.steps[i].Status = status
	return nil
}

func (j *Journey) writeNote(ctx context.Context, stepID int64, f NoteFields, rawResult string, upsert bool) (*entity.JourneyNote, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	result, ok := entity.NormalizeResult(rawResult)
	if !ok {
		return nil, errorvalues.ErrInvalidResult
	}
	if err := j.requireMountain(); err != nil {
		return nil, err
	}
	i := j.stepIndex(stepID)
	if i < 0 {
		return nil, errorvalues.ErrStepNotFound
	}
	note := &entity.JourneyNote{
		StepID:         stepID,
		Result:         result,
		ReflectionText: f.ReflectionText,
		LessonLearned:  f.LessonLearned,
		Title:          f.Title,
	}
	var (
		saved *entity.JourneyNote
		err   error
	)
	if upsert {
		saved, err = j.gw.Notes.Save(ctx, note)
	} else {
		saved, err = j.gw.Notes.Append(ctx, note)
	}
	if err != nil {
		return nil, err
	}
	notes := j.notes[stepID]
	if upsert && len(notes) > 0 && notes[len(notes)-1].ID == saved.ID {
		notes[len(notes)-1] = *saved
	} else {
		notes = append(notes, *saved)
	}
	j.notes[stepID] = notes
	j.steps[i].Status = saved.Result.StepStatus()
	out := *saved
	return &out, nil
}

// SaveJourneyNote writes the primary note of a step, replacing the latest one if present.
// The step status follows the result in the same gateway transaction.
func (j *Journey) SaveJourneyNote(ctx context.Context, stepID int64, f NoteFields, result string) (*entity.JourneyNote, error) {
	return j.writeNote(ctx, stepID, f, result, true)
}

// AddLesson appends another note to the step.
func (j *Journey) AddLesson(ctx context.Context, stepID int64, f NoteFields, result string) (*entity.JourneyNote, error) {
	return j.writeNote(ctx, stepID, f, result, false)
}

func (j *Journey) DeleteNoteAndResetStep(ctx context.Context, stepID, noteID int64) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.requireMountain(); err != nil {
		return err
	}
	i := j.stepIndex(stepID)
	if i < 0 {
		return errorvalues.ErrStepNotFound
	}
	notes := j.notes[stepID]
	k := slices.IndexFunc(notes, func(n entity.JourneyNote) bool { return n.ID == noteID })
	if k < 0 {
		return errorvalues.ErrNoteNotFound
	}
	if err := j.gw.Notes.DeleteAndResetStep(ctx, stepID, noteID); err != nil {
		return err
	}
	notes = slices.Delete(notes, k, k+1)
	if len(notes) == 0 {
		delete(j.notes, stepID)
	} else {
		j.notes[stepID] = notes
	}
	j.steps[i].Status = entity.StepPending
	return nil
}

func (j *Journey) DeleteStep(ctx context.Context, stepID int64) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.requireMountain(); err != nil {
		return err
	}
	i := j.stepIndex(stepID)
	if i < 0 {
		return errorvalues.ErrStepNotFound
	}
	if err := j.gw.Steps.Delete(ctx, stepID); err != nil {
		return err
	}
	j.steps = slices.Delete(j.steps, i, i+1)
	delete(j.notes, stepID)
	return nil
}

func (j *Journey) EditStep(ctx context.Context, stepID int64, f StepFields) (*entity.Step, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.requireMountain(); err != nil {
		return nil, err
	}
	i := j.stepIndex(stepID)
	if i < 0 {
		return nil, errorvalues.ErrStepNotFound
	}
	updated := j.steps[i]
	updated.Title = f.Title
	updated.Description = f.Description
	updated.ExpectedOutcome = f.ExpectedOutcome
	if err := j.gw.Steps.Update(ctx, &updated); err != nil {
		return nil, err
	}
	j.steps[i] = updated
	return &updated, nil
}

// IncrementShareCount counts one share, refusing once the plan limit is used up.
func (j *Journey) IncrementShareCount(ctx context.Context) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.requireMountain(); err != nil {
		return 0, err
	}
	count, err := j.gw.Mountains.IncrementShareCount(ctx, j.mountain.ID, plan.LimitsFor(j.tier).MaxShares)
	if err != nil {
		return 0, err
	}
	j.mountain.ShareCount = count
	return count, nil
}

// UpdateProgress stores the current metric value and unlocks the milestones it reaches.
func (j *Journey) UpdateProgress(ctx context.Context, value float64) ([]entity.Milestone, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.requireMountain(); err != nil {
		return nil, err
	}
	if err := j.gw.Mountains.UpdateProgress(ctx, j.mountain.ID, value); err != nil {
		return nil, err
	}
	v := value
	j.mountain.CurrentValue = &v
	return j.unlockReached(ctx, value)
}

func (j *Journey) unlockReached(ctx context.Context, value float64) ([]entity.Milestone, error) {
	unlocked, err := j.gw.Milestones.UnlockReached(ctx, j.mountain.ID, value)
	if err != nil {
		return nil, err
	}
	for _, u := range unlocked {
		if i := slices.IndexFunc(j.milestones, func(m entity.Milestone) bool { return m.ID == u.ID }); i >= 0 {
			j.milestones[i] = u
		}
	}
	return unlocked, nil
}

func (j *Journey) AddMilestone(ctx context.Context, f MilestoneFields) (*entity.Milestone, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.requireMountain(); err != nil {
		return nil, err
	}
	m, err := j.gw.Milestones.Create(ctx, &entity.Milestone{
		MountainID:  j.mountain.ID,
		TargetValue: f.TargetValue,
		Commitment:  f.Commitment,
		Reward:      f.Reward,
	})
	if err != nil {
		return nil, err
	}
	j.milestones = append(j.milestones, *m)
	slices.SortStableFunc(j.milestones, func(a, b entity.Milestone) int {
		switch {
		case a.TargetValue < b.TargetValue:
			return -1
		case a.TargetValue > b.TargetValue:
			return 1
		}
		return 0
	})
	// Already reached targets unlock right away.
	if cur := j.mountain.CurrentValue; cur != nil && *cur >= m.TargetValue {
		unlocked, err := j.unlockReached(ctx, *cur)
		if err != nil {
			return nil, err
		}
		for _, u := range unlocked {
			if u.ID == m.ID {
				return &u, nil
			}
		}
	}
	out := *m
	return &out, nil
}

func (j *Journey) DeleteMilestone(ctx context.Context, id uuid.UUID) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.requireMountain(); err != nil {
		return err
	}
	if err := j.gw.Milestones.Delete(ctx, j.mountain.ID, id); err != nil {
		return err
	}
	j.milestones = slices.DeleteFunc(j.milestones, func(m entity.Milestone) bool { return m.ID == id })
	return nil
}

func (j *Journey) ClaimPublicProfile(ctx context.Context, username string, isPublic bool, bio string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.requireMountain(); err != nil {
		return err
	}
	if err := j.gw.Mountains.ClaimProfile(ctx, j.mountain.ID, username, isPublic, bio); err != nil {
		return err
	}
	name := username
	j.mountain.Username = &name
	j.mountain.IsPublic = isPublic
	j.mountain.PublicBio = bio
	return nil
}

// MountainID returns uuid.Nil when no mountain exists yet.
func (j *Journey) MountainID() uuid.UUID {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.mountain == nil {
		return uuid.Nil
	}
	return j.mountain.ID
}

// Snapshot copies the current state deep enough that callers cannot reach the journey through it.
func (j *Journey) Snapshot() Snapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	s := Snapshot{
		UserID:     j.userID,
		Tier:       j.tier,
		Steps:      make([]StepView, 0, len(j.steps)),
		Milestones: slices.Clone(j.milestones),
		TakenAt:    j.now(),
	}
	if s.Milestones == nil {
		s.Milestones = []entity.Milestone{}
	}
	if j.mountain != nil {
		m := *j.mountain
		if m.TargetValue != nil {
			v := *m.TargetValue
			m.TargetValue = &v
		}
		if m.CurrentValue != nil {
			v := *m.CurrentValue
			m.CurrentValue = &v
		}
		if m.Username != nil {
			v := *m.Username
			m.Username = &v
		}
		s.Mountain = &m
	}
	for _, st := range j.steps {
		notes := slices.Clone(j.notes[st.ID])
		if notes == nil {
			notes = []entity.JourneyNote{}
		}
		s.Steps = append(s.Steps, StepView{Step: st, Notes: notes})
	}
	return s
}

// Progress and the other derived values are recomputed from a fresh snapshot on each call.
func (j *Journey) Progress() float64 {
	return j.Snapshot().Progress()
}

func (j *Journey) ResolvedSteps() int {
	return j.Snapshot().ResolvedSteps()
}

func (j *Journey) TotalPlanned() int {
	return j.Snapshot().TotalPlanned()
}

func (j *Journey) SuccessfulSteps() int {
	return j.Snapshot().SuccessfulSteps()
}

// CheckLimit evaluates the plan policy against the journey's current usage.
func (j *Journey) CheckLimit(feature plan.Feature) bool {
	s := j.Snapshot()
	return plan.CheckLimit(s.Tier, feature, s.Usage())
}
