package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/journey"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/limbo/ascent/pkg/plan"
)

const DefaultJourneyCacheTTL = 15 * time.Minute

type cachedJourney struct {
	once    sync.Once
	j       *journey.Journey
	err     error
	expires time.Time
	loaded  atomic.Pointer[journey.Journey]
}

// JourneyService keeps one live journey per signed in user so that
// all requests of that user serialize on the same model.
type JourneyService struct {
	gw    journey.Gateway
	users repository.UsersRepositoryI
	ttl   time.Duration

	mu    sync.Mutex
	cache map[uuid.UUID]*cachedJourney
	now   func() time.Time
}

func NewJourneyService(gw journey.Gateway, usersRepo repository.UsersRepositoryI, ttl time.Duration) *JourneyService {
	if ttl <= 0 {
		ttl = DefaultJourneyCacheTTL
	}
	return &JourneyService{
		gw:    gw,
		users: usersRepo,
		ttl:   ttl,
		cache: make(map[uuid.UUID]*cachedJourney),
		now:   time.Now,
	}
}

// HandleSession drops the journey of a user that signed out.
func (js *JourneyService) HandleSession(ev SessionEvent) {
	if ev.Kind == SessionSignedOut && ev.User != nil {
		js.Evict(ev.User.ID)
	}
}

func (js *JourneyService) journey(ctx context.Context, uid uuid.UUID) (*journey.Journey, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	js.mu.Lock()
	e, ok := js.cache[uid]
	if !ok || js.now().After(e.expires) {
		e = &cachedJourney{expires: js.now().Add(js.ttl)}
		js.cache[uid] = e
	}
	js.mu.Unlock()

	e.once.Do(func() {
		user, err := js.users.FindByID(ctx, uid)
		if err != nil {
			e.err = err
			return
		}
		e.j, e.err = journey.Load(ctx, js.gw, uid, user.PlanTier)
		if e.err == nil {
			e.loaded.Store(e.j)
		}
	})
	if e.err != nil {
		js.mu.Lock()
		if js.cache[uid] == e {
			delete(js.cache, uid)
		}
		js.mu.Unlock()
		if errors.Is(e.err, errorvalues.ErrUserNotFound) {
			return nil, e.err
		}
		return nil, errors.New("loading journey error: " + e.err.Error())
	}
	return e.j, nil
}

func (js *JourneyService) Evict(uid uuid.UUID) {
	js.mu.Lock()
	defer js.mu.Unlock()
	delete(js.cache, uid)
}

// SetTier updates a loaded journey in place. A journey still loading is
// dropped, the next request reads the stored tier.
func (js *JourneyService) SetTier(uid uuid.UUID, tier entity.PlanTier) {
	js.mu.Lock()
	e, ok := js.cache[uid]
	js.mu.Unlock()
	if !ok {
		return
	}
	if j := e.loaded.Load(); j != nil {
		j.SetTier(tier)
		return
	}
	js.Evict(uid)
}

func (js *JourneyService) Snapshot(ctx context.Context, uid uuid.UUID) (journey.Snapshot, error) {
	j, err := js.journey(ctx, uid)
	if err != nil {
		return journey.Snapshot{}, err
	}
	return j.Snapshot(), nil
}

func (js *JourneyService) GetJourney(ctx context.Context, uid uuid.UUID) (*JourneyView, error) {
	snap, err := js.Snapshot(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &JourneyView{
		Snapshot:         snap,
		Stats:            snap.Stats(js.now()),
		CurrentMilestone: snap.CurrentMilestone(),
	}, nil
}

type journeyExport struct {
	ExportedAt time.Time          `json:"exported_at"`
	Mountain   *entity.Mountain   `json:"mountain"`
	Steps      []journey.StepView `json:"steps"`
	Milestones []entity.Milestone `json:"milestones"`
	Stats      journey.Stats      `json:"stats"`
}

func (js *JourneyService) Export(ctx context.Context, uid uuid.UUID) ([]byte, error) {
	snap, err := js.Snapshot(ctx, uid)
	if err != nil {
		return nil, err
	}
	if snap.Mountain == nil {
		return nil, errorvalues.ErrNoMountain
	}
	now := js.now()
	data, err := sonic.ConfigStd.MarshalIndent(journeyExport{
		ExportedAt: now,
		Mountain:   snap.Mountain,
		Steps:      snap.Steps,
		Milestones: snap.Milestones,
		Stats:      snap.Stats(now),
	}, "", "  ")
	if err != nil {
		return nil, errors.New("encoding export error: " + err.Error())
	}
	return data, nil
}

func (js *JourneyService) Plan(ctx context.Context, uid uuid.UUID) (*PlanView, error) {
	snap, err := js.Snapshot(ctx, uid)
	if err != nil {
		return nil, err
	}
	usage := snap.Usage()
	return &PlanView{
		Tier:   snap.Tier,
		Limits: plan.LimitsFor(snap.Tier),
		Usage:  usage,
		Gates:  plan.Gates(snap.Tier, usage),
	}, nil
}

func (js *JourneyService) CreateMountain(ctx context.Context, uid uuid.UUID, req *MountainRequest) (*entity.Mountain, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	j, err := js.journey(ctx, uid)
	if err != nil {
		return nil, err
	}
	return j.CreateMountain(ctx, journey.MountainFields{
		Title:             req.Title,
		Target:            req.Target,
		TargetValue:       req.TargetValue,
		CurrentValue:      req.CurrentValue,
		MetricPrefix:      req.MetricPrefix,
		MetricSuffix:      req.MetricSuffix,
		TotalStepsPlanned: req.TotalStepsPlanned,
	})
}

func (js *JourneyService) UpdateProgress(ctx context.Context, uid uuid.UUID, req *ProgressRequest) ([]entity.Milestone, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	j, err := js.journey(ctx, uid)
	if err != nil {
		return nil, err
	}
	return j.UpdateProgress(ctx, req.CurrentValue)
}

func (js *JourneyService) Share(ctx context.Context, uid uuid.UUID) (int, error) {
	j, err := js.journey(ctx, uid)
	if err != nil {
		return 0, err
	}
	return j.IncrementShareCount(ctx)
}

func (js *JourneyService) ClaimProfile(ctx context.Context, uid uuid.UUID, req *ProfileRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	j, err := js.journey(ctx, uid)
	if err != nil {
		return err
	}
	return j.ClaimPublicProfile(ctx, req.Username, req.IsPublic, req.Bio)
}

// PublicProfile reads straight from storage, it never touches cached journeys.
func (js *JourneyService) PublicProfile(ctx context.Context, username string) (*PublicProfile, error) {
	m, err := js.gw.Mountains.FetchPublic(ctx, username)
	if err != nil {
		return nil, err
	}
	j, err := journey.Load(ctx, js.gw, m.UserID, entity.PlanFree)
	if err != nil {
		return nil, errors.New("loading public journey error: " + err.Error())
	}
	snap := j.Snapshot()
	profile := &PublicProfile{
		Username:     username,
		Bio:          m.PublicBio,
		Title:        m.Title,
		Target:       m.Target,
		TargetValue:  m.TargetValue,
		CurrentValue: m.CurrentValue,
		MetricPrefix: m.MetricPrefix,
		MetricSuffix: m.MetricSuffix,
		Steps:        make([]PublicStep, 0, len(snap.Steps)),
		Stats:        snap.Stats(js.now()),
	}
	for _, sv := range snap.Steps {
		profile.Steps = append(profile.Steps, PublicStep{Title: sv.Title, Status: sv.EffectiveStatus()})
	}
	return profile, nil
}

func stepFields(req *StepRequest) journey.StepFields {
	return journey.StepFields{
		Title:           req.Title,
		Description:     req.Description,
		ExpectedOutcome: req.ExpectedOutcome,
	}
}

func (js *JourneyService) AddStep(ctx context.Context, uid uuid.UUID, req *StepRequest) (*entity.Step, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	j, err := js.journey(ctx, uid)
	if err != nil {
		return nil, err
	}
	return j.AddStep(ctx, stepFields(req))
}

func (js *JourneyService) EditStep(ctx context.Context, uid uuid.UUID, stepID int64, req *StepRequest) (*entity.Step, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	j, err := js.journey(ctx, uid)
	if err != nil {
		return nil, err
	}
	return j.EditStep(ctx, stepID, stepFields(req))
}

func (js *JourneyService) UpdateStepStatus(ctx context.Context, uid uuid.UUID, stepID int64, req *StatusRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	j, err := js.journey(ctx, uid)
	if err != nil {
		return err
	}
	return j.UpdateStepStatus(ctx, stepID, entity.StepStatus(req.Status))
}

func (js *JourneyService) DeleteStep(ctx context.Context, uid uuid.UUID, stepID int64) error {
	j, err := js.journey(ctx, uid)
	if err != nil {
		return err
	}
	return j.DeleteStep(ctx, stepID)
}

func noteFields(req *NoteRequest) journey.NoteFields {
	return journey.NoteFields{
		Title:          req.Title,
		ReflectionText: req.ReflectionText,
		LessonLearned:  req.LessonLearned,
	}
}

func (js *JourneyService) SaveNote(ctx context.Context, uid uuid.UUID, stepID int64, req *NoteRequest) (*entity.JourneyNote, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	j, err := js.journey(ctx, uid)
	if err != nil {
		return nil, err
	}
	return j.SaveJourneyNote(ctx, stepID, noteFields(req), req.Result)
}

func (js *JourneyService) AddLesson(ctx context.Context, uid uuid.UUID, stepID int64, req *NoteRequest) (*entity.JourneyNote, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	j, err := js.journey(ctx, uid)
	if err != nil {
		return nil, err
	}
	return j.AddLesson(ctx, stepID, noteFields(req), req.Result)
}

func (js *JourneyService) DeleteNote(ctx context.Context, uid uuid.UUID, stepID, noteID int64) error {
	j, err := js.journey(ctx, uid)
	if err != nil {
		return err
	}
	return j.DeleteNoteAndResetStep(ctx, stepID, noteID)
}

func (js *JourneyService) ListMilestones(ctx context.Context, uid uuid.UUID) ([]entity.Milestone, error) {
	snap, err := js.Snapshot(ctx, uid)
	if err != nil {
		return nil, err
	}
	if snap.Milestones == nil {
		return []entity.Milestone{}, nil
	}
	return snap.Milestones, nil
}

func (js *JourneyService) AddMilestone(ctx context.Context, uid uuid.UUID, req *MilestoneRequest) (*entity.Milestone, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	j, err := js.journey(ctx, uid)
	if err != nil {
		return nil, err
	}
	return j.AddMilestone(ctx, journey.MilestoneFields{
		TargetValue: req.TargetValue,
		Commitment:  req.Commitment,
		Reward:      req.Reward,
	})
}

func (js *JourneyService) DeleteMilestone(ctx context.Context, uid uuid.UUID, id uuid.UUID) error {
	j, err := js.journey(ctx, uid)
	if err != nil {
		return err
	}
	return j.DeleteMilestone(ctx, id)
}

func (js *JourneyService) MountainID(ctx context.Context, uid uuid.UUID) (uuid.UUID, error) {
	j, err := js.journey(ctx, uid)
	if err != nil {
		return uuid.Nil, err
	}
	id := j.MountainID()
	if id == uuid.Nil {
		return uuid.Nil, errorvalues.ErrNoMountain
	}
	return id, nil
}
