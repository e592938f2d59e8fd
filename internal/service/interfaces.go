package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ascent/internal/banner"
	"github.com/limbo/ascent/internal/journey"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/limbo/ascent/pkg/plan"
)

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Session is what a successful sign in hands to the client.
type Session struct {
	User      *entity.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type IdentityServiceI interface {
	// Validates credentials, creates the user and signs them in
	SignUp(ctx context.Context, req *CredentialsRequest) (*Session, error)
	SignIn(ctx context.Context, req *CredentialsRequest) (*Session, error)
	// Revokes the token. Signing out twice is not an error
	SignOut(ctx context.Context, token string) error
	// Issues a fresh token and revokes the given one
	Refresh(ctx context.Context, token string) (*Session, error)
	// Resolves a bearer token into the user it belongs to
	GetSession(ctx context.Context, token string) (*entity.User, error)
	// Returns provider consent URL and the state the callback must echo
	SignInWithOAuth(provider string) (string, string, error)
	CompleteOAuth(ctx context.Context, provider, state, code string) (*Session, error)
	OnSessionChange(cb func(SessionEvent)) func()
	UpdateTheme(ctx context.Context, uid uuid.UUID, theme string) error
}

type MountainRequest struct {
	Title             string   `json:"title" validate:"required,max=200"`
	Target            string   `json:"target" validate:"max=200"`
	TargetValue       *float64 `json:"target_value" validate:"omitempty,gte=0"`
	CurrentValue      *float64 `json:"current_value" validate:"omitempty,gte=0"`
	MetricPrefix      string   `json:"metric_prefix" validate:"max=10"`
	MetricSuffix      string   `json:"metric_suffix" validate:"max=10"`
	TotalStepsPlanned int      `json:"total_steps_planned" validate:"gte=0,lte=100"`
}

type ProgressRequest struct {
	CurrentValue float64 `json:"current_value" validate:"gte=0"`
}

type ProfileRequest struct {
	Username string `json:"username" validate:"required,alphanum_underscore,min=3,max=30"`
	IsPublic bool   `json:"is_public"`
	Bio      string `json:"bio" validate:"max=280"`
}

type StepRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description" validate:"max=2000"`
	ExpectedOutcome string `json:"expected_outcome" validate:"max=2000"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,step_status"`
}

type NoteRequest struct {
	Result         string `json:"result" validate:"required,note_result"`
	Title          string `json:"title" validate:"max=200"`
	ReflectionText string `json:"reflection_text" validate:"max=5000"`
	LessonLearned  string `json:"lesson_learned" validate:"max=2000"`
}

type MilestoneRequest struct {
	TargetValue float64 `json:"target_value" validate:"gte=0"`
	Commitment  string  `json:"commitment" validate:"required,max=500"`
	Reward      string  `json:"reward" validate:"max=500"`
}

// JourneyView is the dashboard payload.
type JourneyView struct {
	journey.Snapshot
	Stats            journey.Stats     `json:"stats"`
	CurrentMilestone *entity.Milestone `json:"current_milestone,omitempty"`
}

type PlanView struct {
	Tier   entity.PlanTier      `json:"tier"`
	Limits plan.Limits          `json:"limits"`
	Usage  plan.Usage           `json:"usage"`
	Gates  map[plan.Feature]bool `json:"gates"`
}

// PublicStep leaves reflections out, only titles and outcomes are public.
type PublicStep struct {
	Title  string            `json:"title"`
	Status entity.StepStatus `json:"status"`
}

type PublicProfile struct {
	Username     string        `json:"username"`
	Bio          string        `json:"bio"`
	Title        string        `json:"title"`
	Target       string        `json:"target"`
	TargetValue  *float64      `json:"target_value,omitempty"`
	CurrentValue *float64      `json:"current_value,omitempty"`
	MetricPrefix string        `json:"metric_prefix"`
	MetricSuffix string        `json:"metric_suffix"`
	Steps        []PublicStep  `json:"steps"`
	Stats        journey.Stats `json:"stats"`
}

type JourneyServiceI interface {
	GetJourney(ctx context.Context, uid uuid.UUID) (*JourneyView, error)
	Snapshot(ctx context.Context, uid uuid.UUID) (journey.Snapshot, error)
	// Whole journey as one JSON document
	Export(ctx context.Context, uid uuid.UUID) ([]byte, error)
	Plan(ctx context.Context, uid uuid.UUID) (*PlanView, error)
	CreateMountain(ctx context.Context, uid uuid.UUID, req *MountainRequest) (*entity.Mountain, error)
	// Stores the metric value and returns milestones it unlocked
	UpdateProgress(ctx context.Context, uid uuid.UUID, req *ProgressRequest) ([]entity.Milestone, error)
	Share(ctx context.Context, uid uuid.UUID) (int, error)
	ClaimProfile(ctx context.Context, uid uuid.UUID, req *ProfileRequest) error
	PublicProfile(ctx context.Context, username string) (*PublicProfile, error)
	AddStep(ctx context.Context, uid uuid.UUID, req *StepRequest) (*entity.Step, error)
	EditStep(ctx context.Context, uid uuid.UUID, stepID int64, req *StepRequest) (*entity.Step, error)
	UpdateStepStatus(ctx context.Context, uid uuid.UUID, stepID int64, req *StatusRequest) error
	DeleteStep(ctx context.Context, uid uuid.UUID, stepID int64) error
	// Creates or overwrites the latest note of the step
	SaveNote(ctx context.Context, uid uuid.UUID, stepID int64, req *NoteRequest) (*entity.JourneyNote, error)
	// Appends one more note to the step
	AddLesson(ctx context.Context, uid uuid.UUID, stepID int64, req *NoteRequest) (*entity.JourneyNote, error)
	DeleteNote(ctx context.Context, uid uuid.UUID, stepID, noteID int64) error
	ListMilestones(ctx context.Context, uid uuid.UUID) ([]entity.Milestone, error)
	AddMilestone(ctx context.Context, uid uuid.UUID, req *MilestoneRequest) (*entity.Milestone, error)
	DeleteMilestone(ctx context.Context, uid uuid.UUID, id uuid.UUID) error
	MountainID(ctx context.Context, uid uuid.UUID) (uuid.UUID, error)
	SetTier(uid uuid.UUID, tier entity.PlanTier)
	Evict(uid uuid.UUID)
}

type ImageUploadRequest struct {
	// Base64 payload, a data URI prefix is accepted
	Data string `json:"data" validate:"required"`
}

type ImagesServiceI interface {
	List(ctx context.Context, uid uuid.UUID) ([]entity.ProductImage, error)
	Upload(ctx context.Context, uid uuid.UUID, req *ImageUploadRequest) (*entity.ProductImage, error)
	Delete(ctx context.Context, uid uuid.UUID, id uuid.UUID) error
}

type WaitlistRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Feedback string `json:"feedback" validate:"max=2000"`
}

type WaitlistServiceI interface {
	Join(ctx context.Context, req *WaitlistRequest) error
	List(ctx context.Context) ([]entity.WaitlistEntry, error)
}

type SetPlanRequest struct {
	Tier string `json:"tier" validate:"required,oneof=free pro"`
}

type AdminServiceI interface {
	IsAdmin(user *entity.User) bool
	SetPlan(ctx context.Context, uid uuid.UUID, req *SetPlanRequest) error
}

type BannerRequest struct {
	banner.Options
	// Attach the mountain's product images
	WithImages bool   `json:"with_images"`
	Upload     bool   `json:"upload"`
	ShareText  string `json:"share_text" validate:"max=280"`
}

type BannerServiceI interface {
	// Schedules a debounced preview for the session key
	Preview(ctx context.Context, key string, uid uuid.UUID, req *BannerRequest) error
	LatestPreview(key string) ([]byte, error)
	// A zero uid is a demo viewer and always gets ErrDemoMode
	Export(ctx context.Context, uid uuid.UUID, req *BannerRequest) (*banner.Artifact, error)
}
