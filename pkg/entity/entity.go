package entity

import (
	"time"

	"github.com/google/uuid"
)

const DefaultTotalStepsPlanned = 6

type PlanTier string

const (
	PlanFree PlanTier = "free"
	PlanPro  PlanTier = "pro"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Provider     string    `json:"provider"`
	PlanTier     PlanTier  `json:"plan_tier"`
	Theme        string    `json:"theme"`
	CreatedAt    time.Time `json:"created_at"`
}

// Mountain is the single active goal of a user.
type Mountain struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Title             string    `json:"title"`
	Target            string    `json:"target"`
	TargetValue       *float64  `json:"target_value,omitempty"`
	CurrentValue      *float64  `json:"current_value,omitempty"`
	MetricPrefix      string    `json:"metric_prefix"`
	MetricSuffix      string    `json:"metric_suffix"`
	TotalStepsPlanned int       `json:"total_steps_planned"`
	ShareCount        int       `json:"share_count"`
	Username          *string   `json:"username,omitempty"`
	IsPublic          bool      `json:"is_public"`
	PublicBio         string    `json:"public_bio"`
	CreatedAt         time.Time `json:"created_at"`
}

type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in-progress"
	StepSuccess    StepStatus = "success"
	StepFailed     StepStatus = "failed"
)

func (s StepStatus) Valid() bool {
	switch s {
	case StepPending, StepInProgress, StepSuccess, StepFailed:
		return true
	}
	return false
}

// Resolved reports whether the step is no longer pending or in progress.
func (s StepStatus) Resolved() bool {
	return s == StepSuccess || s == StepFailed
}

type Step struct {
	ID              int64      `json:"id"`
	MountainID      uuid.UUID  `json:"mountain_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ExpectedOutcome string     `json:"expected_outcome"`
	Status          StepStatus `json:"status"`
	OrderIndex      int        `json:"order_index"`
}

type NoteResult string

const (
	ResultSuccess NoteResult = "success"
	ResultFailure NoteResult = "failure"
)

// NormalizeResult maps the UI vocabulary onto the stored one.
// "failed" and "failure" both become ResultFailure. Applying it twice is a no-op.
func NormalizeResult(raw string) (NoteResult, bool) {
	switch raw {
	case "success":
		return ResultSuccess, true
	case "failure", "failed":
		return ResultFailure, true
	}
	return "", false
}

// StepStatus returns the step status a note with this result implies.
func (r NoteResult) StepStatus() StepStatus {
	if r == ResultSuccess {
		return StepSuccess
	}
	return StepFailed
}

type JourneyNote struct {
	ID             int64      `json:"id"`
	StepID         int64      `json:"step_id"`
	Result         NoteResult `json:"result"`
	ReflectionText string     `json:"reflection_text"`
	LessonLearned  string     `json:"lesson_learned"`
	Title          string     `json:"title"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type Milestone struct {
	ID          uuid.UUID  `json:"id"`
	MountainID  uuid.UUID  `json:"mountain_id"`
	TargetValue float64    `json:"target_value"`
	Commitment  string     `json:"commitment"`
	Reward      string     `json:"reward"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

type ProductImage struct {
	ID          uuid.UUID `json:"id"`
	MountainID  uuid.UUID `json:"mountain_id"`
	ContentType string    `json:"content_type"`
	Data        string    `json:"data"`
	CreatedAt   time.Time `json:"created_at"`
}

// DataURI renders the image for inline use in banner markup.
func (pi ProductImage) DataURI() string {
	return "data:" + pi.ContentType + ";base64," + pi.Data
}

type WaitlistEntry struct {
	Email     string    `json:"email"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}
