package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnknownProvider  = errors.New("unknown oauth provider")
	ErrForbidden        = errors.New("forbidden")

	ErrMountainNotFound = errors.New("mountain doesn't exist")
	ErrNoMountain       = errors.New("create a mountain first")
	ErrUsernameTaken    = errors.New("username already taken")

	ErrStepNotFound           = errors.New("step doesn't exist")
	ErrPreviousStepUnresolved = errors.New("previous step must be completed first")
	ErrPreviousStepNeedsNote  = errors.New("previous step requires a reflection note")
	ErrInvalidStatus          = errors.New("invalid step status")
	ErrStatusFollowsNotes     = errors.New("step status follows its latest note; delete the note to reset it")

	ErrNoteNotFound  = errors.New("note doesn't exist")
	ErrInvalidResult = errors.New("invalid note result")

	ErrMilestoneNotFound = errors.New("milestone doesn't exist")
	ErrImageNotFound     = errors.New("image doesn't exist")
	ErrImageLimitReached = errors.New("a mountain can hold at most 3 images")
	ErrInvalidImage      = errors.New("invalid image")

	ErrStepLimitReached  = errors.New("step limit of your plan reached")
	ErrShareLimitReached = errors.New("share limit of your plan reached")

	ErrDemoMode         = errors.New("sign up to export your banner")
	ErrUnknownFormat    = errors.New("unknown banner format")
	ErrUnknownTheme     = errors.New("unknown banner theme")
	ErrUnknownLayout    = errors.New("unknown banner layout")
	ErrNoPreview        = errors.New("no preview rendered yet")
	ErrStorageDisabled  = errors.New("artifact storage is not configured")
	ErrValidation       = errors.New("validation error")
	ErrWaitlistNotFound = errors.New("waitlist entry doesn't exist")
)
