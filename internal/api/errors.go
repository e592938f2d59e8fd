package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/pkg/httputil"
)

type errorStatus struct {
	err  error
	code int
	// Attach the wrapped error text, it names the offending field
	details bool
}

var errorStatuses = []errorStatus{
	{errorvalues.ErrValidation, http.StatusBadRequest, true},
	{errorvalues.ErrInvalidImage, http.StatusBadRequest, true},
	{errorvalues.ErrUnknownFormat, http.StatusBadRequest, false},
	{errorvalues.ErrUnknownTheme, http.StatusBadRequest, false},
	{errorvalues.ErrUnknownLayout, http.StatusBadRequest, false},
	{errorvalues.ErrUnknownProvider, http.StatusBadRequest, false},
	{errorvalues.ErrInvalidStatus, http.StatusBadRequest, false},
	{errorvalues.ErrInvalidResult, http.StatusBadRequest, false},

	{errorvalues.ErrInvalidToken, http.StatusUnauthorized, false},
	{errorvalues.ErrNotAuthenticated, http.StatusUnauthorized, false},
	{errorvalues.ErrWrongCredentials, http.StatusUnauthorized, false},

	{errorvalues.ErrDemoMode, http.StatusForbidden, false},
	{errorvalues.ErrForbidden, http.StatusForbidden, false},

	{errorvalues.ErrUserNotFound, http.StatusNotFound, false},
	{errorvalues.ErrMountainNotFound, http.StatusNotFound, false},
	{errorvalues.ErrStepNotFound, http.StatusNotFound, false},
	{errorvalues.ErrNoteNotFound, http.StatusNotFound, false},
	{errorvalues.ErrMilestoneNotFound, http.StatusNotFound, false},
	{errorvalues.ErrImageNotFound, http.StatusNotFound, false},
	{errorvalues.ErrWaitlistNotFound, http.StatusNotFound, false},
	{errorvalues.ErrNoPreview, http.StatusNotFound, false},

	{errorvalues.ErrUserExists, http.StatusConflict, false},
	{errorvalues.ErrUsernameTaken, http.StatusConflict, false},
	{errorvalues.ErrNoMountain, http.StatusConflict, false},
	{errorvalues.ErrPreviousStepUnresolved, http.StatusConflict, false},
	{errorvalues.ErrPreviousStepNeedsNote, http.StatusConflict, false},
	{errorvalues.ErrStatusFollowsNotes, http.StatusConflict, false},
	{errorvalues.ErrStepLimitReached, http.StatusConflict, false},
	{errorvalues.ErrShareLimitReached, http.StatusConflict, false},
	{errorvalues.ErrImageLimitReached, http.StatusConflict, false},

	{errorvalues.ErrStorageDisabled, http.StatusServiceUnavailable, false},
}

// writeServiceError maps domain errors onto statuses. Anything unknown is logged and hidden behind a 500.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	for _, es := range errorStatuses {
		if !errors.Is(err, es.err) {
			continue
		}
		logger.Error(action+" error: "+es.err.Error(), slog.Int("status", es.code))
		var details error
		if es.details && err != es.err {
			details = err
		}
		httputil.WriteErrorResponse(w, es.code, es.err.Error(), details)
		return
	}
	logger.Error(action+" error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while "+action, nil)
}
