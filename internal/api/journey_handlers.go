package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/ascent/internal/service"
	"github.com/limbo/ascent/pkg/httputil"
)

const exportFilename = "shift-ascent-journey.json"

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

func (s *Server) GetJourney(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get journey error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	view, err := s.journeys.GetJourney(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting journey", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("journey provided")
}

func (s *Server) ExportJourney(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("export journey error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	body, err := s.journeys.Export(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "exporting journey", err)
		return
	}
	httputil.WriteAttachment(w, "application/json", exportFilename, body)
	logger.Info("journey exported", slog.Int("bytes", len(body)))
}

func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get plan error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	view, err := s.journeys.Plan(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("plan provided")
}

func (s *Server) CreateMountain(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create mountain error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.MountainRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create mountain error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	mountain, err := s.journeys.CreateMountain(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "creating mountain", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, mountain)
	logger.Info("mountain created", slog.String("mountain_id", mountain.ID.String()))
}

func (s *Server) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.ProgressRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update progress error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	unlocked, err := s.journeys.UpdateProgress(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "updating progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"unlocked": unlocked})
	logger.Info("progress updated", slog.Int("unlocked", len(unlocked)))
}

func (s *Server) ShareMountain(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("share error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	count, err := s.journeys.Share(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "sharing mountain", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"share_count": count})
	logger.Info("mountain shared", slog.Int("share_count", count))
}

func (s *Server) ClaimProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("claim profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.ProfileRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("claim profile error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.journeys.ClaimProfile(ctx, uid, &req); err != nil {
		writeServiceError(w, logger, "claiming profile", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("profile claimed", slog.String("username", req.Username))
}

func (s *Server) PublicProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username := r.PathValue("username")
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	profile, err := s.journeys.PublicProfile(ctx, username)
	if err != nil {
		writeServiceError(w, logger, "getting public profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("public profile provided", slog.String("username", username))
}

func (s *Server) AddStep(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add step error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.StepRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add step error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	step, err := s.journeys.AddStep(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "adding step", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, step)
	logger.Info("step added", slog.Int64("step_id", step.ID))
}

func (s *Server) EditStep(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("edit step error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	stepID, err := pathID(r, "id")
	if err != nil {
		logger.Error("edit step error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid step id in path value", nil)
		return
	}
	var req service.StepRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("edit step error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	step, err := s.journeys.EditStep(ctx, uid, stepID, &req)
	if err != nil {
		writeServiceError(w, logger, "editing step", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, step)
	logger.Info("step edited", slog.Int64("step_id", stepID))
}

func (s *Server) UpdateStepStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update step status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	stepID, err := pathID(r, "id")
	if err != nil {
		logger.Error("update step status error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid step id in path value", nil)
		return
	}
	var req service.StatusRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update step status error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.journeys.UpdateStepStatus(ctx, uid, stepID, &req); err != nil {
		writeServiceError(w, logger, "updating step status", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("step status updated", slog.Int64("step_id", stepID), slog.String("status", req.Status))
}

func (s *Server) DeleteStep(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("step deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	stepID, err := pathID(r, "id")
	if err != nil {
		logger.Error("step deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid step id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.journeys.DeleteStep(ctx, uid, stepID); err != nil {
		writeServiceError(w, logger, "deleting step", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("step deleted", slog.Int64("step_id", stepID))
}

// noteRequest decodes a note for the step named in the path.
func (s *Server) noteRequest(w http.ResponseWriter, r *http.Request, action string) (uuid.UUID, int64, *service.NoteRequest, bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(action + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.Nil, 0, nil, false
	}
	stepID, err := pathID(r, "id")
	if err != nil {
		logger.Error(action + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid step id in path value", nil)
		return uuid.Nil, 0, nil, false
	}
	var req service.NoteRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error(action + " error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return uuid.Nil, 0, nil, false
	}
	return uid, stepID, &req, true
}

func (s *Server) SaveNote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, stepID, req, ok := s.noteRequest(w, r, "save note")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	note, err := s.journeys.SaveNote(ctx, uid, stepID, req)
	if err != nil {
		writeServiceError(w, logger, "saving note", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, note)
	logger.Info("note saved", slog.Int64("step_id", stepID), slog.Int64("note_id", note.ID))
}

func (s *Server) AddLesson(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, stepID, req, ok := s.noteRequest(w, r, "add lesson")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	note, err := s.journeys.AddLesson(ctx, uid, stepID, req)
	if err != nil {
		writeServiceError(w, logger, "adding lesson", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, note)
	logger.Info("lesson added", slog.Int64("step_id", stepID), slog.Int64("note_id", note.ID))
}

func (s *Server) DeleteNote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("note deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	stepID, err := pathID(r, "id")
	if err != nil {
		logger.Error("note deletion error: invalid step id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid step id in path value", nil)
		return
	}
	noteID, err := pathID(r, "noteID")
	if err != nil {
		logger.Error("note deletion error: invalid note id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid note id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.journeys.DeleteNote(ctx, uid, stepID, noteID); err != nil {
		writeServiceError(w, logger, "deleting note", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("note deleted, step reset", slog.Int64("step_id", stepID), slog.Int64("note_id", noteID))
}

func (s *Server) ListMilestones(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list milestones error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	milestones, err := s.journeys.ListMilestones(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "listing milestones", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"milestones": milestones})
	logger.Info("milestones provided")
}

func (s *Server) AddMilestone(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add milestone error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.MilestoneRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add milestone error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	milestone, err := s.journeys.AddMilestone(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "adding milestone", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, milestone)
	logger.Info("milestone added", slog.String("milestone_id", milestone.ID.String()))
}

func (s *Server) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("milestone deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("milestone deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid milestone id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.journeys.DeleteMilestone(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "deleting milestone", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("milestone deleted", slog.String("milestone_id", id.String()))
}
