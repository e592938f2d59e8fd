package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/ascent/internal/service"
	"github.com/limbo/ascent/pkg/httputil"
)

const (
	// Base64 of a 2MB image plus the JSON envelope
	maxImageBody = 3 << 20

	// Demo viewers name their preview slot with this header
	previewSessionHeader = "X-Preview-Session"
)

func (s *Server) ListImages(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list images error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	images, err := s.images.List(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "listing images", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"images": images})
	logger.Info("images provided", slog.Int("count", len(images)))
}

func (s *Server) UploadImage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("upload image error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.ImageUploadRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxImageBody)).Decode(&req)
	if err != nil {
		logger.Error("upload image error: invalid or oversized body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	image, err := s.images.Upload(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "uploading image", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, image)
	logger.Info("image uploaded", slog.String("image_id", image.ID.String()))
}

func (s *Server) DeleteImage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("image deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("image deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid image id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.images.Delete(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "deleting image", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("image deleted", slog.String("image_id", id.String()))
}

func (s *Server) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.WaitlistRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("join waitlist error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.waitlist.Join(ctx, &req); err != nil {
		writeServiceError(w, logger, "joining waitlist", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("waitlist joined")
}

func (s *Server) ListWaitlist(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	entries, err := s.waitlist.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "listing waitlist", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"entries": entries})
	logger.Info("waitlist provided", slog.Int("count", len(entries)))
}

func (s *Server) SetPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	target, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("set plan error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	var req service.SetPlanRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set plan error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.admin.SetPlan(ctx, target, &req); err != nil {
		writeServiceError(w, logger, "setting plan", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("plan changed", slog.String("target", target.String()), slog.String("tier", req.Tier))
}

// demoPreviewKey keeps anonymous previews apart from each other and from signed in users.
func demoPreviewKey(r *http.Request) string {
	if key := r.Header.Get(previewSessionHeader); key != "" {
		return "demo:" + key
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "demo:" + host
}

func (s *Server) schedulePreview(w http.ResponseWriter, r *http.Request, key string, uid uuid.UUID) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.BannerRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("banner preview error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.banners.Preview(ctx, key, uid, &req); err != nil {
		writeServiceError(w, logger, "scheduling preview", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
	logger.Info("banner preview scheduled", slog.String("layout", req.Layout), slog.String("format", req.Format))
}

func (s *Server) writePreview(w http.ResponseWriter, r *http.Request, key string) {
	logger := GetLoggerFromCtx(r.Context())
	png, err := s.banners.LatestPreview(key)
	if err != nil {
		writeServiceError(w, logger, "getting preview", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
	logger.Info("banner preview provided")
}

func (s *Server) PreviewBanner(w http.ResponseWriter, r *http.Request) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error("banner preview error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	s.schedulePreview(w, r, service.UserPreviewKey(uid), uid)
}

func (s *Server) LatestPreview(w http.ResponseWriter, r *http.Request) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error("banner preview error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	s.writePreview(w, r, service.UserPreviewKey(uid))
}

func (s *Server) DemoPreview(w http.ResponseWriter, r *http.Request) {
	s.schedulePreview(w, r, demoPreviewKey(r), uuid.Nil)
}

func (s *Server) DemoLatestPreview(w http.ResponseWriter, r *http.Request) {
	s.writePreview(w, r, demoPreviewKey(r))
}

func (s *Server) ExportBanner(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("banner export error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.BannerRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("banner export error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*45)
	defer cancel()
	artifact, err := s.banners.Export(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "exporting banner", err)
		return
	}
	if artifact.URL != "" {
		httputil.WriteJSONResponse(w, http.StatusOK, artifact)
		logger.Info("banner uploaded", slog.String("filename", artifact.Filename))
		return
	}
	httputil.WriteAttachment(w, "image/png", artifact.Filename, artifact.PNG)
	logger.Info("banner downloaded", slog.String("filename", artifact.Filename), slog.Int("bytes", len(artifact.PNG)))
}

// DemoExport always refuses, the demo journey is never handed out.
func (s *Server) DemoExport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	_, err := s.banners.Export(ctx, uuid.Nil, &service.BannerRequest{})
	if err == nil {
		logger.Error("demo export error: artifact produced for demo viewer")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while exporting banner", nil)
		return
	}
	writeServiceError(w, logger, "exporting demo banner", err)
}
