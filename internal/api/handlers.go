package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/ascent/internal/service"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/limbo/ascent/pkg/httputil"
)

type ThemeRequest struct {
	Theme string `json:"theme"`
}

type MeResponse struct {
	User    *entity.User `json:"user"`
	IsAdmin bool         `json:"is_admin"`
}

func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CredentialsRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("sign up error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	session, err := s.identity.SignUp(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "signing up", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, session)
	logger.Info("successful sign up", slog.String("uid", session.User.ID.String()))
}

func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CredentialsRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("sign in error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	session, err := s.identity.SignIn(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "signing in", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, session)
	logger.Info("successful sign in", slog.String("uid", session.User.ID.String()))
}

func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	token, err := GetSessionTokenFromContext(r)
	if err != nil {
		logger.Error("sign out error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.identity.SignOut(ctx, token); err != nil {
		writeServiceError(w, logger, "signing out", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("signed out")
}

func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	token, err := GetSessionTokenFromContext(r)
	if err != nil {
		logger.Error("refresh error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	session, err := s.identity.Refresh(ctx, token)
	if err != nil {
		writeServiceError(w, logger, "refreshing session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, session)
	logger.Info("session refreshed")
}

func (s *Server) OAuthStart(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	consentURL, _, err := s.identity.SignInWithOAuth(r.PathValue("provider"))
	if err != nil {
		writeServiceError(w, logger, "starting oauth", err)
		return
	}
	http.Redirect(w, r, consentURL, http.StatusFound)
	logger.Info("redirected to oauth provider", slog.String("provider", r.PathValue("provider")))
}

// OAuthCallback hands the token to the client in the URL fragment so it never reaches server logs.
func (s *Server) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	provider := r.PathValue("provider")
	query := r.URL.Query()
	if providerErr := query.Get("error"); providerErr != "" {
		logger.Error("oauth callback error: provider refused", slog.String("reason", providerErr))
		http.Redirect(w, r, s.authRedirect+"?error="+url.QueryEscape(providerErr), http.StatusFound)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	session, err := s.identity.CompleteOAuth(ctx, provider, query.Get("state"), query.Get("code"))
	if err != nil {
		logger.Error("oauth callback error", slog.String("provider", provider), slog.String("error", err.Error()))
		http.Redirect(w, r, s.authRedirect+"?error=oauth_failed", http.StatusFound)
		return
	}
	http.Redirect(w, r, s.authRedirect+"#token="+url.QueryEscape(session.Token), http.StatusFound)
	logger.Info("successful oauth sign in", slog.String("provider", provider), slog.String("uid", session.User.ID.String()))
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("me error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MeResponse{
		User:    user,
		IsAdmin: s.admin.IsAdmin(user),
	})
	logger.Info("user provided")
}

func (s *Server) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update theme error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ThemeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update theme error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.identity.UpdateTheme(ctx, uid, req.Theme); err != nil {
		writeServiceError(w, logger, "updating theme", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("theme updated", slog.String("theme", req.Theme))
}
