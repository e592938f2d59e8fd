package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/service"
	jwtservice "github.com/limbo/ascent/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

var testCredentials = &service.CredentialsRequest{
	Email:    "founder@example.com",
	Password: "correct horse battery",
}

func newIdentity(repo *usersRepoMock, providers map[string]service.OAuthProvider) (*service.IdentityService, *[]service.SessionEvent) {
	var events []service.SessionEvent
	jwt, err := jwtservice.New("test-secret", time.Hour)
	if err != nil {
		panic(err)
	}
	s := service.NewIdentityService(repo, jwt, service.NewSessionHub(), providers)
	s.OnSessionChange(func(ev service.SessionEvent) { events = append(events, ev) })
	return s, &events
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		repo := &usersRepoMock{}
		s, events := newIdentity(repo, nil)
		session, err := s.SignUp(ctx, testCredentials)
		require.NoError(t, err)
		assert.Equal(t, testCredentials.Email, session.User.Email)
		assert.NotEmpty(t, session.Token)
		assert.NotEqual(t, testCredentials.Password, repo.user.PasswordHash)
		require.Len(t, *events, 1)
		assert.Equal(t, service.SessionSignedIn, (*events)[0].Kind)
	})
	t.Run("validation error", func(t *testing.T) {
		s, events := newIdentity(&usersRepoMock{}, nil)
		_, err := s.SignUp(ctx, &service.CredentialsRequest{Email: "not-an-email", Password: "short"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
		assert.Empty(t, *events)
	})
	t.Run("user exists", func(t *testing.T) {
		s, _ := newIdentity(&usersRepoMock{state: stateExists}, nil)
		_, err := s.SignUp(ctx, testCredentials)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		s, _ := newIdentity(&usersRepoMock{state: stateDBError}, nil)
		_, err := s.SignUp(ctx, testCredentials)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserExists)
	})
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()
	repo := &usersRepoMock{}
	s, _ := newIdentity(repo, nil)
	_, err := s.SignUp(ctx, testCredentials)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		session, err := s.SignIn(ctx, testCredentials)
		require.NoError(t, err)
		assert.Equal(t, repo.user.ID, session.User.ID)
	})
	t.Run("wrong password", func(t *testing.T) {
		_, err := s.SignIn(ctx, &service.CredentialsRequest{Email: testCredentials.Email, Password: "wrong password"})
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("unknown email", func(t *testing.T) {
		_, err := s.SignIn(ctx, &service.CredentialsRequest{Email: "nobody@example.com", Password: "whatever1"})
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("empty credentials", func(t *testing.T) {
		for _, req := range []*service.CredentialsRequest{
			{},
			{Email: testCredentials.Email},
			{Password: testCredentials.Password},
			{Email: "not-an-email", Password: testCredentials.Password},
		} {
			_, err := s.SignIn(ctx, req)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
		}
	})
	t.Run("oauth account has no password", func(t *testing.T) {
		oauthRepo := &usersRepoMock{}
		_, err := oauthRepo.UpsertOAuth(ctx, testCredentials.Email, service.ProviderGitHub)
		require.NoError(t, err)
		s, _ := newIdentity(oauthRepo, nil)
		_, err = s.SignIn(ctx, testCredentials)
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &usersRepoMock{}
	s, events := newIdentity(repo, nil)
	session, err := s.SignUp(ctx, testCredentials)
	require.NoError(t, err)

	user, err := s.GetSession(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, user.ID)

	_, err = s.GetSession(ctx, "garbage")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)

	refreshed, err := s.Refresh(ctx, session.Token)
	require.NoError(t, err)
	assert.NotEqual(t, session.Token, refreshed.Token)
	_, err = s.GetSession(ctx, session.Token)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken, "refreshed token is revoked")

	require.NoError(t, s.SignOut(ctx, refreshed.Token))
	require.NoError(t, s.SignOut(ctx, refreshed.Token))
	_, err = s.GetSession(ctx, refreshed.Token)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)

	var kinds []service.SessionEventKind
	for _, ev := range *events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []service.SessionEventKind{service.SessionSignedIn, service.SessionTokenRefreshed, service.SessionSignedOut}, kinds)
	assert.Equal(t, repo.user.ID, (*events)[2].User.ID)
}

func TestSessionOfDeletedUser(t *testing.T) {
	ctx := context.Background()
	repo := &usersRepoMock{}
	s, _ := newIdentity(repo, nil)
	session, err := s.SignUp(ctx, testCredentials)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, session.User.ID))

	_, err = s.GetSession(ctx, session.Token)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
}

func newGitHubStub(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"gh-token","token_type":"bearer"}`))
	})
	mux.HandleFunc("/emails", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer gh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"email":"old@example.com","primary":false,"verified":true},{"email":"octo@example.com","primary":true,"verified":true}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestOAuth(t *testing.T) {
	ctx := context.Background()
	srv := newGitHubStub(t)
	provider := service.OAuthProvider{
		Config: &oauth2.Config{
			ClientID:     "client",
			ClientSecret: "secret",
			RedirectURL:  "http://localhost/api/v1/auth/oauth/github/callback",
			Endpoint:     oauth2.Endpoint{AuthURL: srv.URL + "/authorize", TokenURL: srv.URL + "/token"},
		},
		EmailURL: srv.URL + "/emails",
	}
	repo := &usersRepoMock{}
	s, events := newIdentity(repo, map[string]service.OAuthProvider{service.ProviderGitHub: provider})

	t.Run("unknown provider", func(t *testing.T) {
		_, _, err := s.SignInWithOAuth("myspace")
		assert.ErrorIs(t, err, errorvalues.ErrUnknownProvider)
	})
	t.Run("full flow", func(t *testing.T) {
		consentURL, state, err := s.SignInWithOAuth(service.ProviderGitHub)
		require.NoError(t, err)
		assert.Contains(t, consentURL, srv.URL+"/authorize")
		assert.Contains(t, consentURL, "state="+state)

		session, err := s.CompleteOAuth(ctx, service.ProviderGitHub, state, "code")
		require.NoError(t, err)
		assert.Equal(t, "octo@example.com", session.User.Email)
		assert.Equal(t, service.ProviderGitHub, repo.user.Provider)
		assert.Equal(t, service.SessionSignedIn, (*events)[len(*events)-1].Kind)

		_, err = s.CompleteOAuth(ctx, service.ProviderGitHub, state, "code")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken, "state is single use")
	})
	t.Run("forged state", func(t *testing.T) {
		_, err := s.CompleteOAuth(ctx, service.ProviderGitHub, "forged", "code")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}

func TestUpdateTheme(t *testing.T) {
	ctx := context.Background()
	repo := &usersRepoMock{}
	s, _ := newIdentity(repo, nil)
	session, err := s.SignUp(ctx, testCredentials)
	require.NoError(t, err)

	assert.NoError(t, s.UpdateTheme(ctx, session.User.ID, "forest"))
	assert.Equal(t, "forest", repo.user.Theme)
	assert.ErrorIs(t, s.UpdateTheme(ctx, session.User.ID, "neon"), errorvalues.ErrUnknownTheme)
	assert.ErrorIs(t, s.UpdateTheme(ctx, uuid.New(), "forest"), errorvalues.ErrUserNotFound)
}
