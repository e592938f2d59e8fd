package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/ascent/internal/banner"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
	jwtservice "github.com/limbo/ascent/pkg/jwt_service"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const (
	ProviderEmail  = "email"
	ProviderGitHub = "github"

	oauthStateTTL = 10 * time.Minute
)

// OAuthProvider is an oauth2 app plus the endpoint that lists the user's e-mails.
type OAuthProvider struct {
	Config   *oauth2.Config
	EmailURL string
}

func GitHubProvider(clientID, clientSecret, redirectURL string) OAuthProvider {
	return OAuthProvider{
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     github.Endpoint,
			Scopes:       []string{"user:email"},
		},
		EmailURL: "https://api.github.com/user/emails",
	}
}

type oauthState struct {
	provider string
	expires  time.Time
}

type IdentityService struct {
	repo      repository.UsersRepositoryI
	jwt       *jwtservice.JWTService
	hub       *SessionHub
	providers map[string]OAuthProvider

	mu      sync.Mutex
	revoked map[string]time.Time
	states  map[string]oauthState
	now     func() time.Time
}

func NewIdentityService(usersRepo repository.UsersRepositoryI, jwt *jwtservice.JWTService, hub *SessionHub, providers map[string]OAuthProvider) *IdentityService {
	if hub == nil {
		hub = NewSessionHub()
	}
	if providers == nil {
		providers = map[string]OAuthProvider{}
	}
	return &IdentityService{
		repo:      usersRepo,
		jwt:       jwt,
		hub:       hub,
		providers: providers,
		revoked:   make(map[string]time.Time),
		states:    make(map[string]oauthState),
		now:       time.Now,
	}
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (is *IdentityService) issue(user *entity.User) (*Session, error) {
	token, err := is.jwt.GenerateToken(user)
	if err != nil {
		return nil, errors.New("generating token error: " + err.Error())
	}
	return &Session{
		User:      user,
		Token:     token,
		ExpiresAt: is.now().Add(is.jwt.TTL()),
	}, nil
}

func (is *IdentityService) SignUp(ctx context.Context, req *CredentialsRequest) (*Session, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user, err := is.repo.Create(ctx, &entity.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Provider:     ProviderEmail,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	session, err := is.issue(user)
	if err != nil {
		return nil, err
	}
	is.hub.Publish(SessionEvent{Kind: SessionSignedIn, User: user})
	return session, nil
}

func (is *IdentityService) SignIn(ctx context.Context, req *CredentialsRequest) (*Session, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := is.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	// OAuth accounts have no password
	if user.PasswordHash == "" {
		return nil, errorvalues.ErrWrongCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	session, err := is.issue(user)
	if err != nil {
		return nil, err
	}
	is.hub.Publish(SessionEvent{Kind: SessionSignedIn, User: user})
	return session, nil
}

func (is *IdentityService) claims(token string) (*jwtservice.Claims, uuid.UUID, error) {
	claims, err := is.jwt.ParseToken(token)
	if err != nil {
		return nil, uuid.Nil, err
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, uuid.Nil, errorvalues.ErrInvalidToken
	}
	return claims, uid, nil
}

func (is *IdentityService) isRevoked(jti string) bool {
	is.mu.Lock()
	defer is.mu.Unlock()
	_, ok := is.revoked[jti]
	return ok
}

func (is *IdentityService) revoke(claims *jwtservice.Claims) {
	is.mu.Lock()
	defer is.mu.Unlock()
	now := is.now()
	for jti, exp := range is.revoked {
		if exp.Before(now) {
			delete(is.revoked, jti)
		}
	}
	exp := now.Add(is.jwt.TTL())
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	is.revoked[claims.ID] = exp
}

func (is *IdentityService) GetSession(ctx context.Context, token string) (*entity.User, error) {
	claims, uid, err := is.claims(token)
	if err != nil {
		return nil, err
	}
	if is.isRevoked(claims.ID) {
		return nil, errorvalues.ErrInvalidToken
	}
	user, err := is.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrInvalidToken
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (is *IdentityService) SignOut(ctx context.Context, token string) error {
	claims, uid, err := is.claims(token)
	if err != nil {
		return err
	}
	already := is.isRevoked(claims.ID)
	is.revoke(claims)
	if already {
		return nil
	}
	user, err := is.repo.FindByID(ctx, uid)
	if err != nil {
		user = &entity.User{ID: uid, Email: claims.Email}
	}
	is.hub.Publish(SessionEvent{Kind: SessionSignedOut, User: user})
	return nil
}

func (is *IdentityService) Refresh(ctx context.Context, token string) (*Session, error) {
	user, err := is.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	claims, _, err := is.claims(token)
	if err != nil {
		return nil, err
	}
	session, err := is.issue(user)
	if err != nil {
		return nil, err
	}
	is.revoke(claims)
	is.hub.Publish(SessionEvent{Kind: SessionTokenRefreshed, User: user})
	return session, nil
}

func (is *IdentityService) SignInWithOAuth(provider string) (string, string, error) {
	p, ok := is.providers[provider]
	if !ok {
		return "", "", errorvalues.ErrUnknownProvider
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.New("generating oauth state error: " + err.Error())
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	is.mu.Lock()
	now := is.now()
	for s, st := range is.states {
		if st.expires.Before(now) {
			delete(is.states, s)
		}
	}
	is.states[state] = oauthState{provider: provider, expires: now.Add(oauthStateTTL)}
	is.mu.Unlock()

	return p.Config.AuthCodeURL(state, oauth2.AccessTypeOnline), state, nil
}

// consumeState accepts every state only once.
func (is *IdentityService) consumeState(provider, state string) bool {
	is.mu.Lock()
	defer is.mu.Unlock()
	st, ok := is.states[state]
	if !ok {
		return false
	}
	delete(is.states, state)
	return st.provider == provider && st.expires.After(is.now())
}

func (is *IdentityService) CompleteOAuth(ctx context.Context, provider, state, code string) (*Session, error) {
	p, ok := is.providers[provider]
	if !ok {
		return nil, errorvalues.ErrUnknownProvider
	}
	if !is.consumeState(provider, state) {
		return nil, errorvalues.ErrInvalidToken
	}
	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrNotAuthenticated, err)
	}
	email, err := primaryEmail(ctx, p.Config.Client(ctx, token), p.EmailURL)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrNotAuthenticated, err)
	}
	user, err := is.repo.UpsertOAuth(ctx, email, provider)
	if err != nil {
		return nil, errors.New("repository upserting error: " + err.Error())
	}
	session, err := is.issue(user)
	if err != nil {
		return nil, err
	}
	is.hub.Publish(SessionEvent{Kind: SessionSignedIn, User: user})
	return session, nil
}

type providerEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

func primaryEmail(ctx context.Context, client *http.Client, emailURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, emailURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.New("fetching emails error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.New("fetching emails error: unexpected status " + resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.New("reading emails error: " + err.Error())
	}
	var emails []providerEmail
	if err = sonic.Unmarshal(body, &emails); err != nil {
		return "", errors.New("decoding emails error: " + err.Error())
	}
	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	return "", errors.New("no verified primary email")
}

func (is *IdentityService) OnSessionChange(cb func(SessionEvent)) func() {
	return is.hub.Subscribe(cb)
}

func (is *IdentityService) UpdateTheme(ctx context.Context, uid uuid.UUID, theme string) error {
	if !banner.KnownTheme(theme) {
		return errorvalues.ErrUnknownTheme
	}
	err := is.repo.UpdateTheme(ctx, uid, theme)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}

// AuditSessions logs every session transition.
func AuditSessions(logger *slog.Logger) func(SessionEvent) {
	return func(ev SessionEvent) {
		attrs := []any{slog.String("event", string(ev.Kind))}
		if ev.User != nil {
			attrs = append(attrs, slog.String("uid", ev.User.ID.String()))
		}
		logger.Info("session changed", attrs...)
	}
}
