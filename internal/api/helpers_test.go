package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/api"
	"github.com/phrazzld/catalog-api/internal/api/middleware"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/mocks"
	"github.com/phrazzld/catalog-api/internal/service"
	"github.com/phrazzld/catalog-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

const testSecret = "api-test-secret-0123456789abcdefghij"

// testEnv wires real services, the real token service and the real router
// over in-memory stores.
type testEnv struct {
	t        *testing.T
	router   http.Handler
	users    *mocks.MockUserStore
	profiles *mocks.MockProfileStore
	catalog  *mocks.MockCatalogStore
	tokens   auth.JWTService
	now      time.Time
}

func newTestEnv(t *testing.T, locale string) *testEnv {
	t.Helper()

	env := &testEnv{
		t:        t,
		users:    mocks.NewMockUserStore(),
		profiles: mocks.NewMockProfileStore(),
		catalog:  &mocks.MockCatalogStore{},
		now:      time.Now().UTC().Truncate(time.Second),
	}

	var err error
	env.tokens, err = auth.NewJWTServiceWithClock(testSecret, func() time.Time { return env.now })
	require.NoError(t, err)

	accounts, err := service.NewAccountService(
		env.users,
		env.profiles,
		&mocks.MockTransactor{},
		&mocks.MockPasswordHasher{},
		env.tokens,
		service.AccountOptions{
			TokenLifetime:       time.Hour,
			CreateKidsProfile:   true,
			IssueTokenOnSignup:  true,
			DefaultProfileImage: "https://img.example.com/default.png",
			KidsProfileImage:    "https://img.example.com/kids.png",
		},
		nil,
	)
	require.NoError(t, err)
	profiles, err := service.NewProfileService(env.profiles, nil)
	require.NoError(t, err)
	catalog, err := service.NewCatalogService(env.catalog, nil)
	require.NoError(t, err)

	msgs := shared.MessagesFor(locale)
	v, err := shared.NewValidator(locale)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)
	api.RegisterRoutes(r, api.Handlers{
		Auth:     api.NewAuthHandler(accounts, v, msgs, nil),
		Users:    api.NewUserHandler(accounts, v, msgs, nil),
		Profiles: api.NewProfileHandler(profiles, v, msgs, nil),
		Catalog:  api.NewCatalogHandler(catalog, msgs, nil),
		Health:   api.HealthHandler(nil),
	}, middleware.NewAuthMiddleware(env.tokens, msgs).Authenticate)
	env.router = r

	return env
}

// do sends a request with an optional token and JSON body.
func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	e.t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(e.t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthorizationHeader, token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// signup creates an account through the API and returns its id and token.
func (e *testEnv) signup(name, email, password string) (uuid.UUID, string) {
	e.t.Helper()

	rec := e.do(http.MethodPost, "/users", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(e.t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp api.SignupResponse
	require.NoError(e.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(e.t, resp.Token)
	return resp.User.ID, resp.Token
}

// tokenFor issues a token directly, bypassing login.
func (e *testEnv) tokenFor(id uuid.UUID, email string) string {
	e.t.Helper()
	token, err := e.tokens.IssueToken(context.Background(), auth.Principal{ID: id, Email: email}, time.Hour)
	require.NoError(e.t, err)
	return token
}

// addProfile stores a profile owned by userID directly.
func (e *testEnv) addProfile(userID uuid.UUID, name string) domain.Profile {
	e.t.Helper()
	p, err := domain.NewProfile(userID, name, "")
	require.NoError(e.t, err)
	e.profiles.Add(*p)
	return *p
}

// storeCalls is the number of store operations performed so far.
func (e *testEnv) storeCalls() int {
	return e.users.CallCount() + e.profiles.CallCount()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
