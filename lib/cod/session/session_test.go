package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"codstats-backend/lib/cod/errs"
	"codstats-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestLoginLegacyBlankTokenFailsClosed(t *testing.T) {
	sess, err := New(Options{})
	require.NoError(t, err)

	require.False(t, sess.LoginLegacy(""))
	require.False(t, sess.LoginLegacy("   "))
	require.False(t, sess.LegacyAuthenticated())
	require.Empty(t, sess.LegacyHeaders())
	require.Empty(t, sess.SSOToken())
}

func TestLoginLegacySynthesizesHeaders(t *testing.T) {
	sess, err := New(Options{})
	require.NoError(t, err)

	require.True(t, sess.LoginLegacy("TOK"))
	require.True(t, sess.LegacyAuthenticated())
	require.Equal(t, "TOK", sess.SSOToken())

	headers := sess.LegacyHeaders()
	require.Equal(t, "TOK", headers["Atvi-Auth"])
	require.Equal(t, "TOK", headers["ACT_SSO_COOKIE"])
	require.Equal(t, "TOK", headers["atkn"])
	require.Equal(t, "application/json", headers["Content-Type"])
	require.NotEmpty(t, headers["X-XSRF-TOKEN"])
	require.Equal(t, headers["X-XSRF-TOKEN"], headers["X-CSRF-TOKEN"])
	require.Contains(t, headers["Cookie"], "new_SiteId=cod;")
	require.Contains(t, headers["Cookie"], "ACT_SSO_COOKIE=TOK;")
	require.Contains(t, headers["Cookie"], "XSRF-TOKEN="+headers["X-XSRF-TOKEN"])

	// legacy login never touches telescope state
	require.False(t, sess.TelescopeAuthenticated())
	require.Empty(t, sess.BearerToken())
}

func TestLoginLegacyHeadersAreACopy(t *testing.T) {
	sess, err := New(Options{})
	require.NoError(t, err)
	require.True(t, sess.LoginLegacy("TOK"))

	headers := sess.LegacyHeaders()
	headers["Atvi-Auth"] = "tampered"
	require.Equal(t, "TOK", sess.LegacyHeaders()["Atvi-Auth"])
}

func telescopeLoginServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int64) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestLoginTelescopeBlankCredentialsFailClosed(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:cod/session")
	defer cleanup()

	srv, calls := telescopeLoginServer(t, 200, `{"umbrella":{"accessToken":"BEARER"}}`)
	sess, err := New(Options{LoginURL: srv.URL})
	require.NoError(t, err)

	ok, err := sess.LoginTelescope(context.Background(), "", "hunter2")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = sess.LoginTelescope(context.Background(), "user@example.com", "")
	require.NoError(t, err)
	require.False(t, ok)

	require.False(t, sess.TelescopeAuthenticated())
	require.Equal(t, int64(0), calls.Load())
}

func TestLoginTelescopeSuccess(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:cod/session")
	defer cleanup()

	srv, calls := telescopeLoginServer(t, 200, `{"umbrella":{"accessToken":"BEARER"}}`)
	sess, err := New(Options{LoginURL: srv.URL})
	require.NoError(t, err)

	ok, err := sess.LoginTelescope(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, sess.TelescopeAuthenticated())
	require.Equal(t, "BEARER", sess.BearerToken())
	require.Equal(t, int64(1), calls.Load())

	// telescope login never touches legacy state
	require.False(t, sess.LegacyAuthenticated())
}

func TestLoginTelescopeRejectedCredentials(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:cod/session")
	defer cleanup()

	srv, _ := telescopeLoginServer(t, 403, `{"error":"forbidden"}`)
	sess, err := New(Options{LoginURL: srv.URL})
	require.NoError(t, err)

	ok, err := sess.LoginTelescope(context.Background(), "user@example.com", "wrong")
	require.False(t, ok)
	var aerr errs.AuthenticationError
	require.True(t, errors.As(err, &aerr))
	require.Equal(t, "telescope", aerr.Backend)
	require.False(t, sess.TelescopeAuthenticated())
}

// the login service's behavior on other statuses is undocumented: the
// session stays unauthenticated and no error is reported
func TestLoginTelescopeUnclassifiedStatus(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:cod/session")
	defer cleanup()

	for _, status := range []int{401, 404, 500} {
		srv, _ := telescopeLoginServer(t, status, "")
		sess, err := New(Options{LoginURL: srv.URL})
		require.NoError(t, err)

		ok, err := sess.LoginTelescope(context.Background(), "user@example.com", "hunter2")
		require.NoError(t, err, "status %d", status)
		require.False(t, ok)
		require.False(t, sess.TelescopeAuthenticated())
	}
}

func TestLoginTelescopeMissingToken(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:cod/session")
	defer cleanup()

	srv, _ := telescopeLoginServer(t, 200, `{"umbrella":{}}`)
	sess, err := New(Options{LoginURL: srv.URL})
	require.NoError(t, err)

	ok, err := sess.LoginTelescope(context.Background(), "user@example.com", "hunter2")
	require.False(t, ok)
	var perr errs.ParseError
	require.True(t, errors.As(err, &perr))
	require.False(t, sess.TelescopeAuthenticated())
}
