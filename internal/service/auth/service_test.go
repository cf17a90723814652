package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aicorp/command-center-go/internal/domain/auth"
	"github.com/aicorp/command-center-go/internal/pkg/jwt"
	"github.com/aicorp/command-center-go/internal/pkg/sse"
	"github.com/aicorp/command-center-go/internal/repository/memory"
)

type stubClassifier struct {
	verdict auth.LoginVerdict
	err     error

	gotAttempt auth.LoginAttempt
}

func (c *stubClassifier) ClassifyLogin(ctx context.Context, attempt auth.LoginAttempt) (auth.LoginVerdict, error) {
	c.gotAttempt = attempt
	return c.verdict, c.err
}

func newTestService(t *testing.T, classifier auth.Classifier, failures auth.FailureTracker, hub *sse.Hub, now time.Time) auth.AuthService {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key-for-auth-tests", "15m", "168h")
	return NewAuthServiceWithClock(classifier, failures, jwtService, hub, func() time.Time { return now })
}

func loginReq() auth.LoginRequest {
	return auth.LoginRequest{
		Username:      "e.reed",
		Password:      "s3cret",
		SourceAddress: "203.0.113.7",
		ClientAgent:   "Mozilla/5.0",
	}
}

func TestLoginCleanVerdict(t *testing.T) {
	classifier := &stubClassifier{verdict: auth.LoginVerdict{IsSuspicious: false}}
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(t, classifier, memory.NewLoginFailureRepository(), sse.NewHub(), now)

	resp, err := svc.Login(context.Background(), loginReq())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)
	assert.False(t, resp.Verdict.IsSuspicious)
	assert.Empty(t, resp.Verdict.Reason)
	assert.Equal(t, msgLoginOK, resp.Message)

	assert.Equal(t, "e.reed", classifier.gotAttempt.Username)
	assert.Equal(t, "203.0.113.7", classifier.gotAttempt.SourceAddress)
	assert.Equal(t, "Mozilla/5.0", classifier.gotAttempt.ClientAgent)
	assert.Equal(t, now, classifier.gotAttempt.Timestamp)
	assert.Zero(t, classifier.gotAttempt.RecentFailureCount)
}

func TestLoginSuspiciousVerdictStillIssuesTokens(t *testing.T) {
	classifier := &stubClassifier{verdict: auth.LoginVerdict{
		IsSuspicious: true,
		Reason:       "unfamiliar source address",
	}}
	failures := memory.NewLoginFailureRepository()
	hub := sse.NewHub()
	alerts, cleanup := hub.Subscribe(sse.TopicSecurityAlerts)
	defer cleanup()

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(t, classifier, failures, hub, now)

	resp, err := svc.Login(context.Background(), loginReq())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.True(t, resp.Verdict.IsSuspicious)
	assert.Equal(t, "unfamiliar source address", resp.Verdict.Reason)
	assert.Equal(t, msgLoginSuspicious, resp.Message)

	select {
	case event := <-alerts:
		assert.Equal(t, "suspicious_login", event.Event)
	default:
		t.Fatal("expected a security alert to be published")
	}

	count, err := failures.CountSince(context.Background(), "e.reed", now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLoginClassifierFailureSurfaces(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("model endpoint unreachable")}
	failures := memory.NewLoginFailureRepository()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(t, classifier, failures, sse.NewHub(), now)

	// No retry, no fallback verdict: the failure reaches the caller.
	resp, err := svc.Login(context.Background(), loginReq())
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrClassifierUnavailable)
	assert.Empty(t, resp.Token.AccessToken)

	// The failed attempt still counts toward the rolling window.
	count, err := failures.CountSince(context.Background(), "e.reed", now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLoginFeedsRecentFailureCount(t *testing.T) {
	classifier := &stubClassifier{verdict: auth.LoginVerdict{IsSuspicious: false}}
	failures := memory.NewLoginFailureRepository()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, failures.RecordFailure(context.Background(), "e.reed", now.Add(-10*time.Minute)))
	require.NoError(t, failures.RecordFailure(context.Background(), "e.reed", now.Add(-50*time.Minute)))
	// Outside the window, must not count.
	require.NoError(t, failures.RecordFailure(context.Background(), "e.reed", now.Add(-2*time.Hour)))

	svc := newTestService(t, classifier, failures, sse.NewHub(), now)
	_, err := svc.Login(context.Background(), loginReq())
	require.NoError(t, err)

	assert.Equal(t, 2, classifier.gotAttempt.RecentFailureCount)
}

func TestLoginValidation(t *testing.T) {
	classifier := &stubClassifier{}
	svc := newTestService(t, classifier, memory.NewLoginFailureRepository(), sse.NewHub(), time.Now())

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "", Password: ""})
	require.Error(t, err)
	assert.Empty(t, classifier.gotAttempt.Username, "classifier must not run on invalid input")
}

func TestRefreshTokenFlow(t *testing.T) {
	classifier := &stubClassifier{verdict: auth.LoginVerdict{IsSuspicious: false}}
	svc := newTestService(t, classifier, memory.NewLoginFailureRepository(), sse.NewHub(), time.Now())

	resp, err := svc.Login(context.Background(), loginReq())
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: resp.Token.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// Access tokens are not valid refresh tokens.
	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: resp.Token.AccessToken,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	classifier := &stubClassifier{verdict: auth.LoginVerdict{IsSuspicious: false}}
	svc := newTestService(t, classifier, memory.NewLoginFailureRepository(), sse.NewHub(), time.Now())

	resp, err := svc.Login(context.Background(), loginReq())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token.RefreshToken))

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: resp.Token.RefreshToken,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
