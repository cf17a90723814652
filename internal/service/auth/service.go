package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aicorp/command-center-go/internal/domain/auth"
	"github.com/aicorp/command-center-go/internal/pkg/cron"
	"github.com/aicorp/command-center-go/internal/pkg/jwt"
	"github.com/aicorp/command-center-go/internal/pkg/sse"
)

const (
	msgLoginOK         = "Login successful."
	msgLoginSuspicious = "Login successful. This attempt was flagged for review."
)

type AuthServiceImpl struct {
	classifier auth.Classifier
	failures   auth.FailureTracker
	jwtService jwt.Service
	hub        *sse.Hub
	now        func() time.Time
}

func NewAuthService(
	classifier auth.Classifier,
	failures auth.FailureTracker,
	jwtService jwt.Service,
	hub *sse.Hub,
) auth.AuthService {
	return &AuthServiceImpl{
		classifier: classifier,
		failures:   failures,
		jwtService: jwtService,
		hub:        hub,
		now:        time.Now,
	}
}

// NewAuthServiceWithClock injects the clock for tests.
func NewAuthServiceWithClock(
	classifier auth.Classifier,
	failures auth.FailureTracker,
	jwtService jwt.Service,
	hub *sse.Hub,
	now func() time.Time,
) auth.AuthService {
	return &AuthServiceImpl{
		classifier: classifier,
		failures:   failures,
		jwtService: jwtService,
		hub:        hub,
		now:        now,
	}
}

// Login runs the risk screen and issues tokens. A suspicious verdict never
// blocks the login; it only changes the message and the alert feed. A failed
// classification call is surfaced to the caller instead of being retried or
// replaced with a fallback verdict.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	now := s.now()

	recentFailures, err := s.failures.CountSince(ctx, req.Username, now.Add(-cron.FailureWindow))
	if err != nil {
		slog.Error("Failed to count recent login failures", "username", req.Username, "error", err)
		recentFailures = 0
	}

	attempt := auth.LoginAttempt{
		Username:           req.Username,
		SourceAddress:      req.SourceAddress,
		Timestamp:          now,
		ClientAgent:        req.ClientAgent,
		RecentFailureCount: recentFailures,
	}

	verdict, classifyErr := s.classifier.ClassifyLogin(ctx, attempt)
	if classifyErr != nil {
		slog.Error("Login classification failed", "username", req.Username, "error", classifyErr)
		if recordErr := s.failures.RecordFailure(ctx, req.Username, now); recordErr != nil {
			slog.Error("Failed to record unscreened login", "username", req.Username, "error", recordErr)
		}
		return auth.LoginResponse{}, errors.Join(auth.ErrClassifierUnavailable, classifyErr)
	}

	message := msgLoginOK
	if verdict.IsSuspicious {
		slog.Warn("Suspicious login detected",
			"username", req.Username,
			"source_address", req.SourceAddress,
			"reason", verdict.Reason,
		)
		if recordErr := s.failures.RecordFailure(ctx, req.Username, now); recordErr != nil {
			slog.Error("Failed to record suspicious login", "username", req.Username, "error", recordErr)
		}
		s.hub.Publish(sse.TopicSecurityAlerts, sse.Event{
			Topic: sse.TopicSecurityAlerts,
			Event: "suspicious_login",
			Data: map[string]interface{}{
				"username":       req.Username,
				"source_address": req.SourceAddress,
				"timestamp":      now.Format(time.RFC3339),
				"reason":         verdict.Reason,
			},
		})
		message = msgLoginSuspicious
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(req.Username, isAdminUser(req.Username))
	if err != nil {
		return auth.LoginResponse{}, err
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(req.Username)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Token: auth.TokenResponse{
			AccessToken:           accessToken,
			AccessTokenExpiresIn:  accessExp,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExp,
		},
		Verdict: verdict,
		Message: message,
	}, nil
}

func (s *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	username, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, errors.Join(auth.ErrInvalidToken, err)
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(username, isAdminUser(username))
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: accessExp,
	}, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

// isAdminUser marks the built-in operator account. Everyone else gets a
// standard console session.
func isAdminUser(username string) bool {
	return username == "admin"
}
