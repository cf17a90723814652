package genai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aicorp/command-center-go/internal/domain/auth"
)

func TestBuildLoginPromptCarriesAttemptDetails(t *testing.T) {
	attempt := auth.LoginAttempt{
		Username:           "a",
		SourceAddress:      "9.9.9.9",
		Timestamp:          time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		ClientAgent:        "curl/8.0",
		RecentFailureCount: 15,
	}

	prompt := buildLoginPrompt(attempt)

	assert.Contains(t, prompt, "Username: a\n")
	assert.Contains(t, prompt, "IP Address: 9.9.9.9")
	assert.Contains(t, prompt, "Login Timestamp: 2024-03-01T09:30:00Z")
	assert.Contains(t, prompt, "User Agent: curl/8.0")
	assert.Contains(t, prompt, "Login Failures in Last Hour: 15")
	assert.NotContains(t, prompt, "%s")
	assert.NotContains(t, prompt, "%d")
}

func TestDecodeVerdict(t *testing.T) {
	verdict, err := decodeVerdict(`{"isSuspicious": true, "reason": "15 failed logins in the last hour"}`)
	require.NoError(t, err)
	assert.True(t, verdict.IsSuspicious)
	assert.Equal(t, "15 failed logins in the last hour", verdict.Reason)
}

func TestDecodeVerdictNotSuspicious(t *testing.T) {
	verdict, err := decodeVerdict(`{"isSuspicious": false, "reason": ""}`)
	require.NoError(t, err)
	assert.False(t, verdict.IsSuspicious)
	assert.Empty(t, verdict.Reason)
}

func TestDecodeVerdictStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"isSuspicious\": true, \"reason\": \"unusual user agent\"}\n```"
	verdict, err := decodeVerdict(raw)
	require.NoError(t, err)
	assert.True(t, verdict.IsSuspicious)
	assert.Equal(t, "unusual user agent", verdict.Reason)
}

func TestDecodeVerdictNormalizesReason(t *testing.T) {
	// Not suspicious never carries a reason.
	verdict, err := decodeVerdict(`{"isSuspicious": false, "reason": "looks fine"}`)
	require.NoError(t, err)
	assert.Empty(t, verdict.Reason)

	// Suspicious always carries one.
	verdict, err = decodeVerdict(`{"isSuspicious": true, "reason": "  "}`)
	require.NoError(t, err)
	assert.NotEmpty(t, verdict.Reason)
}

func TestDecodeVerdictRejectsGarbage(t *testing.T) {
	_, err := decodeVerdict("the login seems okay to me")
	require.Error(t, err)

	_, err = decodeVerdict("")
	require.Error(t, err)
}
