package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aicorp/command-center-go/internal/domain/auth"
)

// loginPromptTemplate is the classification prompt. The wording is part of
// the contract with the model and must not be reworded casually.
const loginPromptTemplate = `You are a security expert analyzing login attempts to identify suspicious activity.

  Based on the following information, determine if the login attempt is suspicious and requires extra security measures.

  Username: %s
  IP Address: %s
  Login Timestamp: %s
  User Agent: %s
  Login Failures in Last Hour: %d

  Consider factors such as unusual IP addresses, rapid login failures, and unusual user agents.

  Return a JSON object with the following format:
  {
    "isSuspicious": true/false, // true if the login attempt is suspicious, false otherwise
    "reason": "reason for suspicion" // a brief explanation of why the login attempt is suspicious, if applicable
  }

  If the login attempt does not appear suspicious, isSuspicious should be false and the reason should be an empty string.
`

// ClassifyLogin implements auth.Classifier. Any failure (network, provider,
// undecodable response) is reported as a single classification error; there
// is no retry and no fallback heuristic.
func (c *Client) ClassifyLogin(ctx context.Context, attempt auth.LoginAttempt) (auth.LoginVerdict, error) {
	raw, err := c.generate(ctx, buildLoginPrompt(attempt))
	if err != nil {
		return auth.LoginVerdict{}, fmt.Errorf("%w: %v", auth.ErrClassifierUnavailable, err)
	}

	verdict, err := decodeVerdict(raw)
	if err != nil {
		return auth.LoginVerdict{}, fmt.Errorf("%w: %v", auth.ErrClassifierUnavailable, err)
	}
	return verdict, nil
}

// buildLoginPrompt fills the template with the attempt's five inputs.
func buildLoginPrompt(attempt auth.LoginAttempt) string {
	return fmt.Sprintf(loginPromptTemplate,
		attempt.Username,
		attempt.SourceAddress,
		attempt.Timestamp.Format(time.RFC3339),
		attempt.ClientAgent,
		attempt.RecentFailureCount,
	)
}

// decodeVerdict parses the model output into a verdict. Output wrapped in
// markdown code fences is tolerated. The returned verdict always satisfies:
// not suspicious implies empty reason, suspicious implies non-empty reason.
func decodeVerdict(raw string) (auth.LoginVerdict, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var verdict auth.LoginVerdict
	if err := json.Unmarshal([]byte(cleaned), &verdict); err != nil {
		return auth.LoginVerdict{}, fmt.Errorf("failed to decode verdict: %w", err)
	}

	if !verdict.IsSuspicious {
		verdict.Reason = ""
	} else if strings.TrimSpace(verdict.Reason) == "" {
		verdict.Reason = "Flagged as suspicious by the classification model."
	}
	return verdict, nil
}
