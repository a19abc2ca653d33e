package authz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RemoteAuthorizer asks an external policy decision point over HTTP.
// The wire format follows the common check-resources shape: one
// principal, one resource, one action per request. No retries are
// performed; a transport or decode failure is terminal for the request.
type RemoteAuthorizer struct {
	baseURL string
	client  *http.Client
}

// NewRemoteAuthorizer creates a RemoteAuthorizer for the given decision
// service base URL.
func NewRemoteAuthorizer(baseURL string, timeout time.Duration) *RemoteAuthorizer {
	return &RemoteAuthorizer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type checkRequest struct {
	Principal Principal       `json:"principal"`
	Resources []checkResource `json:"resources"`
}

type checkResource struct {
	Resource Resource `json:"resource"`
	Actions  []string `json:"actions"`
}

type checkResponse struct {
	Results []struct {
		Resource Resource          `json:"resource"`
		Actions  map[string]string `json:"actions"`
	} `json:"results"`
}

const effectAllow = "EFFECT_ALLOW"

// IsAllowed sends the check to the decision service and reports the effect.
func (a *RemoteAuthorizer) IsAllowed(ctx context.Context, input CheckInput) (bool, error) {
	body, err := json.Marshal(checkRequest{
		Principal: input.Principal,
		Resources: []checkResource{{Resource: input.Resource, Actions: []string{input.Action}}},
	})
	if err != nil {
		return false, fmt.Errorf("encode check request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/check/resources", bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("authorization check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("authorization service returned status %d", resp.StatusCode)
	}

	var decoded checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return false, fmt.Errorf("decode check response: %w", err)
	}

	if len(decoded.Results) == 0 {
		return false, nil
	}

	return decoded.Results[0].Actions[input.Action] == effectAllow, nil
}
