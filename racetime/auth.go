package racetime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultTokenValidity is assumed when the token endpoint omits expires_in.
const defaultTokenValidity = 36000 * time.Second

// Token is a bearer token obtained from the OAuth2 client credentials
// grant. The library does not cache, refresh or expire tokens; the
// caller owns the lifecycle.
type Token struct {
	AccessToken string
	ExpiresIn   time.Duration
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   *int64 `json:"expires_in"`
}

// Authorize exchanges OAuth2 client credentials for a bearer token.
// Each call performs exactly one round trip against the token endpoint
// and is safe to repeat; the service's own rate limits apply.
func (c *Client) Authorize(ctx context.Context, clientID, clientSecret string) (*Token, error) {
	requestURL, err := c.uri("/o/token")
	if err != nil {
		return nil, err
	}

	form := url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"grant_type":    {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug().Str("url", requestURL).Msg("Requesting access token")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, requestURL); err != nil {
		return nil, err
	}

	var data authResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if data.AccessToken == "" {
		return nil, fmt.Errorf("token response did not include an access token")
	}

	validity := defaultTokenValidity
	if data.ExpiresIn != nil {
		validity = time.Duration(*data.ExpiresIn) * time.Second
	}

	c.logger.Debug().Dur("expires_in", validity).Msg("Access token granted")

	return &Token{
		AccessToken: data.AccessToken,
		ExpiresIn:   validity,
	}, nil
}
