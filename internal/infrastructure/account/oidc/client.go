package oidc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/user"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/platform/logging"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/usecase"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client resolves bearer tokens into principals by calling the identity
// provider's OIDC userinfo endpoint.
type Client struct {
	httpClient  *http.Client
	userinfoURL string
	logger      *logging.Logger
}

func NewClient(httpClient *http.Client, issuerURL, userinfoPath string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient:  httpClient,
		userinfoURL: buildURL(issuerURL, userinfoPath),
		logger:      logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userinfoURL, nil)
	if err != nil {
		return user.Principal{}, fmt.Errorf("create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: request userinfo: %v", usecase.ErrDependencyUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return user.Principal{}, fmt.Errorf("%w: userinfo denied", usecase.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, fmt.Errorf("read userinfo response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "oidc userinfo non-200",
			"status_code", resp.StatusCode,
		)
		return user.Principal{}, fmt.Errorf("%w: userinfo status %d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	}

	var claims map[string]any
	if err := json.Unmarshal(body, &claims); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal userinfo response: %w", err)
	}

	subject := stringClaim(claims, "sub")
	if subject == "" {
		return user.Principal{}, fmt.Errorf("%w: userinfo has no subject", usecase.ErrUnauthorized)
	}

	return user.Principal{
		Subject:    subject,
		Email:      stringClaim(claims, "email"),
		Name:       stringClaim(claims, "name"),
		Picture:    stringClaim(claims, "picture"),
		Attributes: claims,
		Claims:     claims,
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
