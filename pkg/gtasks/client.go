package gtasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

// Client wraps the Google Tasks API service.
type Client struct {
	service  *tasks.Service
	limiter  *rate.Limiter
	lists    *expirable.LRU[string, string]
	pageSize int64
}

func newClient(svc *tasks.Service, opts Options) *Client {
	opts = opts.withDefaults()
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	return &Client{
		service:  svc,
		limiter:  rate.NewLimiter(limit, opts.Burst),
		lists:    expirable.NewLRU[string, string](opts.ListCacheSize, nil, opts.ListCacheTTL),
		pageSize: opts.PageSize,
	}
}

// NewClientFromCredentialsFile creates a Tasks client from a credentials JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string, opts Options) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath, opts)
}

// NewClientFromCredentialsJSON creates a Tasks client from either a Service
// Account key or OAuth installed-app credentials plus a saved token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string, opts Options) (*Client, error) {
	// Try service account first
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, tasks.TasksScope)
	if err == nil {
		svc, svcErr := tasks.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create tasks service: %w", svcErr)
		}
		return newClient(svc, opts), nil
	}

	oauthConfig, cfgErr := OAuthConfig(credentialsJSON)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", cfgErr)
	}

	tok, tokErr := LoadToken(tokenPath)
	if tokErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no usable token at %s (run `orgsync auth`): %w", tokenPath, tokErr)
	}

	svc, svcErr := tasks.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create tasks service from OAuth token: %w", svcErr)
	}
	return newClient(svc, opts), nil
}

// NewClientFromHTTP creates a Tasks client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts Options) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return newClient(svc, opts), nil
}

// OAuthConfig parses installed-app credentials for the Tasks scope.
func OAuthConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	return google.ConfigFromJSON(credentialsJSON, tasks.TasksScope)
}

// LoadToken reads an OAuth token saved by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return &tok, nil
}

// SaveToken writes tok to path, readable by the owner only.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}
