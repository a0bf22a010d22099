package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/insighted-client/internal/config"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/utils"
	"github.com/MKhiriev/insighted-client/models"
	"github.com/go-resty/resty/v2"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, applies the request timeout, tags every request
// with an X-Request-ID and logs each exchange at debug level.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithRequestIDs(utils.NewUUIDGenerator())
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	h := &httpBackendAdapter{client: client, logger: log}
	client.OnAfterResponse(h.logResponse)
	client.OnError(h.logError)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBackendAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader)).
		Msg("backend response")
	return nil
}

func (h *httpBackendAdapter) logError(req *resty.Request, err error) {
	h.logger.Error().
		Err(err).
		Str("method", req.Method).
		Str("url", req.URL).
		Str("request_id", req.Header.Get(utils.RequestIDHeader)).
		Msg("backend request failed")
}

// SetToken implements [AuthAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpBackendAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthAdapter].
func (h *httpBackendAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// Me implements [AuthAdapter]. GET /me succeeds only for a valid token.
func (h *httpBackendAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [AuthAdapter]. A 401 carries the backend's
// "Invalid credentials" message.
func (h *httpBackendAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&auth).
		Post("/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if strings.TrimSpace(auth.AccessToken) == "" {
		return models.AuthResponse{}, fmt.Errorf("login response: empty access token")
	}

	return auth, nil
}

// Register implements [AuthAdapter]. The backend answers 201 on success and
// 409 when the email is taken.
func (h *httpBackendAdapter) Register(ctx context.Context, reg models.Registration) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reg).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}
