package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"sessionvault/internal/app/client/config"
	"sessionvault/internal/domain/admin"
	"sessionvault/internal/domain/session"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "SessionVault-Adminctl/1.0",
	}
}

// SetToken устанавливает токен аутентификации для последующих запросов.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status: %d", resp.StatusCode)
	}
	return nil
}

type loginResult struct {
	Token   string `json:"token"`
	Account struct {
		ID    int    `json:"id"`
		Email string `json:"email"`
	} `json:"account"`
}

func (h *httpClient) Login(ctx context.Context, email, password string) (*loginResult, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/login", body)
	if err != nil {
		return nil, err
	}

	var result loginResult
	if err := h.parseResponse(resp, &result); err != nil {
		return nil, err
	}

	h.SetToken(result.Token)
	return &result, nil
}

func (h *httpClient) ListSessions(ctx context.Context) ([]session.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/sessions", nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Records []session.Record `json:"records"`
	}
	if err := h.parseResponse(resp, &result); err != nil {
		return nil, err
	}
	return result.Records, nil
}

func (h *httpClient) DeleteSession(ctx context.Context, id int) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/sessions?id="+url.QueryEscape(strconv.Itoa(id)), nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) ListAdmins(ctx context.Context) ([]admin.Account, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/admins", nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Admins []admin.Account `json:"admins"`
	}
	if err := h.parseResponse(resp, &result); err != nil {
		return nil, err
	}
	return result.Admins, nil
}

func (h *httpClient) CreateAdmin(ctx context.Context, email, password string) (*admin.Account, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/admins", body)
	if err != nil {
		return nil, err
	}

	var result struct {
		Account admin.Account `json:"account"`
	}
	if err := h.parseResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result.Account, nil
}

func (h *httpClient) DeleteAdmin(ctx context.Context, id int) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/admins?id="+url.QueryEscape(strconv.Itoa(id)), nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("received response", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		// Ошибки приходят либо как {"error": ...}, либо в формате
		// problem+json с полем detail.
		var errResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Error != "" {
				return fmt.Errorf("server error: %s", errResp.Error)
			}
			if errResp.Detail != "" {
				return fmt.Errorf("server error: %s", errResp.Detail)
			}
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}
