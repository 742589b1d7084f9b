package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"

	"catalogadmin/internal/auth"
	"catalogadmin/pkg/errors"
	"catalogadmin/pkg/logger"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to the catalog admin REST API. The token store is injected
// so nothing reads ambient credential state.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  auth.TokenStore

	Products     *ProductService
	Addresses    *AddressService
	Footer       *FooterService
	About        *AboutService
	Home         *HomeService
	Distributors *DistributorService
	Enquiries    *EnquiryService
	Auth         *AuthService
}

func New(baseURL string, timeout time.Duration, tokens auth.TokenStore) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
	c.Products = &ProductService{c}
	c.Addresses = &AddressService{c}
	c.Footer = &FooterService{c}
	c.About = &AboutService{c}
	c.Home = &HomeService{c}
	c.Distributors = &DistributorService{c}
	c.Enquiries = &EnquiryService{c}
	c.Auth = &AuthService{c}
	return c
}

// envelope absorbs the minor per-endpoint variation in response shape
// (data vs product vs bare productId) so callers never branch on it.
type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Product   json.RawMessage `json:"product"`
	ProductID string          `json:"productId"`
	Count     interface{}     `json:"count"`
	Error     string          `json:"error"`
	Errors    []string        `json:"errors"`
	Message   string          `json:"message"`
	Token     string          `json:"token"`
}

// payload picks the envelope member actually carrying the result.
func (e *envelope) payload() json.RawMessage {
	if len(e.Data) > 0 && string(e.Data) != "null" {
		return e.Data
	}
	if len(e.Product) > 0 && string(e.Product) != "null" {
		return e.Product
	}
	return nil
}

// errorMessage assembles the server-reported message, falling back to the
// supplied generic one.
func (e *envelope) errorMessage(fallback string) string {
	if e.Error != "" {
		return e.Error
	}
	if len(e.Errors) > 0 {
		return strings.Join(e.Errors, ", ")
	}
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

type request struct {
	method      string
	path        string
	body        []byte
	contentType string
	// authed operations fail fast when no token is stored, before any
	// network I/O happens.
	authed   bool
	fallback string
}

func (c *Client) do(ctx context.Context, req request) (*envelope, error) {
	var token string
	if req.authed {
		var err error
		token, err = c.tokens.Token()
		if err != nil {
			return nil, err
		}
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return nil, errors.Internal("Failed to build request", err)
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	} else if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, errors.InvalidResponse("Request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.InvalidResponse("Failed to read response", err)
	}

	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, "<!DOCTYPE html>") || strings.HasPrefix(text, "<html") {
		return nil, errors.InvalidResponse("Server returned HTML instead of JSON", nil)
	}

	env := &envelope{}
	if text != "" {
		if err := jsonCodec.Unmarshal(raw, env); err != nil {
			snippet := text
			if len(snippet) > 100 {
				snippet = snippet[:100]
			}
			return nil, errors.InvalidResponse("Invalid JSON response: "+snippet, err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("%s %s failed with status %d", req.method, req.path, resp.StatusCode)
		return nil, errors.ServerError(resp.StatusCode, env.errorMessage(req.fallback))
	}

	return env, nil
}

// getJSON fetches and decodes the normalized payload into out.
func (c *Client) getJSON(ctx context.Context, path string, authed bool, fallback string, out interface{}) error {
	env, err := c.do(ctx, request{method: http.MethodGet, path: path, authed: authed, fallback: fallback})
	if err != nil {
		return err
	}
	return decodePayload(env, out)
}

func decodePayload(env *envelope, out interface{}) error {
	raw := env.payload()
	if raw == nil {
		return errors.InvalidResponse("Response carried no data", nil)
	}
	if err := jsonCodec.Unmarshal(raw, out); err != nil {
		return errors.InvalidResponse("Failed to decode response data", err)
	}
	return nil
}

func marshalJSON(v interface{}) ([]byte, error) {
	data, err := jsonCodec.Marshal(v)
	if err != nil {
		return nil, errors.Internal("Failed to encode request body", err)
	}
	return data, nil
}

// count fetches a dashboard aggregate, tolerating backends that return the
// number bare, stringly, or nested under data.count.
func (c *Client) count(ctx context.Context, path string, fallback string) (int64, error) {
	env, err := c.do(ctx, request{method: http.MethodGet, path: path, authed: true, fallback: fallback})
	if err != nil {
		return 0, err
	}
	if env.Count != nil {
		return cast.ToInt64E(env.Count)
	}
	raw := env.payload()
	if raw == nil {
		return 0, errors.InvalidResponse("Count response carried no data", nil)
	}
	var v interface{}
	if err := jsonCodec.Unmarshal(raw, &v); err != nil {
		return 0, errors.InvalidResponse("Failed to decode count", err)
	}
	if m, ok := v.(map[string]interface{}); ok {
		return cast.ToInt64E(m["count"])
	}
	return cast.ToInt64E(v)
}
