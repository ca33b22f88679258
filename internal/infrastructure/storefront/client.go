package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/mdamascus-theme/internal/config"
)

type HTTPClient struct {
	baseURL       *url.URL
	cartAddURL    string
	cartChangeURL string
	cartURL       string
	httpClient    *http.Client
}

func NewClient(cfg config.StorefrontConfig) (Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse storefront base url: %w", err)
	}

	return &HTTPClient{
		baseURL:       base,
		cartAddURL:    cfg.CartAddURL,
		cartChangeURL: cfg.CartChangeURL,
		cartURL:       cfg.CartURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

func (c *HTTPClient) AddItems(ctx context.Context, req AddItemsRequest) (*AddItemsResponse, error) {
	return sendJSON[AddItemsRequest, AddItemsResponse](ctx, c, http.MethodPost, c.resolve(c.cartAddURL), &req)
}

func (c *HTTPClient) ChangeLine(ctx context.Context, req ChangeLineRequest) (*Cart, error) {
	return sendJSON[ChangeLineRequest, Cart](ctx, c, http.MethodPost, c.resolve(c.cartChangeURL), &req)
}

func (c *HTTPClient) GetCart(ctx context.Context) (*Cart, error) {
	return sendJSON[any, Cart](ctx, c, http.MethodGet, c.resolve(c.cartURL+".js"), nil)
}

func (c *HTTPClient) Subscribe(ctx context.Context, req SubscribeRequest) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(req.Action), strings.NewReader(req.Fields.Encode()))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(ctx, httpReq)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StorefrontError{
			Code:       "subscription_failed",
			Message:    "Subscription failed",
			StatusCode: resp.StatusCode,
		}
	}
	return nil
}

// resolve turns a theme route into an absolute URL on the storefront origin.
func (c *HTTPClient) resolve(route string) string {
	ref, err := url.Parse(route)
	if err != nil {
		return c.baseURL.String() + route
	}
	return c.baseURL.ResolveReference(ref).String()
}

// do sends req with the shopper's platform cookies from ctx and records any
// the platform sets.
func (c *HTTPClient) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	session := SessionFrom(ctx)
	session.attach(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	session.record(resp)
	return resp, nil
}

func sendJSON[Req any, Resp any](ctx context.Context, c *HTTPClient, method, endpoint string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.do(ctx, httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	// The platform reports cart rejections in the body, so the envelope is
	// checked before the HTTP status.
	var envelope errorEnvelope
	if json.Unmarshal(body, &envelope) == nil {
		if status, ok := envelope.statusCode(); ok && status == http.StatusUnprocessableEntity {
			return nil, &CartError{
				Status:      status,
				Message:     envelope.Message,
				Description: envelope.Description,
			}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if envelope.Message == "" && envelope.Description == "" {
			return nil, fmt.Errorf("storefront returned status %d: %s", resp.StatusCode, string(body))
		}
		code := envelope.statusToken()
		if code == "" {
			code = strings.ToLower(strings.ReplaceAll(http.StatusText(resp.StatusCode), " ", "_"))
		}
		return nil, &StorefrontError{
			Code:        code,
			Message:     envelope.Message,
			Description: envelope.Description,
			StatusCode:  resp.StatusCode,
		}
	}

	var out Resp
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &out, nil
}
