package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/rest"
	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/rest/handlers"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to a running theme backend. It keeps cookies
// like a browser so cart and notifications stay with one shopper.
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	jar, _ := cookiejar.New(nil)
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

func (c *TestClient) FormatMoney(t *testing.T, amount, format string) (string, error) {
	q := url.Values{"amount": {amount}}
	if format != "" {
		q.Set("format", format)
	}

	var resp handlers.MoneyResponse
	if err := c.do(t, http.MethodGet, "/theme/money?"+q.Encode(), nil, "", &resp); err != nil {
		return "", err
	}
	return resp.Formatted, nil
}

func (c *TestClient) CartCount(t *testing.T) (int, error) {
	var resp handlers.CountResponse
	if err := c.do(t, http.MethodGet, "/theme/cart/count", nil, "", &resp); err != nil {
		return 0, err
	}
	return resp.ItemCount, nil
}

// AddToCart returns the decoded body for both outcomes; err is set on a non-2xx status.
func (c *TestClient) AddToCart(t *testing.T, variantID, quantity string) (*handlers.CartAddResponse, error) {
	form := url.Values{"id": {variantID}, "quantity": {quantity}}

	var resp handlers.CartAddResponse
	err := c.do(t, http.MethodPost, "/theme/cart/add", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &resp)
	return &resp, err
}

func (c *TestClient) Search(t *testing.T, q string) (*handlers.SearchResponse, error) {
	var resp handlers.SearchResponse
	if err := c.do(t, http.MethodGet, "/theme/search?"+url.Values{"q": {q}}.Encode(), nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *TestClient) Notifications(t *testing.T) ([]rest.NotificationDTO, error) {
	var resp handlers.NotificationsResponse
	if err := c.do(t, http.MethodGet, "/theme/notifications", nil, "", &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

func (c *TestClient) do(t *testing.T, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if out != nil {
		json.Unmarshal(bodyBytes, out)
	}

	if resp.StatusCode >= 400 {
		var errResp rest.ErrorResponse
		json.Unmarshal(bodyBytes, &errResp)
		return fmt.Errorf("status %d: %s %s", resp.StatusCode, errResp.Error.Code, errResp.Error.Message)
	}
	return nil
}
