package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/application/services"
	"github.com/DanielPopoola/mdamascus-theme/internal/domain"
	"github.com/DanielPopoola/mdamascus-theme/internal/infrastructure/storefront"
	"github.com/DanielPopoola/mdamascus-theme/internal/infrastructure/storefront/mocks"
	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/mdamascus-theme/internal/money"
	"github.com/DanielPopoola/mdamascus-theme/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	mockClient *mocks.MockClient
	queue      *notify.Queue
	mux        *http.ServeMux
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.mockClient = mocks.NewMockClient(suite.T())
	suite.queue = notify.NewQueue(time.Minute)

	h := handlers.NewHandlers(
		money.NewFormatter(money.DefaultTemplate),
		services.NewCartService(suite.mockClient, suite.queue, logger),
		services.NewNewsletterService(suite.mockClient, suite.queue, "/contact", logger),
		services.NewSearchService(2, logger),
		suite.queue,
		logger,
	)
	suite.mux = http.NewServeMux()
	h.Register(suite.mux)
}

func (suite *HandlersTestSuite) do(req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	suite.mux.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func (suite *HandlersTestSuite) Test_FormatMoney() {
	t := suite.T()

	tests := []struct {
		query string
		want  string
	}{
		{query: "amount=123456", want: "$1,234.56"},
		{query: "amount=10.00", want: "$10.00"},
		{query: "amount=123456&format=" + url.QueryEscape("{{amount_with_comma_separator}} €"), want: "1.234,56 €"},
		{query: "amount=abc", want: "$0"},
		{query: "", want: "$0"},
		{query: "format=" + url.QueryEscape("{{amount_no_decimals}} kr"), want: "0 kr"},
		{query: "amount=1e50000000", want: "$0"},
	}

	for _, tt := range tests {
		rec, body := suite.do(httptest.NewRequest(http.MethodGet, "/theme/money?"+tt.query, nil))
		assert.Equal(t, http.StatusOK, rec.Code, tt.query)
		assert.Equal(t, tt.want, body["formatted"], tt.query)
	}
}

func (suite *HandlersTestSuite) Test_FormatMoney_NoPlaceholder() {
	t := suite.T()

	rec, body := suite.do(httptest.NewRequest(http.MethodGet, "/theme/money?amount=100&format=USD", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errBody := body["error"].(map[string]any)
	assert.Equal(t, "INVALID_TEMPLATE", errBody["code"])
}

func (suite *HandlersTestSuite) Test_AddToCart_Success() {
	t := suite.T()

	suite.mockClient.EXPECT().AddItems(mock.Anything, mock.Anything).Return(&storefront.AddItemsResponse{}, nil).Once()
	suite.mockClient.EXPECT().GetCart(mock.Anything).Return(&storefront.Cart{ItemCount: 2}, nil).Once()

	rec, body := suite.do(postForm("/theme/cart/add", url.Values{"id": {"99"}, "quantity": {"2"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["item_count"])
	notification := body["notification"].(map[string]any)
	assert.Equal(t, domain.MsgAddedToCart, notification["message"])
	assert.Equal(t, "message message--success", notification["class_name"])
	assert.Equal(t, "#28a745", notification["color"])
}

func (suite *HandlersTestSuite) Test_AddToCart_CartError() {
	t := suite.T()

	suite.mockClient.EXPECT().
		AddItems(mock.Anything, mock.Anything).
		Return(nil, &storefront.CartError{Status: 422, Message: "Cart Error", Description: "Sold out"}).
		Once()

	rec, body := suite.do(postForm("/theme/cart/add", url.Values{"id": {"99"}}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Nil(t, body["item_count"])
	notification := body["notification"].(map[string]any)
	assert.Equal(t, domain.MsgAddToCartFailed, notification["message"])
	assert.Equal(t, "CART_ERROR", body["error"].(map[string]any)["code"])
}

func (suite *HandlersTestSuite) Test_AddToCart_MissingID() {
	t := suite.T()

	rec, body := suite.do(postForm("/theme/cart/add", url.Values{"quantity": {"1"}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.ErrCodeMissingRequiredField, body["error"].(map[string]any)["code"])
}

func (suite *HandlersTestSuite) Test_ChangeCartLine() {
	t := suite.T()

	suite.mockClient.EXPECT().
		ChangeLine(mock.Anything, storefront.ChangeLineRequest{Line: 1, Quantity: 3}).
		Return(&storefront.Cart{ItemCount: 3, TotalPrice: 4500, Currency: "USD"}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/theme/cart/change", strings.NewReader(`{"line":1,"quantity":3}`))
	req.Header.Set("Content-Type", "application/json")
	rec, body := suite.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), body["item_count"])
	assert.Equal(t, float64(4500), body["total_price"])
}

func (suite *HandlersTestSuite) Test_CartCount_StorefrontDown() {
	t := suite.T()

	suite.mockClient.EXPECT().
		GetCart(mock.Anything).
		Return(nil, &storefront.StorefrontError{Code: "service_unavailable", StatusCode: 503}).
		Once()

	rec, body := suite.do(httptest.NewRequest(http.MethodGet, "/theme/cart/count", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "SERVICE_UNAVAILABLE", body["error"].(map[string]any)["code"])
}

func (suite *HandlersTestSuite) Test_Newsletter() {
	t := suite.T()

	suite.mockClient.EXPECT().
		Subscribe(mock.Anything, mock.MatchedBy(func(req storefront.SubscribeRequest) bool {
			return req.Action == "/contact" && req.Fields.Get("email") == "a@b.co"
		})).
		Return(nil).
		Once()

	rec, body := suite.do(postForm("/theme/newsletter", url.Values{"email": {"a@b.co"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, domain.MsgSubscribed, body["notification"].(map[string]any)["message"])
}

func (suite *HandlersTestSuite) Test_Newsletter_Skipped() {
	t := suite.T()

	rec, body := suite.do(postForm("/theme/newsletter", url.Values{"email": {""}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["skipped"])
	assert.Nil(t, body["notification"])
}

func (suite *HandlersTestSuite) Test_Newsletter_Failure() {
	t := suite.T()

	suite.mockClient.EXPECT().Subscribe(mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

	rec, body := suite.do(postForm("/theme/newsletter", url.Values{"email": {"a@b.co"}}))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, domain.MsgSubscriptionFailed, body["notification"].(map[string]any)["message"])
}

func (suite *HandlersTestSuite) Test_Search() {
	t := suite.T()

	_, body := suite.do(httptest.NewRequest(http.MethodGet, "/theme/search?q=+boots+", nil))
	assert.Equal(t, "boots", body["query"])
	assert.Equal(t, true, body["accepted"])

	_, body = suite.do(httptest.NewRequest(http.MethodGet, "/theme/search?q=b", nil))
	assert.Equal(t, false, body["accepted"])
}

func (suite *HandlersTestSuite) Test_ListNotifications() {
	t := suite.T()

	mine := notify.WithOwner(context.Background(), "session-a")
	suite.queue.Push(mine, "hello", domain.LevelInfo)
	suite.queue.Push(notify.WithOwner(context.Background(), "session-b"), "someone else", domain.LevelInfo)

	req := httptest.NewRequest(http.MethodGet, "/theme/notifications", nil)
	_, body := suite.do(req.WithContext(mine))

	list := body["notifications"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "hello", list[0].(map[string]any)["message"])
	assert.Equal(t, "#007bff", list[0].(map[string]any)["color"])

	_, body = suite.do(httptest.NewRequest(http.MethodGet, "/theme/notifications", nil))
	assert.Empty(t, body["notifications"])
}
