// Package cexio implements a client for the CEX.IO REST API. Public market
// data endpoints need no credentials; account endpoints are signed with an
// HMAC-SHA256 signature over a per-request nonce.
package cexio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cexgo/cexio/common/crypto"
	"github.com/cexgo/cexio/request"
)

const (
	cexioAPIURL = "https://cex.io/api"

	cexioAPICurrencyLimits     = "currency_limits"
	cexioAPITicker             = "ticker"
	cexioAPITickers            = "tickers"
	cexioAPILastPrice          = "last_price"
	cexioAPILastPrices         = "last_prices"
	cexioAPIOrderBook          = "order_book"
	cexioAPITradeHistory       = "trade_history"
	cexioAPIPriceStats         = "price_stats"
	cexioAPIOHLCV              = "ohlcv/hd"
	cexioAPIBalance            = "balance"
	cexioAPIOpenOrders         = "open_orders"
	cexioAPIConvert            = "convert"
	cexioAPIPlaceOrder         = "place_order"
	cexioAPICancelOrder        = "cancel_order"
	cexioAPICancelOrders       = "cancel_orders"
	cexioAPICancelReplace      = "cancel_replace_order"
	cexioAPIMassCancelPlace    = "mass_cancel_place_orders"
	cexioAPIGetOrder           = "get_order"
	cexioAPIGetOrderTx         = "get_order_tx"
	cexioAPIActiveOrdersStatus = "active_orders_status"
	cexioAPIArchivedOrders     = "archived_orders"
	cexioAPIGetAddress         = "get_address"
	cexioAPIGetAllAddresses    = "get_crypto_address"
	cexioAPIGetMyFee           = "get_myfee"
	cexioAPICurrencyProfile    = "currency_profile"

	cexioDateLayout = "20060102"

	defaultHTTPTimeout = 30 * time.Second

	// The exchange issues keys and secrets of 26+ characters; anything
	// shorter is a paste error, not a credential.
	minCredentialLength = 20
)

// Order sides accepted by PlaceOrder and CancelReplaceOrder.
const (
	Buy  = "buy"
	Sell = "sell"
)

var (
	errSymbolEmpty   = errors.New("symbol cannot be empty")
	errCurrencyEmpty = errors.New("currency cannot be empty")
	errOrderIDEmpty  = errors.New("order id cannot be empty")
	errNoOrderIDs    = errors.New("at least one order id is required")
	errEmptyBatch    = errors.New("at least one cancel id or place order is required")
	errInvalidDepth  = errors.New("depth must be a positive integer")
	errInvalidAmount = errors.New("amount must be greater than zero")
	errInvalidPrice  = errors.New("price must be greater than zero")
	errInvalidSide   = errors.New("order type must be buy or sell")
	errNegativeSince = errors.New("since cannot be negative")
	errInvalidWindow = errors.New("lastHours and maxItems must be positive")
)

// API is a CEX.IO REST API client. It is safe for concurrent use; the one
// piece of shared mutable state, the signing nonce, lives behind the
// requester's FIFO lock.
type API struct {
	BaseURL   string
	Verbose   bool
	Requester *request.Requester

	username  string
	apiKey    string
	apiSecret string

	httpClient *http.Client
	log        *logrus.Logger
}

// Option configures an API client at construction time.
type Option func(*API)

// WithLogging toggles request logging on the client's scoped logger. When
// disabled (the default) calls emit no log records at all.
func WithLogging(enabled bool) Option {
	return func(a *API) {
		a.Verbose = enabled
		if enabled {
			a.log.SetLevel(logrus.DebugLevel)
		} else {
			a.log.SetLevel(logrus.PanicLevel)
		}
	}
}

// WithHTTPClient replaces the default HTTP client and its 30s timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(a *API) {
		a.httpClient = c
	}
}

// WithBaseURL points the client at an alternative API endpoint.
func WithBaseURL(u string) Option {
	return func(a *API) {
		a.BaseURL = strings.TrimSuffix(u, "/")
	}
}

// New returns an API client for the given credential set. It fails with an
// InvalidCredentialsError when a credential is missing or too short to be
// real; the exchange itself has the final say once a signed call is made.
func New(username, apiKey, apiSecret string, opts ...Option) (*API, error) {
	if username == "" || apiKey == "" || apiSecret == "" {
		return nil, &InvalidCredentialsError{Reason: "username, api key and api secret are required"}
	}
	if len(apiKey) < minCredentialLength || len(apiSecret) < minCredentialLength {
		return nil, &InvalidCredentialsError{Reason: "api key or api secret is too short, check they are correct"}
	}

	a := &API{
		BaseURL:    cexioAPIURL,
		username:   username,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		log:        logrus.New(),
	}
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	a.log.SetLevel(logrus.PanicLevel)

	for _, o := range opts {
		o(a)
	}

	a.Requester = request.New("CEXIO", a.httpClient, a.log)
	a.Requester.UserAgent = "bot-cex.io-" + username
	return a, nil
}

// GetCurrencyLimits returns the trading limits of every listed pair.
func (a *API) GetCurrencyLimits(ctx context.Context) ([]PairLimit, error) {
	resp := struct {
		envelope
		Data struct {
			Pairs []PairLimit `json:"pairs"`
		} `json:"data"`
	}{}
	err := a.SendHTTPRequest(ctx, cexioAPICurrencyLimits, nil, &resp)
	return resp.Data.Pairs, err
}

// GetTicker returns a market snapshot for one pair.
func (a *API) GetTicker(ctx context.Context, symbol1, symbol2 string) (*Ticker, error) {
	if symbol1 == "" || symbol2 == "" {
		return nil, errSymbolEmpty
	}
	response := Ticker{}
	path := cexioAPITicker + "/" + pairPath(symbol1, symbol2)
	return &response, a.SendHTTPRequest(ctx, path, nil, &response)
}

// GetTickers returns market snapshots across all markets quoted in the given
// symbols, keyed by pair. With no symbols the server default scope is used.
func (a *API) GetTickers(ctx context.Context, symbols ...string) (map[string]Ticker, error) {
	path := cexioAPITickers
	for _, s := range symbols {
		if s == "" {
			return nil, errSymbolEmpty
		}
		path += "/" + strings.ToUpper(s)
	}

	resp := struct {
		envelope
		Data []Ticker `json:"data"`
	}{}
	if err := a.SendHTTPRequest(ctx, path, nil, &resp); err != nil {
		return nil, err
	}

	tickers := make(map[string]Ticker, len(resp.Data))
	for i := range resp.Data {
		tickers[resp.Data[i].Pair] = resp.Data[i]
	}
	return tickers, nil
}

// GetLastPrice returns the last trade price for one pair.
func (a *API) GetLastPrice(ctx context.Context, symbol1, symbol2 string) (*LastPrice, error) {
	if symbol1 == "" || symbol2 == "" {
		return nil, errSymbolEmpty
	}
	response := LastPrice{}
	path := cexioAPILastPrice + "/" + pairPath(symbol1, symbol2)
	return &response, a.SendHTTPRequest(ctx, path, nil, &response)
}

// GetLastPrices returns last trade prices across all markets quoted in the
// given symbols, keyed by pair in SYMBOL1:SYMBOL2 form.
func (a *API) GetLastPrices(ctx context.Context, symbols ...string) (map[string]PairPrice, error) {
	if len(symbols) == 0 {
		return nil, errSymbolEmpty
	}
	path := cexioAPILastPrices
	for _, s := range symbols {
		if s == "" {
			return nil, errSymbolEmpty
		}
		path += "/" + strings.ToUpper(s)
	}

	resp := struct {
		envelope
		Data []PairPrice `json:"data"`
	}{}
	if err := a.SendHTTPRequest(ctx, path, nil, &resp); err != nil {
		return nil, err
	}

	prices := make(map[string]PairPrice, len(resp.Data))
	for i := range resp.Data {
		prices[resp.Data[i].Symbol1+":"+resp.Data[i].Symbol2] = resp.Data[i]
	}
	return prices, nil
}

// GetOrderBook returns an order book snapshot with at most depth levels per
// side. Depth must be positive; the response is truncated client side should
// the exchange return more levels than asked for.
func (a *API) GetOrderBook(ctx context.Context, symbol1, symbol2 string, depth int) (*OrderBook, error) {
	if symbol1 == "" || symbol2 == "" {
		return nil, errSymbolEmpty
	}
	if depth <= 0 {
		return nil, errInvalidDepth
	}

	values := url.Values{}
	values.Set("depth", strconv.Itoa(depth))

	response := OrderBook{}
	path := cexioAPIOrderBook + "/" + pairPath(symbol1, symbol2)
	if err := a.SendHTTPRequest(ctx, path, values, &response); err != nil {
		return nil, err
	}

	if len(response.Bids) > depth {
		response.Bids = response.Bids[:depth]
	}
	if len(response.Asks) > depth {
		response.Asks = response.Asks[:depth]
	}
	return &response, nil
}

// GetTradeHistory returns public trades with an id greater than since,
// ordered by trade id ascending.
func (a *API) GetTradeHistory(ctx context.Context, symbol1, symbol2 string, since int64) ([]Trade, error) {
	if symbol1 == "" || symbol2 == "" {
		return nil, errSymbolEmpty
	}
	if since < 0 {
		return nil, errNegativeSince
	}

	values := url.Values{}
	values.Set("since", strconv.FormatInt(since, 10))

	var trades []Trade
	path := cexioAPITradeHistory + "/" + pairPath(symbol1, symbol2)
	if err := a.SendHTTPRequest(ctx, path, values, &trades); err != nil {
		return nil, err
	}

	// The exchange serves newest first.
	sort.Slice(trades, func(i, j int) bool { return trades[i].TradeID < trades[j].TradeID })
	return trades, nil
}

// GetPriceStats returns sampled prices over the last lastHours hours, at
// most maxItems of them.
func (a *API) GetPriceStats(ctx context.Context, symbol1, symbol2 string, lastHours, maxItems int) ([]PricePoint, error) {
	if symbol1 == "" || symbol2 == "" {
		return nil, errSymbolEmpty
	}
	if lastHours <= 0 || maxItems <= 0 {
		return nil, errInvalidWindow
	}

	var points []PricePoint
	path := cexioAPIPriceStats + "/" + pairPath(symbol1, symbol2)
	body := map[string]interface{}{
		"lastHours":      lastHours,
		"maxRespArrSize": maxItems,
	}
	err := a.SendHTTPPostRequest(ctx, path, body, &points)
	return points, err
}

// GetOHLCV returns one day of historical chart data for a pair.
func (a *API) GetOHLCV(ctx context.Context, date time.Time, symbol1, symbol2 string) (*OHLCVData, error) {
	if symbol1 == "" || symbol2 == "" {
		return nil, errSymbolEmpty
	}
	response := OHLCVData{}
	path := cexioAPIOHLCV + "/" + date.Format(cexioDateLayout) + "/" + pairPath(symbol1, symbol2)
	return &response, a.SendHTTPRequest(ctx, path, nil, &response)
}

// GetBalance returns the account balance of every currency held.
func (a *API) GetBalance(ctx context.Context) (*AccountBalance, error) {
	response := AccountBalance{}
	return &response, a.SendAuthenticatedHTTPRequest(ctx, cexioAPIBalance, nil, &response)
}

// GetOpenOrders returns open orders. With both symbols empty it spans all
// markets, with only symbol1 set it spans that symbol's markets.
func (a *API) GetOpenOrders(ctx context.Context, symbol1, symbol2 string) ([]Order, error) {
	if symbol1 == "" && symbol2 != "" {
		return nil, errSymbolEmpty
	}

	path := cexioAPIOpenOrders
	switch {
	case symbol1 != "" && symbol2 != "":
		path += "/" + pairPath(symbol1, symbol2)
	case symbol1 != "":
		path += "/" + strings.ToUpper(symbol1)
	}

	var orders []Order
	err := a.SendAuthenticatedHTTPRequest(ctx, path, nil, &orders)
	return orders, err
}

// Convert converts a positive amount of symbol1 into symbol2 at market rate.
func (a *API) Convert(ctx context.Context, symbol1, symbol2 string, amount decimal.Decimal) (*ConvertResult, error) {
	if symbol1 == "" || symbol2 == "" {
		return nil, errSymbolEmpty
	}
	if !amount.IsPositive() {
		return nil, errInvalidAmount
	}

	response := ConvertResult{}
	path := cexioAPIConvert + "/" + pairPath(symbol1, symbol2)
	params := map[string]interface{}{"amnt": amount.String()}
	return &response, a.SendAuthenticatedHTTPRequest(ctx, path, params, &response)
}

// PlaceOrder places a limit order on a pair. Side must be Buy or Sell and
// both amount and price must be positive; violations fail before any request
// is made. Unknown pairs and insufficient balances surface as a
// ResponseError from the exchange.
func (a *API) PlaceOrder(ctx context.Context, side string, amount, price decimal.Decimal, symbol1, symbol2 string) (*PlaceOrderResponse, error) {
	side = strings.ToLower(side)
	if side != Buy && side != Sell {
		return nil, errInvalidSide
	}
	if !amount.IsPositive() {
		return nil, errInvalidAmount
	}
	if !price.IsPositive() {
		return nil, errInvalidPrice
	}
	if symbol1 == "" || symbol2 == "" {
		return nil, errSymbolEmpty
	}

	response := PlaceOrderResponse{}
	path := cexioAPIPlaceOrder + "/" + pairPath(symbol1, symbol2)
	params := map[string]interface{}{
		"type":   side,
		"amount": amount.String(),
		"price":  price.String(),
	}
	return &response, a.SendAuthenticatedHTTPRequest(ctx, path, params, &response)
}

// CancelOrder cancels an open order by id. Unknown or already settled orders
// fail with a ResponseError from the exchange.
func (a *API) CancelOrder(ctx context.Context, orderID string) (bool, error) {
	if orderID == "" {
		return false, errOrderIDEmpty
	}

	var cancelled bool
	params := map[string]interface{}{"id": orderID}
	err := a.SendAuthenticatedHTTPRequest(ctx, cexioAPICancelOrder, params, &cancelled)
	return cancelled, err
}

// CancelOrders cancels all open orders on a pair and returns the cancelled
// order ids.
func (a *API) CancelOrders(ctx context.Context, symbol1, symbol2 string) ([]string, error) {
	if symbol1 == "" || symbol2 == "" {
		return nil, errSymbolEmpty
	}

	resp := struct {
		envelope
		Data []json.Number `json:"data"`
	}{}
	path := cexioAPICancelOrders + "/" + pairPath(symbol1, symbol2)
	if err := a.SendAuthenticatedHTTPRequest(ctx, path, nil, &resp); err != nil {
		return nil, err
	}

	ids := make([]string, len(resp.Data))
	for i := range resp.Data {
		ids[i] = resp.Data[i].String()
	}
	return ids, nil
}

// CancelReplaceOrder atomically cancels an order and places a new one on the
// same pair.
func (a *API) CancelReplaceOrder(ctx context.Context, orderID, side string, amount, price decimal.Decimal, symbol1, symbol2 string) (*PlaceOrderResponse, error) {
	if orderID == "" {
		return nil, errOrderIDEmpty
	}
	side = strings.ToLower(side)
	if side != Buy && side != Sell {
		return nil, errInvalidSide
	}
	if !amount.IsPositive() {
		return nil, errInvalidAmount
	}
	if !price.IsPositive() {
		return nil, errInvalidPrice
	}
	if symbol1 == "" || symbol2 == "" {
		return nil, errSymbolEmpty
	}

	response := PlaceOrderResponse{}
	path := cexioAPICancelReplace + "/" + pairPath(symbol1, symbol2)
	params := map[string]interface{}{
		"type":     side,
		"amount":   amount.String(),
		"price":    price.String(),
		"order_id": orderID,
	}
	return &response, a.SendAuthenticatedHTTPRequest(ctx, path, params, &response)
}

// MassCancelPlaceOrders cancels and places multiple orders in one call. Each
// entry succeeds or fails on its own and is reported in the result; when
// cancelIfPlaceFailed is set the exchange rolls back placed orders if any
// placement fails. Each placement is validated like PlaceOrder before any
// request is made.
func (a *API) MassCancelPlaceOrders(ctx context.Context, cancelIDs []string, placeOrders []PlaceOrderRequest, cancelIfPlaceFailed bool) (*MassCancelPlaceResult, error) {
	if len(cancelIDs) == 0 && len(placeOrders) == 0 {
		return nil, errEmptyBatch
	}
	for _, id := range cancelIDs {
		if id == "" {
			return nil, errOrderIDEmpty
		}
	}

	orders := make([]PlaceOrderRequest, len(placeOrders))
	copy(orders, placeOrders)
	for i := range orders {
		orders[i].Type = strings.ToLower(orders[i].Type)
		if orders[i].Type != Buy && orders[i].Type != Sell {
			return nil, errInvalidSide
		}
		if !orders[i].Amount.IsPositive() {
			return nil, errInvalidAmount
		}
		if !orders[i].Price.IsPositive() {
			return nil, errInvalidPrice
		}
		if orders[i].Symbol1 == "" || orders[i].Symbol2 == "" {
			return nil, errSymbolEmpty
		}
		orders[i].Symbol1 = strings.ToUpper(orders[i].Symbol1)
		orders[i].Symbol2 = strings.ToUpper(orders[i].Symbol2)
	}

	resp := struct {
		envelope
		Data MassCancelPlaceResult `json:"data"`
	}{}
	params := map[string]interface{}{
		"cancel-orders":                   cancelIDs,
		"place-orders":                    orders,
		"cancelPlacedOrdersIfPlaceFailed": cancelIfPlaceFailed,
	}
	err := a.SendAuthenticatedHTTPRequest(ctx, cexioAPIMassCancelPlace, params, &resp)
	return &resp.Data, err
}

// GetOrderDetails returns the full state of an order.
func (a *API) GetOrderDetails(ctx context.Context, orderID string) (*OrderDetails, error) {
	if orderID == "" {
		return nil, errOrderIDEmpty
	}

	resp := struct {
		envelope
		Data OrderDetails `json:"data"`
	}{}
	params := map[string]interface{}{"id": orderID}
	err := a.SendAuthenticatedHTTPRequest(ctx, cexioAPIGetOrder, params, &resp)
	return &resp.Data, err
}

// GetOrderTransactions returns an order together with its ledger movements.
func (a *API) GetOrderTransactions(ctx context.Context, orderID string) (*OrderTransactions, error) {
	if orderID == "" {
		return nil, errOrderIDEmpty
	}

	resp := struct {
		envelope
		Data OrderTransactions `json:"data"`
	}{}
	params := map[string]interface{}{"id": orderID}
	err := a.SendAuthenticatedHTTPRequest(ctx, cexioAPIGetOrderTx, params, &resp)
	return &resp.Data, err
}

// GetActiveOrderStatus returns remaining amounts for the given order ids.
func (a *API) GetActiveOrderStatus(ctx context.Context, orderIDs []string) ([]OrderStatus, error) {
	if len(orderIDs) == 0 {
		return nil, errNoOrderIDs
	}

	resp := struct {
		envelope
		Data []OrderStatus `json:"data"`
	}{}
	params := map[string]interface{}{"orders_list": orderIDs}
	err := a.SendAuthenticatedHTTPRequest(ctx, cexioAPIActiveOrdersStatus, params, &resp)
	return resp.Data, err
}

// GetArchivedOrders returns closed orders on a pair.
func (a *API) GetArchivedOrders(ctx context.Context, symbol1, symbol2 string) ([]ArchivedOrder, error) {
	if symbol1 == "" || symbol2 == "" {
		return nil, errSymbolEmpty
	}

	var orders []ArchivedOrder
	path := cexioAPIArchivedOrders + "/" + pairPath(symbol1, symbol2)
	err := a.SendAuthenticatedHTTPRequest(ctx, path, nil, &orders)
	return orders, err
}

// GetCryptoAddress returns the deposit address for a currency, including the
// memo/tag where the chain requires one.
func (a *API) GetCryptoAddress(ctx context.Context, currency string) (*DepositAddress, error) {
	if currency == "" {
		return nil, errCurrencyEmpty
	}

	resp := struct {
		envelope
		Data DepositAddress `json:"data"`
	}{}
	params := map[string]interface{}{"currency": strings.ToUpper(currency)}
	err := a.SendAuthenticatedHTTPRequest(ctx, cexioAPIGetAddress, params, &resp)
	return &resp.Data, err
}

// GetAllCryptoAddresses returns every deposit address held for a currency.
func (a *API) GetAllCryptoAddresses(ctx context.Context, currency string) (*CryptoAddresses, error) {
	if currency == "" {
		return nil, errCurrencyEmpty
	}

	resp := struct {
		envelope
		Data CryptoAddresses `json:"data"`
	}{}
	params := map[string]interface{}{"currency": strings.ToUpper(currency)}
	err := a.SendAuthenticatedHTTPRequest(ctx, cexioAPIGetAllAddresses, params, &resp)
	return &resp.Data, err
}

// GetMyFee returns the account's maker and taker fee rates keyed by pair.
func (a *API) GetMyFee(ctx context.Context) (map[string]FeeRates, error) {
	resp := struct {
		envelope
		Data map[string]FeeRates `json:"data"`
	}{}
	err := a.SendAuthenticatedHTTPRequest(ctx, cexioAPIGetMyFee, nil, &resp)
	return resp.Data, err
}

// GetCurrencyProfile returns currency and pair metadata.
func (a *API) GetCurrencyProfile(ctx context.Context) (*CurrencyProfile, error) {
	resp := struct {
		envelope
		Data CurrencyProfile `json:"data"`
	}{}
	err := a.SendAuthenticatedHTTPRequest(ctx, cexioAPICurrencyProfile, nil, &resp)
	return &resp.Data, err
}

// SendHTTPRequest sends an unauthenticated GET request
func (a *API) SendHTTPRequest(ctx context.Context, path string, values url.Values, result interface{}) error {
	requestPath := a.BaseURL + "/" + path
	if len(values) != 0 {
		requestPath += "?" + values.Encode()
	}
	item := &request.Item{
		Method:  http.MethodGet,
		Path:    requestPath,
		Result:  result,
		Verbose: a.Verbose,
	}
	return a.classify(a.Requester.SendPayload(ctx, func() (*request.Item, error) {
		return item, nil
	}))
}

// SendHTTPPostRequest sends an unauthenticated POST request with a JSON body
func (a *API) SendHTTPPostRequest(ctx context.Context, path string, body, result interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	item := &request.Item{
		Method:  http.MethodPost,
		Path:    a.BaseURL + "/" + path,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    bytes.NewBuffer(payload),
		Result:  result,
		Verbose: a.Verbose,
	}
	return a.classify(a.Requester.SendPayload(ctx, func() (*request.Item, error) {
		return item, nil
	}))
}

// SendAuthenticatedHTTPRequest sends a signed POST request. The nonce and
// signature are generated at send time so concurrent calls stay strictly
// ordered.
func (a *API) SendAuthenticatedHTTPRequest(ctx context.Context, path string, params map[string]interface{}, result interface{}) error {
	err := a.Requester.SendPayload(ctx, func() (*request.Item, error) {
		n := a.Requester.GetNonceMilli().String()

		body := map[string]interface{}{
			"key":       a.apiKey,
			"signature": a.sign(n),
			"nonce":     n,
		}
		keys := make([]string, 0, len(params))
		for k, v := range params {
			body[k] = v
			keys = append(keys, k)
		}
		sort.Strings(keys)

		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}

		// Parameter keys only; values may be sensitive and the signed
		// fields never belong in a log.
		a.log.Infof("CEXIO private call %s params: %v", path, keys)

		return &request.Item{
			Method:       http.MethodPost,
			Path:         a.BaseURL + "/" + path,
			Headers:      map[string]string{"Content-Type": "application/json"},
			Body:         bytes.NewBuffer(payload),
			Result:       result,
			AuthRequest:  true,
			NonceEnabled: true,
			Verbose:      a.Verbose,
		}, nil
	})
	return a.classify(err)
}

// sign computes the request signature for a nonce: uppercase hex of
// HMAC-SHA256 over nonce+username+apiKey, keyed with the api secret.
func (a *API) sign(nonce string) string {
	mac := crypto.GetHMAC(crypto.HashSHA256,
		[]byte(nonce+a.username+a.apiKey),
		[]byte(a.apiSecret))
	return strings.ToUpper(crypto.HexEncodeToString(mac))
}

// classify maps requester failures onto the package error taxonomy.
func (a *API) classify(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *request.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden {
			reason := httpErr.Message
			if reason == "" {
				reason = httpErr.Status
			}
			return &InvalidCredentialsError{Reason: reason, StatusCode: httpErr.StatusCode}
		}
		return &ResponseError{StatusCode: httpErr.StatusCode, Message: httpErr.Error(), Body: httpErr.Body}
	}

	var remoteErr *request.RemoteError
	if errors.As(err, &remoteErr) {
		if isCredentialFailure(remoteErr.Message) {
			return &InvalidCredentialsError{Reason: remoteErr.Message, StatusCode: http.StatusOK}
		}
		return &ResponseError{StatusCode: http.StatusOK, Message: remoteErr.Message, Body: remoteErr.Body}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &ResponseError{StatusCode: http.StatusOK, Message: "invalid JSON response"}
	}

	return &NetworkError{Err: err}
}

// isCredentialFailure reports whether a server-side error message indicates
// an authentication problem rather than a rejected operation.
func isCredentialFailure(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "api key") ||
		strings.Contains(m, "signature") ||
		strings.Contains(m, "nonce")
}

func pairPath(symbol1, symbol2 string) string {
	return strings.ToUpper(symbol1) + "/" + strings.ToUpper(symbol2)
}
