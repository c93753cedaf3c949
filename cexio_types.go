package cexio

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cexgo/cexio/types"
)

// envelope is the {"e": ..., "ok": "ok", "data": ...} wrapper many CEX.IO
// endpoints place around their payload.
type envelope struct {
	E  string `json:"e"`
	OK string `json:"ok"`
}

// Ticker holds a market snapshot for one pair
type Ticker struct {
	Timestamp             types.Time   `json:"timestamp"`
	Low                   types.Number `json:"low"`
	High                  types.Number `json:"high"`
	Last                  types.Number `json:"last"`
	Volume                types.Number `json:"volume"`
	Volume30d             types.Number `json:"volume30d"`
	Bid                   types.Number `json:"bid"`
	Ask                   types.Number `json:"ask"`
	PriceChange           types.Number `json:"priceChange"`
	PriceChangePercentage types.Number `json:"priceChangePercentage"`
	Pair                  string       `json:"pair"`
}

// LastPrice holds the last trade price for one pair
type LastPrice struct {
	LPrice types.Number `json:"lprice"`
	Curr1  string       `json:"curr1"`
	Curr2  string       `json:"curr2"`
}

// PairPrice is one entry of a last_prices response
type PairPrice struct {
	Symbol1 string       `json:"symbol1"`
	Symbol2 string       `json:"symbol2"`
	LPrice  types.Number `json:"lprice"`
}

// PairLimit holds the trading limits of one pair
type PairLimit struct {
	Symbol1      string       `json:"symbol1"`
	Symbol2      string       `json:"symbol2"`
	MinLotSize   types.Number `json:"minLotSize"`
	MinLotSizeS2 types.Number `json:"minLotSizeS2"`
	MaxLotSize   types.Number `json:"maxLotSize"`
	MinPrice     types.Number `json:"minPrice"`
	MaxPrice     types.Number `json:"maxPrice"`
}

// OrderBookLevel is a single [price, amount] level of an order book side
type OrderBookLevel struct {
	Price  types.Number
	Amount types.Number
}

// UnmarshalJSON deserializes the [price, amount] pair the exchange sends per
// level.
func (l *OrderBookLevel) UnmarshalJSON(data []byte) error {
	var raw []types.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("expected [price, amount] pair, got %d elements", len(raw))
	}
	l.Price = raw[0]
	l.Amount = raw[1]
	return nil
}

// OrderBook holds an order book snapshot for one pair
type OrderBook struct {
	Timestamp types.Time       `json:"timestamp"`
	Bids      []OrderBookLevel `json:"bids"`
	Asks      []OrderBookLevel `json:"asks"`
	Pair      string           `json:"pair"`
	ID        int64            `json:"id"`
	SellTotal types.Number     `json:"sell_total"`
	BuyTotal  types.Number     `json:"buy_total"`
}

// Trade holds a single public trade record
type Trade struct {
	Type    string       `json:"type"`
	Date    types.Time   `json:"date"`
	Amount  types.Number `json:"amount"`
	Price   types.Number `json:"price"`
	TradeID int64        `json:"tid,string"`
}

// PricePoint is one entry of a price_stats response
type PricePoint struct {
	Timestamp types.Time   `json:"tmsp"`
	Price     types.Number `json:"price"`
}

// OHLCVData holds one day of historical chart data. The per-resolution
// candle arrays arrive JSON-encoded inside strings and are passed through
// verbatim.
type OHLCVData struct {
	Time    int64  `json:"time"`
	Data1m  string `json:"data1m"`
	Data1h  string `json:"data1h"`
	Data1d  string `json:"data1d"`
}

// CurrencyBalance holds the funds held in a single currency
type CurrencyBalance struct {
	Available types.Number `json:"available"`
	Orders    types.Number `json:"orders"`
}

// AccountBalance holds the full account balance keyed by currency. Orders is
// the amount locked in open orders.
type AccountBalance struct {
	Timestamp types.Time
	Username  string
	Balances  map[string]CurrencyBalance
}

// UnmarshalJSON deserializes the balance response, whose currency entries
// share the top level object with fixed timestamp and username fields.
func (a *AccountBalance) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.Balances = make(map[string]CurrencyBalance)
	for k, v := range raw {
		switch k {
		case "timestamp":
			if err := json.Unmarshal(v, &a.Timestamp); err != nil {
				return err
			}
		case "username":
			if err := json.Unmarshal(v, &a.Username); err != nil {
				return err
			}
		case "e", "ok":
			// envelope noise
		default:
			var b CurrencyBalance
			if err := json.Unmarshal(v, &b); err != nil {
				return err
			}
			a.Balances[k] = b
		}
	}
	return nil
}

// Order holds one open order
type Order struct {
	ID      string       `json:"id"`
	Time    types.Time   `json:"time"`
	Type    string       `json:"type"`
	Price   types.Number `json:"price"`
	Amount  types.Number `json:"amount"`
	Pending types.Number `json:"pending"`
	Symbol1 string       `json:"symbol1"`
	Symbol2 string       `json:"symbol2"`
}

// PlaceOrderResponse echoes a placed or replaced order
type PlaceOrderResponse struct {
	ID       string       `json:"id"`
	Time     types.Time   `json:"time"`
	Complete bool         `json:"complete"`
	Type     string       `json:"type"`
	Price    types.Number `json:"price"`
	Amount   types.Number `json:"amount"`
	Pending  types.Number `json:"pending"`
}

// ConvertResult holds the outcome of a conversion
type ConvertResult struct {
	Amount types.Number `json:"amnt"`
}

// OrderDetails holds the full state of a single order.
// Status is one of "a" (active), "d" (done), "c" (cancelled) and
// "cd" (cancelled partially executed).
type OrderDetails struct {
	ID         string       `json:"id"`
	Type       string       `json:"type"`
	Time       types.Time   `json:"time"`
	LastTxTime string       `json:"lastTxTime"`
	LastTx     string       `json:"lastTx"`
	Status     string       `json:"status"`
	Symbol1    string       `json:"symbol1"`
	Symbol2    string       `json:"symbol2"`
	Amount     types.Number `json:"amount"`
	Price      types.Number `json:"price"`
	Remains    types.Number `json:"remains"`
}

// TransactionLogEntry is one ledger movement attached to an order
type TransactionLogEntry struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	Time      string       `json:"time"`
	User      string       `json:"user"`
	Amount    types.Number `json:"amount"`
	Balance   types.Number `json:"balance"`
	Symbol    string       `json:"symbol"`
	Order     string       `json:"order"`
	FeeAmount types.Number `json:"fee_amount"`
}

// OrderTransactions holds an order together with its ledger movements
type OrderTransactions struct {
	OrderDetails
	Vtx []TransactionLogEntry `json:"vtx"`
}

// PlaceOrderRequest describes one placement of a batched cancel-and-place
// call.
type PlaceOrderRequest struct {
	Type    string          `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Price   decimal.Decimal `json:"price"`
	Symbol1 string          `json:"symbol1"`
	Symbol2 string          `json:"symbol2"`
}

// MassCancelledOrder is one cancellation result of a batched
// cancel-and-place call. Error is set when that entry failed to cancel.
type MassCancelledOrder struct {
	OrderID  string       `json:"order_id"`
	Fremains types.Number `json:"fremains"`
	Error    string       `json:"error"`
}

// MassPlacedOrder is one placement result of a batched cancel-and-place
// call. Error is set when that entry failed to place.
type MassPlacedOrder struct {
	PlaceOrderResponse
	Error string `json:"error"`
}

// MassCancelPlaceResult holds the per-entry outcomes of a batched
// cancel-and-place call. PlacedCancelled lists orders rolled back because a
// later placement failed.
type MassCancelPlaceResult struct {
	CancelledOrders []MassCancelledOrder `json:"cancel-orders"`
	PlacedOrders    []MassPlacedOrder    `json:"place-orders"`
	PlacedCancelled []MassPlacedOrder    `json:"placed-cancelled"`
}

// OrderStatus is one entry of an active_orders_status response, transmitted
// as an [id, amount, remains] triple.
type OrderStatus struct {
	ID      string
	Amount  types.Number
	Remains types.Number
}

// UnmarshalJSON deserializes the triple form.
func (o *OrderStatus) UnmarshalJSON(data []byte) error {
	var raw []types.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("expected [id, amount, remains] triple, got %d elements", len(raw))
	}
	o.ID = raw[0].String()
	o.Amount = raw[1]
	o.Remains = raw[2]
	return nil
}

// ArchivedOrder holds one closed order
type ArchivedOrder struct {
	ID         string       `json:"id"`
	Type       string       `json:"type"`
	Time       string       `json:"time"`
	LastTxTime string       `json:"lastTxTime"`
	Status     string       `json:"status"`
	Symbol1    string       `json:"symbol1"`
	Symbol2    string       `json:"symbol2"`
	Amount     types.Number `json:"amount"`
	Price      types.Number `json:"price"`
	Remains    types.Number `json:"remains"`
}

// DepositAddress holds a deposit address plus the memo/tag currencies such
// as XRP require.
type DepositAddress struct {
	Address string `json:"address"`
	Tag     string `json:"tag"`
}

// UnmarshalJSON deserializes either the bare-string or the object form the
// exchange uses for addresses.
func (d *DepositAddress) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &d.Address)
	}
	type alias DepositAddress
	return json.Unmarshal(data, (*alias)(d))
}

// CryptoAddresses holds every deposit address issued for one currency
type CryptoAddresses struct {
	Name      string           `json:"name"`
	Addresses []DepositAddress `json:"addresses"`
}

// FeeRates holds the taker and maker fee percentages of one pair
type FeeRates struct {
	Buy       types.Number `json:"buy"`
	Sell      types.Number `json:"sell"`
	BuyMaker  types.Number `json:"buyMaker"`
	SellMaker types.Number `json:"sellMaker"`
}

// CurrencySymbol holds currency metadata from a currency_profile response
type CurrencySymbol struct {
	Code                    string       `json:"code"`
	Contract                bool         `json:"contract"`
	Fiat                    bool         `json:"fiat"`
	Description             string       `json:"description"`
	Precision               int          `json:"precision"`
	Scale                   int          `json:"scale"`
	MinimumCurrencyAmount   types.Number `json:"minimumCurrencyAmount"`
	MinimalWithdrawalAmount types.Number `json:"minimalWithdrawalAmount"`
}

// ProfilePair holds pair metadata from a currency_profile response
type ProfilePair struct {
	Symbol1        string       `json:"symbol1"`
	Symbol2        string       `json:"symbol2"`
	PricePrecision int          `json:"pricePrecision"`
	PriceScale     string       `json:"priceScale"`
	MinLotSize     types.Number `json:"minLotSize"`
	MinLotSizeS2   types.Number `json:"minLotSizeS2"`
}

// CurrencyProfile holds currency and pair metadata
type CurrencyProfile struct {
	Symbols []CurrencySymbol `json:"symbols"`
	Pairs   []ProfilePair    `json:"pairs"`
}
