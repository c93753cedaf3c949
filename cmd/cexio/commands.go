package main

import (
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

var getTickerCommand = &cli.Command{
	Name:      "ticker",
	Usage:     "gets the ticker for a currency pair",
	ArgsUsage: "<symbol1> <symbol2>",
	Action:    getTicker,
}

func getTicker(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.ShowSubcommandHelp(c)
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.GetTicker(c.Context, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

var getTickersCommand = &cli.Command{
	Name:      "tickers",
	Usage:     "gets tickers for all markets quoted in the given symbols",
	ArgsUsage: "<symbol>...",
	Action:    getTickers,
}

func getTickers(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowSubcommandHelp(c)
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.GetTickers(c.Context, c.Args().Slice()...)
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

var getLastPriceCommand = &cli.Command{
	Name:      "lastprice",
	Usage:     "gets the last trade price for a currency pair",
	ArgsUsage: "<symbol1> <symbol2>",
	Action:    getLastPrice,
}

func getLastPrice(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.ShowSubcommandHelp(c)
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.GetLastPrice(c.Context, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

var getCurrencyLimitsCommand = &cli.Command{
	Name:   "limits",
	Usage:  "gets the trading limits of every listed pair",
	Action: getCurrencyLimits,
}

func getCurrencyLimits(c *cli.Context) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.GetCurrencyLimits(c.Context)
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

var getOrderBookCommand = &cli.Command{
	Name:      "orderbook",
	Usage:     "gets an order book snapshot for a currency pair",
	ArgsUsage: "<symbol1> <symbol2>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "depth",
			Usage: "maximum number of levels per side",
			Value: 20,
		},
	},
	Action: getOrderBook,
}

func getOrderBook(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.ShowSubcommandHelp(c)
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.GetOrderBook(c.Context, c.Args().Get(0), c.Args().Get(1), c.Int("depth"))
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

var getTradeHistoryCommand = &cli.Command{
	Name:      "trades",
	Usage:     "gets public trades for a currency pair",
	ArgsUsage: "<symbol1> <symbol2>",
	Flags: []cli.Flag{
		&cli.Int64Flag{
			Name:  "since",
			Usage: "return trades with an id greater than this",
		},
	},
	Action: getTradeHistory,
}

func getTradeHistory(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.ShowSubcommandHelp(c)
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.GetTradeHistory(c.Context, c.Args().Get(0), c.Args().Get(1), c.Int64("since"))
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

var getBalanceCommand = &cli.Command{
	Name:   "balance",
	Usage:  "gets the account balance of every currency held",
	Action: getBalance,
}

func getBalance(c *cli.Context) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.GetBalance(c.Context)
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

var getOpenOrdersCommand = &cli.Command{
	Name:      "openorders",
	Usage:     "gets open orders, optionally scoped to a symbol or pair",
	ArgsUsage: "[symbol1] [symbol2]",
	Action:    getOpenOrders,
}

func getOpenOrders(c *cli.Context) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.GetOpenOrders(c.Context, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

var placeOrderCommand = &cli.Command{
	Name:      "placeorder",
	Usage:     "places a limit order on a currency pair",
	ArgsUsage: "<buy|sell> <amount> <price> <symbol1> <symbol2>",
	Action:    placeOrder,
}

func placeOrder(c *cli.Context) error {
	if c.NArg() != 5 {
		return cli.ShowSubcommandHelp(c)
	}
	amount, err := decimal.NewFromString(c.Args().Get(1))
	if err != nil {
		return err
	}
	price, err := decimal.NewFromString(c.Args().Get(2))
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.PlaceOrder(c.Context, c.Args().Get(0), amount, price,
		c.Args().Get(3), c.Args().Get(4))
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

var cancelOrderCommand = &cli.Command{
	Name:      "cancelorder",
	Usage:     "cancels an open order by id",
	ArgsUsage: "<order_id>",
	Action:    cancelOrder,
}

func cancelOrder(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowSubcommandHelp(c)
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.CancelOrder(c.Context, c.Args().Get(0))
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

var getOrderCommand = &cli.Command{
	Name:      "getorder",
	Usage:     "gets the full state of an order by id",
	ArgsUsage: "<order_id>",
	Action:    getOrder,
}

func getOrder(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowSubcommandHelp(c)
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.GetOrderDetails(c.Context, c.Args().Get(0))
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

var getMyFeeCommand = &cli.Command{
	Name:   "myfee",
	Usage:  "gets the account's maker and taker fee rates",
	Action: getMyFee,
}

func getMyFee(c *cli.Context) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.GetMyFee(c.Context)
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

var getAddressCommand = &cli.Command{
	Name:      "address",
	Usage:     "gets the deposit address for a currency",
	ArgsUsage: "<currency>",
	Action:    getAddress,
}

func getAddress(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowSubcommandHelp(c)
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.GetCryptoAddress(c.Context, c.Args().Get(0))
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}
