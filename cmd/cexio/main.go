package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/cexgo/cexio"
)

var (
	username  string
	apiKey    string
	apiSecret string
	timeout   time.Duration
	verbose   bool
)

const defaultTimeout = time.Second * 30

func jsonOutput(in any) {
	j, err := json.MarshalIndent(in, "", " ")
	if err != nil {
		return
	}
	fmt.Println(string(j))
}

// newClient builds a client from the global flags. Public commands still need
// credentials because the client validates them up front; use placeholder
// values of at least 20 characters if you only want market data.
func newClient() (*cexio.API, error) {
	return cexio.New(username, apiKey, apiSecret,
		cexio.WithLogging(verbose),
		cexio.WithHTTPClient(&http.Client{Timeout: timeout}))
}

func main() {
	app := cli.NewApp()
	app.Name = "cexio"
	app.Usage = "command line interface for the CEX.IO REST API"
	app.EnableBashCompletion = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "username",
			Usage:       "the CEX.IO account user id",
			EnvVars:     []string{"CEXIO_USERNAME"},
			Destination: &username,
		},
		&cli.StringFlag{
			Name:        "apikey",
			Usage:       "the CEX.IO API key",
			EnvVars:     []string{"CEXIO_API_KEY"},
			Destination: &apiKey,
		},
		&cli.StringFlag{
			Name:        "apisecret",
			Usage:       "the CEX.IO API secret",
			EnvVars:     []string{"CEXIO_API_SECRET"},
			Destination: &apiSecret,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Value:       defaultTimeout,
			Usage:       "the HTTP request timeout",
			Destination: &timeout,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "log requests and responses",
			Destination: &verbose,
		},
	}
	app.Commands = []*cli.Command{
		getTickerCommand,
		getTickersCommand,
		getLastPriceCommand,
		getCurrencyLimitsCommand,
		getOrderBookCommand,
		getTradeHistoryCommand,
		getBalanceCommand,
		getOpenOrdersCommand,
		placeOrderCommand,
		cancelOrderCommand,
		getOrderCommand,
		getMyFeeCommand,
		getAddressCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
