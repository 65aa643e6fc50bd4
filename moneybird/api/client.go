package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/birdpay/go-moneybird-epcqr/moneybird"
	"github.com/birdpay/go-moneybird-epcqr/moneybird/util"
)

type Client interface {
	GetJson(ctx context.Context, endpoint, token string, result interface{}) error
}

type client struct {
	rest        *resty.Client
	environment moneybird.Environment
}

func New(environment moneybird.Environment) Client {
	restyClient := resty.New()
	return &client{rest: restyClient, environment: environment}
}

// NewWithHTTPClient lets the caller bring its own transport, e.g. one with
// a request timeout.
func NewWithHTTPClient(environment moneybird.Environment, httpClient *http.Client) Client {
	restyClient := resty.NewWithClient(httpClient)
	return &client{rest: restyClient, environment: environment}
}

// GetJson performs a single authenticated GET and decodes the JSON body
// into result. One attempt, no retry: a failure here is terminal for the
// current scan.
func (c *client) GetJson(ctx context.Context, endpoint, token string, result interface{}) error {

	r := c.rest.R()
	if util.HTTPTraceEnabled() {
		r.EnableTrace()
	}

	resp, err := r.
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(result).
		Get(string(c.environment) + endpoint)

	printTraceInfo(endpoint, c, err, resp)
	return checkError(resp, err)
}

func checkError(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}

	if resp.IsError() {

		body := resp.String()
		var errorMap map[string]any
		if body != "" {
			_ = json.Unmarshal([]byte(body), &errorMap)
		}

		return &RequestError{
			StatusCode:   resp.StatusCode(),
			Body:         body,
			ErrorDetails: errorMap,
		}
	}
	return nil
}

func printTraceInfo(endpoint string, c *client, err error, resp *resty.Response) {

	if !util.HTTPTraceEnabled() || resp == nil {
		return
	}

	fmt.Println("Response Info:")
	fmt.Println("  URL        :", string(c.environment)+endpoint)
	fmt.Println("  Error      :", err)
	fmt.Println("  Status Code:", resp.StatusCode())
	fmt.Println("  Status     :", resp.Status())
	fmt.Println("  Time       :", resp.Time())
	fmt.Println("  Received At:", resp.ReceivedAt())
}
