package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/purl-cli/purl/internal/request"
	"github.com/purl-cli/purl/util/conf"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Config struct {
	// Timeout is the request timeout in seconds. Zero disables it.
	Timeout int `conf:"timeout"`
}

var DefaultConfig = conf.DefaultConfig{
	"timeout": 30,
}

// Dispatcher performs the single HTTP request described by a
// request.Descriptor.
type Dispatcher struct {
	client *http.Client

	log *zap.Logger
}

// DispatcherParams defines the dependencies for the dispatcher.
type DispatcherParams struct {
	fx.In

	// Client is the underlying HTTP transport
	Client *http.Client

	// Log is the logger to use for the dispatcher
	Log *zap.Logger
}

// NewDispatcher creates a new dispatcher around the injected transport.
func NewDispatcher(params DispatcherParams) *Dispatcher {
	return &Dispatcher{
		client: params.Client,
		log:    params.Log.Named("client"),
	}
}

// NewHTTPClient builds the http.Client used for the outgoing request,
// applying the configured timeout.
func NewHTTPClient(config Config) *http.Client {
	return &http.Client{
		Timeout: time.Duration(config.Timeout) * time.Second,
	}
}

// Do performs exactly one request and returns the raw response. The
// caller owns the response body. Network failures of any kind surface
// as a TransportError; there are no retries.
func (d *Dispatcher) Do(ctx context.Context, desc *request.Descriptor) (*http.Response, error) {
	var body io.Reader
	if desc.Method == request.MethodPost {
		encoded, err := request.EncodeBody(desc.Body)
		if err != nil {
			return nil, err
		}

		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, string(desc.Method), desc.URL, body)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	d.log.Debug("sending request",
		zap.String("method", string(desc.Method)),
		zap.String("url", desc.URL),
	)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}

	d.log.Debug("received response",
		zap.String("proto", resp.Proto),
		zap.Int("status", resp.StatusCode),
	)

	return resp, nil
}
