package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"regexp"
	"time"

	appctx "github.com/brave-intl/alipay-go/libs/context"
	"github.com/brave-intl/alipay-go/libs/errors"
	"github.com/brave-intl/alipay-go/libs/middleware"
	"github.com/brave-intl/alipay-go/libs/requestutils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// DefaultTimeout is applied to requests when the client has no timeout configured
const DefaultTimeout = 10 * time.Second

// signed query parameters and credentials never reach the logs
var redactions = map[*regexp.Regexp][]byte{
	regexp.MustCompile(`(?i)authorization: .+\n`):      []byte("Authorization: <redacted>\n"),
	regexp.MustCompile(`([?&])sign=[^&\s]+`):           []byte("${1}sign=<sig>"),
	regexp.MustCompile(`([?&])app_auth_token=[^&\s]+`): []byte("${1}app_auth_token=<token>"),
	regexp.MustCompile(`([?&])app_auth_code=[^&\s]+`):  []byte("${1}app_auth_code=<code>"),
}

// RedactSensitiveHeaders from http request and response dumps
func RedactSensitiveHeaders(corpus []byte) []byte {
	for k, v := range redactions {
		corpus = k.ReplaceAll(corpus, v)
	}
	return corpus
}

var concurrentClientRequests = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "concurrent_client_requests",
		Help: "Gauge that holds the current number of client requests",
	},
	[]string{
		"host",
		"method",
	},
)

func init() {
	prometheus.MustRegister(concurrentClientRequests)
}

// QueryStringBody - a type to generate the query string of a request
type QueryStringBody interface {
	// GenerateQueryString - function to generate the query string
	GenerateQueryString() (url.Values, error)
}

// RawQuery is an already encoded query string, it is sent exactly as given
// so a signed parameter order survives the trip
type RawQuery string

// GenerateQueryString parses the raw query
func (rq RawQuery) GenerateQueryString() (url.Values, error) {
	return url.ParseQuery(string(rq))
}

// SimpleHTTPClient sends query string requests to a single gateway
type SimpleHTTPClient struct {
	BaseURL *url.URL
	Timeout time.Duration

	client *http.Client
}

// New returns a new SimpleHTTPClient
func New(serverURL string) (*SimpleHTTPClient, error) {
	return NewWithHTTPClient(serverURL, &http.Client{
		Timeout: DefaultTimeout,
	})
}

// NewWithHTTPClient returns a new SimpleHTTPClient, using the provided http.Client
func NewWithHTTPClient(serverURL string, client *http.Client) (*SimpleHTTPClient, error) {
	baseURL, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}

	timeout := client.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &SimpleHTTPClient{
		BaseURL: baseURL,
		Timeout: timeout,
		client:  client,
	}, nil
}

// NewInstrumented returns a new SimpleHTTPClient whose transport reports prometheus
// metrics labeled with the service name
func NewInstrumented(name string, serverURL string, timeout time.Duration) (*SimpleHTTPClient, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewWithHTTPClient(serverURL, &http.Client{
		Timeout: timeout,
		Transport: middleware.InstrumentRoundTripper(
			http.DefaultTransport, name),
	})
}

// NewRequest creates a request for path carrying the query string of qsb
func (c *SimpleHTTPClient) NewRequest(
	ctx context.Context,
	method,
	path string,
	qsb QueryStringBody,
) (*http.Request, error) {
	qs := ""
	switch v := qsb.(type) {
	case nil:
	case RawQuery:
		qs = string(v)
	default:
		values, err := qsb.GenerateQueryString()
		if err != nil {
			return nil, NewHTTPError(err, c.BaseURL.String()+path, ErrMalformedRequest, http.StatusBadRequest, nil)
		}
		qs = values.Encode()
	}

	resolvedURL := c.BaseURL.ResolveReference(&url.URL{
		Path:     path,
		RawQuery: qs,
	})

	req, err := http.NewRequestWithContext(ctx, method, resolvedURL.String(), nil)
	if err != nil {
		message := ErrMalformedRequest
		switch err.(type) {
		case url.EscapeError:
			message = ErrUnableToEscapeURL
		case url.InvalidHostError:
			message = ErrInvalidHost
		}
		return nil, NewHTTPError(err, resolvedURL.String(), message, http.StatusBadRequest, nil)
	}

	req.Header.Set("accept", "application/json")
	requestutils.SetRequestID(ctx, req)
	return req, nil
}

// dump logs a redacted copy of a request or response when debug logging is on
func dump(ctx context.Context, kind string, fn func() ([]byte, error)) {
	if debug, ok := ctx.Value(appctx.DebugLoggingCTXKey).(bool); !ok || !debug {
		return
	}
	logger := zerolog.Ctx(ctx)
	b, err := fn()
	if err != nil {
		logger.Error().Err(err).Str("type", kind).Msg("failed to dump")
		return
	}
	logger.Debug().Str("type", kind).Msg(string(RedactSensitiveHeaders(b)))
}

// RespErrData - error data for http response
type RespErrData struct {
	ResponseHeaders interface{}
	Body            interface{}
}

// Do sends req and returns the response body. Transport failures come back
// wrapped, any status outside 2xx is an errors.ErrorBundle carrying HTTPState.
func (c *SimpleHTTPClient) Do(ctx context.Context, req *http.Request) ([]byte, error) {
	labels := prometheus.Labels{"host": req.URL.Host, "method": req.Method}
	concurrentClientRequests.With(labels).Inc()
	defer concurrentClientRequests.With(labels).Dec()

	dump(ctx, "http.Request", func() ([]byte, error) {
		return httputil.DumpRequestOut(req, false)
	})

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	reqCtx, cancel := context.WithTimeout(req.Context(), timeout)
	defer cancel()

	resp, err := c.client.Do(req.WithContext(reqCtx))
	if err != nil {
		return nil, fmt.Errorf("failed to reach %s: %w", req.URL.Host, err)
	}

	dump(ctx, "http.Response", func() ([]byte, error) {
		return httputil.DumpResponse(resp, true)
	})

	// read the whole body now, the request context is cancelled on return
	body, err := requestutils.Read(ctx, resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFailedBodyRead.Error())
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return body, nil
	}

	zerolog.Ctx(ctx).Warn().
		Int("response_status", resp.StatusCode).
		Str("host", req.URL.Host).
		Str("path", req.URL.Path).
		Msg("failed http client call")

	cause := errors.Wrap(fmt.Errorf("unexpected status %d", resp.StatusCode), ErrProtocolError)
	return body, NewHTTPError(cause, req.URL.Scheme+"://"+req.URL.Host+req.URL.Path, "response", resp.StatusCode, RespErrData{
		ResponseHeaders: resp.Header,
		Body:            string(body),
	})
}
