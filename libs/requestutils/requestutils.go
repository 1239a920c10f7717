package requestutils

import (
	"context"
	"crypto/sha256"
	"io"
	"net/http"

	"github.com/brave-intl/alipay-go/libs/closers"
	errorutils "github.com/brave-intl/alipay-go/libs/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/shengdoushi/base58"
)

type requestID string

var (
	payloadLimit10MB = int64(1024 * 1024 * 10)
	// RequestIDHeaderKey is the request header key
	RequestIDHeaderKey = "x-request-id"
	// RequestID holds the type for request ids
	RequestID = requestID(RequestIDHeaderKey)
)

// ReadWithLimit reads an io reader with a limit and closes it when it is also a closer
func ReadWithLimit(ctx context.Context, body io.Reader, limit int64) ([]byte, error) {
	if c, ok := body.(io.Closer); ok {
		defer closers.Log(ctx, c)
	}
	return io.ReadAll(io.LimitReader(body, limit))
}

// Read an io reader
func Read(ctx context.Context, body io.Reader) ([]byte, error) {
	b, err := ReadWithLimit(ctx, body, payloadLimit10MB)
	if err != nil {
		return nil, errorutils.Wrap(err, "error reading body")
	}
	return b, nil
}

// NewRequestID returns a short random id, readable in logs and headers
func NewRequestID() string {
	sum := sha256.Sum256(uuid.NewV4().Bytes())
	return base58.Encode(sum[:], base58.BitcoinAlphabet)[:16]
}

// WithRequestID returns a context carrying the request id
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestID, id)
}

// SetRequestID transfers a request id from a context to a request header
func SetRequestID(ctx context.Context, r *http.Request) {
	id := GetRequestID(ctx)
	if id != "" {
		r.Header.Set(RequestIDHeaderKey, id)
	}
}

// GetRequestID gets the request id
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestID).(string); ok {
		return reqID
	}
	return ""
}
