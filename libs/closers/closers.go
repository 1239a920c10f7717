package closers

import (
	"context"
	"errors"
	"io"

	"github.com/brave-intl/alipay-go/libs/logging"
)

// Log calls Close on the specified closer, logging on error. A body abandoned
// by a timed out request reports the cancellation on close, that is not logged.
func Log(ctx context.Context, c io.Closer) {
	if c == nil {
		return
	}
	err := c.Close()
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	logging.Logger(ctx, "closers.Log").Error().Err(err).Msg("error attempting to close")
}
