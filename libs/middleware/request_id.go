package middleware

import (
	"net/http"

	"github.com/brave-intl/alipay-go/libs/requestutils"
)

// RequestIDTransfer puts the caller's request id, or a new one, on the context
// and echoes it in the response
func RequestIDTransfer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestutils.RequestIDHeaderKey)
		if reqID == "" {
			reqID = requestutils.NewRequestID()
		}
		w.Header().Set(requestutils.RequestIDHeaderKey, reqID)
		next.ServeHTTP(w, r.WithContext(requestutils.WithRequestID(r.Context(), reqID)))
	})
}
