package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	// instrumenting the same service twice shares its series
	_ = InstrumentRoundTripper(http.DefaultTransport, "alipay-test")
	client := &http.Client{Transport: InstrumentRoundTripper(http.DefaultTransport, "alipay-test")}

	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, float64(1), testutil.ToFloat64(clientRequests.WithLabelValues("alipay-test", "200", "get")))
}

func TestInstrumentHandler_Metrics(t *testing.T) {
	h := InstrumentHandler("notify", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("success"))
	}))
	_ = InstrumentHandler("notify", h)

	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodPost, "/notify", nil))
	assert.Equal(t, "success", rw.Body.String())

	rw = httptest.NewRecorder()
	Metrics().ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rw.Body.String(), `api_requests_total{code="200",handler="notify",method="post"}`)
}
