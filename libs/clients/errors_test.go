package clients

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	testutils "github.com/brave-intl/alipay-go/libs/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapHTTPState(t *testing.T) {
	h := make(http.Header)
	h.Add(testutils.RandomString(), testutils.RandomString())

	expected := HTTPState{
		Status: http.StatusInternalServerError,
		Path:   testutils.RandomString(),
		Body: RespErrData{
			ResponseHeaders: h,
			Body:            testutils.RandomString(),
		},
	}

	cause := errors.New(testutils.RandomString())
	err := fmt.Errorf("trade query: %w", NewHTTPError(cause, expected.Path, cause.Error(), expected.Status, expected.Body))

	actual, ok := UnwrapHTTPState(err)
	require.True(t, ok)
	assert.Equal(t, &expected, actual)
	assert.ErrorIs(t, err, cause)
}

func TestUnwrapHTTPState_NoState(t *testing.T) {
	state, ok := UnwrapHTTPState(errors.New(testutils.RandomString()))
	assert.False(t, ok)
	assert.Nil(t, state)
}

func TestHTTPState_Retryable(t *testing.T) {
	cases := map[int]bool{
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
	}
	for status, retryable := range cases {
		assert.Equal(t, retryable, HTTPState{Status: status}.Retryable(), status)
	}
}
