package alipay

import (
	"errors"
	"fmt"
	"testing"

	errorutils "github.com/brave-intl/alipay-go/libs/errors"
	should "github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	config := configErr("private_key", errorutils.ErrMissingKey)
	business := businessErr(Params{"code": "40004", "msg": "Business Failed", "sub_code": "ACQ.TRADE_NOT_EXIST"}, nil)
	validation := &ValidationError{Field: "alipay_trade_query_response", Err: ErrSignatureMismatch}

	should.True(t, errorutils.IsErrMisconfigured(config))
	should.False(t, errorutils.IsErrBusinessFailure(config))
	should.ErrorIs(t, config, errorutils.ErrMissingKey)

	should.True(t, errorutils.IsErrBusinessFailure(business))
	should.False(t, errorutils.IsErrInvalidSignature(business))
	should.Equal(t, "alipay business error 40004 (ACQ.TRADE_NOT_EXIST): Business Failed", business.Error())

	should.True(t, errorutils.IsErrInvalidSignature(fmt.Errorf("query failed: %w", validation)))
	should.ErrorIs(t, validation, ErrSignatureMismatch)

	var berr *BusinessError
	should.True(t, errors.As(fmt.Errorf("wrapped: %w", business), &berr))
	should.Equal(t, "ACQ.TRADE_NOT_EXIST", berr.SubCode)
}
