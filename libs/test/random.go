// Package test provides utilities for testing. Do not import this into non-test code.
package test

import (
	"crypto/rand"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits       = "0123456789"
)

// RandomString return a random alphanumeric string with length 10.
func RandomString() string {
	return RandomStringWithLen(10)
}

// RandomStringWithLen returns a random alphanumeric string with a specified length.
func RandomStringWithLen(length int) string {
	return randomFrom(alphanumeric, length)
}

// RandomTradeNo returns a random merchant order number, digits only like the gateway sandbox issues.
func RandomTradeNo() string {
	return randomFrom(digits, 20)
}

// RandomAmount returns a random positive amount with two decimal places, at most 10000.00.
func RandomAmount() decimal.Decimal {
	n, _ := rand.Int(rand.Reader, big.NewInt(1000000))
	return decimal.New(n.Int64()+1, -2)
}

func randomFrom(alphabet string, length int) string {
	letters := []rune(alphabet)
	s := make([]rune, length)
	for i := range s {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		s[i] = letters[n.Int64()]
	}
	return string(s)
}
