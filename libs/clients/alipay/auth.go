package alipay

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	appAuthTokenKey    = "app_auth_token"
	appRefreshTokenKey = "app_refresh_token"
)

// tokenExchanger obtains app auth tokens from the gateway
type tokenExchanger interface {
	exchangeAuthCode(ctx context.Context, code string) (*AppAuthToken, error)
	refreshAuthToken(ctx context.Context, refreshToken string) (*AppAuthToken, error)
}

// AuthTokenProvider supplies the app_auth_token of delegated (ISV) mode. A
// configured token is used as is, otherwise the authorization code is exchanged
// on first use and the token is cached until it expires. Authorization codes
// are single use: once a token has been issued, expiry is handled with the
// refresh token that came with it.
type AuthTokenProvider struct {
	code      string
	tokens    *cache.Cache
	exchanger tokenExchanger
	mu        sync.Mutex
}

// NewAuthTokenProvider creates a provider from a token, an authorization code or both
func NewAuthTokenProvider(token, code string) (*AuthTokenProvider, error) {
	if token == "" && code == "" {
		return nil, configErr("app_auth_token", fmt.Errorf("%w: delegated mode needs an app auth token or an app auth code", ErrMissingAuthToken))
	}
	p := &AuthTokenProvider{
		code:   code,
		tokens: cache.New(cache.NoExpiration, 10*time.Minute),
	}
	if token != "" {
		p.tokens.Set(appAuthTokenKey, token, cache.NoExpiration)
	}
	return p, nil
}

// Token returns the current app auth token. An expired token is refreshed with
// the stored refresh token, the authorization code is only exchanged when no
// refresh token is held.
func (p *AuthTokenProvider) Token(ctx context.Context) (string, error) {
	if token, ok := p.cached(); ok {
		return token, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// another caller may have completed the exchange while we waited
	if token, ok := p.cached(); ok {
		return token, nil
	}
	if p.exchanger == nil {
		return "", ErrMissingAuthToken
	}

	var (
		result *AppAuthToken
		err    error
	)
	if refresh, ok := p.cachedString(appRefreshTokenKey); ok {
		result, err = p.exchanger.refreshAuthToken(ctx, refresh)
		if err != nil {
			return "", fmt.Errorf("failed to refresh app auth token: %w", err)
		}
	} else {
		if p.code == "" {
			return "", ErrMissingAuthToken
		}
		result, err = p.exchanger.exchangeAuthCode(ctx, p.code)
		if err != nil {
			return "", fmt.Errorf("failed to exchange app auth code: %w", err)
		}
	}
	if result == nil || result.AppAuthToken == "" {
		return "", fmt.Errorf("%w: token exchange returned no token", ErrMissingAuthToken)
	}

	p.Store(result)
	return result.AppAuthToken, nil
}

// Store caches a token obtained elsewhere, for instance by a refresh, along
// with its refresh token
func (p *AuthTokenProvider) Store(token *AppAuthToken) {
	p.tokens.Set(appAuthTokenKey, token.AppAuthToken, ttl(token.ExpiresIn))
	if token.AppRefreshToken != "" {
		p.tokens.Set(appRefreshTokenKey, token.AppRefreshToken, ttl(token.ReExpiresIn))
	}
}

func ttl(seconds int64) time.Duration {
	if seconds <= 0 {
		return cache.NoExpiration
	}
	return time.Duration(seconds) * time.Second
}

func (p *AuthTokenProvider) cached() (string, bool) {
	return p.cachedString(appAuthTokenKey)
}

func (p *AuthTokenProvider) cachedString(key string) (string, bool) {
	v, ok := p.tokens.Get(key)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok && token != ""
}

// Decorate implements EnvelopeDecorator
func (p *AuthTokenProvider) Decorate(ctx context.Context, op Operation, env *Envelope) error {
	if op.SkipAuthToken {
		return nil
	}
	token, err := p.Token(ctx)
	if err != nil {
		return err
	}
	env.AppAuthToken = token
	return nil
}
