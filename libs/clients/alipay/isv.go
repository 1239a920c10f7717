package alipay

import (
	"context"
	"fmt"
)

// AppAuthToken is the result of an app auth token exchange
type AppAuthToken struct {
	ResponseStatus
	AppAuthToken    string `json:"app_auth_token"`
	AppRefreshToken string `json:"app_refresh_token"`
	AuthAppID       string `json:"auth_app_id"`
	UserID          string `json:"user_id"`
	ExpiresIn       int64  `json:"expires_in"`
	ReExpiresIn     int64  `json:"re_expires_in"`
}

// tokenExchangeResult also carries the tokens list newer gateway versions
// answer with instead of the flat fields
type tokenExchangeResult struct {
	AppAuthToken
	Tokens []AppAuthToken `json:"tokens"`
}

// OpenAuthTokenAppQueryResponse - alipay.open.auth.token.app.query result
type OpenAuthTokenAppQueryResponse struct {
	ResponseStatus
	UserID      string   `json:"user_id"`
	AuthAppID   string   `json:"auth_app_id"`
	ExpiresIn   int64    `json:"expires_in"`
	AuthMethods []string `json:"auth_methods"`
	AuthStart   string   `json:"auth_start"`
	AuthEnd     string   `json:"auth_end"`
	Status      string   `json:"status"`
}

func (c *HTTPClient) openAuthTokenApp(ctx context.Context, biz Params) (*AppAuthToken, error) {
	var result tokenExchangeResult
	if err := c.executeInto(ctx, OpOpenAuthTokenApp, biz, &result); err != nil {
		return nil, err
	}
	token := result.AppAuthToken
	if token.AppAuthToken == "" && len(result.Tokens) > 0 {
		status := token.ResponseStatus
		token = result.Tokens[0]
		token.ResponseStatus = status
	}
	return &token, nil
}

// OpenAuthTokenApp implements Client. With a refresh token it refreshes, otherwise it
// exchanges the configured app auth code. In delegated mode the new token replaces
// the cached one.
func (c *HTTPClient) OpenAuthTokenApp(ctx context.Context, refreshToken string) (*AppAuthToken, error) {
	biz := Params{}
	switch {
	case refreshToken != "":
		biz["grant_type"] = "refresh_token"
		biz["refresh_token"] = refreshToken
	case c.auth != nil && c.auth.code != "":
		biz["grant_type"] = "authorization_code"
		biz["code"] = c.auth.code
	default:
		return nil, configErr("app_auth_code", fmt.Errorf("%w: no refresh token and no app auth code", ErrMissingAuthToken))
	}

	token, err := c.openAuthTokenApp(ctx, biz)
	if err != nil {
		return nil, err
	}
	if c.auth != nil && token.AppAuthToken != "" {
		c.auth.Store(token)
	}
	return token, nil
}

// OpenAuthTokenAppQuery implements Client, it needs delegated mode
func (c *HTTPClient) OpenAuthTokenAppQuery(ctx context.Context) (*OpenAuthTokenAppQueryResponse, error) {
	if c.auth == nil {
		return nil, configErr("app_auth_token", fmt.Errorf("%w: client is not in delegated mode", ErrMissingAuthToken))
	}
	token, err := c.auth.Token(ctx)
	if err != nil {
		return nil, err
	}

	var resp OpenAuthTokenAppQueryResponse
	if err := c.executeInto(ctx, OpOpenAuthTokenAppQuery, Params{"app_auth_token": token}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OpenAppAlipayCertDownload implements Client
func (c *HTTPClient) OpenAppAlipayCertDownload(ctx context.Context, alipayCertSN string) (string, error) {
	return c.assembler.SignedQuery(ctx, OpOpenAppAlipayCertDownload, Params{"alipay_cert_sn": alipayCertSN})
}
