package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	hcaptchaVerifyURL  = "https://hcaptcha.com/siteverify"
	recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"
)

// CaptchaClient verifies a challenge token issued to the browser. Both
// hCaptcha and reCAPTCHA expose the same siteverify form contract, so one
// implementation covers both providers.
type CaptchaClient interface {
	Verify(ctx context.Context, token string) (bool, error)
}

type captchaClientImpl struct {
	httpClient *http.Client
	verifyURL  string
	secret     string
}

func NewHCaptchaClient(secret string) CaptchaClient {
	return newCaptchaClient(hcaptchaVerifyURL, secret)
}

func NewRecaptchaClient(secret string) CaptchaClient {
	return newCaptchaClient(recaptchaVerifyURL, secret)
}

func newCaptchaClient(verifyURL, secret string) CaptchaClient {
	return &captchaClientImpl{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		verifyURL: verifyURL,
		secret:    secret,
	}
}

func (c *captchaClientImpl) Verify(ctx context.Context, token string) (bool, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.verifyURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return false, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("captcha verify request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decode captcha response: %w", err)
	}

	return result.Success, nil
}
