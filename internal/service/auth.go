package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blastmusic247/blast-gear-full/internal/client"
	"github.com/blastmusic247/blast-gear-full/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrCaptchaFailed      = errors.New("captcha verification failed")
)

type AuthService interface {
	// Login checks the captcha (outside development), verifies the admin
	// credential and returns a signed access token.
	Login(ctx context.Context, username, password, captchaToken string) (string, error)

	// VerifyToken returns the token subject, or ErrInvalidToken on any
	// signature, format or expiry failure.
	VerifyToken(token string) (string, error)
}

type authServiceImpl struct {
	adminCfg      config.Admin
	jwtCfg        config.JWT
	captchaClient client.CaptchaClient
	bypassCaptcha bool
	now           func() time.Time
}

func NewAuthService(
	adminCfg config.Admin,
	jwtCfg config.JWT,
	captchaClient client.CaptchaClient,
	bypassCaptcha bool,
) AuthService {
	return &authServiceImpl{
		adminCfg:      adminCfg,
		jwtCfg:        jwtCfg,
		captchaClient: captchaClient,
		bypassCaptcha: bypassCaptcha,
		now:           time.Now,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, username, password, captchaToken string) (string, error) {
	if !s.bypassCaptcha {
		ok, err := s.captchaClient.Verify(ctx, captchaToken)
		if err != nil {
			return "", fmt.Errorf("verify login captcha: %w", err)
		}
		if !ok {
			return "", ErrCaptchaFailed
		}
	}

	if username != s.adminCfg.Username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(
		[]byte(s.adminCfg.PasswordHash),
		[]byte(password),
	); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(username)
}

func (s *authServiceImpl) issueToken(subject string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.TTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signed, nil
}

func (s *authServiceImpl) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(s.jwtCfg.Secret), nil
		},
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
