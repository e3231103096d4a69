package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/blastmusic247/blast-gear-full/internal/client"
	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/model"
	"github.com/blastmusic247/blast-gear-full/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrCaptchaNotConfigured = errors.New("captcha configuration missing")
	ErrContactCaptchaFailed = errors.New("hCaptcha verification failed")
)

type ContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) error
}

type contactServiceImpl struct {
	contactRepo   repository.ContactRepository
	captchaClient client.CaptchaClient
	configured    bool
}

func NewContactService(contactRepo repository.ContactRepository, captchaClient client.CaptchaClient, secretConfigured bool) ContactService {
	return &contactServiceImpl{
		contactRepo:   contactRepo,
		captchaClient: captchaClient,
		configured:    secretConfigured,
	}
}

func (s *contactServiceImpl) Submit(ctx context.Context, req *dto.ContactRequest) error {
	if !s.configured {
		return ErrCaptchaNotConfigured
	}

	ok, err := s.captchaClient.Verify(ctx, req.HCaptchaToken)
	if err != nil {
		return fmt.Errorf("verify contact captcha: %w", err)
	}
	if !ok {
		return ErrContactCaptchaFailed
	}

	message := &model.ContactMessage{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(ctx, message); err != nil {
		return fmt.Errorf("store contact message: %w", err)
	}

	log.Printf("contact form submitted by %s (%s)", req.Name, req.Email)
	return nil
}
