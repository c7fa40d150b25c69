package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/odionmurphy/Murphy-Portfolio/internal/logger"
	"github.com/odionmurphy/Murphy-Portfolio/internal/mail"
	"github.com/odionmurphy/Murphy-Portfolio/internal/model"
	"github.com/odionmurphy/Murphy-Portfolio/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo        repository.ContactRepository
	notifier    mail.Notifier
	adminToken  string
	mailTimeout time.Duration
	log         *logger.Logger
}

// NewContactService creates a ContactService over the given repository and
// notifier. adminToken gates List; when empty, every credential is denied.
func NewContactService(repo repository.ContactRepository, notifier mail.Notifier, adminToken string, mailTimeout time.Duration, log *logger.Logger) ContactService {
	return &contactServiceImpl{
		repo:        repo,
		notifier:    notifier,
		adminToken:  adminToken,
		mailTimeout: mailTimeout,
		log:         log,
	}
}

func (s *contactServiceImpl) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, ErrMissingFields
	}

	msg, err := s.repo.Insert(ctx, in.Name, in.Email, in.Message)
	if err != nil {
		return nil, err
	}
	s.log.Info("contact saved", "id", msg.ID, "email", msg.Email)

	// The row is durable; the notification gets one bounded attempt and its
	// failure is recorded in the result, not returned as an error.
	notifyCtx, cancel := context.WithTimeout(ctx, s.mailTimeout)
	defer cancel()
	outcome := s.notifier.Notify(notifyCtx, in.Name, in.Email, in.Message)

	return &SubmitResult{ID: msg.ID, Mail: outcome}, nil
}

func (s *contactServiceImpl) List(ctx context.Context, credential string) ([]*model.ContactMessage, error) {
	if !s.authorized(credential) {
		return nil, ErrUnauthorized
	}
	return s.repo.ListDescending(ctx)
}

func (s *contactServiceImpl) authorized(credential string) bool {
	if s.adminToken == "" || credential == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(credential), []byte(s.adminToken)) == 1
}
