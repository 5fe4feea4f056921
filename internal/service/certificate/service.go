package certificate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/certificate"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/notification"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/user"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/email"
	"github.com/google/uuid"
)

type CertificateServiceImpl struct {
	certificate.CertificateRepository
	userRepo     user.UserRepository
	emailService email.EmailService
	notifier     notification.NotificationService

	now func() time.Time
}

func NewCertificateService(
	repo certificate.CertificateRepository,
	userRepo user.UserRepository,
	emailService email.EmailService,
	notifier notification.NotificationService,
) *CertificateServiceImpl {
	return &CertificateServiceImpl{
		CertificateRepository: repo,
		userRepo:              userRepo,
		emailService:          emailService,
		notifier:              notifier,
		now:                   time.Now,
	}
}

// Issue implements certificate.CertificateService.
func (s *CertificateServiceImpl) Issue(ctx context.Context, issuerID string, userID string) (certificate.Certificate, error) {
	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return certificate.Certificate{}, err
	}

	if !usr.HoursComplete() {
		return certificate.Certificate{}, certificate.ErrHoursIncomplete
	}

	if _, err := s.CertificateRepository.GetByUserID(ctx, userID); err == nil {
		return certificate.Certificate{}, certificate.ErrAlreadyIssued
	} else if !errors.Is(err, certificate.ErrCertificateNotFound) {
		return certificate.Certificate{}, fmt.Errorf("failed to check existing certificate: %w", err)
	}

	cert := certificate.Certificate{
		UserID:        userID,
		SerialNumber:  uuid.New().String(),
		IssuedBy:      issuerID,
		IssuedAt:      s.now(),
		HoursRendered: usr.TotalRenderedHours,
	}

	created, err := s.CertificateRepository.Create(ctx, cert)
	if err != nil {
		return certificate.Certificate{}, fmt.Errorf("failed to create certificate: %w", err)
	}

	if err := s.emailService.SendCertificateIssued(usr.Email, usr.FullName(), created.SerialNumber); err != nil {
		slog.Warn("failed to send certificate email", "user_id", userID, "error", err)
	}

	if err := s.notifier.Notify(ctx, notification.Notification{
		RecipientID: userID,
		SenderID:    &issuerID,
		Type:        notification.TypeCertificateIssued,
		Title:       "Certificate issued",
		Message:     "Your certificate of completion has been issued",
		Data:        map[string]interface{}{"certificate_id": created.ID},
	}); err != nil {
		slog.Warn("failed to deliver certificate notification", "user_id", userID, "error", err)
	}

	return created, nil
}

// GetMine implements certificate.CertificateService.
func (s *CertificateServiceImpl) GetMine(ctx context.Context, userID string) (certificate.Certificate, error) {
	return s.CertificateRepository.GetByUserID(ctx, userID)
}

// Verify implements certificate.CertificateService.
func (s *CertificateServiceImpl) Verify(ctx context.Context, serial string) (certificate.Certificate, error) {
	return s.CertificateRepository.GetBySerial(ctx, serial)
}
