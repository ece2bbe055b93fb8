package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bandoggie/backend/internal/hash"
	"github.com/bandoggie/backend/internal/logging"
	"github.com/bandoggie/backend/internal/mail"
	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/repo"
	"github.com/bandoggie/backend/internal/tokens"
)

const (
	RecoveryTTL     = 30 * time.Minute
	RegistrationTTL = 2 * time.Hour
	VerifiedTTL     = 20 * time.Minute
)

// Ticket is a minted verification token plus its expiry, ready to be set as
// a cookie. The token is the only storage the flow has.
type Ticket struct {
	Token     string
	ExpiresAt time.Time
}

// VerificationService drives the one-time-code flows shared by password
// recovery and registration email confirmation.
type VerificationService struct {
	Repo         *repo.GormRepo
	TicketSecret []byte
	Mailer       mail.Mailer
}

// RequestRecoveryCode starts a password-recovery flow for a client or vet.
func (s *VerificationService) RequestRecoveryCode(ctx context.Context, email string) (*Ticket, error) {
	l := logging.FromContext(ctx).With("svc", "verification.request_code")

	if !emailRx.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	kind, err := s.subjectKind(ctx, email)
	if err != nil {
		return nil, err
	}

	code, err := newCode()
	if err != nil {
		return nil, ErrTokenIssuanceFailed
	}
	exp := time.Now().Add(RecoveryTTL)
	token, err := tokens.SignTicket(email, code, kind, false, s.TicketSecret, exp)
	if err != nil {
		return nil, ErrTokenIssuanceFailed
	}

	plain, html := mail.RecoveryBody(code)
	if err := s.Mailer.Send(email, "Bandoggie password recovery", plain, html); err != nil {
		l.Error("code email delivery failed", "error", err)
		return nil, ErrDeliveryFailed
	}

	l.Info("recovery code issued", "kind", kind)
	return &Ticket{Token: token, ExpiresAt: exp}, nil
}

// VerifyRecoveryCode checks the submitted code against the ticket and, on a
// match, re-mints the ticket with verified=true and a shorter expiry. The
// original ticket is considered consumed.
func (s *VerificationService) VerifyRecoveryCode(ctx context.Context, rawTicket, submittedCode string) (*Ticket, error) {
	claims, err := s.parseTicket(rawTicket)
	if err != nil {
		return nil, err
	}
	if strings.ToUpper(strings.TrimSpace(submittedCode)) != claims.Code {
		return nil, ErrCodeMismatch
	}

	exp := time.Now().Add(VerifiedTTL)
	token, err := tokens.SignTicket(claims.Email, claims.Code, claims.Kind, true, s.TicketSecret, exp)
	if err != nil {
		return nil, ErrTokenIssuanceFailed
	}
	return &Ticket{Token: token, ExpiresAt: exp}, nil
}

// ApplyNewPassword is the terminal recovery step: it requires a verified
// ticket and persists the new hash. The caller clears the ticket cookie.
func (s *VerificationService) ApplyNewPassword(ctx context.Context, rawTicket, newPassword string) error {
	l := logging.FromContext(ctx).With("svc", "verification.new_password")

	claims, err := s.parseTicket(rawTicket)
	if err != nil {
		return err
	}
	if !claims.Verified {
		return ErrNotYetVerified
	}
	if len(newPassword) < MinPassword {
		return ErrWeakPassword
	}

	currentHash, err := s.currentHash(ctx, claims.Email, claims.Kind)
	if err != nil {
		return err
	}
	if hash.CheckPassword(currentHash, newPassword) {
		return ErrSamePasswordRejected
	}

	newHash, err := hash.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%w: hash password", ErrInternal)
	}

	switch claims.Kind {
	case models.KindVet:
		err = s.Repo.SetVetPassword(ctx, claims.Email, newHash)
	default:
		err = s.Repo.SetClientPassword(ctx, claims.Email, newHash)
	}
	if err != nil {
		return err
	}

	l.Info("password changed", "kind", claims.Kind)
	return nil
}

// IssueRegistrationTicket mints the email-confirmation ticket sent right
// after a client or vet registers.
func (s *VerificationService) IssueRegistrationTicket(ctx context.Context, email, kind string) (*Ticket, error) {
	l := logging.FromContext(ctx).With("svc", "verification.registration")

	code, err := newCode()
	if err != nil {
		return nil, ErrTokenIssuanceFailed
	}
	exp := time.Now().Add(RegistrationTTL)
	token, err := tokens.SignTicket(email, code, kind, false, s.TicketSecret, exp)
	if err != nil {
		return nil, ErrTokenIssuanceFailed
	}

	plain, html := mail.RegistrationBody(code)
	if err := s.Mailer.Send(email, "Confirm your Bandoggie email", plain, html); err != nil {
		l.Error("code email delivery failed", "error", err)
		return nil, ErrDeliveryFailed
	}

	l.Info("registration code issued", "kind", kind)
	return &Ticket{Token: token, ExpiresAt: exp}, nil
}

// ConfirmEmail is the registration terminal step: a single matching check
// both confirms the email and consumes the ticket.
func (s *VerificationService) ConfirmEmail(ctx context.Context, rawTicket, submittedCode string) error {
	claims, err := s.parseTicket(rawTicket)
	if err != nil {
		return err
	}
	if strings.ToUpper(strings.TrimSpace(submittedCode)) != claims.Code {
		return ErrCodeMismatch
	}

	switch claims.Kind {
	case models.KindVet:
		return s.Repo.MarkVetVerified(ctx, claims.Email)
	default:
		return s.Repo.MarkClientVerified(ctx, claims.Email)
	}
}

func (s *VerificationService) parseTicket(rawTicket string) (*tokens.TicketClaims, error) {
	if rawTicket == "" {
		return nil, ErrTokenMissing
	}
	claims, err := tokens.TicketFromToken(rawTicket, s.TicketSecret)
	if err != nil {
		// Expired and malformed tickets are reported the same way.
		return nil, ErrTokenExpiredOrInvalid
	}
	return claims, nil
}

// subjectKind finds which recovery-capable store holds the email, client
// store first.
func (s *VerificationService) subjectKind(ctx context.Context, email string) (string, error) {
	if _, err := s.Repo.FindClientByEmail(ctx, email); err == nil {
		return models.KindClient, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if _, err := s.Repo.FindVetByEmail(ctx, email); err == nil {
		return models.KindVet, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	return "", ErrPrincipalNotFound
}

func (s *VerificationService) currentHash(ctx context.Context, email, kind string) (string, error) {
	switch kind {
	case models.KindVet:
		v, err := s.Repo.FindVetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", ErrPrincipalNotFound
			}
			return "", err
		}
		return v.PasswordHash, nil
	default:
		c, err := s.Repo.FindClientByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", ErrPrincipalNotFound
			}
			return "", err
		}
		return c.PasswordHash, nil
	}
}

// newCode returns 6 uppercase hex characters from a CSPRNG.
func newCode() (string, error) {
	var b [3]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b[:])), nil
}
