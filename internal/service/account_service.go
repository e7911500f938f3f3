package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/opostest/backend/config"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/mailer"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	VerificationCodeTTL = 15 * time.Minute
	PasswordResetTTL    = time.Hour
)

type AccountService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserDTO, error)
	// VerifyEmail activates the account. Verifying an active account is a no-op.
	VerifyEmail(req dto.VerifyEmailRequest) (*dto.MessageResponse, error)
	Login(req dto.LoginRequest) (*dto.TokenResponse, error)
	Me(caller *auth.Identity) (*dto.UserDTO, error)
	// RequestPasswordReset never reveals whether the email is registered.
	RequestPasswordReset(ctx context.Context, req dto.PasswordResetRequest) error
	ConfirmPasswordReset(req dto.PasswordResetConfirmRequest) error
}

type accountService struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	codeRepo    repository.VerificationCodeRepository
	resetRepo   repository.PasswordResetRepository
	tokens      *auth.TokenManager
	mail        mailer.Sender
	frontendURL string
	now         func() time.Time
}

func NewAccountService(
	cfg *config.Config,
	db *gorm.DB,
	userRepo repository.UserRepository,
	codeRepo repository.VerificationCodeRepository,
	resetRepo repository.PasswordResetRepository,
	tokens *auth.TokenManager,
	mail mailer.Sender,
) AccountService {
	return &accountService{
		db:          db,
		userRepo:    userRepo,
		codeRepo:    codeRepo,
		resetRepo:   resetRepo,
		tokens:      tokens,
		mail:        mail,
		frontendURL: cfg.FrontendURL,
		now:         time.Now,
	}
}

// Register creates an inactive account and mails it a verification code. Registering
// again with the email of an account that was never activated replaces its credentials
// and issues a fresh code.
func (s *accountService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	var pending *model.User
	existing, err := s.userRepo.FindByEmail(email)
	switch {
	case err == nil && existing.IsActive:
		return nil, newError(ErrValidation, "an account with this email already exists")
	case err == nil:
		pending = existing
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	var exceptID uint
	if pending != nil {
		exceptID = pending.ID
	}
	taken, err := s.userRepo.UsernameTaken(username, exceptID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, newError(ErrValidation, "this username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	code, err := newVerificationCode()
	if err != nil {
		return nil, err
	}

	user := model.User{Username: username, Email: email, PasswordHash: string(hash)}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		codes := repository.NewVerificationCodeRepository(tx)
		if pending != nil {
			user.ID = pending.ID
			if err := users.ResetPending(pending.ID, username, user.PasswordHash); err != nil {
				return err
			}
			if err := codes.DeleteForUser(pending.ID); err != nil {
				return err
			}
		} else if err := users.Create(&user); err != nil {
			return err
		}
		return codes.Create(&model.VerificationCode{
			UserID:    user.ID,
			Code:      code,
			CreatedAt: s.now(),
		})
	})
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Register: transaction failed")
		return nil, err
	}

	msg := mailer.Message{
		To:      []string{email},
		Subject: "Tu código de verificación",
		Body: fmt.Sprintf("Hola %s,\n\nTu código de verificación es: %s\nCaduca en %d minutos.\n",
			username, code, int(VerificationCodeTTL.Minutes())),
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Register: sending verification code failed")
		return nil, newError(ErrIntegration, "the verification email could not be sent, register again to retry")
	}

	log.Info().Uint("userID", user.ID).Str("username", username).Bool("reissued", pending != nil).Msg("User registered")
	return toUserDTO(&user), nil
}

func (s *accountService) VerifyEmail(req dto.VerifyEmailRequest) (*dto.MessageResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrValidation, "invalid verification code")
		}
		return nil, err
	}
	if user.IsActive {
		return &dto.MessageResponse{Message: "account already activated"}, nil
	}

	code, err := s.codeRepo.Find(user.ID, strings.TrimSpace(req.Code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrValidation, "invalid verification code")
		}
		return nil, err
	}
	if code.Expired(s.now(), VerificationCodeTTL) {
		if err := s.codeRepo.Delete(code.ID); err != nil {
			log.Warn().Err(err).Uint("codeID", code.ID).Msg("VerifyEmail: deleting expired code failed")
		}
		return nil, newError(ErrValidation, "verification code expired, register again to get a new one")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewUserRepository(tx).Activate(user.ID); err != nil {
			return err
		}
		return repository.NewVerificationCodeRepository(tx).DeleteForUser(user.ID)
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("VerifyEmail: activation failed")
		return nil, err
	}
	log.Info().Uint("userID", user.ID).Msg("Account activated")
	return &dto.MessageResponse{Message: "account activated"}, nil
}

func (s *accountService) Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrUnauthorized, "invalid credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, newError(ErrUnauthorized, "invalid credentials")
	}
	if !user.IsActive {
		return nil, newError(ErrForbidden, "account is not activated")
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.IsStaff)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

func (s *accountService) Me(caller *auth.Identity) (*dto.UserDTO, error) {
	if !caller.Authenticated() {
		return nil, newError(ErrUnauthorized, "login required")
	}
	user, err := s.userRepo.FindByID(caller.UserID)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return toUserDTO(user), nil
}

func (s *accountService) RequestPasswordReset(ctx context.Context, req dto.PasswordResetRequest) error {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("PasswordReset: user lookup failed")
		}
		return nil
	}

	token, err := randomToken()
	if err != nil {
		return err
	}
	err = s.resetRepo.Create(&model.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: hashToken(token),
		ExpiresAt: s.now().Add(PasswordResetTTL),
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("PasswordReset: storing token failed")
		return err
	}

	link := fmt.Sprintf("%s/password-reset/%d/%s/", s.frontendURL, user.ID, token)
	msg := mailer.Message{
		To:      []string{user.Email},
		Subject: "Restablece tu contraseña",
		Body:    fmt.Sprintf("Hola %s,\n\nPara elegir una nueva contraseña abre este enlace:\n%s\n\nEl enlace caduca en una hora.\n", user.Username, link),
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("PasswordReset: sending email failed")
	}
	return nil
}

func (s *accountService) ConfirmPasswordReset(req dto.PasswordResetConfirmRequest) error {
	token, err := s.resetRepo.FindValid(req.UID, hashToken(req.Token), s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newError(ErrValidation, "invalid or expired reset link")
		}
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewUserRepository(tx).UpdatePassword(token.UserID, string(hash)); err != nil {
			return err
		}
		return repository.NewPasswordResetRepository(tx).DeleteForUser(token.UserID)
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", token.UserID).Msg("PasswordReset: update failed")
		return err
	}
	log.Info().Uint("userID", token.UserID).Msg("Password reset")
	return nil
}

func newVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func toUserDTO(user *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		IsStaff:    user.IsStaff,
		Subscribed: user.Subscription != nil && user.Subscription.Active,
	}
}
