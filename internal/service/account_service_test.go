package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/opostest/backend/config"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/mailer"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recordingSender keeps every message instead of delivering it.
type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return r.err
}

func (r *recordingSender) last(t *testing.T) mailer.Message {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.sent, "no mail was sent")
	return r.sent[len(r.sent)-1]
}

var (
	codePattern      = regexp.MustCompile(`\b\d{6}\b`)
	resetLinkPattern = regexp.MustCompile(`/password-reset/(\d+)/([0-9a-f]{64})/`)
)

func testConfig() *config.Config {
	return &config.Config{
		FrontendURL: "https://opostest.test",
		Auth:        config.Auth{JWTSecret: "test-secret"},
		Mail:        config.Mail{From: "no-reply@opostest.test", ContactInbox: "hola@opostest.test"},
	}
}

func newAccountService(db *gorm.DB, mail mailer.Sender, clock *time.Time) *accountService {
	cfg := testConfig()
	tokens, err := auth.NewTokenManager(cfg)
	if err != nil {
		panic(err)
	}
	svc := NewAccountService(
		cfg,
		db,
		repository.NewUserRepository(db),
		repository.NewVerificationCodeRepository(db),
		repository.NewPasswordResetRepository(db),
		tokens,
		mail,
	).(*accountService)
	svc.now = func() time.Time { return *clock }
	return svc
}

func TestRegisterVerifyLogin(t *testing.T) {
	db := newTestDB(t)
	mail := &recordingSender{}
	clock := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	svc := newAccountService(db, mail, &clock)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{Username: "ana", Email: "Ana@Example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.False(t, user.Subscribed)

	msg := mail.last(t)
	assert.Equal(t, []string{"ana@example.com"}, msg.To)
	code := codePattern.FindString(msg.Body)
	require.NotEmpty(t, code)

	_, err = svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.VerifyEmail(dto.VerifyEmailRequest{Email: "ana@example.com", Code: "000000x"})
	assert.ErrorIs(t, err, ErrValidation)

	clock = clock.Add(10 * time.Minute)
	verified, err := svc.VerifyEmail(dto.VerifyEmailRequest{Email: "ana@example.com", Code: code})
	require.NoError(t, err)
	assert.Equal(t, "account activated", verified.Message)

	again, err := svc.VerifyEmail(dto.VerifyEmailRequest{Email: "ana@example.com", Code: code})
	require.NoError(t, err)
	assert.Equal(t, "account already activated", again.Message)

	_, err = svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	token, err := svc.Login(dto.LoginRequest{Email: "ANA@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	me, err := svc.Me(&auth.Identity{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, "ana", me.Username)

	_, err = repository.NewSubscriptionRepository(db).Upsert(user.ID, "cus_1", "sub_1")
	require.NoError(t, err)
	me, err = svc.Me(&auth.Identity{UserID: user.ID})
	require.NoError(t, err)
	assert.True(t, me.Subscribed)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "ana")
	clock := time.Now().UTC()
	svc := newAccountService(db, &recordingSender{}, &clock)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "otra", Email: "ANA@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{Username: "Ana", Email: "new@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterReportsMailFailureAndCanBeRetried(t *testing.T) {
	db := newTestDB(t)
	clock := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	mail := &recordingSender{err: errors.New("smtp down")}
	svc := newAccountService(db, mail, &clock)
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "s3cretpass"}

	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrIntegration)

	mail.err = nil
	clock = clock.Add(time.Minute)
	retried, err := svc.Register(ctx, dto.RegisterRequest{Username: "ana_m", Email: "ANA@example.com", Password: "an0therpass"})
	require.NoError(t, err)
	assert.Equal(t, "ana_m", retried.Username)

	var users int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
	var codes int64
	require.NoError(t, db.Model(&model.VerificationCode{}).Count(&codes).Error)
	assert.Equal(t, int64(1), codes)

	code := codePattern.FindString(mail.last(t).Body)
	_, err = svc.VerifyEmail(dto.VerifyEmailRequest{Email: "ana@example.com", Code: code})
	require.NoError(t, err)
	_, err = svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "an0therpass"})
	assert.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterAfterExpiredCodeIssuesNewCode(t *testing.T) {
	db := newTestDB(t)
	mail := &recordingSender{}
	clock := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	svc := newAccountService(db, mail, &clock)
	req := dto.RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "s3cretpass"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	clock = clock.Add(VerificationCodeTTL + time.Minute)
	_, err = svc.VerifyEmail(dto.VerifyEmailRequest{Email: req.Email, Code: codePattern.FindString(mail.last(t).Body)})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(context.Background(), req)
	require.NoError(t, err)
	verified, err := svc.VerifyEmail(dto.VerifyEmailRequest{Email: req.Email, Code: codePattern.FindString(mail.last(t).Body)})
	require.NoError(t, err)
	assert.Equal(t, "account activated", verified.Message)
}

func TestRegisterKeepsUsernamesUniqueAcrossPendingAccounts(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "luis")
	clock := time.Now().UTC()
	svc := newAccountService(db, &recordingSender{}, &clock)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), dto.RegisterRequest{Username: "Luis", Email: "ana@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVerifyEmailExpiredCode(t *testing.T) {
	db := newTestDB(t)
	mail := &recordingSender{}
	clock := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	svc := newAccountService(db, mail, &clock)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	code := codePattern.FindString(mail.last(t).Body)

	clock = clock.Add(VerificationCodeTTL + time.Minute)
	_, err = svc.VerifyEmail(dto.VerifyEmailRequest{Email: "ana@example.com", Code: code})
	assert.ErrorIs(t, err, ErrValidation)

	// The expired code is gone, so a retry is reported as invalid.
	_, err = svc.VerifyEmail(dto.VerifyEmailRequest{Email: "ana@example.com", Code: code})
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "invalid verification code", svcErr.Message)
}

func TestPasswordResetFlow(t *testing.T) {
	db := newTestDB(t)
	mail := &recordingSender{}
	clock := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	svc := newAccountService(db, mail, &clock)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "old-password"})
	require.NoError(t, err)
	require.NoError(t, repository.NewUserRepository(db).Activate(user.ID))

	sentBefore := len(mail.sent)
	require.NoError(t, svc.RequestPasswordReset(ctx, dto.PasswordResetRequest{Email: "unknown@example.com"}))
	assert.Len(t, mail.sent, sentBefore)

	require.NoError(t, svc.RequestPasswordReset(ctx, dto.PasswordResetRequest{Email: "ana@example.com"}))
	link := mail.last(t).Body
	assert.Contains(t, link, "https://opostest.test/password-reset/")
	m := resetLinkPattern.FindStringSubmatch(link)
	require.Len(t, m, 3)
	uid, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	assert.Equal(t, user.ID, uint(uid))

	err = svc.ConfirmPasswordReset(dto.PasswordResetConfirmRequest{UID: user.ID, Token: "bogus", NewPassword: "new-password"})
	assert.ErrorIs(t, err, ErrValidation)

	clock = clock.Add(30 * time.Minute)
	require.NoError(t, svc.ConfirmPasswordReset(dto.PasswordResetConfirmRequest{UID: user.ID, Token: m[2], NewPassword: "new-password"}))

	_, err = svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "old-password"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "new-password"})
	assert.NoError(t, err)

	err = svc.ConfirmPasswordReset(dto.PasswordResetConfirmRequest{UID: user.ID, Token: m[2], NewPassword: "third-password"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPasswordResetLinkExpires(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	mail := &recordingSender{}
	clock := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	svc := newAccountService(db, mail, &clock)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), dto.PasswordResetRequest{Email: user.Email}))
	m := resetLinkPattern.FindStringSubmatch(mail.last(t).Body)
	require.Len(t, m, 3)

	clock = clock.Add(PasswordResetTTL + time.Second)
	err := svc.ConfirmPasswordReset(dto.PasswordResetConfirmRequest{UID: user.ID, Token: m[2], NewPassword: "new-password"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestContactForm(t *testing.T) {
	mail := &recordingSender{}
	svc := NewContactService(testConfig(), mail)

	err := svc.Send(context.Background(), dto.ContactRequest{
		Name: "Luis", Email: "luis@example.com", Phone: "600000000",
		Subject: "Duda", Message: "¿Hay temario de Justicia?",
	})
	require.NoError(t, err)
	msg := mail.last(t)
	assert.Equal(t, []string{"hola@opostest.test"}, msg.To)
	assert.Equal(t, "luis@example.com", msg.ReplyTo)
	assert.Equal(t, "[Contacto] Duda", msg.Subject)
	assert.Contains(t, msg.Body, "Teléfono: 600000000")

	failing := NewContactService(testConfig(), &recordingSender{err: errors.New("smtp down")})
	err = failing.Send(context.Background(), dto.ContactRequest{Name: "Luis", Email: "luis@example.com", Subject: "x", Message: "y"})
	assert.ErrorIs(t, err, ErrIntegration)

	unconfigured := NewContactService(&config.Config{}, mail)
	err = unconfigured.Send(context.Background(), dto.ContactRequest{Name: "Luis", Email: "luis@example.com", Subject: "x", Message: "y"})
	assert.ErrorIs(t, err, ErrIntegration)
}
