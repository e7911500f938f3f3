package service

import (
	"context"
	"errors"
	"testing"

	"github.com/opostest/backend/config"
	"github.com/opostest/backend/internal/billing"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	event     *billing.Event
	parseErr  error
	createErr error
	params    billing.CheckoutParams
}

func (f *fakeGateway) CreateCheckoutSession(_ context.Context, p billing.CheckoutParams) (string, error) {
	f.params = p
	if f.createErr != nil {
		return "", f.createErr
	}
	return "cs_test_123", nil
}

func (f *fakeGateway) ParseEvent([]byte, string) (*billing.Event, error) {
	return f.event, f.parseErr
}

func subscriptionConfig() *config.Config {
	cfg := testConfig()
	cfg.Stripe = config.Stripe{
		DefaultPriceID: "price_default",
		PlanPrices:     map[string]string{"oro": "price_oro"},
	}
	return cfg
}

func TestCheckout(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	gw := &fakeGateway{}
	svc := NewSubscriptionService(subscriptionConfig(), gw, repository.NewUserRepository(db), repository.NewSubscriptionRepository(db))

	resp, err := svc.Checkout(context.Background(), identityFor(user), dto.CheckoutRequest{Plan: "oro"})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", resp.SessionID)
	assert.Equal(t, "price_oro", gw.params.PriceID)
	assert.Equal(t, "ana@example.com", gw.params.Email)
	assert.Equal(t, "https://opostest.test/pago-exitoso?session_id={CHECKOUT_SESSION_ID}", gw.params.SuccessURL)
	assert.Equal(t, "https://opostest.test/precios", gw.params.CancelURL)

	_, err = svc.Checkout(context.Background(), identityFor(user), dto.CheckoutRequest{})
	require.NoError(t, err)
	assert.Equal(t, "price_default", gw.params.PriceID)

	gw.createErr = billing.ErrNotConfigured
	_, err = svc.Checkout(context.Background(), identityFor(user), dto.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrIntegration)

	_, err = svc.Checkout(context.Background(), nil, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestWebhookActivatesSubscription(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	gw := &fakeGateway{event: &billing.Event{
		ID:   "evt_1",
		Type: "checkout.session.completed",
		Checkout: &billing.CheckoutCompleted{
			Email:          "ANA@example.com",
			CustomerID:     "cus_1",
			SubscriptionID: "sub_1",
		},
	}}
	subs := repository.NewSubscriptionRepository(db)
	svc := NewSubscriptionService(subscriptionConfig(), gw, repository.NewUserRepository(db), subs)

	require.NoError(t, svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
	active, err := subs.IsActive(user.ID)
	require.NoError(t, err)
	assert.True(t, active)

	// Redelivery updates the same row.
	gw.event.Checkout.SubscriptionID = "sub_2"
	require.NoError(t, svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
	var rows []model.Subscription
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "sub_2", rows[0].StripeSubscriptionID)
}

func TestWebhookRejectionsAndIgnoredEvents(t *testing.T) {
	db := newTestDB(t)
	gw := &fakeGateway{}
	svc := NewSubscriptionService(subscriptionConfig(), gw, repository.NewUserRepository(db), repository.NewSubscriptionRepository(db))

	gw.parseErr = billing.ErrInvalidSignature
	err := svc.HandleWebhook(context.Background(), nil, "bad")
	assert.ErrorIs(t, err, ErrValidation)

	gw.parseErr = nil
	gw.event = &billing.Event{ID: "evt_2", Type: "invoice.paid"}
	assert.NoError(t, svc.HandleWebhook(context.Background(), nil, "sig"))

	gw.event = &billing.Event{
		ID:       "evt_3",
		Type:     "checkout.session.completed",
		Checkout: &billing.CheckoutCompleted{Email: "ghost@example.com", CustomerID: "cus_9"},
	}
	err = svc.HandleWebhook(context.Background(), nil, "sig")
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, errors.Is(err, ErrIntegration))
}
