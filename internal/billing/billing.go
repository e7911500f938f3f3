// Package billing wraps the Stripe checkout and webhook APIs.
package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/opostest/backend/config"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const TrialDays = 7

var (
	ErrNotConfigured    = errors.New("payments are not configured")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedEvent   = errors.New("malformed webhook event")
)

type CheckoutParams struct {
	PriceID    string
	Email      string
	SuccessURL string
	CancelURL  string
}

// CheckoutCompleted is the part of checkout.session.completed we act on.
type CheckoutCompleted struct {
	Email          string
	CustomerID     string
	SubscriptionID string
}

type Event struct {
	ID   string
	Type string

	// Checkout is set only for checkout.session.completed.
	Checkout *CheckoutCompleted
}

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (string, error)
	ParseEvent(payload []byte, signature string) (*Event, error)
}

type stripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(cfg *config.Config) Gateway {
	if cfg.Stripe.SecretKey == "" {
		log.Warn().Msg("STRIPE_SECRET_KEY is not set, checkout is disabled")
	}
	sc := &client.API{}
	sc.Init(cfg.Stripe.SecretKey, nil)
	return &stripeGateway{api: sc, webhookSecret: cfg.Stripe.WebhookSecret}
}

func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (string, error) {
	if p.PriceID == "" {
		return "", fmt.Errorf("%w: no price configured", ErrNotConfigured)
	}
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(p.PriceID), Quantity: stripe.Int64(1)},
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(TrialDays),
		},
		SuccessURL:    stripe.String(p.SuccessURL),
		CancelURL:     stripe.String(p.CancelURL),
		CustomerEmail: stripe.String(p.Email),
	}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.ID, nil
}

func (g *stripeGateway) ParseEvent(payload []byte, signature string) (*Event, error) {
	if g.webhookSecret == "" {
		return nil, fmt.Errorf("%w: webhook secret missing", ErrNotConfigured)
	}
	evt, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return decodeEvent(evt)
}

func decodeEvent(evt stripe.Event) (*Event, error) {
	out := &Event{ID: evt.ID, Type: string(evt.Type)}
	if evt.Type != stripe.EventTypeCheckoutSessionCompleted {
		return out, nil
	}
	if evt.Data == nil {
		return nil, ErrMalformedEvent
	}
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(evt.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	completed := &CheckoutCompleted{}
	if sess.CustomerDetails != nil {
		completed.Email = sess.CustomerDetails.Email
	}
	if completed.Email == "" {
		completed.Email = sess.CustomerEmail
	}
	if sess.Customer != nil {
		completed.CustomerID = sess.Customer.ID
	}
	if sess.Subscription != nil {
		completed.SubscriptionID = sess.Subscription.ID
	}
	out.Checkout = completed
	return out, nil
}
