package service

import (
	"context"
	"errors"

	"github.com/opostest/backend/config"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/billing"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
)

type SubscriptionService interface {
	Checkout(ctx context.Context, caller *auth.Identity, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	// HandleWebhook verifies and applies a Stripe event. Unhandled event types are ignored.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type subscriptionService struct {
	gateway          billing.Gateway
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	stripeCfg        config.Stripe
	frontendURL      string
}

func NewSubscriptionService(
	cfg *config.Config,
	gateway billing.Gateway,
	userRepo repository.UserRepository,
	subscriptionRepo repository.SubscriptionRepository,
) SubscriptionService {
	return &subscriptionService{
		gateway:          gateway,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		stripeCfg:        cfg.Stripe,
		frontendURL:      cfg.FrontendURL,
	}
}

func (s *subscriptionService) Checkout(ctx context.Context, caller *auth.Identity, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if !caller.Authenticated() {
		return nil, newError(ErrUnauthorized, "login required")
	}
	sessionID, err := s.gateway.CreateCheckoutSession(ctx, billing.CheckoutParams{
		PriceID:    s.stripeCfg.PriceFor(req.Plan),
		Email:      caller.Email,
		SuccessURL: s.frontendURL + "/pago-exitoso?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.frontendURL + "/precios",
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", caller.UserID).Str("plan", req.Plan).Msg("Checkout: gateway error")
		if errors.Is(err, billing.ErrNotConfigured) {
			return nil, newError(ErrIntegration, "payments are not available right now")
		}
		return nil, newError(ErrIntegration, "could not start checkout")
	}
	log.Info().Uint("userID", caller.UserID).Str("plan", req.Plan).Msg("Checkout session created")
	return &dto.CheckoutResponse{SessionID: sessionID}, nil
}

func (s *subscriptionService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	evt, err := s.gateway.ParseEvent(payload, signature)
	if err != nil {
		log.Warn().Err(err).Msg("Webhook rejected")
		return newError(ErrValidation, "invalid webhook payload")
	}
	if evt.Type != string(stripe.EventTypeCheckoutSessionCompleted) || evt.Checkout == nil {
		log.Debug().Str("eventID", evt.ID).Str("type", evt.Type).Msg("Webhook event ignored")
		return nil
	}

	completed := evt.Checkout
	user, err := s.userRepo.FindByEmail(completed.Email)
	if err != nil {
		log.Warn().Err(err).Str("eventID", evt.ID).Str("email", completed.Email).Msg("Webhook: no user for checkout email")
		return newError(ErrValidation, "no user registered with that email")
	}
	if _, err := s.subscriptionRepo.Upsert(user.ID, completed.CustomerID, completed.SubscriptionID); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Webhook: subscription upsert failed")
		return err
	}
	log.Info().
		Str("eventID", evt.ID).
		Uint("userID", user.ID).
		Str("customer", completed.CustomerID).
		Msg("Subscription activated")
	return nil
}
