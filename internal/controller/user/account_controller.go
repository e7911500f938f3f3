package user

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/controller"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/service"
)

const maxWebhookBody = 1 << 16

type AccountController struct {
	accountService      service.AccountService
	contactService      service.ContactService
	subscriptionService service.SubscriptionService
}

func NewAccountController(
	accountService service.AccountService,
	contactService service.ContactService,
	subscriptionService service.SubscriptionService,
) *AccountController {
	return &AccountController{
		accountService:      accountService,
		contactService:      contactService,
		subscriptionService: subscriptionService,
	}
}

// Register godoc
// @Summary Create an account
// @Description The account stays inactive until the emailed 6 digit code is verified.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.UserDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid data or email/username in use"
// @Router /auth/register [post]
func (c *AccountController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.accountService.Register(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Register", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// VerifyEmail godoc
// @Summary Activate an account with the emailed code
// @Tags Accounts
// @Accept json
// @Produce json
// @Param verification body dto.VerifyEmailRequest true "Email and code"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired code"
// @Router /auth/verify [post]
func (c *AccountController) VerifyEmail(ctx *gin.Context) {
	var req dto.VerifyEmailRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.accountService.VerifyEmail(req)
	if err != nil {
		controller.RespondError(ctx, "VerifyEmail", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Login godoc
// @Summary Obtain an access token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Account not activated"
// @Router /auth/login [post]
func (c *AccountController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.accountService.Login(req)
	if err != nil {
		controller.RespondError(ctx, "Login", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Current user profile
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AccountController) Me(ctx *gin.Context) {
	resp, err := c.accountService.Me(auth.FromContext(ctx))
	if err != nil {
		controller.RespondError(ctx, "Me", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RequestPasswordReset godoc
// @Summary Email a password reset link
// @Description Always answers 200 so registered emails cannot be probed.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetRequest true "Email"
// @Success 200 {object} dto.MessageResponse
// @Router /auth/password-reset [post]
func (c *AccountController) RequestPasswordReset(ctx *gin.Context) {
	var req dto.PasswordResetRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	if err := c.accountService.RequestPasswordReset(ctx.Request.Context(), req); err != nil {
		controller.RespondError(ctx, "RequestPasswordReset", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "if the email is registered you will receive a reset link"})
}

// ConfirmPasswordReset godoc
// @Summary Set a new password with a reset token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetConfirmRequest true "uid, token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/password-reset/confirm [post]
func (c *AccountController) ConfirmPasswordReset(ctx *gin.Context) {
	var req dto.PasswordResetConfirmRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	if err := c.accountService.ConfirmPasswordReset(req); err != nil {
		controller.RespondError(ctx, "ConfirmPasswordReset", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "password updated"})
}

// Contact godoc
// @Summary Send a message through the contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body dto.ContactRequest true "Contact message"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse "Mail delivery failed"
// @Router /contact [post]
func (c *AccountController) Contact(ctx *gin.Context) {
	var req dto.ContactRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	if err := c.contactService.Send(ctx.Request.Context(), req); err != nil {
		controller.RespondError(ctx, "Contact", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "message sent"})
}

// Checkout godoc
// @Summary Start a Stripe checkout for a subscription plan
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param checkout body dto.CheckoutRequest true "Plan"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /billing/checkout [post]
func (c *AccountController) Checkout(ctx *gin.Context) {
	var req dto.CheckoutRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.subscriptionService.Checkout(ctx.Request.Context(), auth.FromContext(ctx), req)
	if err != nil {
		controller.RespondError(ctx, "Checkout", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// StripeWebhook godoc
// @Summary Stripe webhook receiver
// @Tags Billing
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /billing/webhook [post]
func (c *AccountController) StripeWebhook(ctx *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxWebhookBody))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Unreadable body"})
		return
	}
	err = c.subscriptionService.HandleWebhook(ctx.Request.Context(), payload, ctx.GetHeader("Stripe-Signature"))
	if err != nil {
		controller.RespondError(ctx, "StripeWebhook", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "received"})
}
