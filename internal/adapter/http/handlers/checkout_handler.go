package handlers

import (
	"errors"
	"log"
	"net/http"

	request "atelier_prints/internal/adapter/http/dto/request"
	response "atelier_prints/internal/adapter/http/dto/response"
	"atelier_prints/internal/usecase"
	"atelier_prints/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler handles HTTP requests for the checkout flow: the totals
// quote rendered on every form view, submission, and confirmation lookup.

type CheckoutHandler struct {
	checkout usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkout: uc}
}

// GetQuote returns the totals block. Shipping and grand total are only
// reported once ?address_entered=true; before that the client renders
// "enter address".
func (h *CheckoutHandler) GetQuote(c *gin.Context) {
	cartID := c.Param("cart_id")
	addressEntered := c.Query("address_entered") == "true"

	quote, err := h.checkout.Quote(c.Request.Context(), cartID, addressEntered)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutQuote(cartID, quote))
}

// Submit runs the submission stage. Submitting an empty cart answers 409:
// the form stage is unreachable for an empty cart and a client that tries
// anyway must not get an order.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	cartID := c.Param("cart_id")
	log.Printf("[checkout][handler] submit start cart_id=%s", cartID)

	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand(cartID)
	if err != nil {
		log.Printf("[checkout][handler] payment method rejected cart_id=%s err=%v", cartID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Choose exactly one payment method", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.checkout.Submit(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[checkout][handler] submit failed cart_id=%s err=%v", cartID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] submit success cart_id=%s reference=%s", cartID, order.Reference)

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder looks a confirmation up by its reference.
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	order, err := h.checkout.GetOrderByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrMissingContact),
		errors.Is(err, usecase.ErrMissingAddress),
		errors.Is(err, usecase.ErrMissingCardDetails),
		errors.Is(err, usecase.ErrInvalidOrderRef):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
