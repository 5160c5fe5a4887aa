package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "atelier_prints/internal/adapter/http/dto/request"
	response "atelier_prints/internal/adapter/http/dto/response"
	"atelier_prints/internal/usecase"
	"atelier_prints/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

// CartHandler handles HTTP requests for the cart store.

type CartHandler struct {
	cart         usecase.ICartUseCase
	configurator usecase.IConfiguratorUseCase
}

func NewCartHandler(cart usecase.ICartUseCase, configurator usecase.IConfiguratorUseCase) *CartHandler {
	return &CartHandler{cart: cart, configurator: configurator}
}

// GetCart returns the persisted cart; a cart never written before is empty.
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cart.GetCart(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// AddItem runs the configurator's terminal action: resolve the selection,
// snapshot it into a line item and append it to the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	productID := payload.ResolveProductID()
	if productID == "" {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.configurator.AddToCart(
		c.Request.Context(),
		c.Param("cart_id"),
		productID,
		printStyle(payload.Style),
		payload.SizeID,
		payload.FrameID,
		payload.Quantity,
	)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCart(cart))
}

// RemoveItem removes the line item at the given position. An out-of-range
// index is a silent no-op and still answers 200 with the unchanged cart.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.cart.RemoveItem(c.Request.Context(), c.Param("cart_id"), index)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	cart, err := h.cart.Clear(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// GetTotal backs the navigation badge: item count plus money total.
func (h *CartHandler) GetTotal(c *gin.Context) {
	cart, err := h.cart.GetCart(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCartTotal(cart))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID),
		errors.Is(err, usecase.ErrInvalidLineItem),
		errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidPrintStyle),
		errors.Is(err, usecase.ErrUnknownSizeOption),
		errors.Is(err, usecase.ErrUnknownFrameOption):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
