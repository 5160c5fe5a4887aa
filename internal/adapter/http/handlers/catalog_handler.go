package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "atelier_prints/internal/adapter/http/dto/request"
	response "atelier_prints/internal/adapter/http/dto/response"
	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/usecase"
	"atelier_prints/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for products, print options and
// configurator quotes.

type CatalogHandler struct {
	catalog      usecase.ICatalogUseCase
	configurator usecase.IConfiguratorUseCase
}

func NewCatalogHandler(catalog usecase.ICatalogUseCase, configurator usecase.IConfiguratorUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, configurator: configurator}
}

// ListProducts returns the gallery. A failing catalog degrades to an empty
// list rather than an error page; the client shows its loading/error state.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list failed, degrading to empty err=%v", err)
		c.JSON(http.StatusOK, response.FromProducts(nil))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.catalog.GetProduct(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

func (h *CatalogHandler) GetOptions(c *gin.Context) {
	opts, err := h.catalog.GetOptions(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOptions(opts))
}

// Quote prices a selection for a product. Each configurator transition calls
// this for its synchronous price recompute.
func (h *CatalogHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	productID := c.Param("product_id")
	sel, price, err := h.configurator.Quote(
		c.Request.Context(),
		productID,
		printStyle(payload.Style),
		payload.SizeID,
		payload.FrameID,
	)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(productID, sel, price))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID),
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

func printStyle(s string) entities.PrintStyle {
	return entities.PrintStyle(strings.TrimSpace(s))
}
