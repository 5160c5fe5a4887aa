package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atelier_prints/internal/adapter/http/handlers/mocks"
	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("without address omits shipping and grand total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.GET("/v1/carts/:cart_id/checkout", h.GetQuote)

		uc.EXPECT().Quote(gomock.Any(), "cart-1", false).Return(usecase.CheckoutQuote{
			Totals: entities.CheckoutTotals{Subtotal: 4300, ShippingCost: 150, GrandTotal: 4450},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/carts/cart-1/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["subtotal"] != 4300.0 {
			t.Fatalf("unexpected subtotal: %s", w.Body.String())
		}
		if _, ok := body["shipping_cost"]; ok {
			t.Fatalf("expected shipping_cost omitted: %s", w.Body.String())
		}
		if _, ok := body["grand_total"]; ok {
			t.Fatalf("expected grand_total omitted: %s", w.Body.String())
		}
	})

	t.Run("with address reports full totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.GET("/v1/carts/:cart_id/checkout", h.GetQuote)

		uc.EXPECT().Quote(gomock.Any(), "cart-1", true).Return(usecase.CheckoutQuote{
			Totals:         entities.CheckoutTotals{Subtotal: 5200, ShippingCost: 0, GrandTotal: 5200},
			AddressEntered: true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/carts/cart-1/checkout?address_entered=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["shipping_cost"] != 0.0 || body["grand_total"] != 5200.0 {
			t.Fatalf("unexpected totals: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const submitBody = `{
		"idempotency_key": "order-1",
		"contact": {"email": "ana@example.com"},
		"shipping": {"street": "Main St 1", "city": "Berlin", "postal_code": "10115"},
		"card": {"number": "4242424242424242", "expiry": "1227", "cvv": "123"}
	}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/carts/:cart_id/checkout", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts/cart-1/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("both payment methods rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/carts/:cart_id/checkout", h.Submit)

		body := `{
			"contact": {"email": "ana@example.com"},
			"shipping": {"street": "Main St 1", "city": "Berlin", "postal_code": "10115"},
			"card": {"number": "4242"},
			"bank_transfer": true
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/carts/cart-1/checkout", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INVALID_PAYMENT_METHOD" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("empty cart maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/carts/:cart_id/checkout", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.AssignableToTypeOf(usecase.SubmitOrderCommand{})).
			Return(entities.Order{}, usecase.ErrEmptyCart)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts/cart-1/checkout", bytes.NewBufferString(submitBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success answers 201 with confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/carts/:cart_id/checkout", h.Submit)

		order := entities.Order{
			ID:            "order-1",
			Reference:     "PH-MBA3K2QJ-7F",
			CartID:        "cart-1",
			Totals:        entities.CheckoutTotals{Subtotal: 4300, ShippingCost: 150, GrandTotal: 4450},
			PaymentMethod: entities.PaymentMethodCreditCard,
			CardLast4:     "4242",
			Status:        entities.OrderStatusConfirmed,
			CreatedAt:     time.Now().UTC(),
		}
		uc.EXPECT().Submit(gomock.Any(), gomock.AssignableToTypeOf(usecase.SubmitOrderCommand{})).DoAndReturn(
			func(_ any, cmd usecase.SubmitOrderCommand) (entities.Order, error) {
				if cmd.CartID != "cart-1" || cmd.IdempotencyKey != "order-1" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if cmd.CardNumber != "4242 4242 4242 4242" {
					t.Fatalf("expected masked card number, got %q", cmd.CardNumber)
				}
				return order, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts/cart-1/checkout", bytes.NewBufferString(submitBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["reference"] != "PH-MBA3K2QJ-7F" || body["card_last4"] != "4242" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if _, ok := body["bank_details"]; ok {
			t.Fatalf("expected no bank details on card order: %s", w.Body.String())
		}
	})

	t.Run("bank transfer confirmation carries transfer details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/carts/:cart_id/checkout", h.Submit)

		order := entities.Order{
			ID:            "order-2",
			Reference:     "PH-MBA3K2QJ-9C",
			PaymentMethod: entities.PaymentMethodBankTransfer,
			Status:        entities.OrderStatusConfirmed,
		}
		uc.EXPECT().Submit(gomock.Any(), gomock.AssignableToTypeOf(usecase.SubmitOrderCommand{})).Return(order, nil)

		body := `{
			"contact": {"email": "ana@example.com"},
			"shipping": {"street": "Main St 1", "city": "Berlin", "postal_code": "10115"},
			"bank_transfer": true
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/carts/cart-1/checkout", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		details, ok := resp["bank_details"].(map[string]any)
		if !ok {
			t.Fatalf("expected bank details: %s", w.Body.String())
		}
		if details["account_holder"] != "Atelier Prints Studio" {
			t.Fatalf("unexpected bank details: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:reference", h.GetOrder)

		uc.EXPECT().GetOrderByReference(gomock.Any(), "PH-X-Y").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/PH-X-Y", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:reference", h.GetOrder)

		uc.EXPECT().GetOrderByReference(gomock.Any(), "PH-X-Y").Return(entities.Order{ID: "order-1", Reference: "PH-X-Y", Status: entities.OrderStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/PH-X-Y", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["order_id"] != "order-1" || body["status"] != "confirmed" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
