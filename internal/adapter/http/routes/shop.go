package routes

import (
	"atelier_prints/internal/adapter/http/handlers"
	"atelier_prints/internal/adapter/ws"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathCarts    = "/carts"
	PathOrders   = "/orders"
)

func addShopRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, cartHandler *handlers.CartHandler, checkoutHandler *handlers.CheckoutHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:product_id", catalogHandler.GetProduct)
		products.POST("/:product_id/quote", catalogHandler.Quote)
	}

	rg.GET("/options", catalogHandler.GetOptions)

	carts := rg.Group(PathCarts)
	{
		carts.GET("/:cart_id", cartHandler.GetCart)
		carts.POST("/:cart_id/items", cartHandler.AddItem)
		carts.DELETE("/:cart_id/items/:index", cartHandler.RemoveItem)
		carts.DELETE("/:cart_id", cartHandler.ClearCart)
		carts.GET("/:cart_id/total", cartHandler.GetTotal)

		carts.GET("/:cart_id/checkout", checkoutHandler.GetQuote)
		carts.POST("/:cart_id/checkout", checkoutHandler.Submit)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:reference", checkoutHandler.GetOrder)
	}
}

func addCartFeedRoutes(rg *gin.RouterGroup, hub *ws.Hub) {
	rg.GET("/ws/carts/:cart_id", hub.Handle)
}
