package main

import (
	"github.com/gin-gonic/gin"
	"discount-club.backend/internal/domain/entities"
	"discount-club.backend/internal/interfaces/http/handlers"
	"discount-club.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	customerHandler     *handlers.CustomerHandler
	merchantHandler     *handlers.MerchantHandler
	productHandler      *handlers.ProductHandler
	cartHandler         *handlers.CartHandler
	orderHandler        *handlers.OrderHandler
	redemptionHandler   *handlers.RedemptionHandler
	principalMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	v1.Use(d.principalMiddleware)
	{
		// Customer routes (tenant staff; global passes everywhere)
		customers := v1.Group("/customers")
		customers.Use(middleware.RequirePrincipalType(entities.PrincipalTypeProvider))
		{
			customers.POST("", d.customerHandler.Create)
			customers.GET("", d.customerHandler.List)
			customers.GET("/:id", d.customerHandler.Get)
		}

		// Merchant routes
		merchants := v1.Group("/merchants")
		merchants.Use(middleware.RequirePrincipalType(entities.PrincipalTypeProvider))
		{
			merchants.POST("", d.merchantHandler.Create)
			merchants.GET("", d.merchantHandler.List)
			merchants.DELETE("/:id", d.merchantHandler.Deactivate)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", d.productHandler.List)
			products.POST("", middleware.RequirePrincipalType(entities.PrincipalTypeProvider, entities.PrincipalTypeMerchant), d.productHandler.Create)
		}

		// Cart routes (customers act on their own cart; staff may pass
		// an explicit customerId)
		cart := v1.Group("/cart")
		{
			cart.GET("", d.cartHandler.View)
			cart.POST("/items", d.cartHandler.AddItem)
			cart.PUT("/items/:productId", d.cartHandler.UpdateQuantity)
			cart.DELETE("/items/:productId", d.cartHandler.RemoveItem)
			cart.DELETE("", d.cartHandler.Clear)
		}

		// Checkout and order lookup
		v1.POST("/checkout", d.orderHandler.Checkout)
		orders := v1.Group("/orders")
		{
			orders.GET("", d.orderHandler.List)
			orders.GET("/:code", d.orderHandler.GetByCode)
		}

		// In-person redemption (merchant staff)
		redemptions := v1.Group("/redemptions")
		redemptions.Use(middleware.RequirePrincipalType(entities.PrincipalTypeMerchant))
		{
			redemptions.POST("/:code/confirm", d.redemptionHandler.Confirm)
		}
	}
}
