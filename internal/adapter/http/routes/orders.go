package routes

import (
	"net/http"

	"bistro_core/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders  = "/orders"
	PathKitchen = "/kitchen"
	PathSlots   = "/slots"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		orders.DELETE("/:id", orderHandler.CancelOrder)
	}
}

func addKitchenRoutes(rg *gin.RouterGroup, kitchenHandler *handlers.KitchenHandler) {
	kitchen := rg.Group(PathKitchen)
	{
		kitchen.GET("/status", kitchenHandler.GetKitchenStatus)
		kitchen.POST("/reconcile", kitchenHandler.Reconcile)
	}
}

func addSlotRoutes(rg *gin.RouterGroup, slotHandler *handlers.SlotHandler) {
	slots := rg.Group(PathSlots)
	{
		slots.GET("/:date", slotHandler.ListSlots)
	}
}
