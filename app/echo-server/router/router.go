package router

import (
	"shopMate/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/guest-session", handler.GuestSession)

	users.POST("/logout", handler.Logout, authRequired)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupInteractionRoutes(api *echo.Group, handler *rest.InteractionHandler, authRequired echo.MiddlewareFunc) {
	interactions := api.Group("/interactions", authRequired)

	interactions.POST("", handler.Record)
	interactions.GET("", handler.Recent)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations")

	reco.GET("/popular", handler.Popular)

	reco.GET("", handler.Recommend, authRequired)
	reco.GET("/profile", handler.Profile, authRequired)
}
