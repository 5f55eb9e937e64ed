package routes

import (
	"toolbase/hotels"
	"toolbase/middleware"
	"toolbase/orders"
	"toolbase/payments"
	"toolbase/ratelim"
	"toolbase/reviews"
	"toolbase/tools"
	"toolbase/users"

	"github.com/julienschmidt/httprouter"
)

func AddToolRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/tools", tools.GetTools)
	router.GET("/tool/:id", tools.GetTool)
	router.POST("/addTool", rl.Limit(tools.AddTool))
	router.DELETE("/tool/:id", middleware.Authenticate(tools.DeleteTool))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/purchase", rl.Limit(orders.CreatePurchase))
	router.GET("/allOrders", orders.GetAllOrders)
	router.GET("/myOrders",
		middleware.Chain(
			middleware.Authenticate,
			middleware.RequireSelf,
		)(orders.GetMyOrders),
	)
	router.GET("/myOrder/:id", middleware.Authenticate(orders.GetMyOrder))
	router.DELETE("/myOrder/:id", middleware.Authenticate(orders.DeleteMyOrder))
	router.PATCH("/order/:id", middleware.Authenticate(orders.MarkPaid))
	router.PATCH("/shiftNow/:id", middleware.Authenticate(orders.MarkShipped))
}

func AddUserRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.PUT("/user/:email", rl.Limit(users.UpsertUser))
	router.GET("/user/:email", users.GetProfile)
	router.GET("/users", middleware.Authenticate(users.ListUsers))
	router.PUT("/user/:email/admin",
		middleware.Chain(
			middleware.Authenticate,
			middleware.RequireAdmin,
		)(users.GrantAdmin),
	)
	router.GET("/admin/:email", middleware.Authenticate(users.CheckAdmin))
	router.GET("/myProfile/:email", users.GetProfile)
	router.PUT("/myProfile/:email", users.UpdateProfile)
}

func AddReviewRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/reviews", reviews.GetReviews)
	router.POST("/review", rl.Limit(reviews.AddReview))
}

func AddPaymentRoutes(router *httprouter.Router) {
	router.POST("/create-payment-intent", middleware.Authenticate(payments.CreatePaymentIntent))
}

func AddHotelRoutes(router *httprouter.Router) {
	router.GET("/hotels", hotels.GetHotels)
}
