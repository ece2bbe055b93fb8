package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/bandoggie/backend/internal/middleware/auth"
)

type Deps struct {
	Auth      *AuthHTTP
	Recovery  *RecoveryHTTP
	Principal *PrincipalHTTP
	Cart      *CartHTTP
	Order     *OrderHTTP
	Catalog   *CatalogHTTP
	Review    *ReviewHTTP
	Guest     *GuestHTTP

	SessionSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	session := &authmw.SessionMiddleware{Secret: d.SessionSecret}

	// auth
	e.POST("/login", d.Auth.Login)
	e.POST("/logout", d.Auth.Logout)

	recovery := e.Group("/passwordRecovery")
	recovery.POST("/requestCode", d.Recovery.RequestCode)
	recovery.POST("/verifyCode", d.Recovery.VerifyCode)
	recovery.POST("/newPassword", d.Recovery.NewPassword)

	// registration + email confirmation
	e.POST("/clients", d.Principal.RegisterClient)
	e.POST("/vets", d.Principal.RegisterVet)
	e.POST("/register/verifyCode", d.Recovery.ConfirmEmail)

	clients := e.Group("/clients", session.RequireEmployee)
	clients.GET("", d.Principal.ListClients)
	clients.GET("/:id", d.Principal.GetClient)
	clients.PUT("/:id", d.Principal.UpdateClient)
	clients.DELETE("/:id", d.Principal.DeleteClient)

	vets := e.Group("/vets", session.RequireEmployee)
	vets.GET("", d.Principal.ListVets)
	vets.GET("/:id", d.Principal.GetVet)
	vets.PUT("/:id", d.Principal.UpdateVet)
	vets.DELETE("/:id", d.Principal.DeleteVet)

	employees := e.Group("/employees", session.RequireEmployee)
	employees.POST("", d.Principal.RegisterEmployee)
	employees.GET("", d.Principal.ListEmployees)
	employees.GET("/:id", d.Principal.GetEmployee)
	employees.PUT("/:id", d.Principal.UpdateEmployee)
	employees.DELETE("/:id", d.Principal.DeleteEmployee)

	// cart
	cart := e.Group("/cart", session.RequireSession)
	cart.POST("", d.Cart.CreateCart)
	cart.GET("", d.Cart.ListCarts)
	cart.GET("/stats", d.Cart.Stats)
	cart.GET("/:id", d.Cart.GetCart)
	cart.PUT("/:id", d.Cart.UpdateCart)
	cart.PUT("/:id/clear", d.Cart.Clear)
	cart.POST("/:id/products", d.Cart.AddItem)
	cart.DELETE("/:id/products/:productId", d.Cart.RemoveItem)
	cart.DELETE("/:id", d.Cart.DeleteCart)

	// orders
	orders := e.Group("/orders", session.RequireSession)
	orders.POST("", d.Order.CreateOrder)
	orders.GET("", d.Order.ListOrders)
	orders.GET("/stats", d.Order.Stats)
	orders.GET("/date-range", d.Order.ListByDateRange)
	orders.GET("/payment/:method", d.Order.ListByPayment)
	orders.GET("/:id", d.Order.GetOrder)
	orders.PUT("/:id", d.Order.UpdateOrder)
	orders.DELETE("/:id", d.Order.DeleteOrder)

	// catalog
	e.GET("/products", d.Catalog.ListProducts)
	e.GET("/products/search", d.Catalog.SearchProducts)
	e.GET("/products/:id", d.Catalog.GetProduct)
	e.GET("/categories", d.Catalog.ListCategories)
	e.GET("/holidays", d.Catalog.ListHolidays)

	catalogAdmin := e.Group("", session.RequireEmployee)
	catalogAdmin.POST("/products", d.Catalog.CreateProduct)
	catalogAdmin.PUT("/products/:id", d.Catalog.UpdateProduct)
	catalogAdmin.DELETE("/products/:id", d.Catalog.DeleteProduct)
	catalogAdmin.POST("/categories", d.Catalog.CreateCategory)
	catalogAdmin.PUT("/categories/:id", d.Catalog.UpdateCategory)
	catalogAdmin.DELETE("/categories/:id", d.Catalog.DeleteCategory)
	catalogAdmin.POST("/holidays", d.Catalog.CreateHoliday)
	catalogAdmin.PUT("/holidays/:id", d.Catalog.UpdateHoliday)
	catalogAdmin.DELETE("/holidays/:id", d.Catalog.DeleteHoliday)

	// reviews
	e.GET("/reviews", d.Review.ListReviews)
	e.POST("/reviews", d.Review.CreateReview, session.RequireSession)
	e.PUT("/reviews/:id", d.Review.UpdateReview, session.RequireSession)
	e.DELETE("/reviews/:id", d.Review.DeleteReview, session.RequireEmployee)

	// guest purchase records
	e.POST("/guests/retail", d.Guest.CreateRetailGuest)
	e.POST("/guests/wholesale", d.Guest.CreateWholesaleGuest)

	guests := e.Group("/guests", session.RequireEmployee)
	guests.GET("/retail", d.Guest.ListRetailGuests)
	guests.GET("/wholesale", d.Guest.ListWholesaleGuests)
	guests.DELETE("/retail/:id", d.Guest.DeleteRetailGuest)
	guests.DELETE("/wholesale/:id", d.Guest.DeleteWholesaleGuest)
}
