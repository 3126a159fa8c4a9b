package handlers

import "github.com/gin-gonic/gin"

// Router mounts every API endpoint
type Router struct {
	Products *ProductHandler
	Accounts *AccountHandler
	Orders   *OrderHandler
	Health   *HealthHandler

	// OptionalAuth runs before the purchase route; nil skips it
	OptionalAuth gin.HandlerFunc
}

func (rt Router) Register(r gin.IRouter) {
	r.GET("/health", rt.Health.CheckConnection)

	products := r.Group("/productos")
	{
		products.GET("", rt.Products.GetAllProducts)
		products.POST("", rt.Products.CreateProduct)
		products.GET("/buscar", rt.Products.SearchProducts)
		products.GET("/:id", rt.Products.GetProduct)
		products.PUT("/:id", rt.Products.UpdateProduct)
		products.DELETE("/:id", rt.Products.DeleteProduct)

		purchase := []gin.HandlerFunc{rt.Products.PurchaseProduct}
		if rt.OptionalAuth != nil {
			purchase = append([]gin.HandlerFunc{rt.OptionalAuth}, purchase...)
		}
		products.POST("/comprar/:id", purchase...)
	}

	r.POST("/usuarios", rt.Accounts.RegisterUser)
	r.POST("/usuarios/login", rt.Accounts.LoginUser)

	r.GET("/pedidos", rt.Orders.GetOrders)
	r.PUT("/pedidos/:id", rt.Orders.UpdateOrderStatus)

	r.GET("/ventas", rt.Orders.GetSales)
	r.GET("/ventas/:usuario", rt.Orders.GetSales)
}
