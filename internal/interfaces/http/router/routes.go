package router

import (
	"github.com/gin-gonic/gin"

	"github.com/univendor/backend/internal/domain/identity"
	"github.com/univendor/backend/internal/interfaces/http/handler"
	"github.com/univendor/backend/internal/interfaces/http/middleware"
)

// AuthRoutes registers the passwordless login endpoints
type AuthRoutes struct {
	Handler *handler.AuthHandler
}

func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/send-otp", r.Handler.SendOtp)
	auth.POST("/verify-otp", r.Handler.VerifyOtp)
	auth.POST("/register", r.Handler.Register)
	auth.POST("/logout", r.Handler.Logout)
	auth.GET("/user", middleware.RequireAuth(), r.Handler.Me)
}

// AdminRoutes registers user administration, impersonation, vendor
// provisioning and custom domain management
type AdminRoutes struct {
	Users   *handler.UserHandler
	Vendors *handler.VendorHandler
	Domains *handler.CustomDomainHandler
}

func (r *AdminRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	administrative := middleware.RequireRoles(identity.RoleAdmin, identity.RoleSuperAdmin)
	superAdminOnly := middleware.RequireRoles(identity.RoleSuperAdmin)

	admin := rg.Group("/admin")

	admin.GET("/users", administrative, r.Users.List)
	admin.GET("/users/:id", administrative, r.Users.GetByID)
	admin.PATCH("/users/:id/role", superAdminOnly, r.Users.ChangeRole)
	admin.DELETE("/users/:id", superAdminOnly, r.Users.Delete)

	// Role guards here act on the effective identity, which during
	// impersonation is the target's. Starting an overlay is gated on the
	// fresh actor inside the service; exiting must stay reachable while
	// the effective role is not administrative, or the overlay could
	// never be removed.
	admin.POST("/impersonate/:id", middleware.RequireAuth(), r.Users.Impersonate)
	admin.POST("/exit-impersonation", middleware.RequireAuth(), r.Users.ExitImpersonation)

	admin.POST("/vendors/:id/generate-subdomain", superAdminOnly, r.Vendors.GenerateSubdomain)

	admin.GET("/custom-domains", superAdminOnly, r.Domains.List)
	admin.POST("/custom-domains", superAdminOnly, r.Domains.Create)
	admin.GET("/custom-domains/:id", superAdminOnly, r.Domains.GetByID)
	admin.PUT("/custom-domains/:id", superAdminOnly, r.Domains.UpdateStatus)
	admin.DELETE("/custom-domains/:id", superAdminOnly, r.Domains.Delete)
	admin.GET("/vendors/:id/custom-domains", superAdminOnly, r.Domains.ListByVendor)
}

// VendorRoutes registers vendor endpoints
type VendorRoutes struct {
	Handler *handler.VendorHandler
}

func (r *VendorRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	vendors := rg.Group("/vendors")
	vendors.GET("", r.Handler.List)
	vendors.GET("/my", middleware.RequireRoles(identity.RoleSeller), r.Handler.GetMine)
	vendors.GET("/:id", r.Handler.GetByID)

	adminOnly := middleware.RequireRoles(identity.RoleAdmin, identity.RoleSuperAdmin)
	vendors.POST("", middleware.RequireRoles(identity.RoleSuperAdmin), r.Handler.Create)
	vendors.PUT("/:id", adminOnly, r.Handler.Update)
	vendors.DELETE("/:id", adminOnly, r.Handler.Delete)
}

// CatalogRoutes registers product and category endpoints. Reads are
// public; writes are guarded per role inside the services.
type CatalogRoutes struct {
	Products   *handler.ProductHandler
	Categories *handler.CategoryHandler
}

func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.GET("", r.Products.List)
	products.GET("/:id", r.Products.GetByID)
	products.POST("", middleware.RequireAuth(), r.Products.Create)
	products.PUT("/:id", middleware.RequireAuth(), r.Products.Update)
	products.DELETE("/:id", middleware.RequireAuth(), r.Products.Delete)

	categories := rg.Group("/categories")
	categories.GET("", r.Categories.List)
	categories.GET("/:id", r.Categories.GetByID)
	categories.POST("", middleware.RequireAuth(), r.Categories.Create)
	categories.PATCH("/:id", middleware.RequireAuth(), r.Categories.Update)
	categories.DELETE("/:id", middleware.RequireAuth(), r.Categories.Delete)
}

// CartRoutes registers the buyer cart endpoints
type CartRoutes struct {
	Handler *handler.CartHandler
}

func (r *CartRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart", middleware.RequireAuth())
	cart.GET("", r.Handler.Get)
	cart.POST("", r.Handler.Add)
	cart.PUT("/:productId", r.Handler.UpdateQuantity)
	cart.DELETE("/:productId", r.Handler.Remove)
	cart.DELETE("", r.Handler.Clear)
}

// OrderRoutes registers checkout and order management endpoints
type OrderRoutes struct {
	Handler *handler.OrderHandler
}

func (r *OrderRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders", middleware.RequireAuth())
	orders.GET("", r.Handler.List)
	orders.GET("/:id", r.Handler.GetByID)
	orders.POST("/checkout", r.Handler.Checkout)
	orders.PUT("/:id/status", r.Handler.UpdateStatus)
}

// StorefrontRoutes registers the public storefront resolver
type StorefrontRoutes struct {
	Handler *handler.StorefrontHandler
}

func (r *StorefrontRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/storefront/by-domain", r.Handler.ResolveByDomain)
}

// SystemRoutes registers health and readiness endpoints
type SystemRoutes struct {
	Handler *handler.SystemHandler
}

func (r *SystemRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", r.Handler.Health)
	rg.GET("/ready", r.Handler.Ready)
}
