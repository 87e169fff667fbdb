package handler

import (
	"github.com/gin-gonic/gin"

	vendorapp "github.com/univendor/backend/internal/application/vendor"
)

// StorefrontHandler resolves the public storefront for a host
type StorefrontHandler struct {
	BaseHandler
	storefrontService *vendorapp.StorefrontService
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(storefrontService *vendorapp.StorefrontService) *StorefrontHandler {
	return &StorefrontHandler{storefrontService: storefrontService}
}

// ResolveByDomain returns the storefront for the requesting host. The
// domain query parameter overrides the Host header, which lets a
// frontend proxy resolve storefronts on behalf of custom domains.
func (h *StorefrontHandler) ResolveByDomain(c *gin.Context) {
	host := c.Query("domain")
	if host == "" {
		host = c.Request.Host
	}

	storefront, err := h.storefrontService.ResolveByHost(c.Request.Context(), host)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, storefront)
}
