package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	vendorapp "github.com/univendor/backend/internal/application/vendor"
)

// CustomDomainHandler handles custom domain administration endpoints
type CustomDomainHandler struct {
	BaseHandler
	domainService *vendorapp.DomainService
}

// NewCustomDomainHandler creates a new CustomDomainHandler
func NewCustomDomainHandler(domainService *vendorapp.DomainService) *CustomDomainHandler {
	return &CustomDomainHandler{domainService: domainService}
}

// List returns all custom domains
func (h *CustomDomainHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	domains, err := h.domainService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, domains)
}

// ListByVendor returns the custom domains linked to one vendor
func (h *CustomDomainHandler) ListByVendor(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID format")
		return
	}

	domains, err := h.domainService.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, domains)
}

// Create links a new custom domain to a vendor
func (h *CustomDomainHandler) Create(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req vendorapp.CreateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	domain, err := h.domainService.Create(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, domain)
}

// GetByID returns a single custom domain
func (h *CustomDomainHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid domain ID format")
		return
	}

	domain, err := h.domainService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, domain)
}

// UpdateStatus moves a custom domain through its verification lifecycle
func (h *CustomDomainHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid domain ID format")
		return
	}

	var req vendorapp.UpdateDomainStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	domain, err := h.domainService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, domain)
}

// Delete unlinks and removes a custom domain
func (h *CustomDomainHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid domain ID format")
		return
	}

	if err := h.domainService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
