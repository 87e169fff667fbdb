package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/univendor/backend/internal/domain/shared"
	"github.com/univendor/backend/internal/interfaces/http/dto"
)

// bindListFilter binds common pagination query parameters into a filter
func bindListFilter(c *gin.Context) (shared.Filter, error) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		return shared.Filter{}, err
	}
	return shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}, nil
}
