package handler

import (
	"Scribe/pkg/context"
	"Scribe/pkg/response"
	"Scribe/service"

	"github.com/gin-gonic/gin"
)

type Category struct {
	CategoryService service.ICategoryService
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	r.GET("/categories", context.Wrap(h.Categories))
	r.GET("/tags/:category", context.Wrap(h.CategoryTags))
}

func (h *Category) Categories(c *gin.Context) error {
	categories, err := h.CategoryService.Categories(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, categories)
	return nil
}

func (h *Category) CategoryTags(c *gin.Context) error {
	resp, err := h.CategoryService.CategoryTags(c.Request.Context(), c.Param("category"))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
