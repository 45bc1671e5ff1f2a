package handler

import (
	"strconv"

	"Scribe/config"
	"Scribe/middleware"
	"Scribe/pkg/context"
	"Scribe/pkg/response"
	"Scribe/service"
	"Scribe/types"

	"github.com/gin-gonic/gin"
)

type Article struct {
	ArticleService service.IArticleService
	Config         *config.Config
}

func (h *Article) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret, h.Config.Jwt.AccessTTL())
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/articles")
	g.GET("", context.Wrap(h.List))
	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("/:article_id", optional, context.Wrap(h.Detail))
	g.PUT("/:article_id", authorize, context.Wrap(h.Update))
	g.DELETE("/:article_id", authorize, context.Wrap(h.Delete))
}

// parseArticleID 路径中的文章ID，非数字一律按不存在处理
func parseArticleID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NotFound("文章不存在")
	}
	return id, nil
}

// queryInt 解析整数查询参数，格式错误返回 400
func queryInt(c *gin.Context, key string, defaultValue int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, response.BadRequest(key + " 必须是整数")
	}
	return value, nil
}

func queryUint64(c *gin.Context, key string) (uint64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, response.BadRequest(key + " 格式错误")
	}
	return value, nil
}

func (h *Article) List(c *gin.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	pageSize, err := queryInt(c, "page_size", 0)
	if err != nil {
		return err
	}
	authorID, err := queryUint64(c, "author_id")
	if err != nil {
		return err
	}
	categoryID, err := queryUint64(c, "category")
	if err != nil {
		return err
	}

	resp, err := h.ArticleService.List(c.Request.Context(), types.ListArticlesQuery{
		Page:       page,
		PageSize:   pageSize,
		AuthorID:   authorID,
		CategoryID: categoryID,
		Search:     c.Query("search"),
		Ordering:   c.Query("ordering"),
	})
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Article) Detail(c *gin.Context) error {
	articleID, err := parseArticleID(c)
	if err != nil {
		return err
	}

	viewerID := context.GetOptionalUserID(c)
	detail, err := h.ArticleService.Detail(c.Request.Context(), articleID, viewerID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (h *Article) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}

	var req types.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	detail, err := h.ArticleService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, gin.H{"article": detail})
	return nil
}

func (h *Article) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}
	articleID, err := parseArticleID(c)
	if err != nil {
		return err
	}

	var req types.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	detail, err := h.ArticleService.Update(c.Request.Context(), userID, articleID, &req)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (h *Article) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}
	articleID, err := parseArticleID(c)
	if err != nil {
		return err
	}

	if err := h.ArticleService.Delete(c.Request.Context(), userID, articleID); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}
