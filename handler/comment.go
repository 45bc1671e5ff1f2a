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

type Comment struct {
	CommentService service.ICommentService
	Config         *config.Config
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())

	g := r.Group("/articles/:article_id/comments")
	g.GET("", context.Wrap(h.List))
	g.POST("", authorize, context.Wrap(h.Create))
	g.DELETE("/:comment_id", authorize, context.Wrap(h.Delete))
}

func (h *Comment) List(c *gin.Context) error {
	articleID, err := parseArticleID(c)
	if err != nil {
		return err
	}

	comments, err := h.CommentService.List(c.Request.Context(), articleID)
	if err != nil {
		return err
	}
	response.Success(c, comments)
	return nil
}

func (h *Comment) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}
	articleID, err := parseArticleID(c)
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	comment, err := h.CommentService.Create(c.Request.Context(), userID, articleID, req.Content)
	if err != nil {
		return err
	}
	response.Created(c, comment)
	return nil
}

func (h *Comment) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		return response.NotFound("评论不存在")
	}

	if err := h.CommentService.Delete(c.Request.Context(), userID, commentID); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}
