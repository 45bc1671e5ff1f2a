package handler

import (
	"Scribe/config"
	"Scribe/middleware"
	"Scribe/pkg/context"
	"Scribe/pkg/response"
	"Scribe/service"
	"Scribe/types"

	"github.com/gin-gonic/gin"
)

type Interaction struct {
	InteractionService service.IInteractionService
	Config             *config.Config
}

func (h *Interaction) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())

	likes := r.Group("/likes", authorize)
	likes.POST("/:article_id", context.Wrap(h.Like))
	likes.DELETE("/:article_id", context.Wrap(h.Unlike))

	dislikes := r.Group("/dislikes", authorize)
	dislikes.POST("/:article_id", context.Wrap(h.Dislike))
	dislikes.DELETE("/:article_id", context.Wrap(h.Undislike))
}

func (h *Interaction) Like(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}
	articleID, err := parseArticleID(c)
	if err != nil {
		return err
	}

	count, err := h.InteractionService.Like(c.Request.Context(), userID, articleID)
	if err != nil {
		return err
	}
	response.Created(c, types.InteractionResponse{Count: count})
	return nil
}

func (h *Interaction) Unlike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}
	articleID, err := parseArticleID(c)
	if err != nil {
		return err
	}

	count, err := h.InteractionService.Unlike(c.Request.Context(), userID, articleID)
	if err != nil {
		return err
	}
	response.Success(c, types.InteractionResponse{Count: count})
	return nil
}

func (h *Interaction) Dislike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}
	articleID, err := parseArticleID(c)
	if err != nil {
		return err
	}

	count, err := h.InteractionService.Dislike(c.Request.Context(), userID, articleID)
	if err != nil {
		return err
	}
	response.Created(c, types.InteractionResponse{Count: count})
	return nil
}

func (h *Interaction) Undislike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}
	articleID, err := parseArticleID(c)
	if err != nil {
		return err
	}

	count, err := h.InteractionService.Undislike(c.Request.Context(), userID, articleID)
	if err != nil {
		return err
	}
	response.Success(c, types.InteractionResponse{Count: count})
	return nil
}
