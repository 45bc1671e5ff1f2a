package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"Scribe/dao"
	"Scribe/models"
	"Scribe/pkg/response"
	"Scribe/pkg/snowflake"
	"Scribe/types"

	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	List(ctx context.Context, articleID uint64) ([]*types.CommentItem, error)
	Create(ctx context.Context, userID, articleID uint64, content string) (*types.CommentItem, error)
	Delete(ctx context.Context, userID, commentID uint64) error
}

type CommentService struct {
	CommentDAO *dao.CommentDAO
	ArticleDAO *dao.ArticleDAO
	UserDAO    *dao.UserDAO
	ProfileDAO *dao.ProfileDAO
}

// List 文章评论列表，批量带出作者信息
func (s *CommentService) List(ctx context.Context, articleID uint64) ([]*types.CommentItem, error) {
	comments, err := s.CommentDAO.FindByArticleID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	result := make([]*types.CommentItem, 0, len(comments))
	if len(comments) == 0 {
		return result, nil
	}

	authorIDs := make([]uint64, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.AuthorID)
	}
	userMap, err := s.UserDAO.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	profileMap, err := s.ProfileDAO.FindByUserIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	for _, c := range comments {
		item := &types.CommentItem{
			ID:         c.ID,
			AuthorID:   c.AuthorID,
			PubTime:    c.PubTime,
			Content:    c.Content,
			ProfilePic: picURL(profileMap[c.AuthorID]),
		}
		if u := userMap[c.AuthorID]; u != nil {
			item.Author = u.Username
		}
		result = append(result, item)
	}
	return result, nil
}

// Create 发布评论，文章必须存在
func (s *CommentService) Create(ctx context.Context, userID, articleID uint64, content string) (*types.CommentItem, error) {
	n := utf8.RuneCountInString(content)
	if n < 5 || n > 300 {
		return nil, response.BadRequest("评论长度应在5到300个字符之间")
	}

	exist, err := s.ArticleDAO.IsExist(ctx, "id = ?", articleID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("文章不存在")
	}

	comment := &models.Comment{
		ID:        uint64(snowflake.GenID()),
		ArticleID: articleID,
		AuthorID:  userID,
		Content:   content,
		PubTime:   time.Now(),
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	item := &types.CommentItem{
		ID:       comment.ID,
		AuthorID: userID,
		PubTime:  comment.PubTime,
		Content:  comment.Content,
	}
	if u, err := s.UserDAO.FindByID(ctx, userID); err == nil {
		item.Author = u.Username
	}
	return item, nil
}

// Delete 仅评论作者可删除
func (s *CommentService) Delete(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.CommentDAO.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("评论不存在")
		}
		return err
	}
	if comment.AuthorID != userID {
		return response.Forbidden("无权限删除此评论")
	}
	return s.CommentDAO.Repo.Delete(ctx, "id = ?", commentID)
}
