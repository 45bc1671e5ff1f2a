package service

import (
	"context"
	"errors"

	"Scribe/dao"
	"Scribe/pkg/response"

	"gorm.io/gorm"
)

var _ IInteractionService = (*InteractionService)(nil)

type IInteractionService interface {
	Like(ctx context.Context, userID, articleID uint64) (int64, error)
	Unlike(ctx context.Context, userID, articleID uint64) (int64, error)
	Dislike(ctx context.Context, userID, articleID uint64) (int64, error)
	Undislike(ctx context.Context, userID, articleID uint64) (int64, error)
}

type InteractionService struct {
	ArticleDAO *dao.ArticleDAO
	LikeDAO    *dao.LikeDAO
	DislikeDAO *dao.DislikeDAO
}

func (s *InteractionService) checkArticle(ctx context.Context, articleID uint64) error {
	exist, err := s.ArticleDAO.IsExist(ctx, "id = ?", articleID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("文章不存在")
	}
	return nil
}

func (s *InteractionService) likeCount(ctx context.Context, articleID uint64) (int64, error) {
	article, err := s.ArticleDAO.FindByID(ctx, articleID)
	if err != nil {
		return 0, err
	}
	return article.LikeCount, nil
}

func (s *InteractionService) dislikeCount(ctx context.Context, articleID uint64) (int64, error) {
	article, err := s.ArticleDAO.FindByID(ctx, articleID)
	if err != nil {
		return 0, err
	}
	return article.DislikeCount, nil
}

// Like 点赞，重复点赞返回冲突而不是叠加计数
func (s *InteractionService) Like(ctx context.Context, userID, articleID uint64) (int64, error) {
	if err := s.checkArticle(ctx, articleID); err != nil {
		return 0, err
	}

	liked, err := s.LikeDAO.Exists(ctx, userID, articleID)
	if err != nil {
		return 0, err
	}
	if liked {
		return 0, response.Conflict("已点赞过该文章")
	}

	if err := s.LikeDAO.Add(ctx, userID, articleID); err != nil {
		// 并发下唯一键兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, response.Conflict("已点赞过该文章")
		}
		return 0, err
	}
	return s.likeCount(ctx, articleID)
}

// Unlike 取消点赞，没点过赞时不改动计数
func (s *InteractionService) Unlike(ctx context.Context, userID, articleID uint64) (int64, error) {
	if err := s.checkArticle(ctx, articleID); err != nil {
		return 0, err
	}
	if err := s.LikeDAO.Remove(ctx, userID, articleID); err != nil {
		return 0, err
	}
	return s.likeCount(ctx, articleID)
}

// Dislike 点踩，与点赞相互独立
func (s *InteractionService) Dislike(ctx context.Context, userID, articleID uint64) (int64, error) {
	if err := s.checkArticle(ctx, articleID); err != nil {
		return 0, err
	}

	disliked, err := s.DislikeDAO.Exists(ctx, userID, articleID)
	if err != nil {
		return 0, err
	}
	if disliked {
		return 0, response.Conflict("已点踩过该文章")
	}

	if err := s.DislikeDAO.Add(ctx, userID, articleID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, response.Conflict("已点踩过该文章")
		}
		return 0, err
	}
	return s.dislikeCount(ctx, articleID)
}

// Undislike 取消点踩
func (s *InteractionService) Undislike(ctx context.Context, userID, articleID uint64) (int64, error) {
	if err := s.checkArticle(ctx, articleID); err != nil {
		return 0, err
	}
	if err := s.DislikeDAO.Remove(ctx, userID, articleID); err != nil {
		return 0, err
	}
	return s.dislikeCount(ctx, articleID)
}
