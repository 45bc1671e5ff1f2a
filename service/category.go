package service

import (
	"context"
	"errors"

	"Scribe/dao"
	"Scribe/dao/cache"
	"Scribe/pkg/response"
	"Scribe/types"

	"gorm.io/gorm"
)

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	Categories(ctx context.Context) ([]types.CategoryItem, error)
	CategoryTags(ctx context.Context, category string) (*types.CategoryTagsResponse, error)
}

type CategoryService struct {
	CategoryDAO *dao.CategoryDAO
	TagDAO      *dao.TagDAO
	Cache       *cache.CategoryCache
}

// Categories 分类列表，优先读缓存
func (s *CategoryService) Categories(ctx context.Context) ([]types.CategoryItem, error) {
	if items := s.Cache.GetCategoryList(ctx); items != nil {
		return items, nil
	}

	categories, err := s.CategoryDAO.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]types.CategoryItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, types.CategoryItem{ID: c.ID, Name: c.Name})
	}

	s.Cache.SetCategoryList(ctx, items)
	return items, nil
}

// CategoryTags 分类下的标签列表，优先读缓存
func (s *CategoryService) CategoryTags(ctx context.Context, category string) (*types.CategoryTagsResponse, error) {
	if resp := s.Cache.GetCategoryTags(ctx, category); resp != nil {
		return resp, nil
	}

	cat, err := s.CategoryDAO.FindByName(ctx, category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("分类不存在")
		}
		return nil, err
	}

	tags, err := s.TagDAO.FindByCategoryID(ctx, cat.ID)
	if err != nil {
		return nil, err
	}
	resp := &types.CategoryTagsResponse{Tags: make([]types.TagItem, 0, len(tags))}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, types.TagItem{TagID: t.ID, Tag: t.Name})
	}

	s.Cache.SetCategoryTags(ctx, category, resp)
	return resp, nil
}
