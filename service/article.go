package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"Scribe/dao"
	"Scribe/models"
	"Scribe/pkg/response"
	"Scribe/pkg/snowflake"
	"Scribe/types"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 16
	maxPageSize     = 100

	// 列表页正文截断长度（按字符数）
	listContentLimit = 150
)

// 可排序字段白名单，参数可带 "-" 前缀表示倒序
var orderableFields = map[string]bool{
	"pub_time":      true,
	"updated_time":  true,
	"views":         true,
	"like_count":    true,
	"dislike_count": true,
}

var _ IArticleService = (*ArticleService)(nil)

type IArticleService interface {
	List(ctx context.Context, q types.ListArticlesQuery) (*types.ListArticlesResponse, error)
	Detail(ctx context.Context, articleID uint64, viewerID uint64) (*types.ArticleDetail, error)
	Create(ctx context.Context, userID uint64, req *types.CreateArticleRequest) (*types.ArticleDetail, error)
	Update(ctx context.Context, userID uint64, articleID uint64, req *types.UpdateArticleRequest) (*types.ArticleDetail, error)
	Delete(ctx context.Context, userID uint64, articleID uint64) error
}

type ArticleService struct {
	ArticleDAO  *dao.ArticleDAO
	UserDAO     *dao.UserDAO
	ProfileDAO  *dao.ProfileDAO
	CategoryDAO *dao.CategoryDAO
	TagDAO      *dao.TagDAO
	CommentDAO  *dao.CommentDAO
	LikeDAO     *dao.LikeDAO
	DislikeDAO  *dao.DislikeDAO
}

// parseOrdering 把排序参数转成 SQL 排序表达式，字段必须在白名单内
func parseOrdering(ordering string) (string, error) {
	if ordering == "" {
		return "articles.pub_time DESC", nil
	}
	field, dir := ordering, "ASC"
	if strings.HasPrefix(ordering, "-") {
		field, dir = ordering[1:], "DESC"
	}
	if !orderableFields[field] {
		return "", response.BadRequest(fmt.Sprintf("不支持按 '%s' 排序", field))
	}
	return "articles." + field + " " + dir, nil
}

// List 文章列表：筛选 -> 搜索 -> 排序 -> 统计总数 -> 取页 -> 批量装配关联数据
func (s *ArticleService) List(ctx context.Context, q types.ListArticlesQuery) (*types.ListArticlesResponse, error) {
	page := q.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return nil, response.BadRequest("page 必须大于等于 1")
	}

	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 {
		return nil, response.BadRequest("page_size 必须大于等于 1")
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	orderBy, err := parseOrdering(q.Ordering)
	if err != nil {
		return nil, err
	}

	articles, total, err := s.ArticleDAO.CountAndList(ctx, dao.ArticleQuery{
		AuthorID:   q.AuthorID,
		CategoryID: q.CategoryID,
		Search:     q.Search,
		OrderBy:    orderBy,
	}, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	resp := &types.ListArticlesResponse{
		Results:    make([]*types.ArticleListItem, 0, len(articles)),
		Count:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	if len(articles) == 0 {
		return resp, nil
	}

	// 只对当前页的行做批量关联查询，避免 N+1
	articleIDs := make([]uint64, 0, len(articles))
	authorIDs := make([]uint64, 0, len(articles))
	categoryIDs := make([]uint64, 0, len(articles))
	for _, a := range articles {
		articleIDs = append(articleIDs, a.ID)
		authorIDs = append(authorIDs, a.AuthorID)
		categoryIDs = append(categoryIDs, a.CategoryID)
	}

	userMap, err := s.UserDAO.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	profileMap, err := s.ProfileDAO.FindByUserIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	categoryMap, err := s.CategoryDAO.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	tagMap, err := s.TagDAO.FindByArticleIDs(ctx, articleIDs)
	if err != nil {
		return nil, err
	}
	commentCountMap, err := s.CommentDAO.CountByArticleIDs(ctx, articleIDs)
	if err != nil {
		return nil, err
	}

	for _, a := range articles {
		item := &types.ArticleListItem{
			ID:           a.ID,
			Title:        a.Title,
			Content:      truncateContent(a.Content, listContentLimit),
			PubTime:      a.PubTime,
			Views:        a.Views,
			LikeCount:    a.LikeCount,
			DislikeCount: a.DislikeCount,
			CommentCount: commentCountMap[a.ID],
			UpdatedTime:  a.UpdatedTime,
			Tags:         tagsOrEmpty(tagMap[a.ID]),
		}
		if u := userMap[a.AuthorID]; u != nil {
			item.Author = u.Username
		}
		if c := categoryMap[a.CategoryID]; c != nil {
			item.Category = c.Name
		}
		item.ProfilePic = picURL(profileMap[a.AuthorID])
		resp.Results = append(resp.Results, item)
	}
	return resp, nil
}

// Detail 文章详情，每次成功读取都会使浏览量 +1
func (s *ArticleService) Detail(ctx context.Context, articleID uint64, viewerID uint64) (*types.ArticleDetail, error) {
	article, err := s.ArticleDAO.FindByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("文章不存在")
		}
		return nil, err
	}

	if err := s.ArticleDAO.IncrViews(ctx, articleID); err != nil {
		return nil, err
	}
	article.Views++

	return s.buildDetail(ctx, article, viewerID)
}

func (s *ArticleService) buildDetail(ctx context.Context, article *models.Article, viewerID uint64) (*types.ArticleDetail, error) {
	detail := &types.ArticleDetail{
		ID:           article.ID,
		AuthorID:     article.AuthorID,
		Title:        article.Title,
		Content:      article.Content,
		PubTime:      article.PubTime,
		Views:        article.Views,
		LikeCount:    article.LikeCount,
		DislikeCount: article.DislikeCount,
		UpdatedTime:  article.UpdatedTime,
		Tags:         make([]string, 0),
	}

	if author, err := s.UserDAO.FindByID(ctx, article.AuthorID); err == nil {
		detail.Author = author.Username
	}
	if category, err := s.CategoryDAO.FindByID(ctx, article.CategoryID); err == nil {
		detail.Category = category.Name
	}
	profileMap, err := s.ProfileDAO.FindByUserIDs(ctx, []uint64{article.AuthorID})
	if err != nil {
		return nil, err
	}
	detail.ProfilePic = picURL(profileMap[article.AuthorID])

	tagMap, err := s.TagDAO.FindByArticleIDs(ctx, []uint64{article.ID})
	if err != nil {
		return nil, err
	}
	detail.Tags = tagsOrEmpty(tagMap[article.ID])

	if viewerID > 0 {
		liked, err := s.LikeDAO.Exists(ctx, viewerID, article.ID)
		if err != nil {
			return nil, err
		}
		disliked, err := s.DislikeDAO.Exists(ctx, viewerID, article.ID)
		if err != nil {
			return nil, err
		}
		detail.Liked = liked
		detail.Disliked = disliked
	}
	return detail, nil
}

// Create 发布文章，标题全站唯一
func (s *ArticleService) Create(ctx context.Context, userID uint64, req *types.CreateArticleRequest) (*types.ArticleDetail, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}

	exist, err := s.ArticleDAO.IsTitleExist(ctx, req.Title, 0)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, response.BadRequest("文章已存在")
	}

	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	if err := s.checkTagIDs(ctx, req.TagIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	article := &models.Article{
		ID:          uint64(snowflake.GenID()),
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    userID,
		CategoryID:  category.ID,
		PubTime:     now,
		UpdatedTime: now,
	}
	if err := s.ArticleDAO.CreateWithTags(ctx, article, req.TagIDs); err != nil {
		return nil, err
	}

	return s.buildDetail(ctx, article, 0)
}

// Update 仅作者可编辑，支持部分字段更新，tag_ids 出现时整体替换标签
func (s *ArticleService) Update(ctx context.Context, userID uint64, articleID uint64, req *types.UpdateArticleRequest) (*types.ArticleDetail, error) {
	article, err := s.ArticleDAO.FindByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("文章不存在")
		}
		return nil, err
	}
	if article.AuthorID != userID {
		return nil, response.Forbidden("无权限编辑此文章")
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
		exist, err := s.ArticleDAO.IsTitleExist(ctx, *req.Title, articleID)
		if err != nil {
			return nil, err
		}
		if exist {
			return nil, response.BadRequest("文章已存在")
		}
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		if err := validateContent(*req.Content); err != nil {
			return nil, err
		}
		updates["content"] = *req.Content
	}
	if req.Category != nil {
		category, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = category.ID
	}

	var tagIDs []uint64
	if req.TagIDs != nil {
		if err := s.checkTagIDs(ctx, *req.TagIDs); err != nil {
			return nil, err
		}
		tagIDs = *req.TagIDs
		if tagIDs == nil {
			tagIDs = []uint64{}
		}
	}

	updates["updated_time"] = time.Now()
	if err := s.ArticleDAO.UpdateWithTags(ctx, articleID, updates, tagIDs); err != nil {
		return nil, err
	}

	article, err = s.ArticleDAO.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, article, 0)
}

// Delete 仅作者可删除，评论、点赞、点踩随文章一并删除
func (s *ArticleService) Delete(ctx context.Context, userID uint64, articleID uint64) error {
	article, err := s.ArticleDAO.FindByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("文章不存在")
		}
		return err
	}
	if article.AuthorID != userID {
		return response.Forbidden("无权限删除此文章")
	}
	return s.ArticleDAO.DeleteCascade(ctx, articleID)
}

func (s *ArticleService) resolveCategory(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.CategoryDAO.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.BadRequest(fmt.Sprintf("分类 '%s' 不存在", name))
		}
		return nil, err
	}
	return category, nil
}

func (s *ArticleService) checkTagIDs(ctx context.Context, tagIDs []uint64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	tags, err := s.TagDAO.FindByIDs(ctx, tagIDs)
	if err != nil {
		return err
	}
	if len(tags) != len(uniqueIDs(tagIDs)) {
		return response.BadRequest("存在无效的标签")
	}
	return nil
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < 5 || n > 30 {
		return response.BadRequest("标题长度应在5到30个字符之间")
	}
	return nil
}

func validateContent(content string) error {
	if utf8.RuneCountInString(content) < 5 {
		return response.BadRequest("内容不能少于5个字符")
	}
	return nil
}

// truncateContent 按字符截断，超长时追加省略号
func truncateContent(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "..."
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return make([]string, 0)
	}
	return tags
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	result := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
