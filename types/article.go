package types

import "time"

// ListArticlesQuery 列表查询参数，handler 解析后传入 service
type ListArticlesQuery struct {
	Page       int
	PageSize   int
	AuthorID   uint64
	CategoryID uint64
	Search     string
	Ordering   string
}

type ArticleListItem struct {
	ID           uint64    `json:"id"`
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	PubTime      time.Time `json:"pub_time"`
	Category     string    `json:"category"`
	Views        int64     `json:"views"`
	LikeCount    int64     `json:"like_count"`
	DislikeCount int64     `json:"dislike_count"`
	CommentCount int64     `json:"comment_count"`
	UpdatedTime  time.Time `json:"updated_time"`
	ProfilePic   *string   `json:"profile_pic"`
	Tags         []string  `json:"tags"`
}

type ListArticlesResponse struct {
	Results    []*ArticleListItem `json:"results"`
	Count      int64              `json:"count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int64              `json:"total_pages"`
}

type CreateArticleRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category" binding:"required"`
	TagIDs   []uint64 `json:"tag_ids"`
}

// UpdateArticleRequest 部分更新，nil 字段保持不变
type UpdateArticleRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Category *string   `json:"category"`
	TagIDs   *[]uint64 `json:"tag_ids"`
}

type ArticleDetail struct {
	ID           uint64    `json:"id"`
	AuthorID     uint64    `json:"author_id"`
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	PubTime      time.Time `json:"pub_time"`
	Category     string    `json:"category"`
	Views        int64     `json:"views"`
	LikeCount    int64     `json:"like_count"`
	DislikeCount int64     `json:"dislike_count"`
	Liked        bool      `json:"liked"`
	Disliked     bool      `json:"disliked"`
	UpdatedTime  time.Time `json:"updated_time"`
	ProfilePic   *string   `json:"profile_pic"`
	Tags         []string  `json:"tags"`
}

// InteractionResponse 点赞/点踩后的最新计数
type InteractionResponse struct {
	Count int64 `json:"count"`
}
