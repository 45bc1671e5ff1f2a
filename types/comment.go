package types

import "time"

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentItem struct {
	ID         uint64    `json:"id"`
	AuthorID   uint64    `json:"author_id"`
	Author     string    `json:"author"`
	PubTime    time.Time `json:"pub_time"`
	Content    string    `json:"content"`
	ProfilePic *string   `json:"profile_pic"`
}
