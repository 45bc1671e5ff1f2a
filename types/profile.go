package types

import "time"

type ProfileDetail struct {
	ID           uint64     `json:"id"`
	Username     string     `json:"username"`
	ProfilePic   *string    `json:"profile_pic"`
	Introduction string     `json:"introduction"`
	Birthday     *time.Time `json:"birthday"`
	CreatedAt    time.Time  `json:"created_at"`
}

// UpdateProfileRequest 资料部分更新，头像通过 multipart 单独处理
type UpdateProfileRequest struct {
	Introduction *string `form:"introduction" json:"introduction"`
	Birthday     *string `form:"birthday" json:"birthday"` // YYYY-MM-DD
}
