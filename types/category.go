package types

type CategoryItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type TagItem struct {
	TagID uint64 `json:"tag_id"`
	Tag   string `json:"tag"`
}

type CategoryTagsResponse struct {
	Tags []TagItem `json:"tags"`
}
