package server

import (
	"Scribe/handler"
)

type Handlers struct {
	Auth        *handler.Auth
	Article     *handler.Article
	Comment     *handler.Comment
	Interaction *handler.Interaction
	Profile     *handler.Profile
	Category    *handler.Category
}
