//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewProfileDAO,
	NewArticleDAO,
	NewCategoryDAO,
	NewTagDAO,
	NewCommentDAO,
	NewLikeDAO,
	NewDislikeDAO,
	NewCaptchaDAO,
)
