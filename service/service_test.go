package service

import (
	"fmt"
	"testing"
	"time"

	"Scribe/dao"
	"Scribe/models"
	"Scribe/pkg/response"
	"Scribe/pkg/snowflake"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库每个连接各自独立，限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.Migrate(db))
	return db
}

func newArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{
		ArticleDAO:  dao.NewArticleDAO(db),
		UserDAO:     dao.NewUserDAO(db),
		ProfileDAO:  dao.NewProfileDAO(db),
		CategoryDAO: dao.NewCategoryDAO(db),
		TagDAO:      dao.NewTagDAO(db),
		CommentDAO:  dao.NewCommentDAO(db),
		LikeDAO:     dao.NewLikeDAO(db),
		DislikeDAO:  dao.NewDislikeDAO(db),
	}
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.UserProfile{UserID: user.ID}).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func seedArticle(t *testing.T, db *gorm.DB, author *models.User, category *models.Category, title, content string) *models.Article {
	t.Helper()
	now := time.Now()
	article := &models.Article{
		ID:          uint64(snowflake.GenID()),
		Title:       title,
		Content:     content,
		AuthorID:    author.ID,
		CategoryID:  category.ID,
		PubTime:     now,
		UpdatedTime: now,
	}
	require.NoError(t, db.Create(article).Error)
	return article
}

func attachTag(t *testing.T, db *gorm.DB, articleID, tagID uint64) {
	t.Helper()
	require.NoError(t, db.Create(&models.ArticleTag{ArticleID: articleID, TagID: tagID}).Error)
}

// bizCode 断言错误是业务错误并返回其状态码
func bizCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	var biz *response.BizError
	require.ErrorAs(t, err, &biz)
	return biz.Code
}

// seedTitle 生成满足长度校验的不重复标题
func seedTitle(prefix string, n int) string {
	return fmt.Sprintf("%s 第%03d篇", prefix, n)
}
