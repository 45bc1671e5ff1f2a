package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"Scribe/models"
	"Scribe/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleList_Pagination(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db)
	ctx := context.Background()

	author := seedUser(t, db, "writer")
	category := seedCategory(t, db, "技术")
	for i := 0; i < 25; i++ {
		seedArticle(t, db, author, category, seedTitle("分页", i), "这是一段测试正文内容")
	}

	resp, err := svc.List(ctx, types.ListArticlesQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), resp.Count)
	assert.Equal(t, int64(3), resp.TotalPages)
	assert.Len(t, resp.Results, 10)

	// 最后一页只剩零头
	resp, err = svc.List(ctx, types.ListArticlesQuery{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), resp.Count)
	assert.Len(t, resp.Results, 5)

	// 超出范围的页返回空列表，总数不变
	resp, err = svc.List(ctx, types.ListArticlesQuery{Page: 9, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), resp.Count)
	assert.Empty(t, resp.Results)

	// 整除时不会多出空页
	resp, err = svc.List(ctx, types.ListArticlesQuery{Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.TotalPages)
}

func TestArticleList_PageParamValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db)
	ctx := context.Background()

	_, err := svc.List(ctx, types.ListArticlesQuery{Page: -1})
	assert.Equal(t, http.StatusBadRequest, bizCode(t, err))

	_, err = svc.List(ctx, types.ListArticlesQuery{PageSize: -3})
	assert.Equal(t, http.StatusBadRequest, bizCode(t, err))

	// 超上限的 page_size 收敛到上限而不是报错
	resp, err := svc.List(ctx, types.ListArticlesQuery{PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, resp.PageSize)

	// 缺省值
	resp, err = svc.List(ctx, types.ListArticlesQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, defaultPageSize, resp.PageSize)
}

func TestArticleList_SearchOrSemantics(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db)
	ctx := context.Background()

	gopher := seedUser(t, db, "gopher")
	alice := seedUser(t, db, "alice")
	category := seedCategory(t, db, "技术")
	redis := seedTag(t, db, "redis")

	byTitle := seedArticle(t, db, gopher, category, "Golang 并发模型", "与关键词无关的正文")
	byContent := seedArticle(t, db, alice, category, "随便起的标题啊", "正文里提到了 golang 调度器")
	byAuthor := seedArticle(t, db, gopher, category, "作者名命中的文章", "与关键词无关的正文")
	byTag := seedArticle(t, db, alice, category, "标签命中的文章哦", "与关键词无关的正文")
	attachTag(t, db, byTag.ID, redis.ID)
	miss := seedArticle(t, db, alice, category, "完全无关的文章啊", "完全无关的正文内容")

	// 关键词同时扫标题和正文
	resp, err := svc.List(ctx, types.ListArticlesQuery{Search: "golang"})
	require.NoError(t, err)
	ids := resultIDs(resp)
	assert.Contains(t, ids, byTitle.ID)
	assert.Contains(t, ids, byContent.ID)
	assert.NotContains(t, ids, byAuthor.ID)
	assert.NotContains(t, ids, miss.ID)

	// 作者名也参与匹配
	resp, err = svc.List(ctx, types.ListArticlesQuery{Search: "gopher"})
	require.NoError(t, err)
	ids = resultIDs(resp)
	assert.Contains(t, ids, byAuthor.ID)
	assert.Contains(t, ids, byTitle.ID)
	assert.NotContains(t, ids, byContent.ID)

	// 多个关键词是 OR 语义：任一命中即返回
	resp, err = svc.List(ctx, types.ListArticlesQuery{Search: "并发 redis"})
	require.NoError(t, err)
	ids = resultIDs(resp)
	assert.Contains(t, ids, byTitle.ID)
	assert.Contains(t, ids, byTag.ID)
	assert.NotContains(t, ids, miss.ID)

	// 大小写不敏感
	resp, err = svc.List(ctx, types.ListArticlesQuery{Search: "GOLANG"})
	require.NoError(t, err)
	assert.Contains(t, resultIDs(resp), byTitle.ID)

	// 同一篇文章命中多个关键词时不能重复出现
	resp, err = svc.List(ctx, types.ListArticlesQuery{Search: "golang 并发"})
	require.NoError(t, err)
	count := 0
	for _, item := range resp.Results {
		if item.ID == byTitle.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, int64(len(resp.Results)), resp.Count)
}

func resultIDs(resp *types.ListArticlesResponse) []uint64 {
	ids := make([]uint64, 0, len(resp.Results))
	for _, item := range resp.Results {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestArticleList_ContentTruncation(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db)
	ctx := context.Background()

	author := seedUser(t, db, "writer")
	category := seedCategory(t, db, "技术")

	long := strings.Repeat("甲", 200)
	seedArticle(t, db, author, category, "超长正文的文章", long)
	seedArticle(t, db, author, category, "短正文的文章哦", "短短的正文")

	resp, err := svc.List(ctx, types.ListArticlesQuery{})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	for _, item := range resp.Results {
		switch item.Title {
		case "超长正文的文章":
			assert.Equal(t, strings.Repeat("甲", 150)+"...", item.Content)
		case "短正文的文章哦":
			assert.Equal(t, "短短的正文", item.Content)
		}
	}
}

func TestArticleList_FilterAndOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	tech := seedCategory(t, db, "技术")
	life := seedCategory(t, db, "生活")

	a1 := seedArticle(t, db, alice, tech, "alice 的技术文章", "这是一段正文")
	a2 := seedArticle(t, db, alice, life, "alice 的生活文章", "这是一段正文")
	b1 := seedArticle(t, db, bob, tech, "bob 的技术文章哦", "这是一段正文")

	require.NoError(t, db.Model(a1).UpdateColumn("views", 5).Error)
	require.NoError(t, db.Model(a2).UpdateColumn("views", 9).Error)
	require.NoError(t, db.Model(b1).UpdateColumn("views", 1).Error)

	// 按作者过滤
	resp, err := svc.List(ctx, types.ListArticlesQuery{AuthorID: alice.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{a1.ID, a2.ID}, resultIDs(resp))

	// 按分类过滤
	resp, err = svc.List(ctx, types.ListArticlesQuery{CategoryID: tech.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{a1.ID, b1.ID}, resultIDs(resp))

	// 不存在的作者返回空集而不是错误
	resp, err = svc.List(ctx, types.ListArticlesQuery{AuthorID: 99999})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, int64(0), resp.Count)

	// 浏览量倒序
	resp, err = svc.List(ctx, types.ListArticlesQuery{Ordering: "-views"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{a2.ID, a1.ID, b1.ID}, resultIDs(resp))

	// 浏览量正序
	resp, err = svc.List(ctx, types.ListArticlesQuery{Ordering: "views"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{b1.ID, a1.ID, a2.ID}, resultIDs(resp))

	// 白名单外的字段直接拒绝
	_, err = svc.List(ctx, types.ListArticlesQuery{Ordering: "password"})
	assert.Equal(t, http.StatusBadRequest, bizCode(t, err))

	_, err = svc.List(ctx, types.ListArticlesQuery{Ordering: "views; DROP TABLE articles"})
	assert.Equal(t, http.StatusBadRequest, bizCode(t, err))
}

func TestArticleDetail_ViewIncrement(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db)
	ctx := context.Background()

	author := seedUser(t, db, "writer")
	category := seedCategory(t, db, "技术")
	article := seedArticle(t, db, author, category, "被反复阅读的文章", "这是一段正文")

	detail, err := svc.Detail(ctx, article.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Views)
	assert.False(t, detail.Liked)
	assert.False(t, detail.Disliked)

	detail, err = svc.Detail(ctx, article.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.Views)

	// 不存在的文章不产生任何计数变化
	_, err = svc.Detail(ctx, 424242, 0)
	assert.Equal(t, http.StatusNotFound, bizCode(t, err))
}

func TestArticleDetail_ViewerFlags(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db)
	interaction := &InteractionService{
		ArticleDAO: svc.ArticleDAO,
		LikeDAO:    svc.LikeDAO,
		DislikeDAO: svc.DislikeDAO,
	}
	ctx := context.Background()

	author := seedUser(t, db, "writer")
	reader := seedUser(t, db, "reader")
	category := seedCategory(t, db, "技术")
	article := seedArticle(t, db, author, category, "被点赞的那篇文章", "这是一段正文")

	_, err := interaction.Like(ctx, reader.ID, article.ID)
	require.NoError(t, err)

	detail, err := svc.Detail(ctx, article.ID, reader.ID)
	require.NoError(t, err)
	assert.True(t, detail.Liked)
	assert.False(t, detail.Disliked)

	// 其他用户看不到这个标记
	detail, err = svc.Detail(ctx, article.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, detail.Liked)
}

func TestArticleCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db)
	ctx := context.Background()

	author := seedUser(t, db, "writer")
	seedCategory(t, db, "技术")
	golang := seedTag(t, db, "golang")
	web := seedTag(t, db, "web")

	detail, err := svc.Create(ctx, author.ID, &types.CreateArticleRequest{
		Title:    "我的第一篇文章",
		Content:  "这是一段足够长的正文",
		Category: "技术",
		TagIDs:   []uint64{golang.ID, web.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "我的第一篇文章", detail.Title)
	assert.Equal(t, "writer", detail.Author)
	assert.Equal(t, "技术", detail.Category)
	assert.ElementsMatch(t, []string{"golang", "web"}, detail.Tags)
	assert.Equal(t, int64(0), detail.Views)

	// 标题全站唯一
	_, err = svc.Create(ctx, author.ID, &types.CreateArticleRequest{
		Title:    "我的第一篇文章",
		Content:  "换一段正文也不行",
		Category: "技术",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, bizCode(t, err))
	assert.Equal(t, "文章已存在", err.Error())

	tests := []struct {
		name string
		req  types.CreateArticleRequest
		msg  string
	}{
		{
			name: "标题过短",
			req:  types.CreateArticleRequest{Title: "短", Content: "这是一段正文", Category: "技术"},
			msg:  "标题长度应在5到30个字符之间",
		},
		{
			name: "标题过长",
			req:  types.CreateArticleRequest{Title: strings.Repeat("长", 31), Content: "这是一段正文", Category: "技术"},
			msg:  "标题长度应在5到30个字符之间",
		},
		{
			name: "正文过短",
			req:  types.CreateArticleRequest{Title: "正文太短的文章", Content: "短了", Category: "技术"},
			msg:  "内容不能少于5个字符",
		},
		{
			name: "分类不存在",
			req:  types.CreateArticleRequest{Title: "分类错误的文章", Content: "这是一段正文", Category: "八卦"},
			msg:  "分类 '八卦' 不存在",
		},
		{
			name: "标签不存在",
			req:  types.CreateArticleRequest{Title: "标签错误的文章", Content: "这是一段正文", Category: "技术", TagIDs: []uint64{999}},
			msg:  "存在无效的标签",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, author.ID, &tt.req)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, bizCode(t, err))
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestArticleUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db)
	ctx := context.Background()

	author := seedUser(t, db, "writer")
	other := seedUser(t, db, "intruder")
	tech := seedCategory(t, db, "技术")
	seedCategory(t, db, "生活")
	golang := seedTag(t, db, "golang")
	web := seedTag(t, db, "web")

	article := seedArticle(t, db, author, tech, "等待修改的文章", "原来的正文内容")
	attachTag(t, db, article.ID, golang.ID)

	// 非作者不能编辑，内容保持不变
	newTitle := "偷偷改掉的标题"
	_, err := svc.Update(ctx, other.ID, article.ID, &types.UpdateArticleRequest{Title: &newTitle})
	assert.Equal(t, http.StatusForbidden, bizCode(t, err))

	var got models.Article
	require.NoError(t, db.First(&got, "id = ?", article.ID).Error)
	assert.Equal(t, "等待修改的文章", got.Title)

	// 部分更新：只改正文，其余字段不动
	newContent := "修改之后的正文内容"
	before := got.UpdatedTime
	time.Sleep(10 * time.Millisecond)
	detail, err := svc.Update(ctx, author.ID, article.ID, &types.UpdateArticleRequest{Content: &newContent})
	require.NoError(t, err)
	assert.Equal(t, "等待修改的文章", detail.Title)
	assert.Equal(t, newContent, detail.Content)
	assert.Equal(t, []string{"golang"}, detail.Tags)
	assert.True(t, detail.UpdatedTime.After(before))

	// tag_ids 出现时整体替换
	tags := []uint64{web.ID}
	detail, err = svc.Update(ctx, author.ID, article.ID, &types.UpdateArticleRequest{TagIDs: &tags})
	require.NoError(t, err)
	assert.Equal(t, []string{"web"}, detail.Tags)

	// 空集合表示清空标签
	empty := []uint64{}
	detail, err = svc.Update(ctx, author.ID, article.ID, &types.UpdateArticleRequest{TagIDs: &empty})
	require.NoError(t, err)
	assert.Empty(t, detail.Tags)

	// 改分类
	life := "生活"
	detail, err = svc.Update(ctx, author.ID, article.ID, &types.UpdateArticleRequest{Category: &life})
	require.NoError(t, err)
	assert.Equal(t, "生活", detail.Category)

	// 改成别人占用的标题会冲突，改回自己当前的标题不算冲突
	seedArticle(t, db, author, tech, "已被占用的标题", "这是一段正文")
	occupied := "已被占用的标题"
	_, err = svc.Update(ctx, author.ID, article.ID, &types.UpdateArticleRequest{Title: &occupied})
	assert.Equal(t, http.StatusBadRequest, bizCode(t, err))

	same := "等待修改的文章"
	_, err = svc.Update(ctx, author.ID, article.ID, &types.UpdateArticleRequest{Title: &same})
	assert.NoError(t, err)

	// 不存在的文章
	_, err = svc.Update(ctx, author.ID, 424242, &types.UpdateArticleRequest{Content: &newContent})
	assert.Equal(t, http.StatusNotFound, bizCode(t, err))
}

func TestArticleDelete_Cascade(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db)
	ctx := context.Background()

	author := seedUser(t, db, "writer")
	other := seedUser(t, db, "intruder")
	category := seedCategory(t, db, "技术")
	golang := seedTag(t, db, "golang")

	article := seedArticle(t, db, author, category, "将要被删除的文章", "这是一段正文")
	attachTag(t, db, article.ID, golang.ID)
	require.NoError(t, db.Create(&models.Comment{ID: 1, ArticleID: article.ID, AuthorID: other.ID, Content: "沙发", PubTime: time.Now()}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: other.ID, ArticleID: article.ID}).Error)
	require.NoError(t, db.Create(&models.Dislike{UserID: author.ID, ArticleID: article.ID}).Error)

	// 非作者不能删除
	err := svc.Delete(ctx, other.ID, article.ID)
	assert.Equal(t, http.StatusForbidden, bizCode(t, err))

	require.NoError(t, svc.Delete(ctx, author.ID, article.ID))

	for _, model := range []interface{}{&models.Article{}, &models.Comment{}, &models.Like{}, &models.Dislike{}, &models.ArticleTag{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	}

	// 标签本身不受影响
	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(1), tagCount)

	// 再删一次报不存在
	err = svc.Delete(ctx, author.ID, article.ID)
	assert.Equal(t, http.StatusNotFound, bizCode(t, err))
}
