package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"Scribe/dao"
	"Scribe/models"
	"Scribe/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		ProfileDAO: dao.NewProfileDAO(db),
		UserDAO:    dao.NewUserDAO(db),
	}
}

func TestMyProfile_AutoCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)
	ctx := context.Background()

	// 直接建用户不建资料行，读取时自动补建
	user := &models.User{Username: "solo", Email: "solo@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	detail, err := svc.MyProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "solo", detail.Username)
	assert.Nil(t, detail.ProfilePic)
	assert.Empty(t, detail.Introduction)

	var count int64
	require.NoError(t, db.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateMyProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)
	ctx := context.Background()

	user := seedUser(t, db, "gopher")

	intro := "写 Go 的"
	birthday := "1995-06-15"
	err := svc.UpdateMyProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Introduction: &intro,
		Birthday:     &birthday,
	}, "/media/profile_pics/abc.png")
	require.NoError(t, err)

	detail, err := svc.MyProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, intro, detail.Introduction)
	require.NotNil(t, detail.Birthday)
	assert.Equal(t, time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC), detail.Birthday.UTC())
	require.NotNil(t, detail.ProfilePic)
	assert.Equal(t, "/media/profile_pics/abc.png", *detail.ProfilePic)

	// 部分更新：只给简介时生日和头像不动
	intro2 := "换了个简介"
	require.NoError(t, svc.UpdateMyProfile(ctx, user.ID, &types.UpdateProfileRequest{Introduction: &intro2}, ""))
	detail, err = svc.MyProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, intro2, detail.Introduction)
	assert.NotNil(t, detail.Birthday)
	assert.NotNil(t, detail.ProfilePic)
}

func TestUpdateMyProfile_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)
	ctx := context.Background()

	user := seedUser(t, db, "gopher")

	tooLong := "这一段简介的长度明显已经超过了三十个字符的限制所以应当被拒绝掉啊"
	err := svc.UpdateMyProfile(ctx, user.ID, &types.UpdateProfileRequest{Introduction: &tooLong}, "")
	assert.Equal(t, http.StatusBadRequest, bizCode(t, err))

	badBirthday := "15/06/1995"
	err = svc.UpdateMyProfile(ctx, user.ID, &types.UpdateProfileRequest{Birthday: &badBirthday}, "")
	assert.Equal(t, http.StatusBadRequest, bizCode(t, err))
}

func TestPublicProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)
	ctx := context.Background()

	user := seedUser(t, db, "gopher")

	detail, err := svc.PublicProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "gopher", detail.Username)

	_, err = svc.PublicProfile(ctx, 424242)
	assert.Equal(t, http.StatusNotFound, bizCode(t, err))
}
