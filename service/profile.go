package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"Scribe/dao"
	"Scribe/models"
	"Scribe/pkg/response"
	"Scribe/types"

	"gorm.io/gorm"
)

var _ IProfileService = (*ProfileService)(nil)

type IProfileService interface {
	MyProfile(ctx context.Context, userID uint64) (*types.ProfileDetail, error)
	UpdateMyProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest, picPath string) error
	PublicProfile(ctx context.Context, userID uint64) (*types.ProfileDetail, error)
}

type ProfileService struct {
	ProfileDAO *dao.ProfileDAO
	UserDAO    *dao.UserDAO
}

// picURL 头像为空时返回 nil，前端据此展示默认头像
func picURL(profile *models.UserProfile) *string {
	if profile == nil || profile.ProfilePic == "" {
		return nil
	}
	pic := profile.ProfilePic
	return &pic
}

func (s *ProfileService) buildDetail(user *models.User, profile *models.UserProfile) *types.ProfileDetail {
	return &types.ProfileDetail{
		ID:           profile.ID,
		Username:     user.Username,
		ProfilePic:   picURL(profile),
		Introduction: profile.Introduction,
		Birthday:     profile.Birthday,
		CreatedAt:    profile.CreatedAt,
	}
}

// MyProfile 当前用户资料，资料行不存在时自动补建
func (s *ProfileService) MyProfile(ctx context.Context, userID uint64) (*types.ProfileDetail, error) {
	user, err := s.UserDAO.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.ProfileDAO.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(user, profile), nil
}

// UpdateMyProfile 部分更新资料，picPath 非空时更新头像
func (s *ProfileService) UpdateMyProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest, picPath string) error {
	if _, err := s.ProfileDAO.GetOrCreateByUserID(ctx, userID); err != nil {
		return err
	}

	updates := make(map[string]interface{})
	if req.Introduction != nil {
		if utf8.RuneCountInString(*req.Introduction) > 30 {
			return response.BadRequest("简介不能超过30个字符")
		}
		updates["introduction"] = *req.Introduction
	}
	if req.Birthday != nil && *req.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", *req.Birthday)
		if err != nil {
			return response.BadRequest("生日格式应为 YYYY-MM-DD")
		}
		updates["birthday"] = birthday
	}
	if picPath != "" {
		updates["profile_pic"] = picPath
	}

	return s.ProfileDAO.UpdateByUserID(ctx, userID, updates)
}

// PublicProfile 公开资料页
func (s *ProfileService) PublicProfile(ctx context.Context, userID uint64) (*types.ProfileDetail, error) {
	user, err := s.UserDAO.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("用户不存在")
		}
		return nil, err
	}
	profile, err := s.ProfileDAO.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(user, profile), nil
}
