package handler

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"Scribe/config"
	"Scribe/middleware"
	"Scribe/pkg/context"
	"Scribe/pkg/response"
	"Scribe/service"
	"Scribe/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const maxAvatarSize = 10 << 20

type Profile struct {
	ProfileService service.IProfileService
	Config         *config.Config
}

func (h *Profile) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())

	g := r.Group("/users")
	g.GET("/profile", authorize, context.Wrap(h.MyProfile))
	g.PUT("/profile", authorize, context.Wrap(h.UpdateMyProfile))
	g.GET("/:user_id/profile", context.Wrap(h.PublicProfile))
}

func (h *Profile) MyProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}

	detail, err := h.ProfileService.MyProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (h *Profile) UpdateMyProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}

	var req types.UpdateProfileRequest
	var picPath string

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBind(&req); err != nil {
			return response.BadRequest("参数格式错误: " + err.Error())
		}
		file, err := c.FormFile("profile_pic")
		if err == nil {
			picPath, err = h.saveAvatar(c, file)
			if err != nil {
				return err
			}
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			return response.BadRequest("参数格式错误: " + err.Error())
		}
	}

	if err := h.ProfileService.UpdateMyProfile(c.Request.Context(), userID, &req, picPath); err != nil {
		return err
	}

	detail, err := h.ProfileService.MyProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (h *Profile) PublicProfile(c *gin.Context) error {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || targetID == 0 {
		return response.NotFound("用户不存在")
	}

	detail, err := h.ProfileService.PublicProfile(c.Request.Context(), targetID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

// saveAvatar 校验并落盘头像，返回可对外访问的路径
func (h *Profile) saveAvatar(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > maxAvatarSize {
		return "", response.BadRequest("头像不能超过10MB")
	}

	src, err := file.Open()
	if err != nil {
		return "", response.BadRequest("头像文件无法读取")
	}
	defer src.Close()

	_, format, err := image.DecodeConfig(src)
	if err != nil {
		return "", response.BadRequest("头像仅支持 jpeg/png/gif/webp 格式")
	}

	name := uuid.NewString() + "." + format
	dst := filepath.Join(h.Config.Upload.Dir, "profile_pics", name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return path.Join(h.Config.Upload.BaseURL, "profile_pics", name), nil
}
