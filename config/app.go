package config

import "time"

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// 过期时间，单位秒
	AccessExpire  int `json:"access_expire" yaml:"access_expire"`
	RefreshExpire int `json:"refresh_expire" yaml:"refresh_expire"`
}

func (j *Jwt) AccessTTL() time.Duration {
	return time.Duration(j.AccessExpire) * time.Second
}

func (j *Jwt) RefreshTTL() time.Duration {
	return time.Duration(j.RefreshExpire) * time.Second
}

// Upload 头像上传配置
type Upload struct {
	// 本地存储目录，默认 media
	Dir string `json:"dir" yaml:"dir"`
	// 对外访问前缀，默认 /media
	BaseURL string `json:"base_url" yaml:"base_url"`
}
