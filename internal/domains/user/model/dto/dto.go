package dto

import (
	"homestay/internal/domains/user/model"
)

type ProfileResponse struct {
	UserID    string `json:"user_id"`
	Mobile    string `json:"mobile"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

func (r *ProfileResponse) FromModel(mod model.User) {
	r.UserID = mod.ID
	r.Mobile = mod.Mobile
	r.Name = mod.Name

	if mod.AvatarURL != nil {
		r.AvatarURL = *mod.AvatarURL
	}
}

type UpdateNameRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

type UploadAvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}
