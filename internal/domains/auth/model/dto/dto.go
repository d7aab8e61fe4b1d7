package dto

import (
	"github.com/google/uuid"

	userModel "homestay/internal/domains/user/model"
	"homestay/infras/jwt"
	gModel "homestay/shared/model"
	"homestay/shared/timezone"
)

type RequestSMSCodeRequest struct {
	Mobile string `json:"mobile" validate:"required,min=8,max=20"`
}

// SMSCodeMessage is the payload handed to the SMS dispatch topic.
type SMSCodeMessage struct {
	Mobile string `json:"mobile"`
	Code   string `json:"code"`
}

type RegisterRequest struct {
	Mobile   string `json:"mobile"   validate:"required,min=8,max=20"`
	Code     string `json:"code"     validate:"required,len=6"`
	Password string `json:"password" validate:"required,min=8,max=64"`
	Name     string `json:"name"     validate:"required,max=64"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	id := uuid.NewString()

	return userModel.User{
		ID:       id,
		Mobile:   r.Mobile,
		Password: hashedPassword,
		Name:     r.Name,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	Mobile   string `json:"mobile"   validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
}

func (r *LoginResponse) FromTokenPair(pair *jwt.TokenPair, user userModel.User) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
	r.UserID = user.ID
	r.Name = user.Name
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}
