package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"homestay/infras/jwt"
	"homestay/internal/domains/auth/model/dto"
	userModel "homestay/internal/domains/user/model"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{
		Mobile:   "13800001111",
		Code:     "123456",
		Password: "plaintext-ignored",
		Name:     "Alice",
	}

	user := req.ToUserModel("$2a$10$hashed")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, req.Mobile, user.Mobile)
	assert.Equal(t, "$2a$10$hashed", user.Password)
	assert.Equal(t, req.Name, user.Name)
	assert.Equal(t, user.ID, user.CreatedBy)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}
	user := userModel.User{ID: "user-1", Name: "Alice"}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair, user)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.TokenType, response.TokenType)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
	assert.Equal(t, user.ID, response.UserID)
	assert.Equal(t, user.Name, response.Name)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}
