package model

import "homestay/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldMobile    = "mobile"
	FieldPassword  = "password"
	FieldName      = "name"
	FieldAvatarURL = "avatar_url"
)

type User struct {
	ID        string  `db:"id"`
	Mobile    string  `db:"mobile"`
	Password  string  `db:"password"`
	Name      string  `db:"name"`
	AvatarURL *string `db:"avatar_url"`
	model.Metadata
}
