package model

import "homestay/shared/model"

const (
	ImageTableName  = "house_images"
	ImageEntityName = "house_image"

	ImageFieldID      = "id"
	ImageFieldHouseID = "house_id"
	ImageFieldURL     = "url"
)

type HouseImage struct {
	ID      string `db:"id"`
	HouseID string `db:"house_id"`
	URL     string `db:"url"`
	model.Metadata
}
