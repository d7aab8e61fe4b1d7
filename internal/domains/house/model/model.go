package model

import "homestay/shared/model"

const (
	TableName  = "houses"
	EntityName = "house"

	FieldID            = "id"
	FieldOwnerID       = "owner_id"
	FieldTitle         = "title"
	FieldPrice         = "price"
	FieldAreaID        = "area_id"
	FieldAddress       = "address"
	FieldRoomCount     = "room_count"
	FieldAcreage       = "acreage"
	FieldUnit          = "unit"
	FieldCapacity      = "capacity"
	FieldBeds          = "beds"
	FieldDeposit       = "deposit"
	FieldMinDays       = "min_days"
	FieldMaxDays       = "max_days"
	FieldOrderCount    = "order_count"
	FieldIndexImageURL = "index_image_url"
	FieldCreatedAt     = "created_at"
)

// House is a listed property. Price and deposit are stored in minor
// currency units. IndexImageURL is set once, by the first image upload.
type House struct {
	ID            string  `db:"id"`
	OwnerID       string  `db:"owner_id"`
	Title         string  `db:"title"`
	Price         int64   `db:"price"`
	AreaID        string  `db:"area_id"`
	Address       string  `db:"address"`
	RoomCount     int     `db:"room_count"`
	Acreage       int     `db:"acreage"`
	Unit          string  `db:"unit"`
	Capacity      int     `db:"capacity"`
	Beds          string  `db:"beds"`
	Deposit       int64   `db:"deposit"`
	MinDays       int     `db:"min_days"`
	MaxDays       int     `db:"max_days"`
	OrderCount    int     `db:"order_count"`
	IndexImageURL *string `db:"index_image_url"`
	model.Metadata
}
