package model

import "homestay/shared/model"

const (
	TableName  = "areas"
	EntityName = "area"

	FieldID   = "id"
	FieldName = "name"
)

// Area is immutable reference data used for listing filters.
type Area struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}
