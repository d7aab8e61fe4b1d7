package dto

import (
	"time"

	"github.com/google/uuid"

	"homestay/internal/domains/house/model"
	gModel "homestay/shared/model"
	"homestay/shared/timezone"
)

type CreateHouseRequest struct {
	Title     string `json:"title"      validate:"required,max=64"`
	Price     int64  `json:"price"      validate:"required,gt=0"`
	AreaID    string `json:"area_id"    validate:"required"`
	Address   string `json:"address"    validate:"required,max=512"`
	RoomCount int    `json:"room_count" validate:"required,gt=0"`
	Acreage   int    `json:"acreage"    validate:"required,gt=0"`
	Unit      string `json:"unit"       validate:"required,max=32"`
	Capacity  int    `json:"capacity"   validate:"required,gt=0"`
	Beds      string `json:"beds"       validate:"required,max=64"`
	Deposit   int64  `json:"deposit"    validate:"omitempty,gte=0"`
	MinDays   int    `json:"min_days"   validate:"required,gt=0"`
	MaxDays   int    `json:"max_days"   validate:"omitempty,gte=0"`
}

func (c *CreateHouseRequest) ToModel(ownerID string) model.House {
	return model.House{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     c.Title,
		Price:     c.Price,
		AreaID:    c.AreaID,
		Address:   c.Address,
		RoomCount: c.RoomCount,
		Acreage:   c.Acreage,
		Unit:      c.Unit,
		Capacity:  c.Capacity,
		Beds:      c.Beds,
		Deposit:   c.Deposit,
		MinDays:   c.MinDays,
		MaxDays:   c.MaxDays,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  ownerID,
			ModifiedBy: ownerID,
		},
	}
}

type CreateHouseResponse struct {
	HouseID string `json:"house_id"`
}

// SearchHousesRequest carries the raw listing filters. Dates use the
// YYYY-MM-DD layout; a bad page value falls back to the first page.
type SearchHousesRequest struct {
	StartDate string
	EndDate   string
	AreaID    string
	SortKey   string
	Page      string
}

type HouseSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Price         int64  `json:"price"`
	AreaID        string `json:"area_id"`
	Address       string `json:"address"`
	RoomCount     int    `json:"room_count"`
	OrderCount    int    `json:"order_count"`
	IndexImageURL string `json:"index_image_url"`
	CreatedAt     string `json:"created_at"`
}

func (r *HouseSummary) FromModel(mod model.House) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Price = mod.Price
	r.AreaID = mod.AreaID
	r.Address = mod.Address
	r.RoomCount = mod.RoomCount
	r.OrderCount = mod.OrderCount
	r.CreatedAt = timezone.Format(mod.CreatedAt, "2006-01-02")

	if mod.IndexImageURL != nil {
		r.IndexImageURL = *mod.IndexImageURL
	}
}

type SearchHousesResponse struct {
	Houses    []HouseSummary `json:"houses"`
	Page      int            `json:"page"`
	TotalPage int            `json:"total_page"`
}

func (r *SearchHousesResponse) FromModels(models []model.House, page, totalPage int) {
	r.Page = page
	r.TotalPage = totalPage

	r.Houses = make([]HouseSummary, len(models))
	for i, mod := range models {
		r.Houses[i].FromModel(mod)
	}
}

type GetMyHousesResponse struct {
	Houses []HouseSummary `json:"houses"`
}

func (r *GetMyHousesResponse) FromModels(models []model.House) {
	r.Houses = make([]HouseSummary, len(models))
	for i, mod := range models {
		r.Houses[i].FromModel(mod)
	}
}

type HouseComment struct {
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// HouseDetail is the cacheable part of the detail view; ownership is
// viewer-specific and computed per request.
type HouseDetail struct {
	ID         string         `json:"id"`
	OwnerID    string         `json:"owner_id"`
	Title      string         `json:"title"`
	Price      int64          `json:"price"`
	AreaID     string         `json:"area_id"`
	Address    string         `json:"address"`
	RoomCount  int            `json:"room_count"`
	Acreage    int            `json:"acreage"`
	Unit       string         `json:"unit"`
	Capacity   int            `json:"capacity"`
	Beds       string         `json:"beds"`
	Deposit    int64          `json:"deposit"`
	MinDays    int            `json:"min_days"`
	MaxDays    int            `json:"max_days"`
	OrderCount int            `json:"order_count"`
	Images     []string       `json:"images"`
	Comments   []HouseComment `json:"comments"`
}

func (d *HouseDetail) FromModel(mod model.House, images []model.HouseImage, comments []HouseComment) {
	d.ID = mod.ID
	d.OwnerID = mod.OwnerID
	d.Title = mod.Title
	d.Price = mod.Price
	d.AreaID = mod.AreaID
	d.Address = mod.Address
	d.RoomCount = mod.RoomCount
	d.Acreage = mod.Acreage
	d.Unit = mod.Unit
	d.Capacity = mod.Capacity
	d.Beds = mod.Beds
	d.Deposit = mod.Deposit
	d.MinDays = mod.MinDays
	d.MaxDays = mod.MaxDays
	d.OrderCount = mod.OrderCount

	d.Images = make([]string, len(images))
	for i, img := range images {
		d.Images[i] = img.URL
	}

	d.Comments = comments
}

type HouseDetailResponse struct {
	House   HouseDetail `json:"house"`
	IsOwner bool        `json:"is_owner"`
}

type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
}

func NewHouseImage(houseID, url, user string) model.HouseImage {
	return model.HouseImage{
		ID:      uuid.NewString(),
		HouseID: houseID,
		URL:     url,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func FormatCommentDate(t time.Time) string {
	return timezone.Format(t, "2006-01-02 15:04")
}
