package dto

import "homestay/internal/domains/area/model"

type AreaResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *AreaResponse) FromModel(model model.Area) {
	r.ID = model.ID
	r.Name = model.Name
}

type GetAreasResponse struct {
	Areas []AreaResponse `json:"areas"`
}

func (r *GetAreasResponse) FromModels(models []model.Area) {
	r.Areas = make([]AreaResponse, len(models))
	for i, mod := range models {
		r.Areas[i].FromModel(mod)
	}
}
