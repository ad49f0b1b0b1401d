package model

type UserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// PlantProfileInput uses pointers for the bounds so missing fields can be
// told apart from zero values during validation.
type PlantProfileInput struct {
	Name     string   `json:"name"`
	PHMin    *float64 `json:"ph_min"`
	PHMax    *float64 `json:"ph_max"`
	ECMin    *float64 `json:"ec_min"`
	ECMax    *float64 `json:"ec_max"`
	ImageURL string   `json:"image_url"`
}

type DeleteReadingsInput struct {
	IDs []uint64 `json:"ids"`
}

type MultiplantInput struct {
	PlantIDs []uint64 `json:"plant_ids"`
}

type SystemConfigInput struct {
	SelectedPlantID *uint64 `json:"selected_plant_id"`
}

type WebhookInput struct {
	URL string `json:"url"`
}
