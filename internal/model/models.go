package model

import "time"

// MultiplantName is the fixed name the resolved overlap profile is stored under.
const MultiplantName = "Multiplant"

type PlantProfile struct {
	ID       uint64  `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"uniqueIndex"`
	PHMin    float64 `json:"ph_min" gorm:"column:ph_min"`
	PHMax    float64 `json:"ph_max" gorm:"column:ph_max"`
	ECMin    float64 `json:"ec_min" gorm:"column:ec_min"`
	ECMax    float64 `json:"ec_max" gorm:"column:ec_max"`
	ImageURL string  `json:"image_url,omitempty"`
}

func (PlantProfile) TableName() string { return "plant_profiles" }

// MultiplantProfile is the derived overlap of a chosen set of plant profiles.
// It is recomputed and upserted by the range resolver, never hand-edited.
type MultiplantProfile struct {
	ID    uint64  `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"uniqueIndex"`
	PHMin float64 `json:"ph_min" gorm:"column:ph_min"`
	PHMax float64 `json:"ph_max" gorm:"column:ph_max"`
	ECMin float64 `json:"ec_min" gorm:"column:ec_min"`
	ECMax float64 `json:"ec_max" gorm:"column:ec_max"`
}

func (MultiplantProfile) TableName() string { return "multiplant_profile" }

type SensorReading struct {
	ID               uint64    `json:"id" gorm:"primaryKey"`
	CreatedAt        time.Time `json:"created_at"`
	PH               float64   `json:"ph" gorm:"column:ph"`
	EC               float64   `json:"ec" gorm:"column:ec"`
	WaterTemperature float64   `json:"water_temperature"`
	Pump1            bool      `json:"pump1"`
	Pump2            bool      `json:"pump2"`
	Pump3            bool      `json:"pump3"`
	Pump4            bool      `json:"pump4"`
	PlantName        string    `json:"plant_name"`
}

func (SensorReading) TableName() string { return "sensor_data" }

// SystemConfig is a singleton row pointing at the profile readings are compared against.
type SystemConfig struct {
	ID              uint64 `json:"id" gorm:"primaryKey"`
	SelectedPlantID uint64 `json:"selected_plant_id"`
}

func (SystemConfig) TableName() string { return "system_config" }

// UserProfile mirrors the identity-service user. Credentials live in the
// identity service; this row only carries the application-facing fields.
type UserProfile struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (UserProfile) TableName() string { return "profiles" }
