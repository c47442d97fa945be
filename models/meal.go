package models

import "time"

// MealLog records one "ate here at this time" fact. RestaurantID is the
// place id from the map search so the scorer can match revisits exactly.
type MealLog struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	User           User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID   string    `json:"restaurant_id" gorm:"not null"`
	RestaurantName string    `json:"restaurant_name" gorm:"not null"`
	Category       string    `json:"category"`
	AteAt          time.Time `json:"ate_at" gorm:"not null;index"`
	CreatedAt      time.Time `json:"created_at"`
}

// Favorite is a saved restaurant. Catalog entries like these carry no
// distance, so the distance factor simply stays silent for them.
type Favorite struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	RestaurantID string    `json:"restaurant_id" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Category     string    `json:"category"`
	Address      string    `json:"address"`
	Link         string    `json:"link"`
	CreatedAt    time.Time `json:"created_at"`
}
