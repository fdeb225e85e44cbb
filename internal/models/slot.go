package models

import "time"

// Slot is one named entry of the durable key-value medium when it is backed
// by a relational database.
type Slot struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
