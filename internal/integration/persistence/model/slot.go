// Package model defines database models for persistence layer.
package model

import "time"

// SlotModel represents the slots table in the database.
// Each row holds one named, fully serialized collection.
type SlotModel struct {
	Name      string    `gorm:"type:varchar(100);primaryKey"`
	Payload   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SlotModel.
func (SlotModel) TableName() string {
	return "slots"
}
