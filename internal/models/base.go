package models

import "time"

// Base contains the auto-increment primary key shared by all tables
type Base struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
}

// DateLayout is the wire format for every date the API serializes
const DateLayout = "2006-01-02"

// now is the clock used for server-assigned timestamps.
var now = func() time.Time { return time.Now().UTC() }
