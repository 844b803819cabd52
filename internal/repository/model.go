package repository

import "gorm.io/gorm"

// ServerKeyPreference is the fixed name under which the last-used gateway
// server key is stored.
const ServerKeyPreference = "fcm_server_key"

// Preference is a single named string value.
type Preference struct {
	gorm.Model

	Name  string `gorm:"uniqueIndex"`
	Value string
}
