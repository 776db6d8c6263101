package models

import "time"

// Settings is the single settings/global document.
type Settings struct {
	StoreName      string    `bson:"storeName" json:"storeName"`
	StoreEmail     string    `bson:"storeEmail" json:"storeEmail"`
	Currency       string    `bson:"currency" json:"currency"`
	LogoURL        string    `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	SupportPhone   string    `bson:"supportPhone,omitempty" json:"supportPhone,omitempty"`
	MaintenanceOn  bool      `bson:"maintenanceOn" json:"maintenanceOn"`
	FreeShippingAt float64   `bson:"freeShippingAt" json:"freeShippingAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
