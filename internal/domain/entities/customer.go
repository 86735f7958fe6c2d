package entities

import "time"

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required" label:"Name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email,omitempty" validate:"omitempty,contact_email" label:"Email"`
	Phone     string    `json:"phone" validate:"required,contact_phone" label:"Phone"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
