package dto

import "time"

// CreateKoajCodeRequest entrada para crear un código KOAJ.
type CreateKoajCodeRequest struct {
	Code        string `json:"code" validate:"required,max=10"`
	Category    string `json:"category" validate:"required,max=100"`
	Description string `json:"description"`
	AppliesTo   string `json:"applies_to" validate:"omitempty,oneof=hombre mujer niño niña todos"`
}

// UpdateKoajCodeRequest entrada para actualizar un código; campos opcionales.
type UpdateKoajCodeRequest struct {
	Code        string  `json:"code" validate:"omitempty,max=10"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
	Description *string `json:"description"`
	AppliesTo   string  `json:"applies_to" validate:"omitempty,oneof=hombre mujer niño niña todos"`
	Active      *bool   `json:"is_active"`
}

// KoajCodeResponse salida de un código del catálogo.
type KoajCodeResponse struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	AppliesTo   string    `json:"applies_to"`
	Active      bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// KoajCodeListResponse listado del catálogo.
type KoajCodeListResponse struct {
	Success bool               `json:"success"`
	Codes   []KoajCodeResponse `json:"codes"`
	Total   int                `json:"total"`
}
