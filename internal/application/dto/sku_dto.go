package dto

// ParseNameRequest entrada para parsear un nombre completo de producto.
type ParseNameRequest struct {
	Name string `json:"name" validate:"required"`
}

// ParseCodeRequest entrada para parsear un código SKU suelto.
type ParseCodeRequest struct {
	Code string `json:"code" validate:"required"`
}
