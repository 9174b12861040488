package dto

import "github.com/shopspring/decimal"

type CrearMenuItemRequest struct {
	Nombre        string           `json:"nombre" validate:"required"`
	Descripcion   string           `json:"descripcion"`
	Precio        *decimal.Decimal `json:"precio" validate:"required"`
	RestauranteID *int             `json:"restaurante_id"`
	CategoriaID   *string          `json:"categoria_id"`
	ImagenURL     string           `json:"imagen_url"`
	Disponible    *bool            `json:"disponible"`
}

// ActualizarMenuItemRequest applies only the fields present in the body.
type ActualizarMenuItemRequest struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	CategoriaID *string          `json:"categoria_id"`
	ImagenURL   *string          `json:"imagen_url"`
	Disponible  *bool            `json:"disponible"`
}

type MenuItemResponse struct {
	ID            string          `json:"id"`
	RestauranteID int             `json:"restaurante_id"`
	Nombre        string          `json:"nombre"`
	Descripcion   string          `json:"descripcion"`
	Precio        decimal.Decimal `json:"precio"`
	CategoriaID   *string         `json:"categoria_id"`
	ImagenURL     string          `json:"imagen_url"`
	Disponible    bool            `json:"disponible"`
}

type CategoriaResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
}

type SubirImagenResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
