package dto

type CrearMesaRequest struct {
	Numero    int    `json:"numero"    validate:"required,gt=0"`
	Capacidad int    `json:"capacidad" validate:"required,gt=0"`
	Tipo      string `json:"tipo"      validate:"required"`
}

type MesaResponse struct {
	ID         string `json:"id"`
	Numero     int    `json:"numero"`
	Capacidad  int    `json:"capacidad"`
	Tipo       string `json:"tipo"`
	Disponible bool   `json:"disponible"`
}
