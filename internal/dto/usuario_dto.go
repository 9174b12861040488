package dto

type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre"   validate:"required"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"    validate:"required,email"`
	Rol      string `json:"rol"      validate:"omitempty,oneof=cliente mesero cocinero cajero admin"`
}

type CambiarRolRequest struct {
	Rol string `json:"rol" validate:"required,oneof=cliente mesero cocinero cajero admin"`
}

// UsuarioResponse deliberately has no password field: the hash never leaves
// the persistence layer.
type UsuarioResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
}
