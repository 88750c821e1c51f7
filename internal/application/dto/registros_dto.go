package dto

import "time"

// ClienteRequest creación/actualización de cliente.
type ClienteRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Contacto string `json:"contacto"`
}

// ClienteResponse un cliente del usuario.
type ClienteResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Contacto      string    `json:"contacto,omitempty"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// ProveedorRequest creación/actualización de proveedor.
type ProveedorRequest struct {
	NombreEmpresa  string `json:"nombre_empresa" validate:"required"`
	ContactoNombre string `json:"contacto_nombre"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email" validate:"omitempty,email"`
}

// ProveedorResponse un proveedor del usuario.
type ProveedorResponse struct {
	ID             int64  `json:"id"`
	NombreEmpresa  string `json:"nombre_empresa"`
	ContactoNombre string `json:"contacto_nombre,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	Email          string `json:"email,omitempty"`
}

// CategoriaRequest creación/actualización de categoría.
type CategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

// CategoriaResponse una categoría del usuario.
type CategoriaResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
