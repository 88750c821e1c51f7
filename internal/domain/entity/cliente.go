package entity

import "time"

// Cliente comprador registrado por el usuario. Las ventas lo referencian con
// ON DELETE SET NULL: una venta sobrevive al borrado de su cliente.
type Cliente struct {
	ID            int64
	UsuarioID     int64
	Nombre        string
	Contacto      string
	FechaRegistro time.Time
}

// Proveedor de mercancía; referenciado por las compras.
type Proveedor struct {
	ID             int64
	UsuarioID      int64
	NombreEmpresa  string
	ContactoNombre string
	Telefono       string
	Email          string
}

// Categoria agrupa productos. Nombre único por usuario.
type Categoria struct {
	ID        int64
	UsuarioID int64
	Nombre    string
}
