package repository

import "github.com/ventaplus/ventaplus-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	FindByEmail(email string) (*entity.Usuario, error)
	GetByID(id int64) (*entity.Usuario, error)
}
