package entity

import "time"

// Usuario es la cuenta dueña de todos los registros: cada tabla del negocio
// lleva usuario_id y toda lectura/escritura se filtra por él.
type Usuario struct {
	ID           int64
	Nombre       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
