package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse respuesta de creación: id del nuevo recurso y mensaje.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MensajeResponse respuesta simple con mensaje de confirmación.
type MensajeResponse struct {
	Message string `json:"message"`
}
