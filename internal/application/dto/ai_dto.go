package dto

// DescripcionRequest entrada para generar la descripción de un producto.
type DescripcionRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Categoria string `json:"categoria" validate:"required"`
}

// DescripcionResponse descripción de marketing generada.
type DescripcionResponse struct {
	Description string `json:"description"`
}
