package ports

import "context"

// DescriptionGenerator define el puerto de salida hacia el modelo de lenguaje.
// Cualquier adaptador (Ollama, OpenAI, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la capa de
// aplicación solo conoce este contrato, no la implementación concreta.
type DescriptionGenerator interface {
	// GenerateDescription produce una descripción corta de marketing para un
	// producto a partir de su nombre y categoría. El contexto debe llevar un
	// timeout para evitar bloqueos en llamadas externas.
	GenerateDescription(ctx context.Context, nombre, categoria string) (string, error)
}
