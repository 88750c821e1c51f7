package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/application/ports"
	"github.com/ventaplus/ventaplus-api/internal/domain"
)

// AIUseCase orquesta la generación de descripciones de producto asistida por IA.
// Aplica un timeout en cada llamada al LLM para evitar que las latencias
// externas bloqueen los goroutines del servidor.
type AIUseCase struct {
	llm ports.DescriptionGenerator
}

// NewAIUseCase construye el caso de uso inyectando el puerto DescriptionGenerator.
func NewAIUseCase(llm ports.DescriptionGenerator) *AIUseCase {
	return &AIUseCase{llm: llm}
}

// GenerarDescripcion valida la entrada y delega al servicio de LLM.
// Los modelos locales pueden demorar bastante en la primera carga, de ahí
// el timeout generoso de 60 s.
func (uc *AIUseCase) GenerarDescripcion(ctx context.Context, req dto.DescripcionRequest) (*dto.DescripcionResponse, error) {
	if req.Nombre == "" || req.Categoria == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	texto, err := uc.llm.GenerateDescription(ctx, req.Nombre, req.Categoria)
	if err != nil {
		return nil, fmt.Errorf("generación de descripción IA: %w", err)
	}

	return &dto.DescripcionResponse{Description: texto}, nil
}
