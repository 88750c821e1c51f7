package reports

import (
	"context"
	"time"
)

// Cache almacén clave/valor con TTL para respuestas del dashboard.
// Un miss se señala con ok=false; los errores de infraestructura se degradan
// a miss en el adaptador, el caso de uso nunca falla por el caché.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}
