package blob

import (
	"context"
	"io"
)

// Bucket es el puerto hacia el object storage externo.
// Los handlers suben bytes y persisten solo la key derivada; la URL
// pública se resuelve al armar cada respuesta.
type Bucket interface {
	// Put guarda el contenido bajo key. size es la cantidad de bytes a leer de r.
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error

	// PublicURL devuelve el link externamente resoluble para una key ya subida.
	PublicURL(key string) string
}
