package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
)

// KeyValueStore es el almacenamiento cliente (equivalente a localStorage),
// separado por namespace: cada perfil/dispositivo tiene el suyo.
// Los valores son blobs JSON opacos para el adapter.
type KeyValueStore interface {
	// Get devuelve ErrNotFound si la key no existe.
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	Set(ctx context.Context, namespace, key string, value []byte) error
	// Delete no falla si la key no existe.
	Delete(ctx context.Context, namespace, key string) error
}
