package pets

import "context"

// Repository es el puerto de almacenamiento de pets.
// GetByID devuelve ErrNotFound cuando el id no existe; Delete informa
// si efectivamente removió un registro.
type Repository interface {
	Put(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListAll(ctx context.Context, f Filters) ([]Pet, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
