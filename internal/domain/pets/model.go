package pets

import "time"

// Kind define los tipos de mascota soportados.
// @Enum dog, cat, bird, other
type Kind string

const (
	KindDog   Kind = "dog"
	KindCat   Kind = "cat"
	KindBird  Kind = "bird"
	KindOther Kind = "other"
)

// Kinds devuelve todos los valores válidos, en orden de contrato.
func Kinds() []Kind {
	return []Kind{KindDog, KindCat, KindBird, KindOther}
}

func (k Kind) Valid() bool {
	switch k {
	case KindDog, KindCat, KindBird, KindOther:
		return true
	}
	return false
}

// Pet representa el registro almacenado de una mascota.
// Breed y OwnerName son opcionales: nil = nunca seteado,
// string vacío = seteado explícitamente a vacío.
type Pet struct {
	ID   string
	Name string
	Kind Kind
	Age  int

	Breed     *string
	OwnerName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateInput es el DTO de creación. Punteros para distinguir
// "campo ausente" de "campo en cero" al decodificar JSON.
// Age es float64 para que un 3.5 llegue al check de entero.
type CreateInput struct {
	Name      *string  `json:"name"`
	Kind      *string  `json:"kind"`
	Age       *float64 `json:"age"`
	Breed     *string  `json:"breed"`
	OwnerName *string  `json:"ownerName"`
}

// UpdateInput es el DTO de actualización parcial: todos los campos
// opcionales, nil = no tocar.
type UpdateInput struct {
	Name      *string  `json:"name"`
	Kind      *string  `json:"kind"`
	Age       *float64 `json:"age"`
	Breed     *string  `json:"breed"`
	OwnerName *string  `json:"ownerName"`
}

// Filters acota ListAll. Ambos filtros son de igualdad exacta y se
// combinan como AND.
type Filters struct {
	Kind Kind
	Age  *int
}

// Stats expone conteos básicos para diagnóstico.
type Stats struct {
	Total int
}
