package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"qa-pet-api/internal/domain/pets"
)

// IDs fijos de los fixtures, para que las suites de QA puedan asertar
// contra registros conocidos.
const (
	SeedRexID  = "550e8400-e29b-41d4-a716-446655440001"
	SeedMimiID = "550e8400-e29b-41d4-a716-446655440002"
)

// PetRepo guarda los pets en un map protegido por RWMutex: chi atiende
// requests en paralelo, así que put/delete deben ser atómicos respecto
// de las lecturas para que un pet "exista completo o no exista".
type PetRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
	now  func() time.Time
}

func NewPetRepo() *PetRepo {
	return &PetRepo{
		byID: make(map[string]pets.Pet),
		now:  time.Now,
	}
}

// Seed inserta los dos fixtures (Rex y Mimi). Paso explícito separado
// de la construcción: los tests deciden si lo llaman o no.
func (r *PetRepo) Seed() {
	now := r.now()

	rex := pets.Pet{
		ID:        SeedRexID,
		Name:      "Rex",
		Kind:      pets.KindDog,
		Age:       5,
		Breed:     ptr("Labrador"),
		OwnerName: ptr("João Silva"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	mimi := pets.Pet{
		ID:        SeedMimiID,
		Name:      "Mimi",
		Kind:      pets.KindCat,
		Age:       3,
		Breed:     ptr("Persa"),
		OwnerName: ptr("Maria Santos"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[rex.ID] = rex
	r.byID[mimi.ID] = mimi
}

// Put inserta o reemplaza por ID.
func (r *PetRepo) Put(ctx context.Context, p pets.Pet) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p
	return nil
}

func (r *PetRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

// ListAll devuelve los pets que cumplen TODOS los filtros presentes
// (igualdad exacta). Orden estable por CreatedAt asc, desempate por ID,
// solo para que las respuestas sean diffeables.
func (r *PetRepo) ListAll(ctx context.Context, f pets.Filters) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		if f.Kind != "" && p.Kind != f.Kind {
			continue
		}
		if f.Age != nil && p.Age != *f.Age {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *PetRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}

// Delete remueve por ID e informa si había registro.
func (r *PetRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	if ok {
		delete(r.byID, id)
	}
	return ok, nil
}

func (r *PetRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}

// Clear vacía el store; útil en tests.
func (r *PetRepo) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]pets.Pet)
}

func ptr(s string) *string { return &s }
