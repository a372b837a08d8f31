package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service concentra las reglas de negocio: validación, generación de
// id/timestamps y traducción de ausencias del store a NotFoundError.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create valida el DTO, genera id y timestamps del lado servidor
// (nunca vienen del cliente) y persiste. Los campos de texto se
// guardan sin espacios alrededor.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if err := ValidateCreate(in); err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:        s.newID(),
		Name:      strings.TrimSpace(*in.Name),
		Kind:      Kind(*in.Kind),
		Age:       int(*in.Age),
		Breed:     trimOptional(in.Breed),
		OwnerName: trimOptional(in.OwnerName),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Put(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// List delega directo al store; los filtros ya llegan validados.
func (s *Service) List(ctx context.Context, f Filters) ([]Pet, error) {
	return s.repo.ListAll(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Pet{}, newNotFoundError(id)
	}
	if err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Update verifica existencia ANTES de validar el body parcial: un id
// ausente responde 404 aunque el body también sea inválido. Los campos
// presentes pisan el valor previo (texto recortado); los ausentes
// conservan su valor exacto, incluida la ausencia de opcionales.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	current, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Pet{}, newNotFoundError(id)
	}
	if err != nil {
		return Pet{}, err
	}

	if err := ValidateUpdate(in); err != nil {
		return Pet{}, err
	}

	updated := current
	if in.Name != nil {
		updated.Name = strings.TrimSpace(*in.Name)
	}
	if in.Kind != nil {
		updated.Kind = Kind(*in.Kind)
	}
	if in.Age != nil {
		updated.Age = int(*in.Age)
	}
	if in.Breed != nil {
		updated.Breed = trimOptional(in.Breed)
	}
	if in.OwnerName != nil {
		updated.OwnerName = trimOptional(in.OwnerName)
	}
	updated.UpdatedAt = s.now()

	if err := s.repo.Put(ctx, updated); err != nil {
		return Pet{}, err
	}
	return updated, nil
}

// Delete remueve el registro en forma permanente; no hay recuperación.
func (s *Service) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return newNotFoundError(id)
	}
	return nil
}

// Stats devuelve el conteo actual; conveniencia de diagnóstico.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Total: n}, nil
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
