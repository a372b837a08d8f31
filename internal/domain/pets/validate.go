package pets

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxTextLen = 100

// maxAge es el techo "realista" de edad aceptado por el contrato.
const maxAge = 150

// ValidateCreate valida el DTO de creación. Corta en la primera
// violación, en orden fijo: name → kind → age → breed → ownerName.
// Los errores de tipo JSON (string donde va número, etc.) se detectan
// antes, al decodificar el body (ver handler).
func ValidateCreate(in CreateInput) error {
	// string vacío cuenta como ausente; solo el blanco-con-espacios
	// reporta "não pode ser vazio"
	if in.Name == nil || *in.Name == "" {
		return newValidationError("O campo 'name' é obrigatório")
	}
	if err := validateName(*in.Name); err != nil {
		return err
	}

	if in.Kind == nil || *in.Kind == "" {
		return newValidationError("O campo 'kind' é obrigatório")
	}
	if !Kind(*in.Kind).Valid() {
		return invalidKindError()
	}

	if in.Age == nil {
		return newValidationError("O campo 'age' é obrigatório")
	}
	if err := validateAge(*in.Age); err != nil {
		return err
	}

	if in.Breed != nil {
		if err := validateMaxLen("breed", *in.Breed); err != nil {
			return err
		}
	}
	if in.OwnerName != nil {
		if err := validateMaxLen("ownerName", *in.OwnerName); err != nil {
			return err
		}
	}
	return nil
}

// ValidateUpdate valida el DTO de actualización parcial: exige al menos
// un campo presente y aplica a cada campo presente la misma regla que
// la creación. La ausencia de un campo nunca es error.
func ValidateUpdate(in UpdateInput) error {
	if in.Name == nil && in.Kind == nil && in.Age == nil && in.Breed == nil && in.OwnerName == nil {
		return newValidationError("É necessário fornecer pelo menos um campo para atualização")
	}

	if in.Name != nil {
		if err := validateName(*in.Name); err != nil {
			return err
		}
	}
	if in.Kind != nil && !Kind(*in.Kind).Valid() {
		return invalidKindError()
	}
	if in.Age != nil {
		if err := validateAge(*in.Age); err != nil {
			return err
		}
	}
	if in.Breed != nil {
		if err := validateMaxLen("breed", *in.Breed); err != nil {
			return err
		}
	}
	if in.OwnerName != nil {
		if err := validateMaxLen("ownerName", *in.OwnerName); err != nil {
			return err
		}
	}
	return nil
}

// ParseFilters convierte los query params crudos en Filters tipados.
// age admite decimales y se trunca a entero.
func ParseFilters(kind, age string) (Filters, error) {
	var f Filters

	if kind != "" {
		k := Kind(kind)
		if !k.Valid() {
			return Filters{}, &ValidationError{
				Message: fmt.Sprintf("O filtro 'kind' deve ser um dos seguintes valores: %s", kindList()),
				Details: map[string]any{"valoresValidos": Kinds()},
			}
		}
		f.Kind = k
	}

	if age != "" {
		n, err := strconv.ParseFloat(age, 64)
		// ParseFloat acepta "inf"/"nan"; para el contrato no son números
		// válidos, y convertirlos a int quedaría indefinido
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return Filters{}, newValidationError("O filtro 'age' deve ser um número válido")
		}
		if n < 0 {
			return Filters{}, newValidationError("O filtro 'age' não pode ser negativo")
		}
		// techo antes de truncar: un finito enorme matchea igual de nada
		// que MaxInt32, sin pasar por una conversión indefinida
		if n > math.MaxInt32 {
			n = math.MaxInt32
		}
		v := int(n)
		f.Age = &v
	}

	return f, nil
}

// IsValidID indica si id tiene el formato textual canónico de UUID v4
// (8-4-4-4-12, nibble de versión 4, variante RFC 4122), case-insensitive.
// Predicado puro: nunca falla.
func IsValidID(id string) bool {
	// uuid.Parse acepta también urn: y llaves; el largo fija la forma canónica.
	if len(id) != 36 {
		return false
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return newValidationError("O campo 'name' não pode ser vazio")
	}
	return validateMaxLen("name", name)
}

// validateMaxLen cuenta caracteres (runas), no bytes: "João" son 4
// caracteres. El límite del contrato es en caracteres.
func validateMaxLen(field, value string) error {
	if utf8.RuneCountInString(value) > maxTextLen {
		return newValidationError(fmt.Sprintf("O campo '%s' deve ter no máximo 100 caracteres", field))
	}
	return nil
}

func validateAge(age float64) error {
	if age < 0 {
		return newValidationError("O campo 'age' não pode ser negativo")
	}
	if age > maxAge {
		return newValidationError("O campo 'age' deve ser um valor realista (máximo 150 anos)")
	}
	if age != math.Trunc(age) {
		return newValidationError("O campo 'age' deve ser um número inteiro")
	}
	return nil
}

func invalidKindError() error {
	return &ValidationError{
		Message: fmt.Sprintf("O campo 'kind' deve ser um dos seguintes valores: %s", kindList()),
		Details: map[string]any{"valoresValidos": Kinds()},
	}
}

func kindList() string {
	ks := Kinds()
	parts := make([]string, 0, len(ks))
	for _, k := range ks {
		parts = append(parts, string(k))
	}
	return strings.Join(parts, ", ")
}
