package pets

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }

func validCreateInput() CreateInput {
	return CreateInput{Name: strp("Rex"), Kind: strp("dog"), Age: f64p(5)}
}

func TestValidateCreate_Valid(t *testing.T) {
	require.NoError(t, ValidateCreate(validCreateInput()))

	withOptionals := validCreateInput()
	withOptionals.Breed = strp("Labrador")
	withOptionals.OwnerName = strp("João Silva")
	require.NoError(t, ValidateCreate(withOptionals))
}

func TestValidateCreate_AgeBoundaries(t *testing.T) {
	for _, age := range []float64{0, 150} {
		in := validCreateInput()
		in.Age = f64p(age)
		require.NoError(t, ValidateCreate(in), "age=%v", age)
	}

	for _, age := range []float64{-1, 151} {
		in := validCreateInput()
		in.Age = f64p(age)
		err := ValidateCreate(in)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "age=%v", age)
	}
}

func TestValidateCreate_Failures(t *testing.T) {
	longText := strings.Repeat("x", 101)

	tests := []struct {
		name   string
		mutate func(*CreateInput)
		msg    string
	}{
		{"missing name", func(in *CreateInput) { in.Name = nil }, "O campo 'name' é obrigatório"},
		{"empty name", func(in *CreateInput) { in.Name = strp("") }, "O campo 'name' é obrigatório"},
		{"blank name", func(in *CreateInput) { in.Name = strp("   ") }, "O campo 'name' não pode ser vazio"},
		{"long name", func(in *CreateInput) { in.Name = strp(longText) }, "O campo 'name' deve ter no máximo 100 caracteres"},
		{"missing kind", func(in *CreateInput) { in.Kind = nil }, "O campo 'kind' é obrigatório"},
		{"empty kind", func(in *CreateInput) { in.Kind = strp("") }, "O campo 'kind' é obrigatório"},
		{"unknown kind", func(in *CreateInput) { in.Kind = strp("fish") }, "O campo 'kind' deve ser um dos seguintes valores: dog, cat, bird, other"},
		{"missing age", func(in *CreateInput) { in.Age = nil }, "O campo 'age' é obrigatório"},
		{"negative age", func(in *CreateInput) { in.Age = f64p(-3) }, "O campo 'age' não pode ser negativo"},
		{"unrealistic age", func(in *CreateInput) { in.Age = f64p(200) }, "O campo 'age' deve ser um valor realista (máximo 150 anos)"},
		{"fractional age", func(in *CreateInput) { in.Age = f64p(3.5) }, "O campo 'age' deve ser um número inteiro"},
		{"long breed", func(in *CreateInput) { in.Breed = strp(longText) }, "O campo 'breed' deve ter no máximo 100 caracteres"},
		{"long ownerName", func(in *CreateInput) { in.OwnerName = strp(longText) }, "O campo 'ownerName' deve ter no máximo 100 caracteres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			tt.mutate(&in)

			err := ValidateCreate(in)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tt.msg, vErr.Message)
		})
	}
}

func TestValidateCreate_LengthCountsCharactersNotBytes(t *testing.T) {
	// 100 caracteres acentuados = 200 bytes; el límite es en caracteres
	accented := strings.Repeat("ã", 100)

	in := validCreateInput()
	in.Name = strp(accented)
	in.Breed = strp(accented)
	in.OwnerName = strp(accented)
	require.NoError(t, ValidateCreate(in))

	require.NoError(t, ValidateUpdate(UpdateInput{Name: strp(accented)}))
	require.NoError(t, ValidateUpdate(UpdateInput{Breed: strp(accented)}))

	tooLong := strings.Repeat("ã", 101)
	var vErr *ValidationError

	in = validCreateInput()
	in.Name = strp(tooLong)
	require.ErrorAs(t, ValidateCreate(in), &vErr)
	require.Equal(t, "O campo 'name' deve ter no máximo 100 caracteres", vErr.Message)

	require.ErrorAs(t, ValidateUpdate(UpdateInput{Breed: strp(tooLong)}), &vErr)
	require.Equal(t, "O campo 'breed' deve ter no máximo 100 caracteres", vErr.Message)

	require.ErrorAs(t, ValidateUpdate(UpdateInput{OwnerName: strp(tooLong)}), &vErr)
	require.Equal(t, "O campo 'ownerName' deve ter no máximo 100 caracteres", vErr.Message)
}

func TestValidateCreate_KindErrorCarriesValidValues(t *testing.T) {
	in := validCreateInput()
	in.Kind = strp("dinosaur")

	err := ValidateCreate(in)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	details, ok := vErr.Details.(map[string]any)
	require.True(t, ok)
	require.Equal(t, Kinds(), details["valoresValidos"])
}

func TestValidateCreate_ShortCircuitOrder(t *testing.T) {
	// name y kind inválidos a la vez: debe reportar name primero
	in := CreateInput{Name: strp(" "), Kind: strp("fish"), Age: f64p(-1)}

	err := ValidateCreate(in)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "O campo 'name' não pode ser vazio", vErr.Message)
}

func TestValidateUpdate_RequiresAtLeastOneField(t *testing.T) {
	err := ValidateUpdate(UpdateInput{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "É necessário fornecer pelo menos um campo para atualização", vErr.Message)
}

func TestValidateUpdate_PresentFieldsOnly(t *testing.T) {
	require.NoError(t, ValidateUpdate(UpdateInput{Age: f64p(9)}))
	require.NoError(t, ValidateUpdate(UpdateInput{Breed: strp("")}))

	err := ValidateUpdate(UpdateInput{Name: strp("ok"), Age: f64p(151)})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "O campo 'age' deve ser um valor realista (máximo 150 anos)", vErr.Message)
}

func TestParseFilters(t *testing.T) {
	f, err := ParseFilters("", "")
	require.NoError(t, err)
	require.Equal(t, Filters{}, f)

	f, err = ParseFilters("dog", "5")
	require.NoError(t, err)
	require.Equal(t, KindDog, f.Kind)
	require.NotNil(t, f.Age)
	require.Equal(t, 5, *f.Age)

	// los decimales se truncan
	f, err = ParseFilters("", "3.7")
	require.NoError(t, err)
	require.Equal(t, 3, *f.Age)

	_, err = ParseFilters("fish", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = ParseFilters("", "abc")
	require.ErrorAs(t, err, &vErr)

	_, err = ParseFilters("", "-1")
	require.ErrorAs(t, err, &vErr)
}

func TestParseFilters_NonFiniteAge(t *testing.T) {
	// ParseFloat acepta estas formas, pero no son edades válidas
	for _, age := range []string{"nan", "NaN", "inf", "Inf", "+inf", "infinity"} {
		_, err := ParseFilters("", age)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "age=%q", age)
		require.Equal(t, "O filtro 'age' deve ser um número válido", vErr.Message)
	}

	// un finito enorme no es error: queda como filtro que no matchea nada
	f, err := ParseFilters("", "1e308")
	require.NoError(t, err)
	require.NotNil(t, f.Age)
	require.Equal(t, int(math.MaxInt32), *f.Age)
}

func TestIsValidID(t *testing.T) {
	valid := []string{
		"550e8400-e29b-41d4-a716-446655440001",
		"550E8400-E29B-41D4-A716-446655440001", // case-insensitive
		"f47ac10b-58cc-4372-a567-0e02b2c3d479",
	}
	for _, id := range valid {
		require.True(t, IsValidID(id), id)
	}

	invalid := []string{
		"",
		"not-a-uuid",
		"550e8400-e29b-11d4-a716-446655440001",   // versión 1
		"550e8400-e29b-41d4-c716-446655440001",   // variante inválida
		"550e8400e29b41d4a716446655440001",       // sin guiones
		"{550e8400-e29b-41d4-a716-446655440001}", // con llaves
		"550e8400-e29b-41d4-a716-44665544000",    // corto
	}
	for _, id := range invalid {
		require.False(t, IsValidID(id), id)
	}
}
