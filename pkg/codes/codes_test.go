package codes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellr/almacen-api/pkg/codes"
)

// Sin código previo: arranca la secuencia de la categoría en 1.
func TestNext_SinPrevio_IniciaSecuencia(t *testing.T) {
	code, err := codes.Next("", "bearings")
	require.NoError(t, err)
	assert.Equal(t, "SKB-1", code, "la secuencia debe iniciar con la inicial de la categoría")
}

// Con código previo: incrementa el consecutivo conservando el prefijo.
func TestNext_ConPrevio_Incrementa(t *testing.T) {
	code, err := codes.Next("SKB-41", "")
	require.NoError(t, err)
	assert.Equal(t, "SKB-42", code)
}

// Sin previo ni categoría no hay forma de derivar el prefijo.
func TestNext_SinPrevioNiCategoria_Error(t *testing.T) {
	_, err := codes.Next("", "")
	assert.Error(t, err)
}

// Un código previo mal formado no debe producir un código nuevo.
func TestNext_PrevioInvalido_Error(t *testing.T) {
	_, err := codes.Next("SKB41", "")
	assert.Error(t, err, "un código sin separador debe rechazarse")

	_, err = codes.Next("SKB-xx", "")
	assert.Error(t, err, "un consecutivo no numérico debe rechazarse")
}
