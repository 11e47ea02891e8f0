package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIniciarFlujoConCampos(t *testing.T) {
	s, pregunta, cmd := Iniciar(IntentAgregarProducto)

	assert.Nil(t, cmd)
	assert.Equal(t, StateRecolectando, s.State)
	assert.Equal(t, IntentAgregarProducto, s.Intent)
	assert.Equal(t, "¿Cual es el nombre del producto?", pregunta)
}

func TestIniciarIntentSinCampos(t *testing.T) {
	s, _, cmd := Iniciar(IntentAyuda)

	require.NotNil(t, cmd)
	assert.Equal(t, IntentAyuda, cmd.Intent)
	assert.Equal(t, StateIdle, s.State)
}

func TestAvanzarFlujoCompleto(t *testing.T) {
	s, _, _ := Iniciar(IntentAgregarProducto)

	s, pregunta, cmd := Avanzar(s, "Pan frances")
	assert.Nil(t, cmd)
	assert.Equal(t, "¿Cual es el precio unitario?", pregunta)

	s, pregunta, cmd = Avanzar(s, "25.50")
	assert.Nil(t, cmd)
	assert.Equal(t, "¿Cuantas unidades ingresan al inventario?", pregunta)

	s, _, cmd = Avanzar(s, "10")
	require.NotNil(t, cmd)
	assert.Equal(t, StateIdle, s.State)
	assert.Equal(t, IntentAgregarProducto, cmd.Intent)
	assert.Equal(t, map[string]string{
		"nombre":   "Pan frances",
		"precio":   "25.50",
		"cantidad": "10",
	}, cmd.Campos)
}

func TestAvanzarReintentaNumeroInvalido(t *testing.T) {
	s, _, _ := Iniciar(IntentAgregarProducto)
	s, _, _ = Avanzar(s, "Pan frances")

	// A bad amount re-prompts the same field without advancing.
	s, respuesta, cmd := Avanzar(s, "mucho")
	assert.Nil(t, cmd)
	assert.Contains(t, respuesta, "monto valido")
	assert.Equal(t, 1, s.Paso)

	s, _, cmd = Avanzar(s, "25")
	assert.Nil(t, cmd)
	assert.Equal(t, 2, s.Paso)

	s, respuesta, cmd = Avanzar(s, "cero")
	assert.Nil(t, cmd)
	assert.Contains(t, respuesta, "numero entero")

	_, _, cmd = Avanzar(s, "0")
	assert.Nil(t, cmd)
}

func TestAvanzarCancelar(t *testing.T) {
	s, _, _ := Iniciar(IntentRegistrarVenta)
	s, _, _ = Avanzar(s, "Maria")

	s, respuesta, cmd := Avanzar(s, "Cancelar")
	assert.Nil(t, cmd)
	assert.Equal(t, StateIdle, s.State)
	assert.Contains(t, respuesta, "cancelada")
}

func TestAvanzarSesionCorrupta(t *testing.T) {
	s := Session{State: StateRecolectando, Intent: IntentEliminarProducto, Paso: 99}

	s, respuesta, cmd := Avanzar(s, "lo que sea")
	assert.Nil(t, cmd)
	assert.Equal(t, StateIdle, s.State)
	assert.NotEmpty(t, respuesta)
}

func TestAvanzarSesionIdleNoHaceNada(t *testing.T) {
	s, respuesta, cmd := Avanzar(Session{State: StateIdle}, "hola")
	assert.Nil(t, cmd)
	assert.Empty(t, respuesta)
	assert.Equal(t, StateIdle, s.State)
}
