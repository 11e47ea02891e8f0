package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcherClasificaIntents(t *testing.T) {
	m := NewMatcher()

	casos := []struct {
		texto  string
		intent Intent
	}{
		{"quiero agregar un colaborador", IntentAgregarColaborador},
		{"Registrar nuevo trabajador", IntentAgregarColaborador},
		{"eliminar al colaborador Juan", IntentEliminarColaborador},
		{"actualizar el sueldo del colaborador", IntentActualizarColaborador},
		{"crear producto", IntentAgregarProducto},
		{"borrar un producto", IntentEliminarProducto},
		{"reponer stock", IntentActualizarProducto},
		{"registrar una venta", IntentRegistrarVenta},
		{"anular la venta de ayer", IntentEliminarVenta},
		{"agregar un cobro", IntentAgregarCobro},
		{"eliminar un pago", IntentEliminarCobro},
		{"cuanto debe Maria", IntentConsultarDeuda},
		{"AYUDA", IntentAyuda},
		{"hola buenas tardes", IntentDesconocido},
		{"", IntentDesconocido},
	}
	for _, c := range casos {
		assert.Equal(t, c.intent, m.Match(c.texto), "texto: %q", c.texto)
	}
}

// "eliminar" and "actualizar" rules must win over the generic "agregar"
// family even when both verbs could apply.
func TestMatcherPrecedencia(t *testing.T) {
	m := NewMatcher()

	assert.Equal(t, IntentEliminarProducto, m.Match("quitar el producto nuevo"))
	assert.Equal(t, IntentEliminarColaborador, m.Match("borrar al nuevo colaborador"))
}
