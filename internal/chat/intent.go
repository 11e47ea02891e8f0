// Package chat implements the rule-based conversational interface: a closed
// intent set matched by compiled patterns, an explicit per-user state machine
// for multi-step flows, and a Redis-backed session store. The chat layer only
// parses and collects input; every completed command is dispatched to the same
// services the REST surface uses.
package chat

import (
	"regexp"
	"strings"
)

// Intent is the closed set of commands the chat understands.
type Intent string

const (
	IntentAgregarColaborador    Intent = "agregar_colaborador"
	IntentEliminarColaborador   Intent = "eliminar_colaborador"
	IntentActualizarColaborador Intent = "actualizar_colaborador"
	IntentAgregarProducto       Intent = "agregar_producto"
	IntentEliminarProducto      Intent = "eliminar_producto"
	IntentActualizarProducto    Intent = "actualizar_producto"
	IntentRegistrarVenta        Intent = "registrar_venta"
	IntentEliminarVenta         Intent = "eliminar_venta"
	IntentAgregarCobro          Intent = "agregar_cobro"
	IntentEliminarCobro         Intent = "eliminar_cobro"
	IntentConsultarDeuda        Intent = "consultar_deuda"
	IntentAyuda                 Intent = "ayuda"
	IntentDesconocido           Intent = "desconocido"
)

type regla struct {
	re     *regexp.Regexp
	intent Intent
}

// Matcher classifies free text into an Intent with an ordered rule list;
// the first matching pattern wins.
type Matcher struct {
	reglas []regla
}

// NewMatcher builds the default Spanish rule set. Order matters: the more
// specific verbs (eliminar, actualizar) come before the generic ones.
func NewMatcher() *Matcher {
	compile := func(pattern string, intent Intent) regla {
		return regla{re: regexp.MustCompile(pattern), intent: intent}
	}
	return &Matcher{reglas: []regla{
		compile(`(?i)(eliminar|borrar|quitar).*(colaborador|trabajador)`, IntentEliminarColaborador),
		compile(`(?i)(actualizar|modificar|cambiar).*(colaborador|trabajador)`, IntentActualizarColaborador),
		compile(`(?i)(agregar|añadir|nuevo|crear|registrar).*(colaborador|trabajador)`, IntentAgregarColaborador),
		compile(`(?i)(eliminar|borrar|quitar).*producto`, IntentEliminarProducto),
		compile(`(?i)(actualizar|modificar|cambiar|reponer).*(producto|stock)`, IntentActualizarProducto),
		compile(`(?i)(agregar|añadir|nuevo|crear|registrar).*producto`, IntentAgregarProducto),
		compile(`(?i)(eliminar|borrar|anular).*venta`, IntentEliminarVenta),
		compile(`(?i)(registrar|agregar|nueva|crear).*venta`, IntentRegistrarVenta),
		compile(`(?i)(eliminar|borrar|anular).*(cobro|pago)`, IntentEliminarCobro),
		compile(`(?i)(registrar|agregar|nuevo|crear).*(cobro|pago)`, IntentAgregarCobro),
		compile(`(?i)(deuda|debe|pendiente|cuanto falta)`, IntentConsultarDeuda),
		compile(`(?i)(ayuda|help|opciones|que puedes hacer)`, IntentAyuda),
	}}
}

// Match returns the first intent whose pattern matches, or Desconocido.
func (m *Matcher) Match(texto string) Intent {
	texto = strings.TrimSpace(texto)
	for _, r := range m.reglas {
		if r.re.MatchString(texto) {
			return r.intent
		}
	}
	return IntentDesconocido
}
