package chat

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// State of a conversation. A session not present in the store is Idle.
type State string

const (
	StateIdle         State = "idle"
	StateRecolectando State = "recolectando"
)

// Session is the full persisted conversation state for one user. Everything
// a multi-step flow has gathered so far lives here, never in process memory.
type Session struct {
	State  State             `json:"state"`
	Intent Intent            `json:"intent"`
	// Paso indexes the field currently being collected.
	Paso   int               `json:"paso"`
	Campos map[string]string `json:"campos"`
}

// Comando is a completed chat command ready for dispatch.
type Comando struct {
	Intent Intent
	Campos map[string]string
}

type tipoCampo int

const (
	campoTexto tipoCampo = iota
	campoEntero
	campoMonto
)

type campo struct {
	nombre   string
	pregunta string
	tipo     tipoCampo
}

// flujos defines, per intent, the ordered fields a flow collects before the
// command dispatches. Intents missing here complete immediately.
var flujos = map[Intent][]campo{
	IntentAgregarColaborador: {
		{"nombre", "¿Cual es el nombre del colaborador?", campoTexto},
		{"departamento", "¿A que departamento pertenece? (Producción, Ventas, Administración o Financiero)", campoTexto},
	},
	IntentEliminarColaborador: {
		{"nombre", "¿Que colaborador deseas eliminar?", campoTexto},
	},
	IntentActualizarColaborador: {
		{"nombre", "¿Que colaborador deseas actualizar?", campoTexto},
		{"sueldo", "¿Cual es el nuevo sueldo?", campoMonto},
	},
	IntentAgregarProducto: {
		{"nombre", "¿Cual es el nombre del producto?", campoTexto},
		{"precio", "¿Cual es el precio unitario?", campoMonto},
		{"cantidad", "¿Cuantas unidades ingresan al inventario?", campoEntero},
	},
	IntentEliminarProducto: {
		{"nombre", "¿Que producto deseas eliminar?", campoTexto},
	},
	IntentActualizarProducto: {
		{"nombre", "¿Que producto deseas actualizar?", campoTexto},
		{"cantidad", "¿Cual es la nueva cantidad total?", campoEntero},
	},
	IntentRegistrarVenta: {
		{"colaborador", "¿Que colaborador realizo la venta?", campoTexto},
		{"producto", "¿Que producto se vendio?", campoTexto},
		{"cantidad", "¿Cuantas unidades?", campoEntero},
	},
	IntentEliminarVenta: {
		{"venta_id", "Indica el id de la venta a eliminar", campoTexto},
	},
	IntentAgregarCobro: {
		{"venta_id", "Indica el id de la venta a cobrar", campoTexto},
		{"monto", "¿Cual es el monto del cobro?", campoMonto},
	},
	IntentEliminarCobro: {
		{"cobro_id", "Indica el id del cobro a eliminar", campoTexto},
	},
	IntentConsultarDeuda: {
		{"venta_id", "Indica el id de la venta a consultar", campoTexto},
	},
}

// Iniciar starts a flow for the matched intent. It returns the next session,
// the reply to send, and a non-nil Comando when the intent has no fields to
// collect and can dispatch right away.
func Iniciar(intent Intent) (Session, string, *Comando) {
	campos, ok := flujos[intent]
	if !ok || len(campos) == 0 {
		return Session{State: StateIdle}, "", &Comando{Intent: intent, Campos: map[string]string{}}
	}
	s := Session{
		State:  StateRecolectando,
		Intent: intent,
		Paso:   0,
		Campos: map[string]string{},
	}
	return s, campos[0].pregunta, nil
}

// Avanzar is the pure transition function (state, input) -> (state', output).
// It consumes one user message, validates it against the current field, and
// either re-prompts, asks for the next field, or completes the command.
func Avanzar(s Session, input string) (Session, string, *Comando) {
	if s.State != StateRecolectando {
		return Session{State: StateIdle}, "", nil
	}

	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "cancelar") {
		return Session{State: StateIdle}, "Operacion cancelada. ¿En que mas puedo ayudarte?", nil
	}

	campos := flujos[s.Intent]
	if s.Paso >= len(campos) {
		// Corrupt session; reset rather than guess.
		return Session{State: StateIdle}, "Algo salio mal con la conversacion, empecemos de nuevo.", nil
	}

	actual := campos[s.Paso]
	if msg, ok := validarCampo(actual, input); !ok {
		return s, msg, nil
	}

	if s.Campos == nil {
		s.Campos = map[string]string{}
	}
	s.Campos[actual.nombre] = input
	s.Paso++

	if s.Paso < len(campos) {
		return s, campos[s.Paso].pregunta, nil
	}
	return Session{State: StateIdle}, "", &Comando{Intent: s.Intent, Campos: s.Campos}
}

func validarCampo(c campo, input string) (string, bool) {
	if input == "" {
		return c.pregunta, false
	}
	switch c.tipo {
	case campoEntero:
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 {
			return "Necesito un numero entero mayor a cero. " + c.pregunta, false
		}
	case campoMonto:
		d, err := decimal.NewFromString(input)
		if err != nil || d.IsNegative() {
			return "Necesito un monto valido. " + c.pregunta, false
		}
	}
	return "", true
}
