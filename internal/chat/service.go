package chat

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/ledger"
	"github.com/jonathanEDR/gestorappb/internal/repository"
	"github.com/jonathanEDR/gestorappb/internal/service"
)

const ayudaTexto = `Puedo ayudarte con:
- agregar, actualizar o eliminar productos
- agregar, actualizar o eliminar colaboradores
- registrar o eliminar ventas
- registrar o eliminar cobros
- consultar la deuda de una venta
Escribe "cancelar" en cualquier momento para reiniciar la conversacion.`

// Service drives a conversation: classify the message (or continue the
// active flow), and dispatch completed commands to the same domain services
// the REST handlers call. Parsing never touches ledger code.
type Service interface {
	Responder(ctx context.Context, userID, mensaje string) (string, error)
}

type chatService struct {
	matcher *Matcher
	store   SessionStore

	productos       service.ProductoService
	colaboradores   service.ColaboradorService
	ventas          service.VentaService
	cobros          service.CobroService
	productoRepo    repository.ProductoRepository
	colaboradorRepo repository.ColaboradorRepository
}

func NewService(
	store SessionStore,
	productos service.ProductoService,
	colaboradores service.ColaboradorService,
	ventas service.VentaService,
	cobros service.CobroService,
	productoRepo repository.ProductoRepository,
	colaboradorRepo repository.ColaboradorRepository,
) Service {
	return &chatService{
		matcher:         NewMatcher(),
		store:           store,
		productos:       productos,
		colaboradores:   colaboradores,
		ventas:          ventas,
		cobros:          cobros,
		productoRepo:    productoRepo,
		colaboradorRepo: colaboradorRepo,
	}
}

func (s *chatService) Responder(ctx context.Context, userID, mensaje string) (string, error) {
	sesion, err := s.store.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	// An active flow consumes the message before any intent matching.
	if sesion != nil && sesion.State == StateRecolectando {
		siguiente, reply, cmd := Avanzar(*sesion, mensaje)
		if cmd != nil {
			if err := s.store.Delete(ctx, userID); err != nil {
				return "", err
			}
			return s.dispatch(ctx, userID, cmd)
		}
		if siguiente.State == StateIdle {
			if err := s.store.Delete(ctx, userID); err != nil {
				return "", err
			}
		} else if err := s.store.Save(ctx, userID, siguiente); err != nil {
			return "", err
		}
		return reply, nil
	}

	intent := s.matcher.Match(mensaje)
	switch intent {
	case IntentAyuda:
		return ayudaTexto, nil
	case IntentDesconocido:
		return "No entendi tu mensaje. Escribe \"ayuda\" para ver lo que puedo hacer.", nil
	}

	siguiente, pregunta, cmd := Iniciar(intent)
	if cmd != nil {
		return s.dispatch(ctx, userID, cmd)
	}
	if err := s.store.Save(ctx, userID, siguiente); err != nil {
		return "", err
	}
	return pregunta, nil
}

// dispatch executes a completed command. Business-rule violations become the
// bot's reply; only internal failures propagate as errors.
func (s *chatService) dispatch(ctx context.Context, userID string, cmd *Comando) (string, error) {
	reply, err := s.ejecutar(ctx, userID, cmd)
	if err != nil {
		if ledger.KindOf(err) == ledger.KindInternal {
			return "", err
		}
		return err.Error(), nil
	}
	return reply, nil
}

func (s *chatService) ejecutar(ctx context.Context, userID string, cmd *Comando) (string, error) {
	c := cmd.Campos
	switch cmd.Intent {
	case IntentAgregarColaborador:
		resp, err := s.colaboradores.Crear(ctx, userID, dto.CrearColaboradorRequest{
			Nombre:       c["nombre"],
			Departamento: normalizarDepartamento(c["departamento"]),
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Colaborador %s agregado al departamento %s.", resp.Nombre, resp.Departamento), nil

	case IntentEliminarColaborador:
		colab, err := s.buscarColaborador(ctx, userID, c["nombre"])
		if err != nil {
			return "", err
		}
		id, _ := uuid.Parse(colab.ID)
		if err := s.colaboradores.Eliminar(ctx, userID, id); err != nil {
			return "", err
		}
		return fmt.Sprintf("Colaborador %s eliminado.", colab.Nombre), nil

	case IntentActualizarColaborador:
		colab, err := s.buscarColaborador(ctx, userID, c["nombre"])
		if err != nil {
			return "", err
		}
		sueldo, _ := decimal.NewFromString(c["sueldo"])
		id, _ := uuid.Parse(colab.ID)
		resp, err := s.colaboradores.Actualizar(ctx, userID, id, dto.ActualizarColaboradorRequest{Sueldo: &sueldo})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Sueldo de %s actualizado a %s.", resp.Nombre, resp.Sueldo.StringFixed(2)), nil

	case IntentAgregarProducto:
		precio, _ := decimal.NewFromString(c["precio"])
		cantidad, _ := strconv.Atoi(c["cantidad"])
		resp, err := s.productos.Crear(ctx, userID, dto.CrearProductoRequest{
			Nombre:   c["nombre"],
			Precio:   precio,
			Cantidad: cantidad,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Producto %s agregado: %d unidades a %s.", resp.Nombre, resp.Cantidad, resp.Precio.StringFixed(2)), nil

	case IntentEliminarProducto:
		p, err := s.buscarProducto(ctx, userID, c["nombre"])
		if err != nil {
			return "", err
		}
		if err := s.productos.Eliminar(ctx, userID, p.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Producto %s eliminado.", p.Nombre), nil

	case IntentActualizarProducto:
		p, err := s.buscarProducto(ctx, userID, c["nombre"])
		if err != nil {
			return "", err
		}
		cantidad, _ := strconv.Atoi(c["cantidad"])
		resp, err := s.productos.Actualizar(ctx, userID, p.ID, dto.ActualizarProductoRequest{Cantidad: &cantidad})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Producto %s actualizado: quedan %d unidades disponibles.", resp.Nombre, resp.CantidadRestante), nil

	case IntentRegistrarVenta:
		colab, err := s.buscarColaborador(ctx, userID, c["colaborador"])
		if err != nil {
			return "", err
		}
		p, err := s.buscarProducto(ctx, userID, c["producto"])
		if err != nil {
			return "", err
		}
		cantidad, _ := strconv.Atoi(c["cantidad"])
		resp, err := s.ventas.Registrar(ctx, userID, dto.RegistrarVentaRequest{
			ColaboradorID: colab.ID,
			Detalles: []dto.DetalleVentaRequest{
				{ProductoID: p.ID.String(), Cantidad: cantidad},
			},
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Venta registrada para %s: %d x %s, total %s.",
			colab.Nombre, cantidad, p.Nombre, resp.MontoTotal.StringFixed(2)), nil

	case IntentEliminarVenta:
		id, err := uuid.Parse(c["venta_id"])
		if err != nil {
			return "", ledger.Validation("El id de la venta no es valido")
		}
		if err := s.ventas.Eliminar(ctx, userID, id); err != nil {
			return "", err
		}
		return "Venta eliminada y stock restaurado.", nil

	case IntentAgregarCobro:
		monto, _ := decimal.NewFromString(c["monto"])
		resp, err := s.cobros.Crear(ctx, userID, dto.CrearCobroRequest{
			VentaID:     c["venta_id"],
			MontoPagado: monto,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Cobro de %s registrado (%s).", resp.MontoPagado.StringFixed(2), resp.EstadoPago), nil

	case IntentEliminarCobro:
		id, err := uuid.Parse(c["cobro_id"])
		if err != nil {
			return "", ledger.Validation("El id del cobro no es valido")
		}
		if err := s.cobros.Eliminar(ctx, userID, id); err != nil {
			return "", err
		}
		return "Cobro eliminado y deuda restaurada.", nil

	case IntentConsultarDeuda:
		id, err := uuid.Parse(c["venta_id"])
		if err != nil {
			return "", ledger.Validation("El id de la venta no es valido")
		}
		deuda, err := s.cobros.Deuda(ctx, userID, id)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("La venta tiene un total de %s, pagado %s, deuda pendiente %s (%s).",
			deuda.MontoTotal.StringFixed(2), deuda.TotalPagado.StringFixed(2),
			deuda.DeudaPendiente.StringFixed(2), deuda.EstadoPago), nil
	}

	return "No entendi tu mensaje. Escribe \"ayuda\" para ver lo que puedo hacer.", nil
}

func (s *chatService) buscarColaborador(ctx context.Context, userID, nombre string) (*dto.ColaboradorResponse, error) {
	colab, err := s.colaboradorRepo.FindByNombre(ctx, userID, nombre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.Validationf("No encontre al colaborador %s", nombre)
		}
		return nil, err
	}
	return &dto.ColaboradorResponse{
		ID:           colab.ID.String(),
		Nombre:       colab.Nombre,
		Departamento: colab.Departamento,
		Sueldo:       colab.Sueldo,
	}, nil
}

type productoEncontrado struct {
	ID     uuid.UUID
	Nombre string
}

func (s *chatService) buscarProducto(ctx context.Context, userID, nombre string) (*productoEncontrado, error) {
	p, err := s.productoRepo.FindByNombre(ctx, userID, nombre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.Validationf("No encontre el producto %s", nombre)
		}
		return nil, err
	}
	return &productoEncontrado{ID: p.ID, Nombre: p.Nombre}, nil
}

// normalizarDepartamento maps free text onto the closed department set,
// defaulting to Ventas.
func normalizarDepartamento(texto string) string {
	texto = strings.ToLower(texto)
	switch {
	case strings.Contains(texto, "produc"):
		return "Producción"
	case strings.Contains(texto, "admin"):
		return "Administración"
	case strings.Contains(texto, "finan"):
		return "Financiero"
	default:
		return "Ventas"
	}
}
