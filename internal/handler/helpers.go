package handler

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jonathanEDR/gestorappb/internal/apierror"
	"github.com/jonathanEDR/gestorappb/internal/ledger"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("bad_request", "JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindQueryAndValidate does the same for query-string filters.
func bindQueryAndValidate(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("bad_request", err.Error()))
		return false
	}
	if err := validate.Struct(filter); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError translates a service error into the HTTP envelope. Business
// kinds map to stable status codes; anything unclassified is masked behind a
// generic 500 and logged with full detail server-side.
func respondError(c *gin.Context, err error) {
	kind := ledger.KindOf(err)
	switch kind {
	case ledger.KindNotFound:
		c.JSON(http.StatusNotFound, apierror.New(string(kind), err.Error()))
	case ledger.KindValidation:
		c.JSON(http.StatusUnprocessableEntity, apierror.New(string(kind), err.Error()))
	case ledger.KindInsufficientStock,
		ledger.KindPaymentExceedsDebt,
		ledger.KindReturnExceedsSold,
		ledger.KindReturnExceedsDebt,
		ledger.KindSaleHasReturns,
		ledger.KindCollaboratorHasSales,
		ledger.KindConflict:
		c.JSON(http.StatusConflict, apierror.New(string(kind), err.Error()))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("error interno")
		c.JSON(http.StatusInternalServerError, apierror.New(string(ledger.KindInternal), "Error interno del servidor"))
	}
}

// parseID reads a path param as a UUID, answering 400 on garbage.
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("bad_request", "ID invalido"))
		return uuid.Nil, false
	}
	return id, true
}
