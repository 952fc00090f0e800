package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/pkg/logger"
)

// msgInternal único mensaje que ve el cliente ante un 500; la causa solo va al log.
const msgInternal = "error interno del servidor"

// errorWriter clasifica errores de dominio en códigos HTTP.
type errorWriter struct {
	log *logger.Logger
}

// write responde {"error": "..."} con 400/401/403/404/500 según el sentinel envuelto.
func (w errorWriter) write(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		w.log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("user_id", GetUserID(c)).
			Msg("error no controlado")
		return c.Status(status).JSON(dto.ErrorResponse{Error: msgInternal})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusBadRequest
	case errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError:
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ── Validación de entrada ──

var validate = newValidator()

// newValidator registra los tipos decimal para que gte/gt funcionen sobre montos.
// Un NullDecimal nulo cuenta como vacío (omitempty).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		d, _ := f.Interface().(decimal.Decimal)
		return d.InexactFloat64()
	}, decimal.Decimal{})
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		d, _ := f.Interface().(decimal.NullDecimal)
		if !d.Valid {
			return nil
		}
		return d.Decimal.InexactFloat64()
	}, decimal.NullDecimal{})
	return v
}

// bindBody decodifica el JSON y aplica las reglas de validación del DTO.
func bindBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("cuerpo inválido: %v: %w", err, domain.ErrInvalidInput)
	}
	return validateStruct(out)
}

// bindQuery decodifica los parámetros de consulta en out.
func bindQuery(c *fiber.Ctx, out interface{}) error {
	if err := c.QueryParser(out); err != nil {
		return fmt.Errorf("parámetros inválidos: %v: %w", err, domain.ErrInvalidInput)
	}
	return nil
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%s: %w", strings.Join(msgs, "; "), domain.ErrInvalidInput)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " es requerido"
	case "oneof":
		return field + " debe ser uno de: " + fe.Param()
	case "email":
		return field + " no es un email válido"
	case "uuid":
		return field + " no es un UUID válido"
	case "min", "gte":
		return field + " debe ser >= " + fe.Param()
	case "gt":
		return field + " debe ser > " + fe.Param()
	case "max":
		return field + " excede el máximo de " + fe.Param()
	default:
		return field + " inválido (" + fe.Tag() + ")"
	}
}

// idParam lee :name y exige un UUID; cualquier otro valor no puede existir, así que es 404.
func idParam(c *fiber.Ctx, name string) (string, error) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%s %q: %w", name, id, domain.ErrNotFound)
	}
	return id, nil
}
