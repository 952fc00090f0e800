package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain/access"
	"github.com/jhoicas/autoparts-api/pkg/jwt"
)

// Locals keys para la identidad del usuario en Fiber.
const (
	LocalUserID   = "user_id"
	LocalEmail    = "email"
	LocalRole     = "role"
	LocalLocation = "location"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalLocation, claims.Location)
		return c.Next()
	}
}

// Authorize consulta la política con (acción del método, recurso de la ruta) y el rol del token.
// Debe ir después de AuthMiddleware.
func Authorize(policy *access.Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		op := access.Operation{Action: actionFor(c.Method()), Resource: resourceFor(c.Path())}
		if !policy.Allows(GetRole(c), op) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "permisos insuficientes: " + op.Action + " " + op.Resource + " requiere rol " + policy.MinRole(op),
			})
		}
		return c.Next()
	}
}

func actionFor(method string) string {
	switch method {
	case fiber.MethodPost:
		return access.ActionCreate
	case fiber.MethodPut, fiber.MethodPatch:
		return access.ActionUpdate
	case fiber.MethodDelete:
		return access.ActionDelete
	default:
		return access.ActionRead
	}
}

// resourceFor /api/orders/:id/payment → "orders/payment"; /api/orders/:id → "orders".
func resourceFor(path string) string {
	path = strings.Trim(strings.TrimPrefix(path, "/api"), "/")
	segs := strings.Split(path, "/")
	if len(segs) >= 3 {
		return segs[0] + "/" + segs[2]
	}
	return segs[0]
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetLocation región asignada al usuario; vacío si opera en todas.
func GetLocation(c *fiber.Ctx) string {
	return localString(c, LocalLocation)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
