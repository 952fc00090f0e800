// Package access define la política de autorización como una tabla declarativa
// (acción, recurso) → rol mínimo. El middleware HTTP la consulta una sola vez por petición.
package access

import "github.com/jhoicas/autoparts-api/internal/domain/entity"

// Acciones sobre un recurso.
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Operation par (acción, recurso). Recurso es el primer segmento de la ruta
// o "padre/sub" para sub-recursos (ej. "orders/payment").
type Operation struct {
	Action   string
	Resource string
}

// Rank nivel de privilegio de un rol; 0 = rol desconocido.
func Rank(role string) int {
	switch role {
	case entity.RoleAdmin:
		return 3
	case entity.RoleManager:
		return 2
	case entity.RoleStaff:
		return 1
	default:
		return 0
	}
}

// Policy tabla de operaciones con rol mínimo. Lo no listado exige DefaultRole.
type Policy struct {
	DefaultRole string
	rules       map[Operation]string
}

// NewPolicy construye una política vacía con el rol por defecto indicado.
func NewPolicy(defaultRole string) *Policy {
	return &Policy{DefaultRole: defaultRole, rules: map[Operation]string{}}
}

// Require registra el rol mínimo para una acción sobre varios recursos.
func (p *Policy) Require(role, action string, resources ...string) *Policy {
	for _, r := range resources {
		p.rules[Operation{Action: action, Resource: r}] = role
	}
	return p
}

// MinRole rol mínimo exigido por la operación.
func (p *Policy) MinRole(op Operation) string {
	if r, ok := p.rules[op]; ok {
		return r
	}
	return p.DefaultRole
}

// Allows indica si el rol cumple el mínimo de la operación. Un rol desconocido nunca pasa.
func (p *Policy) Allows(role string, op Operation) bool {
	rank := Rank(role)
	return rank > 0 && rank >= Rank(p.MinRole(op))
}

// Default política de la aplicación: cualquier usuario autenticado lee, crea y
// actualiza; los borrados y el alta de personal e inmuebles exigen más privilegio.
func Default() *Policy {
	return NewPolicy(entity.RoleStaff).
		Require(entity.RoleManager, ActionDelete,
			"vehicles", "containers", "inventory", "customers", "orders", "transactions").
		Require(entity.RoleManager, ActionCreate, "employees", "properties").
		Require(entity.RoleManager, ActionUpdate, "employees", "properties").
		Require(entity.RoleAdmin, ActionDelete, "employees", "properties")
}
