package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autoparts-api/internal/application/analytics"
	"github.com/jhoicas/autoparts-api/internal/application/auth"
	"github.com/jhoicas/autoparts-api/internal/application/finance"
	"github.com/jhoicas/autoparts-api/internal/application/hr"
	"github.com/jhoicas/autoparts-api/internal/application/inventory"
	"github.com/jhoicas/autoparts-api/internal/application/logistics"
	"github.com/jhoicas/autoparts-api/internal/application/sales"
	"github.com/jhoicas/autoparts-api/internal/domain/access"
	"github.com/jhoicas/autoparts-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	VehicleUC     *logistics.VehicleUseCase
	ContainerUC   *logistics.ContainerUseCase
	InventoryUC   *inventory.ItemUseCase
	StockReportUC *inventory.StockReportUseCase
	CustomerUC    *sales.CustomerUseCase
	OrderUC       *sales.OrderUseCase
	EmployeeUC    *hr.EmployeeUseCase
	PropertyUC    *finance.PropertyUseCase
	TransactionUC *finance.TransactionUseCase
	ReportUC      *analytics.ReportUseCase
	Policy        *access.Policy // nil = access.Default()
	JWTSecret     string
	Log           *logger.Logger
}

// Router registra las rutas de la API. Las rutas fijas (search, valuation, ...) van
// antes de /:id para que no se interpreten como un ID.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	policy := deps.Policy
	if policy == nil {
		policy = access.Default()
	}
	errs := errorWriter{log: log.Component("http")}

	api := app.Group("/api", RequestObserver(log.Component("http")))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, errs)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Todo lo registrado a partir de aquí exige Bearer Token y pasa por la política de roles.
	protected := api.Group("", AuthMiddleware(deps.JWTSecret), Authorize(policy))

	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/profile", authHandler.UpdateProfile)
	protected.Put("/auth/password", authHandler.ChangePassword)

	// Vehicles
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC, errs)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/search", vehicleHandler.Search)
	vehicles.Get("/:id", vehicleHandler.Get)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	// Containers
	containers := protected.Group("/containers")
	containerHandler := NewContainerHandler(deps.ContainerUC, errs)
	containers.Get("/", containerHandler.List)
	containers.Post("/", containerHandler.Create)
	containers.Get("/:id", containerHandler.Get)
	containers.Put("/:id", containerHandler.Update)
	containers.Delete("/:id", containerHandler.Delete)
	containers.Post("/:id/vehicles", containerHandler.AssignVehicles)
	containers.Get("/:id/profit-loss", containerHandler.ProfitLoss)

	// Inventory
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.StockReportUC, errs)
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/search", inventoryHandler.Search)
	inv.Get("/valuation", inventoryHandler.Valuation)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Get("/:id", inventoryHandler.Get)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Delete("/:id", inventoryHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, errs)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/search", customerHandler.Search)
	customers.Get("/:id", customerHandler.Get)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/balance", customerHandler.Balance)

	// Orders
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, errs)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/monthly-sales", orderHandler.MonthlySales)
	orders.Get("/:id", orderHandler.Get)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Post("/:id/payment", orderHandler.RecordPayment)
	orders.Get("/:id/pdf", orderHandler.PDF)

	// Employees
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, errs)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/expense-report", employeeHandler.ExpenseReport)
	employees.Get("/:id", employeeHandler.Get)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Post("/:id/expenses", employeeHandler.AddExpense)

	// Properties
	properties := protected.Group("/properties")
	propertyHandler := NewPropertyHandler(deps.PropertyUC, errs)
	properties.Get("/", propertyHandler.List)
	properties.Post("/", propertyHandler.Create)
	properties.Get("/income-report", propertyHandler.IncomeReport)
	properties.Get("/:id", propertyHandler.Get)
	properties.Put("/:id", propertyHandler.Update)
	properties.Delete("/:id", propertyHandler.Delete)

	// Transactions
	txns := protected.Group("/transactions")
	txnHandler := NewTransactionHandler(deps.TransactionUC, errs)
	txns.Get("/", txnHandler.List)
	txns.Post("/", txnHandler.Create)
	txns.Get("/summary", txnHandler.Summary)
	txns.Get("/cash-flow", txnHandler.CashFlow)
	txns.Get("/balances", txnHandler.Balances)
	txns.Get("/:id", txnHandler.Get)
	txns.Put("/:id", txnHandler.Update)
	txns.Delete("/:id", txnHandler.Delete)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, errs)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/container-profit-loss", reportHandler.ContainerProfitLoss)
	reports.Get("/receivables", reportHandler.Receivables)
	reports.Get("/payables", reportHandler.Payables)
}
