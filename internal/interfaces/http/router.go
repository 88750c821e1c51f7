package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ventaplus/ventaplus-api/internal/application/auth"
	"github.com/ventaplus/ventaplus-api/internal/application/cash"
	"github.com/ventaplus/ventaplus-api/internal/application/expenses"
	"github.com/ventaplus/ventaplus-api/internal/application/purchases"
	"github.com/ventaplus/ventaplus-api/internal/application/reports"
	"github.com/ventaplus/ventaplus-api/internal/application/sales"
	"github.com/ventaplus/ventaplus-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductoUC  *usecase.ProductoUseCase
	ClienteUC   *usecase.ClienteUseCase
	ProveedorUC *usecase.ProveedorUseCase
	CategoriaUC *usecase.CategoriaUseCase
	CreateVenta *sales.CreateVentaUseCase
	VentasUC    *sales.VentasUseCase
	CompraUC    *purchases.UseCase
	GastoUC     *expenses.UseCase
	CajaUC      *cash.UseCase
	DashboardUC *reports.DashboardUseCase
	FinancialUC *reports.FinancialUseCase
	AIUC        *usecase.AIUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Solo auth es público; todo lo demás
// exige Bearer Token y queda acotado al usuario autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Proveedores
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	// Categorías
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	// Ventas
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.CreateVenta, deps.VentasUC, deps.DashboardUC)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Patch("/:id/estado", ventaHandler.UpdateEstado)
	ventas.Get("/:id/pdf", ventaHandler.ReciboPDF)

	// Compras
	compras := protected.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC)
	compras.Post("/", compraHandler.Create)
	compras.Get("/", compraHandler.List)

	// Gastos
	gastos := protected.Group("/gastos")
	gastoHandler := NewGastoHandler(deps.GastoUC, deps.DashboardUC)
	gastos.Post("/", gastoHandler.Create)
	gastos.Get("/", gastoHandler.List)
	gastos.Put("/:id", gastoHandler.Update)
	gastos.Delete("/:id", gastoHandler.Delete)

	// Caja
	caja := protected.Group("/caja")
	cajaHandler := NewCajaHandler(deps.CajaUC)
	caja.Get("/saldo", cajaHandler.Saldo)
	caja.Get("/movimientos", cajaHandler.Movimientos)
	caja.Post("/ajustes", cajaHandler.CreateAjuste)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/ventas-por-dia", dashboardHandler.VentasPorDia)

	// Financials
	financials := protected.Group("/financials")
	financialsHandler := NewFinancialsHandler(deps.FinancialUC)
	financials.Get("/summary", financialsHandler.Summary)
	financials.Get("/breakdown", financialsHandler.Breakdown)

	// IA
	ai := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/generate-description", aiHandler.GenerarDescripcion)
}
