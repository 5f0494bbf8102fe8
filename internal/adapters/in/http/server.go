package http

import (
	"errors"
	"net/http"

	"creational/internal/core/application/usecases/commands"
	"creational/internal/core/application/usecases/queries"
	"creational/internal/core/domain/model/kernel"
	"creational/internal/core/domain/model/order"
	"creational/internal/core/domain/model/report"
	"creational/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes settings, reports and orders over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	setSettingHandler   commands.SetSettingCommandHandler
	loadDefaultsHandler commands.LoadDefaultSettingsCommandHandler
	createOrderHandler  commands.CreateOrderCommandHandler
	cloneOrderHandler   commands.CloneOrderCommandHandler

	// Query handlers
	getSettingHandler     queries.GetSettingQueryHandler
	getAllSettingsHandler queries.GetAllSettingsQueryHandler
	buildReportHandler    queries.BuildReportQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	SetSetting     commands.SetSettingCommandHandler
	LoadDefaults   commands.LoadDefaultSettingsCommandHandler
	CreateOrder    commands.CreateOrderCommandHandler
	CloneOrder     commands.CloneOrderCommandHandler
	GetSetting     queries.GetSettingQueryHandler
	GetAllSettings queries.GetAllSettingsQueryHandler
	BuildReport    queries.BuildReportQueryHandler
	GetOrder       queries.GetOrderQueryHandler
	GetAllOrders   queries.GetAllOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		setSettingHandler:     h.SetSetting,
		loadDefaultsHandler:   h.LoadDefaults,
		createOrderHandler:    h.CreateOrder,
		cloneOrderHandler:     h.CloneOrder,
		getSettingHandler:     h.GetSetting,
		getAllSettingsHandler: h.GetAllSettings,
		buildReportHandler:    h.BuildReport,
		getOrderHandler:       h.GetOrder,
		getAllOrdersHandler:   h.GetAllOrders,
	}
}

// RegisterRoutes mounts the API on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/settings", s.GetSettings)
	api.POST("/settings/defaults", s.LoadDefaultSettings)
	api.GET("/settings/:key", s.GetSetting)
	api.PUT("/settings/:key", s.SetSetting)
	api.GET("/reports/:format", s.GetReport)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/clone", s.CloneOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetSettings handles GET /api/v1/settings - returns every setting.
func (s *Server) GetSettings(ctx echo.Context) error {
	all, err := s.getAllSettingsHandler.Handle(ctx.Request().Context(), queries.NewGetAllSettingsQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to read settings")
	}
	return ctx.JSON(http.StatusOK, all)
}

// GetSetting handles GET /api/v1/settings/:key.
func (s *Server) GetSetting(ctx echo.Context) error {
	query, err := queries.NewGetSettingQuery(ctx.Param("key"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	resp, err := s.getSettingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to read setting")
	}
	if !resp.Found {
		return errorResponse(ctx, http.StatusNotFound, "Setting not found: "+resp.Key)
	}
	return ctx.JSON(http.StatusOK, Setting{Key: resp.Key, Value: resp.Value})
}

// SetSetting handles PUT /api/v1/settings/:key.
func (s *Server) SetSetting(ctx echo.Context) error {
	var body SetSettingRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSetSettingCommand(ctx.Param("key"), body.Value)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.setSettingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to store setting")
	}
	return ctx.JSON(http.StatusOK, Setting{Key: cmd.Key(), Value: cmd.Value()})
}

// LoadDefaultSettings handles POST /api/v1/settings/defaults.
func (s *Server) LoadDefaultSettings(ctx echo.Context) error {
	if err := s.loadDefaultsHandler.Handle(ctx.Request().Context(), commands.NewLoadDefaultSettingsCommand()); err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to load default settings")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetReport handles GET /api/v1/reports/:format - format is plain or html.
func (s *Server) GetReport(ctx echo.Context) error {
	format, err := report.ParseFormat(ctx.Param("format"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewBuildReportQuery(format)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	resp, err := s.buildReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to build report")
	}
	return ctx.JSON(http.StatusOK, Report(resp))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	products := make([]order.Product, 0, len(body.Products))
	for _, p := range body.Products {
		product, err := order.NewProduct(p.Name, p.Price)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid product: "+err.Error())
		}
		products = append(products, product)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), products, body.DeliveryCost, body.Discount)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
	}
	return ctx.JSON(http.StatusCreated, OrderCreated{ID: cmd.OrderID().String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, statusFor(err), "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, newOrderDTO(resp))
}

// GetOrders handles GET /api/v1/orders - returns every order in the order
// it was stored.
func (s *Server) GetOrders(ctx echo.Context) error {
	resp, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	orders := make([]Order, len(resp))
	for i, o := range resp {
		orders[i] = newOrderDTO(o)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// CloneOrder handles POST /api/v1/orders/:id/clone.
func (s *Server) CloneOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var body CloneOrderRequest
	if ctx.Request().ContentLength != 0 {
		if err = ctx.Bind(&body); err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		}
	}

	cmd, err := commands.NewCloneOrderCommand(id, body.Discount)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid clone request: "+err.Error())
	}

	cloneID, err := s.cloneOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, statusFor(err), "Failed to clone order")
	}
	return ctx.JSON(http.StatusCreated, OrderCreated{ID: cloneID.String()})
}

func newOrderDTO(resp queries.GetOrderQueryResponse) Order {
	products := make([]Product, len(resp.Products))
	for i, p := range resp.Products {
		products[i] = Product{Name: p.Name, Price: p.Price}
	}
	return Order{
		ID:           resp.ID.String(),
		Products:     products,
		DeliveryCost: resp.DeliveryCost,
		Discount:     resp.Discount,
		Total:        resp.Total,
		Text:         resp.Text,
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
