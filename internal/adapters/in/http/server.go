// Package http exposes the ordering workflow over a JSON API. Handlers
// translate requests into commands and queries; every business decision
// stays in the application layer.
package http

import (
	"net/http"
	"strconv"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDraftOrderHandler       commands.CreateDraftOrderCommandHandler
	addProductToDraftHandler      commands.AddProductToDraftCommandHandler
	removeProductFromDraftHandler commands.RemoveProductFromDraftCommandHandler
	formOrderHandler              commands.FormOrderCommandHandler
	completeOrderHandler          commands.CompleteOrderCommandHandler
	rejectOrderHandler            commands.RejectOrderCommandHandler
	deleteOrderHandler            commands.DeleteOrderCommandHandler
	incrementPreparedHandler      commands.IncrementPreparedCommandHandler
	createProductHandler          commands.CreateProductCommandHandler
	updateProductHandler          commands.UpdateProductCommandHandler
	deleteProductHandler          commands.DeleteProductCommandHandler

	// Query handlers
	getOrdersHandler    queries.GetOrdersQueryHandler
	getProductsHandler  queries.GetProductsQueryHandler
	getCookTasksHandler queries.GetCookTasksQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createDraftOrderHandler commands.CreateDraftOrderCommandHandler,
	addProductToDraftHandler commands.AddProductToDraftCommandHandler,
	removeProductFromDraftHandler commands.RemoveProductFromDraftCommandHandler,
	formOrderHandler commands.FormOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	incrementPreparedHandler commands.IncrementPreparedCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getCookTasksHandler queries.GetCookTasksQueryHandler,
) *Server {
	return &Server{
		createDraftOrderHandler:       createDraftOrderHandler,
		addProductToDraftHandler:      addProductToDraftHandler,
		removeProductFromDraftHandler: removeProductFromDraftHandler,
		formOrderHandler:              formOrderHandler,
		completeOrderHandler:          completeOrderHandler,
		rejectOrderHandler:            rejectOrderHandler,
		deleteOrderHandler:            deleteOrderHandler,
		incrementPreparedHandler:      incrementPreparedHandler,
		createProductHandler:          createProductHandler,
		updateProductHandler:          updateProductHandler,
		deleteProductHandler:          deleteProductHandler,
		getOrdersHandler:              getOrdersHandler,
		getProductsHandler:            getProductsHandler,
		getCookTasksHandler:           getCookTasksHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. Everything
// under /api/v1 requires a resolved session.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", auth)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:productId", s.UpdateProduct)
	api.DELETE("/products/:productId", s.DeleteProduct)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateDraftOrder)
	api.POST("/orders/draft/items", s.AddItemToDraft)
	api.DELETE("/orders/:orderId/items/:productId", s.RemoveItemFromDraft)
	api.PUT("/orders/:orderId/form", s.FormOrder)
	api.PUT("/orders/:orderId/complete", s.CompleteOrder)
	api.PUT("/orders/:orderId/reject", s.RejectOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.POST("/orders/:orderId/items/:productId/prepared", s.IncrementPrepared)

	api.GET("/cook/tasks", s.GetCookTasks)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateDraftOrder handles POST /api/v1/orders - opens (or returns) the
// actor's cart.
func (s *Server) CreateDraftOrder(ctx echo.Context) error {
	cmd, err := commands.NewCreateDraftOrderCommand(actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.createDraftOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// AddItemToDraft handles POST /api/v1/orders/draft/items - adds a product
// to the actor's cart, creating the cart if needed.
func (s *Server) AddItemToDraft(ctx echo.Context) error {
	var request AddItemRequest
	if err := ctx.Bind(&request); err != nil {
		return writeInvalidInput(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return writeInvalidInput(ctx, "invalid product id")
	}

	cmd, err := commands.NewAddProductToDraftCommand(
		actorFromContext(ctx), productID, request.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.addProductToDraftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, IDResponse{ID: orderID.String()})
}

// RemoveItemFromDraft handles DELETE /api/v1/orders/:orderId/items/:productId.
func (s *Server) RemoveItemFromDraft(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeInvalidInput(ctx, "invalid order id")
	}
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return writeInvalidInput(ctx, "invalid product id")
	}

	cmd, err := commands.NewRemoveProductFromDraftCommand(
		actorFromContext(ctx), orderID, productID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.removeProductFromDraftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := RemoveItemResponse{Result: "PRODUCT_REMOVED"}
	if result == commands.OrderRemoved {
		response.Result = "ORDER_REMOVED"
	}

	return ctx.JSON(http.StatusOK, response)
}

// FormOrder handles PUT /api/v1/orders/:orderId/form.
func (s *Server) FormOrder(ctx echo.Context) error {
	return s.transition(ctx, func(actorCtx echo.Context, orderID kernel.UUID) error {
		cmd, err := commands.NewFormOrderCommand(actorFromContext(actorCtx), orderID)
		if err != nil {
			return err
		}
		return s.formOrderHandler.Handle(actorCtx.Request().Context(), cmd)
	})
}

// CompleteOrder handles PUT /api/v1/orders/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	return s.transition(ctx, func(actorCtx echo.Context, orderID kernel.UUID) error {
		cmd, err := commands.NewCompleteOrderCommand(actorFromContext(actorCtx), orderID)
		if err != nil {
			return err
		}
		return s.completeOrderHandler.Handle(actorCtx.Request().Context(), cmd)
	})
}

// RejectOrder handles PUT /api/v1/orders/:orderId/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	return s.transition(ctx, func(actorCtx echo.Context, orderID kernel.UUID) error {
		cmd, err := commands.NewRejectOrderCommand(actorFromContext(actorCtx), orderID)
		if err != nil {
			return err
		}
		return s.rejectOrderHandler.Handle(actorCtx.Request().Context(), cmd)
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	return s.transition(ctx, func(actorCtx echo.Context, orderID kernel.UUID) error {
		cmd, err := commands.NewDeleteOrderCommand(actorFromContext(actorCtx), orderID)
		if err != nil {
			return err
		}
		return s.deleteOrderHandler.Handle(actorCtx.Request().Context(), cmd)
	})
}

func (s *Server) transition(
	ctx echo.Context, run func(echo.Context, kernel.UUID) error,
) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeInvalidInput(ctx, "invalid order id")
	}

	if err = run(ctx, orderID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// IncrementPrepared handles POST /api/v1/orders/:orderId/items/:productId/prepared.
func (s *Server) IncrementPrepared(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeInvalidInput(ctx, "invalid order id")
	}
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return writeInvalidInput(ctx, "invalid product id")
	}

	cmd, err := commands.NewIncrementPreparedCommand(
		actorFromContext(ctx), orderID, productID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.incrementPreparedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PreparedResponse{
		Prepared:  result.Prepared,
		Quantity:  result.Quantity,
		Remaining: result.Remaining,
		Complete:  result.Complete,
	})
}

// GetOrders handles GET /api/v1/orders - role-scoped order listing.
func (s *Server) GetOrders(ctx echo.Context) error {
	filters, err := orderFilters(ctx)
	if err != nil {
		return writeInvalidInput(ctx, err.Error())
	}

	query, err := queries.NewGetOrdersQuery(actorFromContext(ctx), filters)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		lines := make([]OrderLineResponse, len(o.Lines))
		for j, line := range o.Lines {
			lines[j] = OrderLineResponse{
				ProductID:   line.ProductID.String(),
				ProductName: line.ProductName,
				Quantity:    line.Quantity,
				Prepared:    line.Prepared,
				Complete:    line.Complete,
			}
		}

		response[i] = OrderResponse{
			ID:          o.ID.String(),
			Status:      o.Status,
			ClientID:    o.ClientID.String(),
			ClientName:  o.ClientName,
			ManagerName: o.ManagerName,
			CreatedAt:   o.CreatedAt,
			FormedAt:    o.FormedAt,
			CompletedAt: o.CompletedAt,
			Lines:       lines,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProducts handles GET /api/v1/products - catalog listing.
func (s *Server) GetProducts(ctx echo.Context) error {
	var filters queries.GetProductsFilters
	if name := ctx.QueryParam("name"); name != "" {
		filters.NameContains = &name
	}
	if raw := ctx.QueryParam("vegetarian"); raw != "" {
		vegetarian, err := strconv.ParseBool(raw)
		if err != nil {
			return writeInvalidInput(ctx, "invalid vegetarian filter")
		}
		filters.IsVegetarian = &vegetarian
	}

	query, err := queries.NewGetProductsQuery(actorFromContext(ctx), filters)
	if err != nil {
		return writeError(ctx, err)
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		var cookID *string
		if p.CookID != nil {
			raw := p.CookID.String()
			cookID = &raw
		}

		response[i] = ProductResponse{
			ID:           p.ID.String(),
			Name:         p.Name,
			Price:        p.Price,
			Description:  p.Description,
			CookID:       cookID,
			IsVegetarian: p.IsVegetarian,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCookTasks handles GET /api/v1/cook/tasks - the preparation backlog.
func (s *Server) GetCookTasks(ctx echo.Context) error {
	query, err := queries.NewGetCookTasksQuery(actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	tasks, err := s.getCookTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CookTaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = CookTaskResponse{
			OrderID:     task.OrderID.String(),
			ProductID:   task.ProductID.String(),
			ProductName: task.ProductName,
			Quantity:    task.Quantity,
			Prepared:    task.Prepared,
			Remaining:   task.Remaining,
			FormedAt:    task.FormedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return writeInvalidInput(ctx, "invalid request body")
	}

	cookID, err := optionalUUID(request.CookID)
	if err != nil {
		return writeInvalidInput(ctx, "invalid cook id")
	}

	cmd, err := commands.NewCreateProductCommand(
		actorFromContext(ctx),
		kernel.NewUUID(),
		request.Name,
		request.Price,
		request.Description,
		cookID,
		request.IsVegetarian,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.ProductID().String()})
}

// UpdateProduct handles PUT /api/v1/products/:productId.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return writeInvalidInput(ctx, "invalid product id")
	}

	var request UpdateProductRequest
	if err = ctx.Bind(&request); err != nil {
		return writeInvalidInput(ctx, "invalid request body")
	}

	cookID, err := optionalUUID(request.CookID)
	if err != nil {
		return writeInvalidInput(ctx, "invalid cook id")
	}

	cmd, err := commands.NewUpdateProductCommand(
		actorFromContext(ctx),
		productID,
		request.Name,
		request.Price,
		request.Description,
		cookID,
		request.ClearCook,
		request.IsVegetarian,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:productId.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return writeInvalidInput(ctx, "invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(actorFromContext(ctx), productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func orderFilters(ctx echo.Context) (queries.GetOrdersFilters, error) {
	var filters queries.GetOrdersFilters

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return filters, err
		}
		filters.Status = &status
	}
	if raw := ctx.QueryParam("formed_from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, err
		}
		filters.FormedFrom = &from
	}
	if raw := ctx.QueryParam("formed_to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, err
		}
		filters.FormedTo = &to
	}
	if name := ctx.QueryParam("client_name"); name != "" {
		filters.ClientName = &name
	}
	if name := ctx.QueryParam("manager_name"); name != "" {
		filters.ManagerName = &name
	}

	return filters, nil
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
