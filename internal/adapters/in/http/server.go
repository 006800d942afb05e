// Package http exposes the application's use cases over a REST API.
// Handlers translate JSON requests into commands and queries and map
// application errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/warehouse"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler     commands.CreateShipmentCommandHandler
	transitionShipmentHandler commands.TransitionShipmentCommandHandler
	deleteShipmentHandler     commands.DeleteShipmentCommandHandler
	assignWarehouseHandler    commands.AssignWarehouseCommandHandler
	createWarehouseHandler    commands.CreateWarehouseCommandHandler
	deleteWarehouseHandler    commands.DeleteWarehouseCommandHandler
	createDriverHandler       commands.CreateDriverCommandHandler
	deleteDriverHandler       commands.DeleteDriverCommandHandler

	// Query handlers
	trackShipmentHandler           queries.TrackShipmentQueryHandler
	getActiveShipmentsHandler      queries.GetActiveShipmentsQueryHandler
	getDriverPerformanceHandler    queries.GetDriverPerformanceQueryHandler
	getWarehouseUtilizationHandler queries.GetWarehouseUtilizationQueryHandler

	defaultCommissionRate float64
}

// NewServer creates a new HTTP server with the required command and query handlers.
// defaultCommissionRate is applied when a driver is registered without an explicit rate.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	transitionShipmentHandler commands.TransitionShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	assignWarehouseHandler commands.AssignWarehouseCommandHandler,
	createWarehouseHandler commands.CreateWarehouseCommandHandler,
	deleteWarehouseHandler commands.DeleteWarehouseCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	deleteDriverHandler commands.DeleteDriverCommandHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
	getActiveShipmentsHandler queries.GetActiveShipmentsQueryHandler,
	getDriverPerformanceHandler queries.GetDriverPerformanceQueryHandler,
	getWarehouseUtilizationHandler queries.GetWarehouseUtilizationQueryHandler,
	defaultCommissionRate float64,
) *Server {
	return &Server{
		createShipmentHandler:          createShipmentHandler,
		transitionShipmentHandler:      transitionShipmentHandler,
		deleteShipmentHandler:          deleteShipmentHandler,
		assignWarehouseHandler:         assignWarehouseHandler,
		createWarehouseHandler:         createWarehouseHandler,
		deleteWarehouseHandler:         deleteWarehouseHandler,
		createDriverHandler:            createDriverHandler,
		deleteDriverHandler:            deleteDriverHandler,
		trackShipmentHandler:           trackShipmentHandler,
		getActiveShipmentsHandler:      getActiveShipmentsHandler,
		getDriverPerformanceHandler:    getDriverPerformanceHandler,
		getWarehouseUtilizationHandler: getWarehouseUtilizationHandler,
		defaultCommissionRate:          defaultCommissionRate,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/active", s.GetActiveShipments)
	api.POST("/shipments/:id/transition", s.TransitionShipment)
	api.POST("/shipments/:id/warehouse", s.AssignWarehouse)
	api.DELETE("/shipments/:id", s.DeleteShipment)

	api.GET("/tracking/:trackingNumber", s.TrackShipment)

	api.POST("/warehouses", s.CreateWarehouse)
	api.GET("/warehouses/utilization", s.GetWarehouseUtilization)
	api.DELETE("/warehouses/:id", s.DeleteWarehouse)

	api.POST("/drivers", s.CreateDriver)
	api.DELETE("/drivers/:id", s.DeleteDriver)
	api.GET("/drivers/:id/performance", s.GetDriverPerformance)
}

// CreateShipment handles POST /api/v1/shipments - registers a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	merchantID, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid merchant id: "+err.Error())
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID, merchantID,
		req.CustomerName, req.CustomerPhone, req.CustomerAddress, req.CustomerCity,
		req.Description,
		req.DeclaredValue, req.ShippingCost, req.CodAmount, req.Weight,
		req.Dimensions,
	)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return jsonError(ctx, errorStatus(handleErr), "Failed to create shipment: "+handleErr.Error())
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

// TransitionShipment handles POST /api/v1/shipments/:id/transition - moves a
// shipment to a new lifecycle status.
func (s *Server) TransitionShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid shipment id: "+err.Error())
	}

	var req TransitionShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	targetStatus, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	var location *kernel.GeoPoint
	if req.Latitude != nil || req.Longitude != nil {
		if req.Latitude == nil || req.Longitude == nil {
			return jsonError(ctx, http.StatusBadRequest, "Latitude and longitude must be provided together")
		}
		point, err := kernel.NewGeoPoint(*req.Latitude, *req.Longitude)
		if err != nil {
			return jsonError(ctx, http.StatusBadRequest, "Invalid location: "+err.Error())
		}
		location = &point
	}

	var actorID *kernel.UUID
	if req.ActorID != nil {
		id, err := kernel.UUIDFromString(*req.ActorID)
		if err != nil {
			return jsonError(ctx, http.StatusBadRequest, "Invalid actor id: "+err.Error())
		}
		actorID = &id
	}

	cmd, err := commands.NewTransitionShipmentCommand(shipmentID, targetStatus, req.Notes, location, actorID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.transitionShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return jsonError(ctx, errorStatus(handleErr), "Failed to transition shipment: "+handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignWarehouse handles POST /api/v1/shipments/:id/warehouse - routes a
// shipment to a warehouse.
func (s *Server) AssignWarehouse(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid shipment id: "+err.Error())
	}

	var req AssignWarehouseRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid warehouse id: "+err.Error())
	}

	cmd, err := commands.NewAssignWarehouseCommand(shipmentID, warehouseID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignWarehouseHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return jsonError(ctx, errorStatus(handleErr), "Failed to assign warehouse: "+handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id - removes a shipment
// that has not entered the fulfillment pipeline yet.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid shipment id: "+err.Error())
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid shipment id: "+err.Error())
	}

	if handleErr := s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return jsonError(ctx, errorStatus(handleErr), "Failed to delete shipment: "+handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackShipment handles GET /api/v1/tracking/:trackingNumber - the public
// tracking view of one shipment.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid tracking number: "+err.Error())
	}

	result, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, errorStatus(err), "Failed to track shipment: "+err.Error())
	}

	history := make([]TrackingHistoryEntry, len(result.History))
	for i, entry := range result.History {
		history[i] = TrackingHistoryEntry{
			Status:     entry.Status,
			Notes:      entry.Notes,
			Latitude:   entry.Latitude,
			Longitude:  entry.Longitude,
			RecordedAt: entry.RecordedAt,
		}
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		TrackingNumber: result.TrackingNumber,
		Status:         result.Status,
		CustomerCity:   result.CustomerCity,
		Description:    result.Description,
		CreatedAt:      result.CreatedAt,
		PickedUpAt:     result.PickedUpAt,
		DeliveredAt:    result.DeliveredAt,
		History:        history,
	})
}

// GetActiveShipments handles GET /api/v1/shipments/active - retrieves all
// shipments that have not reached a terminal status.
func (s *Server) GetActiveShipments(ctx echo.Context) error {
	query := queries.NewGetActiveShipmentsQuery()

	shipments, err := s.getActiveShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve shipments")
	}

	response := make([]ActiveShipment, len(shipments))
	for i, item := range shipments {
		response[i] = ActiveShipment{
			ID:             item.ID.String(),
			TrackingNumber: item.TrackingNumber,
			Status:         item.Status,
			CustomerCity:   item.CustomerCity,
			DriverID:       optionalIDString(item.DriverID),
			WarehouseID:    optionalIDString(item.WarehouseID),
			CreatedAt:      item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateWarehouse handles POST /api/v1/warehouses - registers a new warehouse.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var req CreateWarehouseRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	warehouseID := kernel.NewUUID()
	cmd, err := commands.NewCreateWarehouseCommand(
		warehouseID, req.Code, req.Name, req.Capacity, req.Latitude, req.Longitude,
	)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid warehouse data: "+err.Error())
	}

	if handleErr := s.createWarehouseHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return jsonError(ctx, errorStatus(handleErr), "Failed to create warehouse: "+handleErr.Error())
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: warehouseID.String()})
}

// GetWarehouseUtilization handles GET /api/v1/warehouses/utilization - the
// current load report across all warehouses.
func (s *Server) GetWarehouseUtilization(ctx echo.Context) error {
	query := queries.NewGetWarehouseUtilizationQuery()

	warehouses, err := s.getWarehouseUtilizationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve warehouse utilization")
	}

	response := make([]WarehouseUtilization, len(warehouses))
	for i, item := range warehouses {
		response[i] = WarehouseUtilization{
			ID:             item.ID.String(),
			Code:           item.Code,
			Name:           item.Name,
			Capacity:       item.Capacity,
			CurrentLoad:    item.CurrentLoad,
			AvailableSpace: item.AvailableSpace,
			Utilization:    item.Utilization,
			Band:           item.Band,
			Active:         item.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteWarehouse handles DELETE /api/v1/warehouses/:id - removes a
// warehouse no undelivered shipment references anymore.
func (s *Server) DeleteWarehouse(ctx echo.Context) error {
	warehouseID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid warehouse id: "+err.Error())
	}

	cmd, err := commands.NewDeleteWarehouseCommand(warehouseID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid warehouse id: "+err.Error())
	}

	if handleErr := s.deleteWarehouseHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return jsonError(ctx, errorStatus(handleErr), "Failed to delete warehouse: "+handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	commissionRate := s.defaultCommissionRate
	if req.CommissionRate != nil {
		commissionRate = *req.CommissionRate
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID, req.Name, req.Email, req.Phone, req.VehicleNumber, req.LicenseNumber,
		commissionRate,
	)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid driver data: "+err.Error())
	}

	if handleErr := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return jsonError(ctx, errorStatus(handleErr), "Failed to create driver: "+handleErr.Error())
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: driverID.String()})
}

// DeleteDriver handles DELETE /api/v1/drivers/:id - removes a driver that is
// not carrying a shipment.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid driver id: "+err.Error())
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid driver id: "+err.Error())
	}

	if handleErr := s.deleteDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return jsonError(ctx, errorStatus(handleErr), "Failed to delete driver: "+handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDriverPerformance handles GET /api/v1/drivers/:id/performance - the
// aggregated delivery statistics and earnings of one driver.
func (s *Server) GetDriverPerformance(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid driver id: "+err.Error())
	}

	query, err := queries.NewGetDriverPerformanceQuery(driverID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid driver id: "+err.Error())
	}

	result, err := s.getDriverPerformanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, errorStatus(err), "Failed to retrieve driver performance: "+err.Error())
	}

	return ctx.JSON(http.StatusOK, DriverPerformance{
		DriverID:       result.DriverID.String(),
		Name:           result.Name,
		TotalDelivered: result.TotalDelivered,
		TotalFailed:    result.TotalFailed,
		TotalEarnings:  result.TotalEarnings,
		SuccessRate:    result.SuccessRate,
		Rating:         result.Rating,
	})
}

// errorStatus maps application errors onto HTTP status codes. Validation
// failures that only surface inside the domain map to 400, missing
// aggregates to 404, violated business rules to 409, anything else is
// treated as an internal failure.
func errorStatus(err error) int {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.As(err, &notFound),
		errors.Is(err, commands.ErrShipmentNotFound),
		errors.Is(err, commands.ErrWarehouseNotFound),
		errors.Is(err, commands.ErrDriverNotFound):
		return http.StatusNotFound
	case errors.Is(err, shipment.ErrInvalidStatusTransition),
		errors.Is(err, shipment.ErrShipmentNotDeletable),
		errors.Is(err, shipment.ErrWarehouseNotAssignable),
		errors.Is(err, warehouse.ErrCapacityExceeded),
		errors.Is(err, commands.ErrWarehouseInactive),
		errors.Is(err, commands.ErrWarehouseInUse),
		errors.Is(err, commands.ErrDriverEmailTaken),
		errors.Is(err, commands.ErrDriverIsBusy):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

func optionalIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
