package http

import "time"

// Error is the uniform JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
// Tracking number and barcode are generated server side.
type CreateShipmentRequest struct {
	MerchantID      string  `json:"merchantId"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	CustomerCity    string  `json:"customerCity"`
	Description     string  `json:"description"`
	DeclaredValue   float64 `json:"declaredValue"`
	ShippingCost    float64 `json:"shippingCost"`
	CodAmount       float64 `json:"codAmount"`
	Weight          float64 `json:"weight"`
	Dimensions      string  `json:"dimensions"`
}

// CreatedResponse carries the server generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// TransitionShipmentRequest is the body of POST /api/v1/shipments/:id/transition.
type TransitionShipmentRequest struct {
	Status    string   `json:"status"`
	Notes     string   `json:"notes"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	ActorID   *string  `json:"actorId"`
}

// AssignWarehouseRequest is the body of POST /api/v1/shipments/:id/warehouse.
type AssignWarehouseRequest struct {
	WarehouseID string `json:"warehouseId"`
}

// CreateWarehouseRequest is the body of POST /api/v1/warehouses.
type CreateWarehouseRequest struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Capacity  int     `json:"capacity"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateDriverRequest is the body of POST /api/v1/drivers.
// CommissionRate falls back to the configured default when omitted.
type CreateDriverRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	VehicleNumber  string   `json:"vehicleNumber"`
	LicenseNumber  string   `json:"licenseNumber"`
	CommissionRate *float64 `json:"commissionRate"`
}

// ActiveShipment is one element of GET /api/v1/shipments/active.
type ActiveShipment struct {
	ID             string    `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	Status         string    `json:"status"`
	CustomerCity   string    `json:"customerCity"`
	DriverID       *string   `json:"driverId,omitempty"`
	WarehouseID    *string   `json:"warehouseId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TrackingHistoryEntry is one recorded status change, oldest first.
type TrackingHistoryEntry struct {
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

// TrackingResponse is the public view returned by GET /api/v1/tracking/:trackingNumber.
type TrackingResponse struct {
	TrackingNumber string                 `json:"trackingNumber"`
	Status         string                 `json:"status"`
	CustomerCity   string                 `json:"customerCity"`
	Description    string                 `json:"description,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	PickedUpAt     *time.Time             `json:"pickedUpAt,omitempty"`
	DeliveredAt    *time.Time             `json:"deliveredAt,omitempty"`
	History        []TrackingHistoryEntry `json:"history"`
}

// DriverPerformance is the body of GET /api/v1/drivers/:id/performance.
type DriverPerformance struct {
	DriverID       string  `json:"driverId"`
	Name           string  `json:"name"`
	TotalDelivered int     `json:"totalDelivered"`
	TotalFailed    int     `json:"totalFailed"`
	TotalEarnings  float64 `json:"totalEarnings"`
	SuccessRate    int     `json:"successRate"`
	Rating         float64 `json:"rating"`
}

// WarehouseUtilization is one element of GET /api/v1/warehouses/utilization.
type WarehouseUtilization struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Capacity       int    `json:"capacity"`
	CurrentLoad    int    `json:"currentLoad"`
	AvailableSpace int    `json:"availableSpace"`
	Utilization    int    `json:"utilization"`
	Band           string `json:"band"`
	Active         bool   `json:"active"`
}
