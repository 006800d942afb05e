package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateWarehouseCommandIsNotConstructed = errors.New(
		"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
	)
	ErrWarehouseCodeIsRequired = errors.New("warehouse code is required")
	ErrWarehouseNameIsRequired = errors.New("warehouse name is required")
	ErrCapacityIsInvalid       = errors.New("capacity must be greater than 0")
)

// CreateWarehouseCommand represents a request to register a new warehouse.
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	code        string
	name        string
	capacity    int
	latitude    float64
	longitude   float64

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand creates a command to register a new warehouse.
// Validates that the identifier is valid, code and name are not empty,
// capacity is positive and the coordinates form a valid geographic point.
func NewCreateWarehouseCommand(
	warehouseID kernel.UUID,
	code, name string,
	capacity int,
	latitude, longitude float64,
) (CreateWarehouseCommand, error) {
	cmd := CreateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWarehouseID(warehouseID),
		cmd.setCode(code),
		cmd.setName(name),
		cmd.setCapacity(capacity),
		cmd.setCoordinates(latitude, longitude),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

// WarehouseID returns the unique identifier for the warehouse.
func (c CreateWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Code returns the short warehouse code.
func (c CreateWarehouseCommand) Code() string {
	return c.code
}

// Name returns the human readable warehouse name.
func (c CreateWarehouseCommand) Name() string {
	return c.name
}

// Capacity returns the number of shipments the warehouse can hold.
func (c CreateWarehouseCommand) Capacity() int {
	return c.capacity
}

// Latitude returns the warehouse latitude.
func (c CreateWarehouseCommand) Latitude() float64 {
	return c.latitude
}

// Longitude returns the warehouse longitude.
func (c CreateWarehouseCommand) Longitude() float64 {
	return c.longitude
}

func (c *CreateWarehouseCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *CreateWarehouseCommand) setCode(code string) error {
	if code == "" {
		return ErrWarehouseCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateWarehouseCommand) setName(name string) error {
	if name == "" {
		return ErrWarehouseNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateWarehouseCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}

func (c *CreateWarehouseCommand) setCoordinates(latitude, longitude float64) error {
	if _, err := kernel.NewGeoPoint(latitude, longitude); err != nil {
		return err
	}

	c.latitude = latitude
	c.longitude = longitude
	return nil
}
