package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrCustomerPhoneIsRequired   = errors.New("customer phone is required")
	ErrCustomerAddressIsRequired = errors.New("customer address is required")
	ErrCustomerCityIsRequired    = errors.New("customer city is required")
	ErrWeightIsInvalid           = errors.New("weight must be greater than 0")
	ErrAmountIsNegative          = errors.New("monetary amounts must not be negative")
)

// CreateShipmentCommand represents a request to register a new shipment.
// Encapsulates merchant, recipient and package details. Tracking number and
// barcode are generated by the handler, not supplied by the caller.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(
//	    shipmentID, merchantID,
//	    "Jane Roe", "+15550100", "12 Pier Rd", "Portsmouth",
//	    "two boxes of books",
//	    250, 100, 0, 4.2, "40x30x20",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID      kernel.UUID
	merchantID      kernel.UUID
	customerName    string
	customerPhone   string
	customerAddress string
	customerCity    string
	description     string
	declaredValue   float64
	shippingCost    float64
	codAmount       float64
	weight          float64
	dimensions      string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates identifiers, recipient contact details, positive weight and
// non-negative monetary amounts. Returns an error if any validation fails.
func NewCreateShipmentCommand(
	shipmentID, merchantID kernel.UUID,
	customerName, customerPhone, customerAddress, customerCity string,
	description string,
	declaredValue, shippingCost, codAmount, weight float64,
	dimensions string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setMerchantID(merchantID),
		cmd.setCustomer(customerName, customerPhone, customerAddress, customerCity),
		cmd.setAmounts(declaredValue, shippingCost, codAmount),
		cmd.setWeight(weight),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.description = description
	cmd.dimensions = dimensions

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// MerchantID returns the identifier of the merchant sending the shipment.
func (c CreateShipmentCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// CustomerName returns the recipient's name.
func (c CreateShipmentCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the recipient's phone number.
func (c CreateShipmentCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerAddress returns the recipient's street address.
func (c CreateShipmentCommand) CustomerAddress() string {
	return c.customerAddress
}

// CustomerCity returns the recipient's city.
func (c CreateShipmentCommand) CustomerCity() string {
	return c.customerCity
}

// Description returns the free-form package description.
func (c CreateShipmentCommand) Description() string {
	return c.description
}

// DeclaredValue returns the declared value of the package contents.
func (c CreateShipmentCommand) DeclaredValue() float64 {
	return c.declaredValue
}

// ShippingCost returns the price charged for the delivery.
func (c CreateShipmentCommand) ShippingCost() float64 {
	return c.shippingCost
}

// CODAmount returns the cash-on-delivery amount, zero when prepaid.
func (c CreateShipmentCommand) CODAmount() float64 {
	return c.codAmount
}

// Weight returns the package weight in kilograms.
func (c CreateShipmentCommand) Weight() float64 {
	return c.weight
}

// Dimensions returns the package dimensions as a free-form string.
func (c CreateShipmentCommand) Dimensions() string {
	return c.dimensions
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateShipmentCommand) setCustomer(name, phone, address, city string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}
	if address == "" {
		return ErrCustomerAddressIsRequired
	}
	if city == "" {
		return ErrCustomerCityIsRequired
	}

	c.customerName = name
	c.customerPhone = phone
	c.customerAddress = address
	c.customerCity = city
	return nil
}

func (c *CreateShipmentCommand) setAmounts(declaredValue, shippingCost, codAmount float64) error {
	if declaredValue < 0 || shippingCost < 0 || codAmount < 0 {
		return ErrAmountIsNegative
	}

	c.declaredValue = declaredValue
	c.shippingCost = shippingCost
	c.codAmount = codAmount
	return nil
}

func (c *CreateShipmentCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}
