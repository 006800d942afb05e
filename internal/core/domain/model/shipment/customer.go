package shipment

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed indicates that a Customer was not created
// through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")

// Customer is a value object holding the recipient's contact details.
// All four fields are required on shipment creation.
type Customer struct {
	name    string
	phone   string
	address string
	city    string

	guard kernel.ConstructorGuard
}

// NewCustomer creates a validated Customer. Name, phone, address, and city
// must all be non-empty.
func NewCustomer(name, phone, address, city string) (Customer, error) {
	customer := Customer{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
		customer.setAddress(address),
		customer.setCity(city),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Name returns the recipient's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the recipient's phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the delivery street address.
func (c Customer) Address() string {
	return c.address
}

// City returns the delivery city.
func (c Customer) City() string {
	return c.city
}

// Validate ensures the customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}
	c.address = address
	return nil
}

func (c *Customer) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("customer city")
	}
	c.city = city
	return nil
}
