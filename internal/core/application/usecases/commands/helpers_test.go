package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/require"
)

func newTestShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	customer, err := shipment.NewCustomer("Jane Roe", "+15550100", "12 Pier Rd", "Portsmouth")
	require.NoError(t, err)

	declared, err := kernel.NewMoney(250)
	require.NoError(t, err)
	shipping, err := kernel.NewMoney(100)
	require.NoError(t, err)
	cod, err := kernel.NewMoney(0)
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		shipment.GenerateTrackingNumber(),
		shipment.GenerateBarcode(),
		kernel.NewUUID(),
		customer,
		"two boxes of books",
		declared, shipping, cod,
		4.2,
		"40x30x20",
		time.Now(),
	)
	require.NoError(t, err)
	return s
}

func newTestWarehouse(t *testing.T, capacity int) *warehouse.Warehouse {
	t.Helper()
	location, err := kernel.NewGeoPoint(51.5, -0.12)
	require.NoError(t, err)

	w, err := warehouse.NewWarehouse(kernel.NewUUID(), "LDN-1", "London Central", capacity, location)
	require.NoError(t, err)
	return w
}

func newTestDriver(t *testing.T, lat, lng float64) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(
		kernel.NewUUID(), "John Doe", "john@freight.test", "+15550123", "AB-123", "DL-555", 0.15,
	)
	require.NoError(t, err)

	location, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	require.NoError(t, d.MoveTo(location))
	return d
}

// walks a shipment along the happy path up to the given status.
func advanceShipmentTo(t *testing.T, s *shipment.Shipment, target shipment.Status) {
	t.Helper()
	path := []shipment.Status{shipment.InReceipt, shipment.InWarehouse, shipment.WithDriver, shipment.Delivered}
	for _, step := range path {
		if s.Status() == target {
			return
		}
		if step == shipment.WithDriver && s.DriverID() == nil {
			require.NoError(t, s.AssignDriver(kernel.NewUUID()))
		}
		require.NoError(t, s.TransitionTo(step, "", nil, nil, time.Now()))
		if step == target {
			return
		}
	}
}
