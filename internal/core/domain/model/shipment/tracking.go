package shipment

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	// TrackingNumberPrefix prefixes every generated tracking number.
	TrackingNumberPrefix = "FRT"

	// BarcodePrefix prefixes every generated barcode.
	BarcodePrefix = "BCD"
)

// GenerateTrackingNumber produces a tracking number candidate: fixed prefix,
// nanosecond timestamp, and a random 4-digit suffix. Uniqueness is
// probabilistic; callers must verify against the store and regenerate on
// conflict.
func GenerateTrackingNumber() string {
	return fmt.Sprintf("%s%d%04d", TrackingNumberPrefix, time.Now().UnixNano(), rand.IntN(10000))
}

// GenerateBarcode produces a barcode candidate with the same construction as
// GenerateTrackingNumber under the barcode prefix.
func GenerateBarcode() string {
	return fmt.Sprintf("%s%d%04d", BarcodePrefix, time.Now().UnixNano(), rand.IntN(10000))
}
