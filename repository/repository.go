// Package repository implements the document-store side of every service.
// Each method is a single MongoDB round trip; read-then-write sequences are
// composed in the services layer and are deliberately not transactional.
package repository

import (
	"fmt"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
)

// storeErr folds any driver failure into the generic unavailability kind.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", services.ErrUnavailable, err)
}
