package notify

import (
	"fmt"
	"strings"

	"github.com/atelierops/atelier-scheduler/internal/models"
)

// WorkSummary carries the raw fields substituted into the client message.
type WorkSummary struct {
	ClientName   string
	CategoryName string
	Status       string
	Price        float64
	DepositPaid  float64
	DeliveryDate string
	Notes        string
}

// ComposeReadyMessage renders the "your work is ready" text. The workshop
// profile is passed in explicitly so the composer stays deterministic.
func ComposeReadyMessage(shop models.Workshop, in WorkSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hola %s, tu trabajo (%s) está listo para recoger en %s.",
		in.ClientName, in.CategoryName, shop.Name)

	pending := in.Price - in.DepositPaid
	if pending > 0 {
		fmt.Fprintf(&b, " Importe pendiente: %.2f€.", pending)
	}

	if in.DeliveryDate != "" {
		fmt.Fprintf(&b, " Fecha de entrega prevista: %s.", in.DeliveryDate)
	}

	if in.Notes != "" {
		fmt.Fprintf(&b, " Nota: %s", in.Notes)
	}

	if shop.Phone != "" {
		fmt.Fprintf(&b, " Cualquier duda, llámanos al %s.", shop.Phone)
	}

	return b.String()
}
