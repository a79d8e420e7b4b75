// Package paymentprovider issues payment instructions for new orders. Only a
// simulated gateway exists: no money moves and payment is confirmed by the
// customer calling the pay endpoint.
package paymentprovider

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/mavecode/mavecode-api/internal/models"
)

// Bank transfer methods that get a virtual account number.
var virtualAccountBanks = map[string]struct{}{
	"bca":     {},
	"mandiri": {},
	"bni":     {},
	"bri":     {},
}

// Simulated hands out fake virtual account numbers of the form 88XXXXXXXX.
type Simulated struct {
	intn func(n int) int
}

// NewSimulated returns a gateway backed by math/rand.
func NewSimulated() *Simulated {
	return &Simulated{intn: rand.Intn}
}

// Charge returns a virtual account number for bank transfer methods and nil
// for everything else.
func (s *Simulated) Charge(ctx context.Context, order models.Order) (*string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := virtualAccountBanks[order.PaymentMethod]; !ok {
		return nil, nil
	}
	va := fmt.Sprintf("88%d", 10000000+s.intn(90000000))
	return &va, nil
}
