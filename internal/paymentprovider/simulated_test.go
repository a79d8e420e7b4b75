package paymentprovider

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavecode/mavecode-api/internal/models"
)

var vaPattern = regexp.MustCompile(`^88\d{8}$`)

func TestSimulated_Charge(t *testing.T) {
	gw := NewSimulated()

	tests := []struct {
		method string
		wantVA bool
	}{
		{method: "bca", wantVA: true},
		{method: "mandiri", wantVA: true},
		{method: "bni", wantVA: true},
		{method: "bri", wantVA: true},
		{method: "gopay", wantVA: false},
		{method: "BCA", wantVA: false},
		{method: "", wantVA: false},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			va, err := gw.Charge(context.Background(), models.Order{PaymentMethod: tt.method})
			require.NoError(t, err)
			if !tt.wantVA {
				assert.Nil(t, va)
				return
			}
			require.NotNil(t, va)
			assert.Regexp(t, vaPattern, *va)
		})
	}
}

func TestSimulated_Bounds(t *testing.T) {
	low := &Simulated{intn: func(int) int { return 0 }}
	va, err := low.Charge(context.Background(), models.Order{PaymentMethod: "bni"})
	require.NoError(t, err)
	assert.Equal(t, "8810000000", *va)

	high := &Simulated{intn: func(n int) int { return n - 1 }}
	va, err = high.Charge(context.Background(), models.Order{PaymentMethod: "bni"})
	require.NoError(t, err)
	assert.Equal(t, "8899999999", *va)
}

func TestSimulated_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSimulated().Charge(ctx, models.Order{PaymentMethod: "bca"})
	require.ErrorIs(t, err, context.Canceled)
}
