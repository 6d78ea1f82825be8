package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
)

func TestSplit(t *testing.T) {
	t.Run("Delivery Rate", func(t *testing.T) {
		recipient, commission := Split(3200, DefaultRates.For(models.KindDelivery))

		assert.Equal(t, int64(160), commission)
		assert.Equal(t, int64(3040), recipient)
	})

	t.Run("Service Rate", func(t *testing.T) {
		recipient, commission := Split(10000, DefaultRates.For(models.KindService))

		assert.Equal(t, int64(800), commission)
		assert.Equal(t, int64(9200), recipient)
	})

	t.Run("Rounds Half Up", func(t *testing.T) {
		// 5% of 1010 is 50.5, which rounds to 51.
		recipient, commission := Split(1010, 500)

		assert.Equal(t, int64(51), commission)
		assert.Equal(t, int64(959), recipient)
	})

	t.Run("Sides Reconstruct The Amount", func(t *testing.T) {
		rates := []int64{0, 500, 800, 1250, 9999}
		amounts := []int64{1, 2, 99, 100, 101, 3200, 999999999}
		for _, bps := range rates {
			for _, amount := range amounts {
				recipient, commission := Split(amount, bps)
				assert.Equal(t, amount, recipient+commission, "amount=%d bps=%d", amount, bps)
				assert.GreaterOrEqual(t, commission, int64(0))
			}
		}
	})
}

func TestRatesFor(t *testing.T) {
	r := Rates{DeliveryBps: 100, ServiceBps: 200}

	assert.Equal(t, int64(100), r.For(models.KindDelivery))
	assert.Equal(t, int64(200), r.For(models.KindService))
}
