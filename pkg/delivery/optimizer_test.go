package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
)

func TestNearestNeighborOptimizer(t *testing.T) {
	opt := NearestNeighborOptimizer{}

	t.Run("Chains Legs By Proximity", func(t *testing.T) {
		// Paris -> Lyon, then the Lyon -> Marseille leg should precede the
		// Marseille -> Nice leg even though they are proposed out of order.
		paris := models.DeliverySegment{
			PickupLocation: "Paris", PickupLat: 48.8566, PickupLon: 2.3522,
			DropoffLocation: "Lyon", DropoffLat: 45.7640, DropoffLon: 4.8357,
		}
		marseilleNice := models.DeliverySegment{
			PickupLocation: "Marseille", PickupLat: 43.2965, PickupLon: 5.3698,
			DropoffLocation: "Nice", DropoffLat: 43.7102, DropoffLon: 7.2620,
		}
		lyonMarseille := models.DeliverySegment{
			PickupLocation: "Lyon", PickupLat: 45.7640, PickupLon: 4.8357,
			DropoffLocation: "Marseille", DropoffLat: 43.2965, DropoffLon: 5.3698,
		}

		ordered := opt.Order([]models.DeliverySegment{paris, marseilleNice, lyonMarseille})

		assert.Len(t, ordered, 3)
		assert.Equal(t, "Paris", ordered[0].PickupLocation)
		assert.Equal(t, "Lyon", ordered[1].PickupLocation)
		assert.Equal(t, "Marseille", ordered[2].PickupLocation)
		for i, seg := range ordered {
			assert.Equal(t, i+1, seg.Seq)
		}
	})

	t.Run("Single Segment", func(t *testing.T) {
		ordered := opt.Order([]models.DeliverySegment{{PickupLocation: "Paris"}})

		assert.Len(t, ordered, 1)
		assert.Equal(t, 1, ordered[0].Seq)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, opt.Order(nil))
	})
}

func TestDistance(t *testing.T) {
	// Paris to Lyon is roughly 390km as the crow flies.
	d := distance(48.8566, 2.3522, 45.7640, 4.8357)

	assert.InDelta(t, 392, d, 10)
	assert.Zero(t, distance(48.8566, 2.3522, 48.8566, 2.3522))
}
