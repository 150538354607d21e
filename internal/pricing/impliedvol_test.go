package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgrad/greeks-engine/pkg/utils/errors"
)

func TestImpliedVolRoundTrip(t *testing.T) {
	pr := NewPricer(refStrike)
	for _, vol := range []float64{0.1, 0.2, 0.45} {
		price := pr.Price(OptionTypeCall, refSpot, vol, refExpiry, refRate)
		got, err := pr.ImpliedVol(OptionTypeCall, price, refSpot, refExpiry, refRate)
		require.NoError(t, err, "vol %v", vol)
		assert.InDelta(t, vol, got, 1e-4, "vol %v", vol)
	}
}

func TestImpliedVolPut(t *testing.T) {
	pr := NewPricer(refStrike)
	price := pr.Price(OptionTypePut, 9.5, 0.3, refExpiry, refRate)
	got, err := pr.ImpliedVol(OptionTypePut, price, 9.5, refExpiry, refRate)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, got, 1e-4)
}

func TestImpliedVolUnattainablePrice(t *testing.T) {
	pr := NewPricer(refStrike)
	// A call is worth at most the spot; demand more and Newton has nowhere
	// to go.
	_, err := pr.ImpliedVol(OptionTypeCall, refSpot+5, refSpot, refExpiry, refRate)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeNoConvergence, errors.TypeOf(err))
}

func TestImpliedVolInvalidPrice(t *testing.T) {
	pr := NewPricer(refStrike)
	_, err := pr.ImpliedVol(OptionTypeCall, -1, refSpot, refExpiry, refRate)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeInvalidArgument, errors.TypeOf(err))
}
