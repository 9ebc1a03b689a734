package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor_Boundaries(t *testing.T) {
	assert.Equal(t, TierStrongApply, TierFor(85))
	assert.Equal(t, TierApply, TierFor(84))
	assert.Equal(t, TierApply, TierFor(70))
	assert.Equal(t, TierReview, TierFor(69))
	assert.Equal(t, TierReview, TierFor(55))
	assert.Equal(t, TierSkip, TierFor(54))
	assert.Equal(t, TierSkip, TierFor(0))
}

func TestTierFor_AboveHundred(t *testing.T) {
	// Bonuses can push the total past 100; still strong apply.
	assert.Equal(t, TierStrongApply, TierFor(111))
}
