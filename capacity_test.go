package img2se

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCapacity(t *testing.T) {
	assert.Equal(t, AdviceOK, CheckCapacity(0))
	assert.Equal(t, AdviceOK, CheckCapacity(399999))
	assert.Equal(t, AdviceWarning, CheckCapacity(400000))
	assert.Equal(t, AdviceWarning, CheckCapacity(1_000_000))
	assert.Equal(t, "warning", AdviceWarning.String())
}
