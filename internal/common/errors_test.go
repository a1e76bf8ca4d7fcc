package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{ErrMalformedRecord, ErrDerivationFailure, ErrUnsupportedAlgorithm, ErrNoCandidates}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrDerivationFailure, ErrUnsupportedAlgorithm)
	assert.True(t, errors.Is(err, ErrDerivationFailure))
	assert.True(t, errors.Is(err, ErrUnsupportedAlgorithm))
	assert.False(t, errors.Is(err, ErrMalformedRecord))
}
