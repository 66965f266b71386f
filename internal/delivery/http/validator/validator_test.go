package validator

import (
	"testing"

	domainerrors "mealplan/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Days int    `validate:"gte=0,lte=31"`
	Mode string `validate:"omitempty,max=16"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleInput{Days: 7}))

	err := v.Validate(&sampleInput{Days: -1})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Days: gte=0", appErr.Details())
}
