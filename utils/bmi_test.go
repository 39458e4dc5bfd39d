package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.Equal(t, 22.86, bmi)

	bmi, err = CalculateBMI(160, 45)
	require.NoError(t, err)
	assert.Equal(t, 17.58, bmi)
}

func TestCalculateBMIRejectsNonPositive(t *testing.T) {
	_, err := CalculateBMI(0, 70)
	assert.Error(t, err)

	_, err = CalculateBMI(175, -1)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.58))
	assert.Equal(t, "Normal weight", BMICategory(22.86))
	assert.Equal(t, "Overweight", BMICategory(27.0))
	assert.Equal(t, "Obese", BMICategory(31.2))
}
