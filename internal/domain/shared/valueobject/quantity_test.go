package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity_RejectsNegative(t *testing.T) {
	_, err := NewQuantityFromFloat(-0.01)
	assert.Error(t, err)

	_, err = NewQuantityFromInt(-1)
	assert.Error(t, err)

	q, err := NewQuantityFromFloat(0)
	require.NoError(t, err)
	assert.True(t, q.IsZero())
}

func TestQuantity_AddSubtract(t *testing.T) {
	a := MustNewQuantity(decimal.NewFromFloat(2.5))
	b := MustNewQuantity(decimal.NewFromFloat(1.5))

	sum := a.Add(b)
	assert.Equal(t, "4", sum.String())

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "1", diff.String())

	// Result would go negative
	_, err = b.Subtract(a)
	assert.Error(t, err)
}

func TestQuantity_Comparisons(t *testing.T) {
	small := MustNewQuantity(decimal.NewFromInt(1))
	big := MustNewQuantity(decimal.NewFromInt(5))

	assert.True(t, small.LessThan(big))
	assert.True(t, big.GreaterThan(small))
	assert.True(t, big.GreaterThanOrEqual(big))
	assert.True(t, small.Equals(small))
	assert.True(t, big.IsPositive())
}

func TestQuantity_JSON(t *testing.T) {
	q := MustNewQuantity(decimal.NewFromFloat(3.25))
	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t, `"3.25"`, string(data))

	var decoded Quantity
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, q.Equals(decoded))

	// Bare numbers are accepted too
	require.NoError(t, json.Unmarshal([]byte(`7`), &decoded))
	assert.Equal(t, int64(7), decoded.IntValue())

	// Negative values fail validation
	assert.Error(t, json.Unmarshal([]byte(`"-1"`), &decoded))
}
