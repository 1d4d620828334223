package optionpricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcPrice(t *testing.T) {
	model := NewBlackScholesModel(100, 100, 365, 0.05, 0.2)

	t.Run("Dispatches to the call calculation", func(t *testing.T) {
		price, err := CalcPrice(model, OptionTypeCall)
		require.NoError(t, err)

		callPrice, err := model.CalcCallPrice()
		require.NoError(t, err)

		assert.Equal(t, callPrice, price)
	})

	t.Run("Dispatches to the put calculation", func(t *testing.T) {
		price, err := CalcPrice(model, OptionTypePut)
		require.NoError(t, err)

		putPrice, err := model.CalcPutPrice()
		require.NoError(t, err)

		assert.Equal(t, putPrice, price)
	})

	t.Run("Rejects an unrecognized option type", func(t *testing.T) {
		_, err := CalcPrice(model, OptionType("straddle"))
		assert.ErrorIs(t, err, InvalidOptionTypeErr)

		_, err = CalcPrice(model, OptionType(""))
		assert.ErrorIs(t, err, InvalidOptionTypeErr)
	})
}

func TestOptionTypeValidate(t *testing.T) {
	assert.NoError(t, OptionTypeCall.Validate())
	assert.NoError(t, OptionTypePut.Validate())
	assert.ErrorIs(t, OptionType("CALL").Validate(), InvalidOptionTypeErr)
}

func TestPricingMethodValidate(t *testing.T) {
	assert.NoError(t, PricingMethodBlackScholes.Validate())
	assert.NoError(t, PricingMethodMonteCarlo.Validate())
	assert.NoError(t, PricingMethodBinomial.Validate())
	assert.Error(t, PricingMethod("trinomial").Validate())
}
