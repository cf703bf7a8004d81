package utils_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venoajie/trading-web-project/src/utils"
)

type signup struct {
	Email string          `json:"email" validate:"required,email"`
	Name  string          `json:"name" validate:"max=5"`
	Price decimal.Decimal `json:"price" validate:"gt=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		err := utils.ValidateStruct(&signup{Email: "a@b.io", Name: "abc", Price: decimal.RequireFromString("0.5")})
		assert.NoError(t, err)
	})

	t.Run("failures are reported as 422 with json field names", func(t *testing.T) {
		err := utils.ValidateStruct(&signup{Email: "not-an-email", Name: "toolong", Price: decimal.Zero})
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, utils.StatusCode(err))
		assert.Contains(t, err.Error(), "email: failed on 'email'")
		assert.Contains(t, err.Error(), "name: failed on 'max=5'")
		assert.Contains(t, err.Error(), "price: failed on 'gt=0'")
	})

	t.Run("negative decimals fail gt=0", func(t *testing.T) {
		err := utils.ValidateStruct(&signup{Email: "a@b.io", Price: decimal.RequireFromString("-1")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})
}
