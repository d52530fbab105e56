package repository_test

import (
	"context"
	"testing"

	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_BalancesWithoutQuery(t *testing.T) {
	repo := repository.New(&postgres.Connection{}, mocks.NewOtel())

	t.Run("empty page needs no lookup", func(t *testing.T) {
		res, err := repo.Balances(context.Background(), model.FieldCompanyID, nil)

		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("only company and travel agent columns are summed", func(t *testing.T) {
		_, err := repo.Balances(context.Background(), model.FieldGuestEmail, []string{"x"})

		assert.ErrorContains(t, err, `unsupported balance field "guest_email"`)
	})
}
