package access_test

import (
	"fmt"
	"testing"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	allowed := map[access.Role][]access.Operation{
		access.Admin: {
			access.CreatePurchase, access.TransitionPurchase, access.CreateDelivery,
			access.TransitionDelivery, access.AdjustInventory, access.ManageUsers,
		},
		access.Purchasing: {access.CreatePurchase, access.TransitionPurchase},
		access.Delivery:   {access.CreateDelivery, access.TransitionDelivery},
		access.Inventory:  {access.AdjustInventory},
	}
	operations := []access.Operation{
		access.CreatePurchase, access.TransitionPurchase, access.CreateDelivery,
		access.TransitionDelivery, access.AdjustInventory, access.ManageUsers,
	}

	for _, role := range access.Roles() {
		for _, op := range operations {
			want := false
			for _, a := range allowed[role] {
				if a == op {
					want = true
				}
			}

			t.Run(fmt.Sprintf("%s may %s: %v", role, op, want), func(t *testing.T) {
				err := access.Authorize(role, op)
				if want {
					require.NoError(t, err)
					return
				}
				require.ErrorIs(t, err, errs.ErrUnauthorized)
				var authErr *errs.AuthorizationError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, string(role), authErr.Role)
				assert.Equal(t, string(op), authErr.Operation)
			})
		}
	}

	t.Run("unknown role is denied everything", func(t *testing.T) {
		for _, op := range operations {
			assert.ErrorIs(t, access.Authorize(access.Role("guest"), op), errs.ErrUnauthorized)
		}
	})

	t.Run("empty role is denied", func(t *testing.T) {
		err := access.Authorize("", access.CreatePurchase)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, "operation is not permitted: create purchase", err.Error())
	})
}

func TestParseRole(t *testing.T) {
	t.Run("should normalize case and spaces", func(t *testing.T) {
		role, err := access.ParseRole("  Purchasing ")
		require.NoError(t, err)
		assert.Equal(t, access.Purchasing, role)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := access.ParseRole("cashier")
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), `"cashier" is not a known role`)
	})
}

func TestActor(t *testing.T) {
	t.Run("should delegate to the policy", func(t *testing.T) {
		actor, err := access.NewActor("janex", access.Delivery)
		require.NoError(t, err)

		require.NoError(t, actor.Can(access.TransitionDelivery))
		assert.ErrorIs(t, actor.Can(access.TransitionPurchase), errs.ErrUnauthorized)
	})

	t.Run("should require username and known role", func(t *testing.T) {
		_, err := access.NewActor("", access.Admin)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = access.NewActor("bob", access.Role("root"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
