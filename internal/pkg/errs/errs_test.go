package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"retailops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("purchaseId", "123")

		assert.Equal(t, "purchaseId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("purchaseId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: purchaseId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("deliveryId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown role")
		err := errs.NewValueIsInvalidErrorWithCause("role", cause)

		assert.Equal(t, "role", err.ParamName)
		assert.Equal(t, "value is invalid: role (cause: unknown role)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, "max int")

		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is max int", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("item", "coffee\nbeans", 0, 10)
		assert.Contains(t, err.Error(), "coffee beans")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("supplier")

		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: supplier", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("all value errors are validation errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewValueIsRequiredError("item"), errs.ErrValidation)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValidation)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", -1, 1, 10), errs.ErrValidation)
		assert.NotErrorIs(t, errs.NewObjectNotFoundError("id", "1"), errs.ErrValidation)
	})

	t.Run("value errors match their cause", func(t *testing.T) {
		taken := errors.New("username already exists")
		err := errs.NewValueIsInvalidErrorWithCause("username", fmt.Errorf("wrapped: %w", taken))

		require.ErrorIs(t, err, taken)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, errs.NewValueIsInvalidError("username"), taken)
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("purchase order", "Rejected", "Approved")

	assert.Equal(t, "Rejected", err.From)
	assert.Equal(t, "Approved", err.To)
	assert.Equal(t,
		"invalid status transition: purchase order cannot move from Rejected to Approved",
		err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.NotErrorIs(t, err, errs.ErrValidation)
}

func TestAuthorizationError(t *testing.T) {
	t.Run("names role and operation", func(t *testing.T) {
		err := errs.NewAuthorizationError("delivery", "create purchase")

		assert.Equal(t, `operation is not permitted: role "delivery" may not create purchase`, err.Error())
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("without role", func(t *testing.T) {
		err := errs.NewAuthorizationError("", "invalid credentials")
		assert.Equal(t, "operation is not permitted: invalid credentials", err.Error())
	})
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewPersistenceError("update stock item", cause)

	assert.Equal(t, "persistence failure: update stock item (cause: connection reset)", err.Error())
	require.ErrorIs(t, err, errs.ErrPersistence)
	require.ErrorIs(t, err, cause)

	var target *errs.PersistenceError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "update stock item", target.Operation)
}
