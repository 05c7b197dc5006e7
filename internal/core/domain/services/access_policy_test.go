package services_test

import (
	"testing"
	"time"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role auth.Role) auth.Actor {
	t.Helper()
	actor, err := auth.NewActor(kernel.NewUUID(), "test-actor", role)
	require.NoError(t, err)
	return actor
}

func newDraftOwnedBy(t *testing.T, clientID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewDraftOrder(kernel.NewUUID(), clientID, "alice", time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestAccessPolicy_CanViewOrder(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("should allow staff to view any order", func(t *testing.T) {
		o := newDraftOwnedBy(t, kernel.NewUUID())

		require.NoError(t, policy.CanViewOrder(newActor(t, auth.RoleManager), o))
		require.NoError(t, policy.CanViewOrder(newActor(t, auth.RoleAdmin), o))
	})

	t.Run("should allow client to view own order only", func(t *testing.T) {
		client := newActor(t, auth.RoleClient)
		own := newDraftOwnedBy(t, client.ID())
		foreign := newDraftOwnedBy(t, kernel.NewUUID())

		require.NoError(t, policy.CanViewOrder(client, own))

		err := policy.CanViewOrder(client, foreign)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("should allow cook to view formed orders only", func(t *testing.T) {
		cook := newActor(t, auth.RoleCook)
		o := newDraftOwnedBy(t, kernel.NewUUID())

		err := policy.CanViewOrder(cook, o)
		require.ErrorIs(t, err, errs.ErrForbidden)

		require.NoError(t, o.Form(time.Now().UTC()))
		require.NoError(t, policy.CanViewOrder(cook, o))
	})
}

func TestAccessPolicy_CanAssembleDraft(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("should allow clients and admins", func(t *testing.T) {
		require.NoError(t, policy.CanAssembleDraft(newActor(t, auth.RoleClient)))
		require.NoError(t, policy.CanAssembleDraft(newActor(t, auth.RoleAdmin)))
	})

	t.Run("should forbid cooks and managers", func(t *testing.T) {
		for _, role := range []auth.Role{auth.RoleCook, auth.RoleManager} {
			err := policy.CanAssembleDraft(newActor(t, role))

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrForbidden)
			assert.Contains(t, err.Error(), role.String())
		}
	})

	t.Run("should reject not constructed actor", func(t *testing.T) {
		var actor auth.Actor
		require.Error(t, policy.CanAssembleDraft(actor))
	})
}

func TestAccessPolicy_CanModifyDraft(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("should allow owning client", func(t *testing.T) {
		client := newActor(t, auth.RoleClient)
		o := newDraftOwnedBy(t, client.ID())

		require.NoError(t, policy.CanModifyDraft(client, o))
	})

	t.Run("should forbid another client", func(t *testing.T) {
		o := newDraftOwnedBy(t, kernel.NewUUID())

		err := policy.CanModifyDraft(newActor(t, auth.RoleClient), o)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("should forbid managers, allow admins", func(t *testing.T) {
		o := newDraftOwnedBy(t, kernel.NewUUID())

		require.ErrorIs(t, policy.CanModifyDraft(newActor(t, auth.RoleManager), o), errs.ErrForbidden)
		require.NoError(t, policy.CanModifyDraft(newActor(t, auth.RoleAdmin), o))
	})
}

func TestAccessPolicy_CanFormOrder(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("should allow owner and staff", func(t *testing.T) {
		client := newActor(t, auth.RoleClient)
		o := newDraftOwnedBy(t, client.ID())

		require.NoError(t, policy.CanFormOrder(client, o))
		require.NoError(t, policy.CanFormOrder(newActor(t, auth.RoleManager), o))
		require.NoError(t, policy.CanFormOrder(newActor(t, auth.RoleAdmin), o))
	})

	t.Run("should forbid cooks and foreign clients", func(t *testing.T) {
		o := newDraftOwnedBy(t, kernel.NewUUID())

		require.ErrorIs(t, policy.CanFormOrder(newActor(t, auth.RoleCook), o), errs.ErrForbidden)
		require.ErrorIs(t, policy.CanFormOrder(newActor(t, auth.RoleClient), o), errs.ErrForbidden)
	})
}

func TestAccessPolicy_CanFinalizeOrder(t *testing.T) {
	policy := services.NewAccessPolicy()

	require.NoError(t, policy.CanFinalizeOrder(newActor(t, auth.RoleManager)))
	require.NoError(t, policy.CanFinalizeOrder(newActor(t, auth.RoleAdmin)))
	require.ErrorIs(t, policy.CanFinalizeOrder(newActor(t, auth.RoleClient)), errs.ErrForbidden)
	require.ErrorIs(t, policy.CanFinalizeOrder(newActor(t, auth.RoleCook)), errs.ErrForbidden)
}

func TestAccessPolicy_CanDeleteOrder(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("should allow owner and staff", func(t *testing.T) {
		client := newActor(t, auth.RoleClient)
		o := newDraftOwnedBy(t, client.ID())

		require.NoError(t, policy.CanDeleteOrder(client, o))
		require.NoError(t, policy.CanDeleteOrder(newActor(t, auth.RoleManager), o))
	})

	t.Run("should forbid cooks and foreign clients", func(t *testing.T) {
		o := newDraftOwnedBy(t, kernel.NewUUID())

		require.ErrorIs(t, policy.CanDeleteOrder(newActor(t, auth.RoleCook), o), errs.ErrForbidden)
		require.ErrorIs(t, policy.CanDeleteOrder(newActor(t, auth.RoleClient), o), errs.ErrForbidden)
	})
}

func TestAccessPolicy_CanIncrementPrepared(t *testing.T) {
	policy := services.NewAccessPolicy()

	require.NoError(t, policy.CanIncrementPrepared(newActor(t, auth.RoleCook)))
	require.NoError(t, policy.CanIncrementPrepared(newActor(t, auth.RoleAdmin)))
	require.ErrorIs(t, policy.CanIncrementPrepared(newActor(t, auth.RoleClient)), errs.ErrForbidden)
	require.ErrorIs(t, policy.CanIncrementPrepared(newActor(t, auth.RoleManager)), errs.ErrForbidden)
}

func TestAccessPolicy_CanViewCookTasks(t *testing.T) {
	policy := services.NewAccessPolicy()

	require.NoError(t, policy.CanViewCookTasks(newActor(t, auth.RoleCook)))
	require.NoError(t, policy.CanViewCookTasks(newActor(t, auth.RoleAdmin)))
	require.ErrorIs(t, policy.CanViewCookTasks(newActor(t, auth.RoleClient)), errs.ErrForbidden)
}

func TestAccessPolicy_CanManageCatalog(t *testing.T) {
	policy := services.NewAccessPolicy()

	require.NoError(t, policy.CanManageCatalog(newActor(t, auth.RoleManager)))
	require.NoError(t, policy.CanManageCatalog(newActor(t, auth.RoleAdmin)))
	require.ErrorIs(t, policy.CanManageCatalog(newActor(t, auth.RoleClient)), errs.ErrForbidden)
	require.ErrorIs(t, policy.CanManageCatalog(newActor(t, auth.RoleCook)), errs.ErrForbidden)
}
