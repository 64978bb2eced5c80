package order_test

import (
	"testing"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:        "unknown",
		order.Pending:        "pending",
		order.Confirmed:      "confirmed",
		order.Preparing:      "preparing",
		order.OutForDelivery: "out_for_delivery",
		order.Ready:          "ready",
		order.Delivered:      "delivered",
		order.Cancelled:      "cancelled",
	}

	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}

	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_every_valid_status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.OutForDelivery, order.Ready, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unrecognized_statuses", func(t *testing.T) {
		for _, raw := range []string{"", "unknown", "on_the_way", "PENDING", "done"} {
			_, err := order.StatusFromString(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.OutForDelivery, order.Ready, order.Delivered, order.Cancelled,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	for _, s := range []order.Status{
		order.Pending, order.Confirmed, order.Preparing, order.OutForDelivery, order.Ready,
	} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_IsDispatchable(t *testing.T) {
	// only admin-promoted orders appear on the dispatch feed
	assert.False(t, order.Pending.IsDispatchable())
	assert.True(t, order.Confirmed.IsDispatchable())
	assert.True(t, order.Preparing.IsDispatchable())
	assert.True(t, order.Ready.IsDispatchable())
	assert.False(t, order.OutForDelivery.IsDispatchable())
	assert.False(t, order.Delivered.IsDispatchable())
	assert.False(t, order.Cancelled.IsDispatchable())
}

func TestStatus_OnAccept(t *testing.T) {
	t.Run("advances_toward_out_for_delivery", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Confirmed, order.Preparing} {
			next, err := s.OnAccept()
			require.NoError(t, err)
			assert.Equal(t, order.OutForDelivery, next)
		}
	})

	t.Run("never_moves_ready_backward", func(t *testing.T) {
		next, err := order.Ready.OnAccept()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, next)
	})

	t.Run("rejects_acceptance_past_dispatch", func(t *testing.T) {
		for _, s := range []order.Status{order.OutForDelivery, order.Delivered, order.Cancelled} {
			_, err := s.OnAccept()
			require.ErrorIs(t, err, errs.ErrConflict, s.String())
		}
	})
}

func TestStatus_Transition(t *testing.T) {
	t.Run("free_form_between_non_terminal_states", func(t *testing.T) {
		next, err := order.Pending.Transition(order.Confirmed)
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)

		// restaurants correct statuses in both directions
		next, err = order.Preparing.Transition(order.Confirmed)
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)
	})

	t.Run("cancelled_reachable_from_any_non_terminal_state", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.OutForDelivery, order.Ready,
		} {
			next, err := s.Transition(order.Cancelled)
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("terminal_states_reject_every_transition", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Cancelled} {
			for _, next := range []order.Status{
				order.Pending, order.Confirmed, order.Preparing,
				order.OutForDelivery, order.Ready, order.Delivered, order.Cancelled,
			} {
				_, err := s.Transition(next)
				require.ErrorIs(t, err, errs.ErrConflict)
			}
		}
	})

	t.Run("unrecognized_target_is_invalid_input_not_conflict", func(t *testing.T) {
		_, err := order.Pending.Transition(order.Status(42))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.NotErrorIs(t, err, errs.ErrConflict)
	})
}
