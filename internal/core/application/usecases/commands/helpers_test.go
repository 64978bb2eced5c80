package commands_test

import (
	"testing"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testLineItems(t *testing.T) []order.LineItem {
	t.Helper()
	biryani, err := order.NewLineItem(1, "Chicken Biryani", 159000, 2)
	require.NoError(t, err)
	naan, err := order.NewLineItem(2, "Garlic Naan", 25000, 1)
	require.NoError(t, err)
	return []order.LineItem{biryani, naan}
}

func testOrder(t *testing.T, id int64, status order.Status, driverID *int64) *order.Order {
	t.Helper()
	items := testLineItems(t)
	totals, err := order.NewTotals(order.ItemsTotal(items), 15000, 0)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		id, nil, "buyer@example.com", items, totals, status,
		driverID, "", nil, nil, nil, time.Now().UTC(),
	)
	require.NoError(t, err)
	return aggregate
}

func ptrInt64(v int64) *int64 { return &v }
