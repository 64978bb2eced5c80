package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/application/usecases/commands"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/core/ports"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepo serves a single in-memory order. It is enough to drive the
// HTTP layer; repository behavior has its own integration tests.
type fakeOrderRepo struct {
	stored *order.Order
}

func (r *fakeOrderRepo) Add(_ context.Context, _ *order.Order) error { return nil }

func (r *fakeOrderRepo) Update(_ context.Context, _ *order.Order, _ order.Status, _ *int64) error {
	return nil
}

func (r *fakeOrderRepo) Get(_ context.Context, id int64) (*order.Order, error) {
	if r.stored == nil || r.stored.ID() != id {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return r.stored, nil
}

func (r *fakeOrderRepo) GetByCustomer(_ context.Context, _ int64) ([]*order.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) GetAllDispatchable(_ context.Context, _ int) ([]*order.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) AssignDriver(_ context.Context, orderID, driverID int64) (*order.Order, error) {
	if r.stored == nil || r.stored.ID() != orderID {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}
	if r.stored.Driver() != nil {
		return nil, errs.NewConflictError("order already assigned")
	}
	if err := r.stored.Accept(driverID); err != nil {
		return nil, err
	}
	return r.stored, nil
}

func (r *fakeOrderRepo) CountDispatchable(_ context.Context) (int64, error) { return 0, nil }

type fakeOrderUoW struct {
	repo *fakeOrderRepo
}

func (u *fakeOrderUoW) Begin(context.Context) error            { return nil }
func (u *fakeOrderUoW) Commit(context.Context) error           { return nil }
func (u *fakeOrderUoW) Rollback(context.Context) error         { return nil }
func (u *fakeOrderUoW) OrderRepository() ports.OrderRepository { return u.repo }

type fakeOrderUoWFactory struct {
	uow *fakeOrderUoW
}

func (f fakeOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type fakeNotifier struct {
	err error
}

func (n fakeNotifier) OrderStatusChanged(context.Context, *order.Order) error { return n.err }

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(1, "Chicken Biryani", 159000, 2)
	require.NoError(t, err)
	totals, err := order.NewTotals(318000, 15000, 0)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		7, nil, "buyer@example.com", []order.LineItem{item}, totals, status,
		nil, "", nil, nil, nil, time.Now().UTC(),
	)
	require.NoError(t, err)
	return aggregate
}

func testServer(t *testing.T, repo *fakeOrderRepo, notifier ports.Notifier, adminKey string) *Server {
	t.Helper()

	factory := fakeOrderUoWFactory{uow: &fakeOrderUoW{repo: repo}}
	return &Server{
		setOrderStatusHandler: commands.NewSetOrderStatusCommandHandler(factory, notifier),
		acceptOrderHandler:    commands.NewAcceptOrderCommandHandler(factory, notifier),
		adminKey:              adminKey,
	}
}

func doRequest(server *Server, method, target, body, adminKey string) *httptest.ResponseRecorder {
	e := echo.New()
	server.RegisterRoutes(e)

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if adminKey != "" {
		req.Header.Set("X-Admin-Key", adminKey)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func Test_Health(t *testing.T) {
	server := testServer(t, &fakeOrderRepo{}, fakeNotifier{}, "")

	rec := doRequest(server, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_AcceptOrder_Success(t *testing.T) {
	repo := &fakeOrderRepo{stored: storedOrder(t, order.Confirmed)}
	server := testServer(t, repo, fakeNotifier{}, "")

	rec := doRequest(server, http.MethodPost, "/api/order/7/accept", `{"driver_id":3}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var response OrderMutationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, int64(7), response.OrderID)
	assert.Equal(t, "out_for_delivery", response.Status)
	assert.Equal(t, int64(333000), response.GrandTotal)
	assert.Empty(t, response.Warning)
}

func Test_AcceptOrder_NotificationFailureIsAWarning(t *testing.T) {
	repo := &fakeOrderRepo{stored: storedOrder(t, order.Confirmed)}
	server := testServer(t, repo, fakeNotifier{err: assert.AnError}, "")

	rec := doRequest(server, http.MethodPost, "/api/order/7/accept", `{"driver_id":3}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var response OrderMutationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, notificationWarning, response.Warning)
}

func Test_AcceptOrder_UnknownOrderIs404(t *testing.T) {
	server := testServer(t, &fakeOrderRepo{}, fakeNotifier{}, "")

	rec := doRequest(server, http.MethodPost, "/api/order/99/accept", `{"driver_id":3}`, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_AcceptOrder_AssignedOrderIs409(t *testing.T) {
	taken := storedOrder(t, order.Confirmed)
	require.NoError(t, taken.Accept(8))
	server := testServer(t, &fakeOrderRepo{stored: taken}, fakeNotifier{}, "")

	rec := doRequest(server, http.MethodPost, "/api/order/7/accept", `{"driver_id":3}`, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func Test_AcceptOrder_BadOrderID(t *testing.T) {
	server := testServer(t, &fakeOrderRepo{}, fakeNotifier{}, "")

	rec := doRequest(server, http.MethodPost, "/api/order/abc/accept", `{"driver_id":3}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_SetOrderStatus_RequiresAdminKey(t *testing.T) {
	repo := &fakeOrderRepo{stored: storedOrder(t, order.Pending)}
	server := testServer(t, repo, fakeNotifier{}, "s3cret")

	rec := doRequest(server, http.MethodPost, "/api/order/7/status", `{"status":"confirmed"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_SetOrderStatus_WithAdminKey(t *testing.T) {
	repo := &fakeOrderRepo{stored: storedOrder(t, order.Pending)}
	server := testServer(t, repo, fakeNotifier{}, "s3cret")

	rec := doRequest(server, http.MethodPost, "/api/order/7/status", `{"status":"confirmed"}`, "s3cret")

	require.Equal(t, http.StatusOK, rec.Code)
	var response OrderMutationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "confirmed", response.Status)
}

func Test_SetOrderStatus_UnknownStatusIs400(t *testing.T) {
	repo := &fakeOrderRepo{stored: storedOrder(t, order.Pending)}
	server := testServer(t, repo, fakeNotifier{}, "")

	rec := doRequest(server, http.MethodPost, "/api/order/7/status", `{"status":"teleported"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_SetOrderStatus_IllegalTransitionIs409(t *testing.T) {
	repo := &fakeOrderRepo{stored: storedOrder(t, order.Delivered)}
	server := testServer(t, repo, fakeNotifier{}, "")

	rec := doRequest(server, http.MethodPost, "/api/order/7/status", `{"status":"pending"}`, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func Test_PlaceOrder_MismatchedCoordinatesIs400(t *testing.T) {
	server := testServer(t, &fakeOrderRepo{}, fakeNotifier{}, "")

	body := `{"contact_email":"buyer@example.com","items":[{"menu_item_id":1,"quantity":1}],"dropoff_lat":10.77}`
	rec := doRequest(server, http.MethodPost, "/api/order", body, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_GetOrder_UnscopedLookupRequiresAdminKey(t *testing.T) {
	server := testServer(t, &fakeOrderRepo{}, fakeNotifier{}, "s3cret")

	rec := doRequest(server, http.MethodGet, "/api/order/7", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_GetMyOrders_BadLimitIs400(t *testing.T) {
	server := testServer(t, &fakeOrderRepo{}, fakeNotifier{}, "")

	rec := doRequest(server, http.MethodGet, "/api/my_orders?customer_id=1&limit=abc", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_GetOpenOrders_BadLimitIs400(t *testing.T) {
	server := testServer(t, &fakeOrderRepo{}, fakeNotifier{}, "")

	rec := doRequest(server, http.MethodGet, "/api/open_orders?limit=abc", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
