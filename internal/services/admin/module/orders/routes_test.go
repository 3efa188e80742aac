package orders

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall  string
	lastOrder string
}

func (f *fakeService) HandleOrdersPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "orders_page"
}

func (f *fakeService) HandleOrdersTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "orders_table"
}

func (f *fakeService) HandleOrderDialog(_ http.ResponseWriter, _ *http.Request, orderID string) {
	f.lastCall = "order_dialog"
	f.lastOrder = orderID
}

func (f *fakeService) HandleOrderDetail(_ http.ResponseWriter, _ *http.Request, orderID string) {
	f.lastCall = "order_detail"
	f.lastOrder = orderID
}

func (f *fakeService) HandleOrderDelete(_ http.ResponseWriter, _ *http.Request, orderID string) {
	f.lastCall = "order_delete"
	f.lastOrder = orderID
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path      string
		method    string
		wantCode  int
		wantCall  string
		wantOrder string
	}{
		{path: "/orders", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "orders_page"},
		{path: "/orders/table?page=4", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "orders_table"},
		{path: "/orders/o-1", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "order_dialog", wantOrder: "o-1"},
		{path: "/orders/o-1/detail", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "order_detail", wantOrder: "o-1"},
		{path: "/orders/o-1/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "order_delete", wantOrder: "o-1"},
		{path: "/orders/o-1/delete", method: http.MethodGet, wantCode: http.StatusMethodNotAllowed},
		{path: "/orders/o-1/refund", method: http.MethodPost, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastOrder = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastOrder != tc.wantOrder {
				t.Fatalf("lastOrder = %q, want %q", svc.lastOrder, tc.wantOrder)
			}
		})
	}
}
