package shops

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
)

type fakeService struct {
	lastCall   string
	lastShop   string
	lastAction marketplace.ShopAction
}

func (f *fakeService) HandleShopsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "shops_page"
}

func (f *fakeService) HandleShopsTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "shops_table"
}

func (f *fakeService) HandleShopDialog(_ http.ResponseWriter, _ *http.Request, shopID string) {
	f.lastCall = "shop_dialog"
	f.lastShop = shopID
}

func (f *fakeService) HandleShopDetail(_ http.ResponseWriter, _ *http.Request, shopID string) {
	f.lastCall = "shop_detail"
	f.lastShop = shopID
}

func (f *fakeService) HandleShopAction(_ http.ResponseWriter, _ *http.Request, shopID string, action marketplace.ShopAction) {
	f.lastCall = "shop_action"
	f.lastShop = shopID
	f.lastAction = action
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path       string
		method     string
		wantCode   int
		wantCall   string
		wantShop   string
		wantAction marketplace.ShopAction
	}{
		{path: "/shops", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "shops_page"},
		{path: "/shops/table?page=2", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "shops_table"},
		{path: "/shops/s-1", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "shop_dialog", wantShop: "s-1"},
		{path: "/shops/s-1/detail", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "shop_detail", wantShop: "s-1"},
		{path: "/shops/s-1/approve", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "shop_action", wantShop: "s-1", wantAction: marketplace.ShopApprove},
		{path: "/shops/s-1/reject", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "shop_action", wantShop: "s-1", wantAction: marketplace.ShopReject},
		{path: "/shops/s-1/ban", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "shop_action", wantShop: "s-1", wantAction: marketplace.ShopBan},
		{path: "/shops/s-1/unban", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "shop_action", wantShop: "s-1", wantAction: marketplace.ShopUnban},
		{path: "/shops/s-1/approve", method: http.MethodGet, wantCode: http.StatusMethodNotAllowed},
		{path: "/shops/s-1/delete", method: http.MethodPost, wantCode: http.StatusNotFound},
		{path: "/shops/s-1/approve/extra", method: http.MethodPost, wantCode: http.StatusNotFound},
		{path: "/shops", method: http.MethodPost, wantCode: http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			svc.lastCall, svc.lastShop, svc.lastAction = "", "", ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastShop != tc.wantShop {
				t.Fatalf("lastShop = %q, want %q", svc.lastShop, tc.wantShop)
			}
			if svc.lastAction != tc.wantAction {
				t.Fatalf("lastAction = %q, want %q", svc.lastAction, tc.wantAction)
			}
		})
	}
}

func TestHandleShopPathRedirectsTrailingSlash(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/shops/s-1/", nil)
	rec := httptest.NewRecorder()

	HandleShopPath(rec, req, &fakeService{})

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if location := rec.Header().Get("Location"); location != "/shops/s-1" {
		t.Fatalf("location = %q, want %q", location, "/shops/s-1")
	}
}
