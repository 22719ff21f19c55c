package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PoonjothiV/grocerywebsites/billing"
	"github.com/PoonjothiV/grocerywebsites/checkout"
	"github.com/PoonjothiV/grocerywebsites/client"
	"github.com/PoonjothiV/grocerywebsites/controllers"
	"github.com/PoonjothiV/grocerywebsites/seller"
	"github.com/PoonjothiV/grocerywebsites/store"
	"github.com/PoonjothiV/grocerywebsites/utils"
)

func newTestRouter(t *testing.T, backendURL string) *mux.Router {
	backend, err := client.New(backendURL)
	require.NoError(t, err)
	st := store.New()
	renderer := &billing.Renderer{Currency: "$"}

	router := mux.NewRouter()
	RegisterRoutes(router,
		controllers.NewCartController(st, backend),
		controllers.NewOrderController(checkout.NewService(backend, st), backend),
		controllers.NewBillController(st, renderer, nil),
		controllers.NewSellerController(seller.NewService(backend), st, backend, "$"),
	)
	return router
}

func TestBuyerStatusUpdateRouteForwardsToBackend(t *testing.T) {
	orderID := primitive.NewObjectID()
	var gotMethod, gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"message":"Status updated"}`))
	}))
	defer backend.Close()

	router := newTestRouter(t, backend.URL)
	token, err := utils.GenerateJWT(primitive.NewObjectID().Hex(), "Jane Doe", "jane@example.com", "user")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/order/"+orderID.Hex()+"/status",
		strings.NewReader(`{"status":"Cancelled"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status updated")
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/order/status/"+orderID.Hex(), gotPath)
}
