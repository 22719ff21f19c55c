package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PoonjothiV/grocerywebsites/billing"
	"github.com/PoonjothiV/grocerywebsites/middleware"
	"github.com/PoonjothiV/grocerywebsites/models"
	"github.com/PoonjothiV/grocerywebsites/store"
	"github.com/PoonjothiV/grocerywebsites/utils"
)

func authedRequest(method, target string, body *strings.Reader, user *models.User) *http.Request {
	if body == nil {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	claims := &utils.Claims{UserID: user.ID.Hex(), Name: user.Name, Email: user.Email, Role: "user"}
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)
	ctx = context.WithValue(ctx, middleware.TokenContextKey, "tok")
	return req.WithContext(ctx)
}

func TestDownloadBillUsesDeterministicFilename(t *testing.T) {
	st := store.New()
	user := &models.User{ID: primitive.NewObjectID(), Name: "Jane Doe", Email: "jane@example.com"}
	p := models.Product{ID: primitive.NewObjectID(), Name: "Rice", OfferPrice: decimal.NewFromInt(50), InStock: true}
	st.SetCatalog([]models.Product{p})
	require.NoError(t, st.AddToCart(user.ID, p.ID, 2))

	bc := NewBillController(st, &billing.Renderer{Currency: "$"}, nil)
	rec := httptest.NewRecorder()
	bc.DownloadBill(rec, authedRequest(http.MethodGet, "/api/bill", nil, user))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="order-bill_jane_doe.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	// The cart is untouched by bill generation.
	assert.Len(t, st.Cart(user.ID), 1)
}

func TestCreateBillFromManualItems(t *testing.T) {
	st := store.New()
	user := &models.User{ID: primitive.NewObjectID(), Name: "Jane Doe", Email: "jane@example.com"}
	bc := NewBillController(st, &billing.Renderer{Currency: "$"}, nil)

	body := strings.NewReader(`{"customerName":"Ravi Kumar","paymentMethod":"COD","items":[{"name":"Rice","quantity":2,"price":50}]}`)
	rec := httptest.NewRecorder()
	bc.CreateBill(rec, authedRequest(http.MethodPost, "/api/bill", body, user))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="order-bill_ravi_kumar.pdf"`, rec.Header().Get("Content-Disposition"))
}

func TestCreateBillRejectsNonPositiveQuantity(t *testing.T) {
	st := store.New()
	user := &models.User{ID: primitive.NewObjectID(), Name: "Jane Doe", Email: "jane@example.com"}
	bc := NewBillController(st, &billing.Renderer{Currency: "$"}, nil)

	body := strings.NewReader(`{"customerName":"Ravi Kumar","items":[{"name":"Rice","quantity":0,"price":50}]}`)
	rec := httptest.NewRecorder()
	bc.CreateBill(rec, authedRequest(http.MethodPost, "/api/bill", body, user))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
