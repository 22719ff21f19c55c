package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PoonjothiV/grocerywebsites/models"
)

func TestAddressesDecodesEnvelope(t *testing.T) {
	addressID := primitive.NewObjectID()
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"addresses":[{"_id":"` + addressID.Hex() + `","street":"12 Market St","city":"Cityville","state":"TN","country":"India","phone":"12345"}]}`))
	}))
	defer server.Close()

	c, err := New(server.URL)
	require.NoError(t, err)

	addresses, err := c.Addresses(context.Background(), "tok123")
	require.NoError(t, err)
	assert.Equal(t, "/api/address/get", gotPath)
	assert.Equal(t, "Bearer tok123", gotAuth)
	require.Len(t, addresses, 1)
	assert.Equal(t, addressID, addresses[0].ID)
	assert.Equal(t, "12 Market St", addresses[0].Street)
}

func TestSuccessFalseBecomesBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Application-level rejection on a 200: still a BackendError.
		w.Write([]byte(`{"success":false,"message":"Not Authorized"}`))
	}))
	defer server.Close()

	c, err := New(server.URL)
	require.NoError(t, err)

	_, err = c.UserOrders(context.Background(), "tok123")
	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "Not Authorized", backendErr.Message)
	assert.Equal(t, "Not Authorized", backendErr.Error())
}

func TestUnreachableBackendBecomesTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	c, err := New(server.URL)
	require.NoError(t, err)
	server.Close()

	_, err = c.Products(context.Background(), "")
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestUnparsableResponseBecomesTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream error</html>"))
	}))
	defer server.Close()

	c, err := New(server.URL)
	require.NoError(t, err)

	_, err = c.Products(context.Background(), "")
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestUpdateSellerOrderStatusTargetsOrderPath(t *testing.T) {
	orderID := primitive.NewObjectID()
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"message":"Status updated"}`))
	}))
	defer server.Close()

	c, err := New(server.URL)
	require.NoError(t, err)

	message, err := c.UpdateSellerOrderStatus(context.Background(), "tok", orderID, models.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, "Status updated", message)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/order/updateStatus/"+orderID.Hex(), gotPath)
}

func TestUpdateOrderStatusTargetsBuyerPath(t *testing.T) {
	orderID := primitive.NewObjectID()
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"message":"Status updated"}`))
	}))
	defer server.Close()

	c, err := New(server.URL)
	require.NoError(t, err)

	message, err := c.UpdateOrderStatus(context.Background(), "tok", orderID, models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, "Status updated", message)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/order/status/"+orderID.Hex(), gotPath)
}

func TestCanceledContextDiscardsLateResult(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	c, err := New(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err = c.SellerOrders(ctx, "tok")
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.Canceled)
}
