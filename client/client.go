// Package client speaks the grocery backend's REST API. Every response
// follows the uniform {success, message?, ...payload} envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PoonjothiV/grocerywebsites/models"
)

// Client is a thin typed wrapper around the backend endpoints. It holds no
// state of its own; the caller's bearer token is forwarded per request.
type Client struct {
	base *url.URL
	http *http.Client
}

// New builds a client for the backend at baseURL.
func New(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		base: u,
		http: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// envelope carries the fields common to every backend response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e envelope) status() (bool, string) { return e.Success, e.Message }

type response interface {
	status() (ok bool, message string)
}

// do issues one request and decodes the enveloped response into out.
// Transport and decode failures become *TransportError; a success:false
// envelope becomes *BackendError.
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}, out response) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	u := *c.base
	u.Path = path
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Err: err}
	}
	if ok, message := out.status(); !ok {
		return &BackendError{Message: message}
	}
	return nil
}

// Products fetches the catalog snapshot.
func (c *Client) Products(ctx context.Context, token string) ([]models.Product, error) {
	var out struct {
		envelope
		Products []models.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/product/list", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// SetProductStock toggles a product's in-stock flag.
func (c *Client) SetProductStock(ctx context.Context, token string, id primitive.ObjectID, inStock bool) (string, error) {
	body := struct {
		ID      primitive.ObjectID `json:"id"`
		InStock bool               `json:"inStock"`
	}{ID: id, InStock: inStock}
	var out struct{ envelope }
	if err := c.do(ctx, http.MethodPost, "/api/product/stock", token, body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Addresses fetches the delivery addresses saved for the caller.
func (c *Client) Addresses(ctx context.Context, token string) ([]models.Address, error) {
	var out struct {
		envelope
		Addresses []models.Address `json:"addresses"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/address/get", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Addresses, nil
}

// PlaceCODOrder submits a cash-on-delivery order. Placement is synchronous;
// the returned message confirms success.
func (c *Client) PlaceCODOrder(ctx context.Context, token string, payload models.OrderPayload) (string, error) {
	var out struct{ envelope }
	if err := c.do(ctx, http.MethodPost, "/api/order/cod", token, payload, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// PlaceOnlineOrder submits an order for online payment. The backend answers
// with a redirect URL; the transaction completes out-of-band.
func (c *Client) PlaceOnlineOrder(ctx context.Context, token string, payload models.OrderPayload) (string, error) {
	var out struct {
		envelope
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/order/stripe", token, payload, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// UserOrders fetches the caller's own orders.
func (c *Client) UserOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out struct {
		envelope
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/order/user", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// SellerOrders fetches every order for the seller panel.
func (c *Client) SellerOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out struct {
		envelope
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/order/seller", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

type statusBody struct {
	Status models.Status `json:"status"`
}

// UpdateOrderStatus requests a transition through the buyer-side endpoint.
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, id primitive.ObjectID, status models.Status) (string, error) {
	var out struct{ envelope }
	if err := c.do(ctx, http.MethodPut, "/api/order/status/"+id.Hex(), token, statusBody{Status: status}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// UpdateSellerOrderStatus requests a transition through the seller endpoint.
func (c *Client) UpdateSellerOrderStatus(ctx context.Context, token string, id primitive.ObjectID, status models.Status) (string, error) {
	var out struct{ envelope }
	if err := c.do(ctx, http.MethodPut, "/api/order/updateStatus/"+id.Hex(), token, statusBody{Status: status}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// DeleteOrder deletes an order by id.
func (c *Client) DeleteOrder(ctx context.Context, token string, id primitive.ObjectID) (string, error) {
	var out struct{ envelope }
	if err := c.do(ctx, http.MethodDelete, "/api/order/"+id.Hex(), token, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Users lists every registered user for the administration screen.
func (c *Client) Users(ctx context.Context, token string) ([]models.User, error) {
	var out struct {
		envelope
		Users []models.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/user/all", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// DeleteUser removes a user by id.
func (c *Client) DeleteUser(ctx context.Context, token string, id primitive.ObjectID) (string, error) {
	var out struct{ envelope }
	if err := c.do(ctx, http.MethodDelete, "/api/user/delete/"+id.Hex(), token, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
