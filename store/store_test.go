package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PoonjothiV/grocerywebsites/models"
)

func TestAddToCartMergesEntries(t *testing.T) {
	s := New()
	userID := primitive.NewObjectID()
	p := testProduct("Rice", 50)
	s.SetCatalog([]models.Product{p})

	require.NoError(t, s.AddToCart(userID, p.ID, 1))
	require.NoError(t, s.AddToCart(userID, p.ID, 2))

	cart := s.Cart(userID)
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, 3, s.CartCount(userID))
}

func TestMutatorsRejectNonPositiveQuantities(t *testing.T) {
	s := New()
	userID := primitive.NewObjectID()
	p := testProduct("Rice", 50)
	s.SetCatalog([]models.Product{p})
	require.NoError(t, s.AddToCart(userID, p.ID, 2))

	assert.ErrorIs(t, s.AddToCart(userID, p.ID, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, s.UpdateCartItem(userID, p.ID, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, s.UpdateCartItem(userID, p.ID, -3), ErrInvalidQuantity)

	// Rejected writes leave the entry untouched.
	cart := s.Cart(userID)
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestRemoveFromCartKeepsRemainingOrder(t *testing.T) {
	s := New()
	userID := primitive.NewObjectID()
	p1 := testProduct("Rice", 50)
	p2 := testProduct("Salt", 30)
	p3 := testProduct("Oil", 110)
	s.SetCatalog([]models.Product{p1, p2, p3})
	require.NoError(t, s.AddToCart(userID, p1.ID, 1))
	require.NoError(t, s.AddToCart(userID, p2.ID, 1))
	require.NoError(t, s.AddToCart(userID, p3.ID, 1))

	require.NoError(t, s.RemoveFromCart(userID, p2.ID))

	lines := s.Lines(userID)
	require.Len(t, lines, 2)
	assert.Equal(t, "Rice", lines[0].Product.Name)
	assert.Equal(t, "Oil", lines[1].Product.Name)

	assert.ErrorIs(t, s.RemoveFromCart(userID, p2.ID), ErrNotInCart)
}

func TestCartAmountIsRecomputedAfterCatalogChange(t *testing.T) {
	s := New()
	userID := primitive.NewObjectID()
	p1 := testProduct("Rice", 50)
	p2 := testProduct("Salt", 30)
	s.SetCatalog([]models.Product{p1, p2})
	require.NoError(t, s.AddToCart(userID, p1.ID, 2))
	require.NoError(t, s.AddToCart(userID, p2.ID, 1))
	assert.Equal(t, "130", s.CartAmount(userID).String())

	// Cart state untouched, catalog loses p2: the total must follow.
	s.SetCatalog([]models.Product{p1})
	assert.Equal(t, "100", s.CartAmount(userID).String())
}

func TestSetAddressesSelectsFirstByDefault(t *testing.T) {
	s := New()
	userID := primitive.NewObjectID()
	home := models.Address{ID: primitive.NewObjectID(), Street: "12 Market St", City: "Cityville"}
	work := models.Address{ID: primitive.NewObjectID(), Street: "4 Office Rd", City: "Cityville"}

	assert.Nil(t, s.SelectedAddress(userID))
	s.SetAddresses(userID, []models.Address{home, work})

	selected := s.SelectedAddress(userID)
	require.NotNil(t, selected)
	assert.Equal(t, home.ID, selected.ID)

	require.NoError(t, s.SelectAddress(userID, work.ID))
	assert.Equal(t, work.ID, s.SelectedAddress(userID).ID)

	// A later fetch keeps the explicit selection.
	s.SetAddresses(userID, []models.Address{home, work})
	assert.Equal(t, work.ID, s.SelectedAddress(userID).ID)

	assert.ErrorIs(t, s.SelectAddress(userID, primitive.NewObjectID()), ErrUnknownAddress)
}

func TestClearCartEmptiesOnlyThatUser(t *testing.T) {
	s := New()
	buyer := primitive.NewObjectID()
	other := primitive.NewObjectID()
	p := testProduct("Rice", 50)
	s.SetCatalog([]models.Product{p})
	require.NoError(t, s.AddToCart(buyer, p.ID, 1))
	require.NoError(t, s.AddToCart(other, p.ID, 4))

	s.ClearCart(buyer)
	assert.Empty(t, s.Cart(buyer))
	assert.Equal(t, 4, s.CartCount(other))
}
