package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/restaurantmenu/internal/domain"
)

func TestCreateMenuItem_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	restaurant, err := svc.CreateRestaurant(ctx, "Urban Burger")
	require.NoError(t, err)

	fields := domain.MenuItemFields{Name: "Veggie Burger", Course: "Entree", Description: "...", Price: "8.99"}
	item, err := svc.CreateMenuItem(ctx, restaurant.ID, fields)
	require.NoError(t, err)

	r, stored, err := svc.GetMenuItemWithRestaurant(ctx, restaurant.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, restaurant, r)
	assert.Equal(t, fields, stored.Fields())
	assert.Equal(t, restaurant.ID, stored.RestaurantID)
}

func TestCreateMenuItem_UnknownRestaurant(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateMenuItem(context.Background(), 3, domain.MenuItemFields{Name: "Orphan"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateMenuItem_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	restaurant, err := svc.CreateRestaurant(ctx, "Strict Diner")
	require.NoError(t, err)

	tests := []struct {
		name      string
		fields    domain.MenuItemFields
		wantField string
	}{
		{"missing name", domain.MenuItemFields{Price: "$1"}, "name"},
		{"long name", domain.MenuItemFields{Name: strings.Repeat("n", maxFieldLen+1)}, "name"},
		{"long price", domain.MenuItemFields{Name: "Caviar", Price: strings.Repeat("9", maxFieldLen+1)}, "price"},
		{"long course", domain.MenuItemFields{Name: "Soup", Course: strings.Repeat("c", maxFieldLen+1)}, "course"},
		{"long description", domain.MenuItemFields{Name: "Soup", Description: strings.Repeat("d", maxFieldLen+1)}, "description"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateMenuItem(ctx, restaurant.ID, tt.fields)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}

	items, err := svc.ListMenuItems(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateMenuItem_PriceIsFreeText(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	restaurant, err := svc.CreateRestaurant(ctx, "Harbor Grill")
	require.NoError(t, err)

	longName := "Grilled Atlantic Lobster Tail with Drawn Butter, Charred Lemon and a Side of Garlic Fries"
	for _, price := range []string{"$1,000.00", "Market price", "12,50 EUR"} {
		item, err := svc.CreateMenuItem(ctx, restaurant.ID, domain.MenuItemFields{Name: longName, Price: price})
		require.NoError(t, err, "price %q", price)
		assert.Equal(t, price, item.Price)
		assert.Equal(t, longName, item.Name)
	}
}

func TestGetMenu(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	restaurant, err := svc.CreateRestaurant(ctx, "Panda Garden")
	require.NoError(t, err)
	_, err = svc.CreateMenuItem(ctx, restaurant.ID, domain.MenuItemFields{Name: "General Tso's Chicken", Course: "Entree"})
	require.NoError(t, err)
	_, err = svc.CreateMenuItem(ctx, restaurant.ID, domain.MenuItemFields{Name: "Peking Duck", Course: "Entree"})
	require.NoError(t, err)

	r, items, err := svc.GetMenu(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Panda Garden", r.Name)
	require.Len(t, items, 2)
	assert.Equal(t, "General Tso's Chicken", items[0].Name)
	assert.Equal(t, "Peking Duck", items[1].Name)
}

func TestGetMenu_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.GetMenu(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ListMenuItems(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateMenuItem(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	restaurant, err := svc.CreateRestaurant(ctx, "Urban Burger")
	require.NoError(t, err)
	item, err := svc.CreateMenuItem(ctx, restaurant.ID, domain.MenuItemFields{Name: "French Fries", Course: "Appetizer", Price: "$2.99"})
	require.NoError(t, err)

	changed := domain.MenuItemFields{Name: "Sweet Potato Fries", Course: "Appetizer", Description: "Crispy", Price: "$3.49"}
	updated, err := svc.UpdateMenuItem(ctx, restaurant.ID, item.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, changed, updated.Fields())
	assert.Equal(t, item.ID, updated.ID)
}

func TestUpdateMenuItem_NotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	restaurant, err := svc.CreateRestaurant(ctx, "Urban Burger")
	require.NoError(t, err)

	_, err = svc.UpdateMenuItem(ctx, restaurant.ID, 404, domain.MenuItemFields{Name: "Nothing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteMenuItem(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	restaurant, err := svc.CreateRestaurant(ctx, "Urban Burger")
	require.NoError(t, err)
	keep, err := svc.CreateMenuItem(ctx, restaurant.ID, domain.MenuItemFields{Name: "Keep"})
	require.NoError(t, err)
	drop, err := svc.CreateMenuItem(ctx, restaurant.ID, domain.MenuItemFields{Name: "Drop"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMenuItem(ctx, restaurant.ID, drop.ID))

	items, err := svc.ListMenuItems(ctx, restaurant.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)

	_, err = svc.GetMenuItem(ctx, restaurant.ID, drop.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.DeleteMenuItem(ctx, restaurant.ID, drop.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
