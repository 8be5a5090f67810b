package service

import (
	"context"

	"github.com/vbonduro/restaurantmenu/internal/domain"
	"github.com/vbonduro/restaurantmenu/internal/store"
)

// GetMenu returns a restaurant and all of its menu items.
func (s *RestaurantService) GetMenu(ctx context.Context, restaurantID int64) (*domain.Restaurant, []*domain.MenuItem, error) {
	var (
		restaurant *domain.Restaurant
		items      []*domain.MenuItem
	)
	err := s.store.WithinTx(ctx, func(sess *store.Session) error {
		var err error
		if restaurant, err = sess.Restaurants.GetByID(ctx, restaurantID); err != nil {
			return err
		}
		items, err = sess.MenuItems.ListByRestaurantID(ctx, restaurantID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return restaurant, items, nil
}

func (s *RestaurantService) ListMenuItems(ctx context.Context, restaurantID int64) ([]*domain.MenuItem, error) {
	_, items, err := s.GetMenu(ctx, restaurantID)
	return items, err
}

func (s *RestaurantService) GetMenuItem(ctx context.Context, restaurantID, menuID int64) (*domain.MenuItem, error) {
	var item *domain.MenuItem
	err := s.store.WithinTx(ctx, func(sess *store.Session) error {
		var err error
		item, err = sess.MenuItems.GetByID(ctx, restaurantID, menuID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *RestaurantService) GetMenuItemWithRestaurant(ctx context.Context, restaurantID, menuID int64) (*domain.Restaurant, *domain.MenuItem, error) {
	var (
		restaurant *domain.Restaurant
		item       *domain.MenuItem
	)
	err := s.store.WithinTx(ctx, func(sess *store.Session) error {
		var err error
		if restaurant, err = sess.Restaurants.GetByID(ctx, restaurantID); err != nil {
			return err
		}
		item, err = sess.MenuItems.GetByID(ctx, restaurantID, menuID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return restaurant, item, nil
}

func (s *RestaurantService) CreateMenuItem(ctx context.Context, restaurantID int64, fields domain.MenuItemFields) (*domain.MenuItem, error) {
	fields, err := validateMenuItem(fields)
	if err != nil {
		return nil, err
	}

	var item *domain.MenuItem
	err = s.store.WithinTx(ctx, func(sess *store.Session) error {
		if _, err := sess.Restaurants.GetByID(ctx, restaurantID); err != nil {
			return err
		}
		var err error
		item, err = sess.MenuItems.Create(ctx, restaurantID, fields)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("menu item created", "restaurant_id", restaurantID, "menu_id", item.ID, "name", item.Name)
	return item, nil
}

func (s *RestaurantService) UpdateMenuItem(ctx context.Context, restaurantID, menuID int64, fields domain.MenuItemFields) (*domain.MenuItem, error) {
	fields, err := validateMenuItem(fields)
	if err != nil {
		return nil, err
	}

	var item *domain.MenuItem
	err = s.store.WithinTx(ctx, func(sess *store.Session) error {
		if err := sess.MenuItems.Update(ctx, restaurantID, menuID, fields); err != nil {
			return err
		}
		var err error
		item, err = sess.MenuItems.GetByID(ctx, restaurantID, menuID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("menu item updated", "restaurant_id", restaurantID, "menu_id", menuID)
	return item, nil
}

func (s *RestaurantService) DeleteMenuItem(ctx context.Context, restaurantID, menuID int64) error {
	err := s.store.WithinTx(ctx, func(sess *store.Session) error {
		return sess.MenuItems.Delete(ctx, restaurantID, menuID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("menu item deleted", "restaurant_id", restaurantID, "menu_id", menuID)
	return nil
}
