package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vbonduro/restaurantmenu/internal/domain"
	"github.com/vbonduro/restaurantmenu/internal/store"
)

// transactor is the subset of store.Store that RestaurantService requires.
type transactor interface {
	WithinTx(ctx context.Context, fn func(*store.Session) error) error
}

// RestaurantService runs each operation as a single unit of work against the
// store. Inputs are validated before a transaction is opened.
type RestaurantService struct {
	store  transactor
	logger *slog.Logger
}

func NewRestaurantService(st transactor, logger *slog.Logger) *RestaurantService {
	return &RestaurantService{store: st, logger: logger}
}

func (s *RestaurantService) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	var restaurants []*domain.Restaurant
	err := s.store.WithinTx(ctx, func(sess *store.Session) error {
		var err error
		restaurants, err = sess.Restaurants.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *RestaurantService) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var restaurant *domain.Restaurant
	err := s.store.WithinTx(ctx, func(sess *store.Session) error {
		var err error
		restaurant, err = sess.Restaurants.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) CreateRestaurant(ctx context.Context, name string) (*domain.Restaurant, error) {
	name, err := validateRestaurantName(name)
	if err != nil {
		return nil, err
	}

	var restaurant *domain.Restaurant
	err = s.store.WithinTx(ctx, func(sess *store.Session) error {
		var err error
		restaurant, err = sess.Restaurants.Create(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("restaurant created", "restaurant_id", restaurant.ID, "name", restaurant.Name)
	return restaurant, nil
}

func (s *RestaurantService) UpdateRestaurant(ctx context.Context, id int64, name string) (*domain.Restaurant, error) {
	name, err := validateRestaurantName(name)
	if err != nil {
		return nil, err
	}

	err = s.store.WithinTx(ctx, func(sess *store.Session) error {
		return sess.Restaurants.Update(ctx, id, name)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("restaurant renamed", "restaurant_id", id, "name", name)
	return &domain.Restaurant{ID: id, Name: name}, nil
}

// DeleteRestaurant removes the restaurant together with its whole menu.
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, id int64) error {
	var removed int64
	err := s.store.WithinTx(ctx, func(sess *store.Session) error {
		if _, err := sess.Restaurants.GetByID(ctx, id); err != nil {
			return err
		}
		var err error
		if removed, err = sess.MenuItems.DeleteByRestaurantID(ctx, id); err != nil {
			return err
		}
		return sess.Restaurants.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("restaurant deleted", "restaurant_id", id, "menu_items_deleted", removed)
	return nil
}
