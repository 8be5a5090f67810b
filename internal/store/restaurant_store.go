package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vbonduro/restaurantmenu/internal/domain"
)

type RestaurantStore struct {
	db DBTX
}

func NewRestaurantStore(db DBTX) *RestaurantStore {
	return &RestaurantStore{db: db}
}

func (s *RestaurantStore) Create(ctx context.Context, name string) (*domain.Restaurant, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO restaurant (name) VALUES (?)
	`, name)
	if err != nil {
		return nil, storeErr("create restaurant", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storeErr("get last insert id", err)
	}

	return &domain.Restaurant{ID: id, Name: name}, nil
}

func (s *RestaurantStore) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	restaurant := &domain.Restaurant{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name FROM restaurant WHERE id = ?
	`, id).Scan(&restaurant.ID, &restaurant.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("restaurant %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("get restaurant", err)
	}

	return restaurant, nil
}

// List returns every restaurant in insertion order.
func (s *RestaurantStore) List(ctx context.Context) ([]*domain.Restaurant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name FROM restaurant ORDER BY id ASC
	`)
	if err != nil {
		return nil, storeErr("list restaurants", err)
	}
	defer closeRows(rows)

	restaurants := []*domain.Restaurant{}
	for rows.Next() {
		restaurant := &domain.Restaurant{}
		if err := rows.Scan(&restaurant.ID, &restaurant.Name); err != nil {
			return nil, storeErr("scan restaurant", err)
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate restaurants", err)
	}

	return restaurants, nil
}

func (s *RestaurantStore) Update(ctx context.Context, id int64, name string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE restaurant SET name = ? WHERE id = ?
	`, name, id)
	if err != nil {
		return storeErr("update restaurant", err)
	}

	return expectOneRow(result, "restaurant", id)
}

func (s *RestaurantStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM restaurant WHERE id = ?
	`, id)
	if err != nil {
		return storeErr("delete restaurant", err)
	}

	return expectOneRow(result, "restaurant", id)
}

func expectOneRow(result sql.Result, entity string, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeErr("get rows affected", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	return nil
}
