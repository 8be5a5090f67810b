package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vbonduro/restaurantmenu/internal/domain"
)

type MenuItemStore struct {
	db DBTX
}

func NewMenuItemStore(db DBTX) *MenuItemStore {
	return &MenuItemStore{db: db}
}

func (s *MenuItemStore) Create(ctx context.Context, restaurantID int64, f domain.MenuItemFields) (*domain.MenuItem, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO menu_item (name, course, description, price, restaurant_id) VALUES (?, ?, ?, ?, ?)
	`, f.Name, f.Course, f.Description, f.Price, restaurantID)
	if err != nil {
		return nil, storeErr("create menu item", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storeErr("get last insert id", err)
	}

	return &domain.MenuItem{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         f.Name,
		Course:       f.Course,
		Description:  f.Description,
		Price:        f.Price,
	}, nil
}

// GetByID returns the item only when it belongs to restaurantID.
func (s *MenuItemStore) GetByID(ctx context.Context, restaurantID, id int64) (*domain.MenuItem, error) {
	item := &domain.MenuItem{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, course, description, price, restaurant_id FROM menu_item
		WHERE restaurant_id = ? AND id = ?
	`, restaurantID, id).Scan(&item.ID, &item.Name, &item.Course, &item.Description, &item.Price, &item.RestaurantID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("menu item %d of restaurant %d: %w", id, restaurantID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("get menu item", err)
	}

	return item, nil
}

func (s *MenuItemStore) ListByRestaurantID(ctx context.Context, restaurantID int64) ([]*domain.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, course, description, price, restaurant_id FROM menu_item
		WHERE restaurant_id = ? ORDER BY id ASC
	`, restaurantID)
	if err != nil {
		return nil, storeErr("list menu items", err)
	}
	defer closeRows(rows)

	items := []*domain.MenuItem{}
	for rows.Next() {
		item := &domain.MenuItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Course, &item.Description, &item.Price, &item.RestaurantID); err != nil {
			return nil, storeErr("scan menu item", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate menu items", err)
	}

	return items, nil
}

func (s *MenuItemStore) Update(ctx context.Context, restaurantID, id int64, f domain.MenuItemFields) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE menu_item SET name = ?, course = ?, description = ?, price = ?
		WHERE restaurant_id = ? AND id = ?
	`, f.Name, f.Course, f.Description, f.Price, restaurantID, id)
	if err != nil {
		return storeErr("update menu item", err)
	}

	return expectOneRow(result, "menu item", id)
}

func (s *MenuItemStore) Delete(ctx context.Context, restaurantID, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM menu_item WHERE restaurant_id = ? AND id = ?
	`, restaurantID, id)
	if err != nil {
		return storeErr("delete menu item", err)
	}

	return expectOneRow(result, "menu item", id)
}

// DeleteByRestaurantID removes every item of the restaurant and reports how
// many rows went away.
func (s *MenuItemStore) DeleteByRestaurantID(ctx context.Context, restaurantID int64) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM menu_item WHERE restaurant_id = ?
	`, restaurantID)
	if err != nil {
		return 0, storeErr("delete menu items", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, storeErr("get rows affected", err)
	}
	return n, nil
}
