package web

import (
	"encoding/json"
	"net/http"

	"github.com/vbonduro/restaurantmenu/internal/domain"
)

// restaurantView is the public JSON shape of a restaurant.
type restaurantView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// menuItemView is the public JSON shape of a menu item.
type menuItemView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Course       string `json:"course"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	RestaurantID int64  `json:"restaurant_id"`
}

type restaurantsResponse struct {
	Restaurants []restaurantView `json:"Restaurants"`
}

type restaurantMenuResponse struct {
	RestaurantMenu []menuItemView `json:"RestaurantMenu"`
}

type menuItemResponse struct {
	MenuItem []menuItemView `json:"MenuItem"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toRestaurantViews(restaurants []*domain.Restaurant) []restaurantView {
	views := make([]restaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, restaurantView{ID: r.ID, Name: r.Name})
	}
	return views
}

func toMenuItemView(item *domain.MenuItem) menuItemView {
	return menuItemView{
		ID:           item.ID,
		Name:         item.Name,
		Course:       item.Course,
		Description:  item.Description,
		Price:        item.Price,
		RestaurantID: item.RestaurantID,
	}
}

func toMenuItemViews(items []*domain.MenuItem) []menuItemView {
	views := make([]menuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, toMenuItemView(item))
	}
	return views
}

func (s *Server) handleRestaurantsJSON(w http.ResponseWriter, r *http.Request) {
	restaurants, err := s.service.ListRestaurants(r.Context())
	if err != nil {
		s.writeJSONError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, restaurantsResponse{Restaurants: toRestaurantViews(restaurants)})
}

func (s *Server) handleMenuJSON(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "id")
	if err != nil {
		s.writeJSONError(w, r, domain.ErrNotFound)
		return
	}

	items, err := s.service.ListMenuItems(r.Context(), restaurantID)
	if err != nil {
		s.writeJSONError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, restaurantMenuResponse{RestaurantMenu: toMenuItemViews(items)})
}

func (s *Server) handleMenuItemJSON(w http.ResponseWriter, r *http.Request) {
	restaurantID, menuID, err := menuPathIDs(r)
	if err != nil {
		s.writeJSONError(w, r, err)
		return
	}

	item, err := s.service.GetMenuItem(r.Context(), restaurantID, menuID)
	if err != nil {
		s.writeJSONError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, menuItemResponse{MenuItem: []menuItemView{toMenuItemView(item)}})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("failed to encode json", "error", err)
		http.Error(w, "encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.logger.Debug("failed to write json response", "error", err)
	}
}

func (s *Server) writeJSONError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	s.logError(r, status, err)
	s.writeJSON(w, status, errorResponse{Error: msg})
}
