package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vbonduro/restaurantmenu/internal/domain"
)

func (s *Server) handleListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := s.service.ListRestaurants(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.view(w, r, http.StatusOK, "restaurants.html", map[string]any{"Restaurants": restaurants})
}

func (s *Server) handleShowMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "id")
	if err != nil {
		s.renderError(w, r, domain.ErrNotFound)
		return
	}

	restaurant, items, err := s.service.GetMenu(r.Context(), restaurantID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.view(w, r, http.StatusOK, "menu.html", map[string]any{"Restaurant": restaurant, "Items": items})
}

// restaurantForm is the view model shared by the new and edit pages.
type restaurantForm struct {
	Heading string
	Action  string
	Submit  string
	Name    string
	Cancel  string
	Error   string
}

func newRestaurantForm() restaurantForm {
	return restaurantForm{
		Heading: "New Restaurant",
		Action:  "/restaurant/new/",
		Submit:  "Create",
		Cancel:  "/restaurants/",
	}
}

func editRestaurantForm(id int64, name string) restaurantForm {
	return restaurantForm{
		Heading: "Edit Restaurant",
		Action:  fmt.Sprintf("/restaurant/%d/edit/", id),
		Submit:  "Save",
		Name:    name,
		Cancel:  menuPath(id),
	}
}

func (s *Server) handleNewRestaurantForm(w http.ResponseWriter, r *http.Request) {
	s.view(w, r, http.StatusOK, "restaurant_form.html", map[string]any{"Form": newRestaurantForm()})
}

func (s *Server) handleCreateRestaurant(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		s.renderError(w, r, err)
		return
	}
	name := r.PostFormValue("name")

	if _, err := s.service.CreateRestaurant(r.Context(), name); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			form := newRestaurantForm()
			form.Name, form.Error = name, verr.Error()
			s.view(w, r, http.StatusBadRequest, "restaurant_form.html", map[string]any{"Form": form})
			return
		}
		s.renderError(w, r, err)
		return
	}

	s.redirectWithFlash(w, r, "/restaurants/", "New Restaurant Created.")
}

func (s *Server) handleEditRestaurantForm(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "id")
	if err != nil {
		s.renderError(w, r, domain.ErrNotFound)
		return
	}

	restaurant, err := s.service.GetRestaurant(r.Context(), restaurantID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.view(w, r, http.StatusOK, "restaurant_form.html", map[string]any{
		"Form": editRestaurantForm(restaurant.ID, restaurant.Name),
	})
}

func (s *Server) handleUpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "id")
	if err != nil {
		s.renderError(w, r, domain.ErrNotFound)
		return
	}
	if err := parseForm(w, r); err != nil {
		s.renderError(w, r, err)
		return
	}
	name := r.PostFormValue("name")

	if _, err := s.service.UpdateRestaurant(r.Context(), restaurantID, name); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			form := editRestaurantForm(restaurantID, name)
			form.Error = verr.Error()
			s.view(w, r, http.StatusBadRequest, "restaurant_form.html", map[string]any{"Form": form})
			return
		}
		s.renderError(w, r, err)
		return
	}

	s.redirectWithFlash(w, r, menuPath(restaurantID), "Restaurant Successfully Edited.")
}

func (s *Server) handleDeleteRestaurantForm(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "id")
	if err != nil {
		s.renderError(w, r, domain.ErrNotFound)
		return
	}

	restaurant, items, err := s.service.GetMenu(r.Context(), restaurantID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.view(w, r, http.StatusOK, "restaurant_delete.html", map[string]any{
		"Restaurant": restaurant,
		"ItemCount":  len(items),
	})
}

func (s *Server) handleDeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "id")
	if err != nil {
		s.renderError(w, r, domain.ErrNotFound)
		return
	}

	if err := s.service.DeleteRestaurant(r.Context(), restaurantID); err != nil {
		s.renderError(w, r, err)
		return
	}

	s.redirectWithFlash(w, r, "/restaurants/", "Restaurant Successfully Deleted.")
}

func menuPath(restaurantID int64) string {
	return fmt.Sprintf("/restaurant/%d/menu/", restaurantID)
}
