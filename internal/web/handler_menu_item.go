package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vbonduro/restaurantmenu/internal/domain"
)

// courses are offered as suggestions; any text is accepted.
var courses = []string{"Appetizer", "Entree", "Dessert", "Beverage"}

type menuItemForm struct {
	Heading    string
	Action     string
	Submit     string
	Restaurant *domain.Restaurant
	Fields     domain.MenuItemFields
	Courses    []string
	Error      string
}

func newMenuItemForm(restaurant *domain.Restaurant) menuItemForm {
	return menuItemForm{
		Heading:    "New Menu Item",
		Action:     fmt.Sprintf("/restaurant/%d/menu/new/", restaurant.ID),
		Submit:     "Create",
		Restaurant: restaurant,
		Courses:    courses,
	}
}

func editMenuItemForm(restaurant *domain.Restaurant, menuID int64, fields domain.MenuItemFields) menuItemForm {
	return menuItemForm{
		Heading:    "Edit Menu Item",
		Action:     fmt.Sprintf("/restaurant/%d/menu/%d/edit/", restaurant.ID, menuID),
		Submit:     "Save",
		Restaurant: restaurant,
		Fields:     fields,
		Courses:    courses,
	}
}

// menuItemFields reads the menu item columns from a parsed form.
func menuItemFields(r *http.Request) domain.MenuItemFields {
	return domain.MenuItemFields{
		Name:        r.PostFormValue("name"),
		Course:      r.PostFormValue("course"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
	}
}

// menuPathIDs parses {id} and {menuId}. Non-numeric ids cannot exist, so they
// are reported as not found.
func menuPathIDs(r *http.Request) (int64, int64, error) {
	restaurantID, err := pathID(r, "id")
	if err != nil {
		return 0, 0, domain.ErrNotFound
	}
	menuID, err := pathID(r, "menuId")
	if err != nil {
		return 0, 0, domain.ErrNotFound
	}
	return restaurantID, menuID, nil
}

func (s *Server) handleNewMenuItemForm(w http.ResponseWriter, r *http.Request) {
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

	s.view(w, r, http.StatusOK, "menu_item_form.html", map[string]any{"Form": newMenuItemForm(restaurant)})
}

func (s *Server) handleCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "id")
	if err != nil {
		s.renderError(w, r, domain.ErrNotFound)
		return
	}
	if err := parseForm(w, r); err != nil {
		s.renderError(w, r, err)
		return
	}
	fields := menuItemFields(r)

	if _, err := s.service.CreateMenuItem(r.Context(), restaurantID, fields); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			s.rerenderMenuItemForm(w, r, restaurantID, verr, func(restaurant *domain.Restaurant) menuItemForm {
				form := newMenuItemForm(restaurant)
				form.Fields = fields
				return form
			})
			return
		}
		s.renderError(w, r, err)
		return
	}

	s.redirectWithFlash(w, r, menuPath(restaurantID), "New Menu Item Created.")
}

func (s *Server) handleEditMenuItemForm(w http.ResponseWriter, r *http.Request) {
	restaurantID, menuID, err := menuPathIDs(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	restaurant, item, err := s.service.GetMenuItemWithRestaurant(r.Context(), restaurantID, menuID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.view(w, r, http.StatusOK, "menu_item_form.html", map[string]any{
		"Form": editMenuItemForm(restaurant, item.ID, item.Fields()),
	})
}

func (s *Server) handleUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, menuID, err := menuPathIDs(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if err := parseForm(w, r); err != nil {
		s.renderError(w, r, err)
		return
	}
	fields := menuItemFields(r)

	if _, err := s.service.UpdateMenuItem(r.Context(), restaurantID, menuID, fields); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			s.rerenderMenuItemForm(w, r, restaurantID, verr, func(restaurant *domain.Restaurant) menuItemForm {
				return editMenuItemForm(restaurant, menuID, fields)
			})
			return
		}
		s.renderError(w, r, err)
		return
	}

	s.redirectWithFlash(w, r, menuPath(restaurantID), "Menu Item Successfully Edited.")
}

// rerenderMenuItemForm shows the submitted form again with a 400 and the
// validation message inline.
func (s *Server) rerenderMenuItemForm(w http.ResponseWriter, r *http.Request, restaurantID int64, verr *domain.ValidationError, build func(*domain.Restaurant) menuItemForm) {
	restaurant, err := s.service.GetRestaurant(r.Context(), restaurantID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	form := build(restaurant)
	form.Error = verr.Error()
	s.view(w, r, http.StatusBadRequest, "menu_item_form.html", map[string]any{"Form": form})
}

func (s *Server) handleDeleteMenuItemForm(w http.ResponseWriter, r *http.Request) {
	restaurantID, menuID, err := menuPathIDs(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	restaurant, item, err := s.service.GetMenuItemWithRestaurant(r.Context(), restaurantID, menuID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.view(w, r, http.StatusOK, "menu_item_delete.html", map[string]any{"Restaurant": restaurant, "Item": item})
}

func (s *Server) handleDeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, menuID, err := menuPathIDs(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	if err := s.service.DeleteMenuItem(r.Context(), restaurantID, menuID); err != nil {
		s.renderError(w, r, err)
		return
	}

	s.redirectWithFlash(w, r, menuPath(restaurantID), "Menu Item Successfully Deleted.")
}
