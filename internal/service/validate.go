package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vbonduro/restaurantmenu/internal/domain"
)

// maxFieldLen caps every text field, in characters. Price is free text and
// shares the same cap.
const maxFieldLen = 1000

func validateRestaurantName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := checkField("name", name, maxFieldLen, true); err != nil {
		return "", err
	}
	return name, nil
}

func validateMenuItem(f domain.MenuItemFields) (domain.MenuItemFields, error) {
	f = domain.MenuItemFields{
		Name:        strings.TrimSpace(f.Name),
		Course:      strings.TrimSpace(f.Course),
		Description: strings.TrimSpace(f.Description),
		Price:       strings.TrimSpace(f.Price),
	}

	checks := []struct {
		field    string
		value    string
		max      int
		required bool
	}{
		{"name", f.Name, maxFieldLen, true},
		{"course", f.Course, maxFieldLen, false},
		{"description", f.Description, maxFieldLen, false},
		{"price", f.Price, maxFieldLen, false},
	}
	for _, c := range checks {
		if err := checkField(c.field, c.value, c.max, c.required); err != nil {
			return domain.MenuItemFields{}, err
		}
	}
	return f, nil
}

func checkField(field, value string, max int, required bool) error {
	if required && value == "" {
		return &domain.ValidationError{Field: field, Message: "is required"}
	}
	if utf8.RuneCountInString(value) > max {
		return &domain.ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)}
	}
	return nil
}
