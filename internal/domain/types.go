package domain

type Restaurant struct {
	ID   int64
	Name string
}

type MenuItem struct {
	ID           int64
	RestaurantID int64
	Name         string
	Course       string
	Description  string
	Price        string
}

// MenuItemFields holds the user-editable columns of a menu item.
type MenuItemFields struct {
	Name        string
	Course      string
	Description string
	Price       string
}

// Fields returns the editable part of the item, e.g. to pre-fill a form.
func (m *MenuItem) Fields() MenuItemFields {
	return MenuItemFields{
		Name:        m.Name,
		Course:      m.Course,
		Description: m.Description,
		Price:       m.Price,
	}
}
