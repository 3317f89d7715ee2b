package domain

// Category is an independently owned label. Tasks copy its name by value;
// there is no foreign key and no delete operation.
type Category struct {
	ID           string
	CategoryName string
}
