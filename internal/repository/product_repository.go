package repository

import "github.com/khaild19/10AI/internal/model"

// ProductPatch carries the fields of a partial update. Nil fields are left
// untouched.
type ProductPatch struct {
	Name        *string
	URL         *string
	Description *string
	Price       *float64
	Images      *model.ImageList
	Status      *model.ProductStatus
	Season      *string
}

// Empty reports whether no field is set.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.URL == nil && p.Description == nil && p.Price == nil &&
		p.Images == nil && p.Status == nil && p.Season == nil
}

type ProductStore interface {
	Create(product *model.Product) error
	// ListByUser returns the owner's products, newest first.
	ListByUser(userID uint) ([]model.Product, error)
	// Update applies patch to the product only when it belongs to userID.
	// It reports whether a row matched; an empty patch matches nothing.
	Update(productID, userID uint, patch ProductPatch) (bool, error)
	Delete(productID, userID uint) (bool, error)
	DeleteAllByUser(userID uint) (int64, error)
}
