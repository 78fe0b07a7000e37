package catalog

import (
	"github.com/shelfwise/shelfwise/pkg/enums"
	pkgerrors "github.com/shelfwise/shelfwise/pkg/errors"
	"github.com/shelfwise/shelfwise/pkg/models"
	"github.com/shelfwise/shelfwise/pkg/validators"
)

// ProductInput is the validated add/update product form.
type ProductInput struct {
	Name              string  `json:"name" validate:"required"`
	Description       string  `json:"description" validate:"required"`
	Manufacturer      string  `json:"manufacturer" validate:"required"`
	ManufacturingDate string  `json:"manufacturingDate" validate:"required"`
	Price             float64 `json:"price" validate:"required,min=1,max=10000"`
	Quantity          int     `json:"quantity" validate:"min=0"`
	Category          string  `json:"category" validate:"required"`
	SupplierName      string  `json:"supplierName"`
	SupplierContact   string  `json:"supplierContact"`
}

// Validate checks the form before any store call is made.
func (in ProductInput) Validate() error {
	if err := validators.Struct(in); err != nil {
		return err
	}
	if !enums.Category(in.Category).IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown category "+in.Category)
	}
	return nil
}

// Product converts the form into the stored record. The id (for updates) and
// ratings are owned by the caller.
func (in ProductInput) Product() models.Product {
	p := models.Product{
		Name:              in.Name,
		Description:       in.Description,
		Manufacturer:      in.Manufacturer,
		ManufacturingDate: in.ManufacturingDate,
		Price:             in.Price,
		Quantity:          in.Quantity,
		Category:          enums.Category(in.Category),
	}
	if in.SupplierName != "" || in.SupplierContact != "" {
		p.Supplier = &models.Supplier{Name: in.SupplierName, Contact: in.SupplierContact}
	}
	return p
}
