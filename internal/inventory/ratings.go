package inventory

import (
	pkgerrors "github.com/shelfwise/shelfwise/pkg/errors"
	"github.com/shelfwise/shelfwise/pkg/models"
)

// MergeRating applies a rating submission to the product's rating list.
//
// With editIndex nil the submission is an add: a second rating by the same
// user is rejected so each user holds at most one rating per product. With
// editIndex set the submission overwrites that entry, but only when it
// belongs to the acting user. Input is validated before any mutation; on
// error the product is untouched.
func MergeRating(product *models.Product, userID string, rating int, review string, editIndex *int) error {
	if product == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "no product loaded")
	}

	if editIndex == nil && product.RatingBy(userID) >= 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, "you have already rated this product; edit your existing rating instead")
	}
	if editIndex != nil {
		i := *editIndex
		if i < 0 || i >= len(product.Ratings) {
			return pkgerrors.New(pkgerrors.CodeValidation, "rating to edit no longer exists")
		}
		if product.Ratings[i].UserID != userID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "you can only edit your own rating")
		}
	}

	if rating < 1 || rating > 5 || review == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "select a rating between 1 and 5 and provide a review")
	}

	entry := models.Rating{UserID: userID, Rating: rating, Review: review}
	if editIndex != nil {
		product.Ratings[*editIndex] = entry
		return nil
	}
	product.Ratings = append(product.Ratings, entry)
	return nil
}
