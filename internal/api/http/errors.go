package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

type errorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code"`
	MenuItemID int    `json:"menu_item_id,omitempty"`
}

// writeError translates domain errors into the API's error envelope.
// Unrecognized errors become a 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	var lineErr *domain.LineError
	if errors.As(err, &lineErr) {
		resp.MenuItemID = lineErr.MenuItemID
	}

	switch {
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrCustomerRequired),
		errors.Is(err, domain.ErrReviewRequired),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidPaymentStatus),
		errors.Is(err, domain.ErrRecipeTitleRequired),
		errors.Is(err, domain.ErrMenuFieldsRequired):
		status = http.StatusBadRequest
		resp.Code = "VALIDATION"
	case errors.Is(err, domain.ErrMenuNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrItemNotInOrder):
		status = http.StatusNotFound
		resp.Code = "NOT_FOUND"
	case errors.Is(err, domain.ErrInsufficientStock):
		status = http.StatusConflict
		resp.Code = "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrCustomerConflict),
		errors.Is(err, domain.ErrMenuDateTaken),
		errors.Is(err, domain.ErrDuplicateReview):
		status = http.StatusConflict
		resp.Code = "CONFLICT"
	default:
		resp.Error = "internal server error"
		resp.Code = "INTERNAL"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
