package validator

import (
	"net/url"
	"strings"

	"app/internal/money"
)

// 管理画面のツアーフォーム入力。
type TourInput struct {
	Title       string
	Description string
	Price       string
	Duration    string
	Location    string
	Itinerary   []string
	Images      []string
	SDGGoals    []int
	MaxCapacity int
}

// ValidateTour は管理側でツアー入力をチェックする。
// 価格はここで厳密にパースする（壊れた価格をカタログに入れない）。
func ValidateTour(in TourInput) FieldErrors {
	var errs FieldErrors

	if len(strings.TrimSpace(in.Title)) < 5 {
		errs = append(errs, FieldError{"title", "Title must be at least 5 characters"})
	}
	if len(strings.TrimSpace(in.Description)) < 50 {
		errs = append(errs, FieldError{"description", "Description must be at least 50 characters"})
	}
	if !money.IsPositive(in.Price) {
		errs = append(errs, FieldError{"price", "Price must be a positive number"})
	}
	if strings.TrimSpace(in.Duration) == "" {
		errs = append(errs, FieldError{"duration", "Duration is required"})
	}
	if len(strings.TrimSpace(in.Location)) < 2 {
		errs = append(errs, FieldError{"location", "Location is required"})
	}
	if len(in.Itinerary) < 1 {
		errs = append(errs, FieldError{"itinerary", "At least one itinerary item required"})
	}

	if len(in.Images) < 1 {
		errs = append(errs, FieldError{"images", "At least one valid image URL required"})
	} else {
		for _, img := range in.Images {
			if !isHTTPURL(img) {
				errs = append(errs, FieldError{"images", "At least one valid image URL required"})
				break
			}
		}
	}

	if len(in.SDGGoals) < 1 {
		errs = append(errs, FieldError{"sdgGoals", "At least one SDG goal required"})
	} else {
		for _, g := range in.SDGGoals {
			if g < 1 || g > 17 {
				errs = append(errs, FieldError{"sdgGoals", "SDG goals must be between 1 and 17"})
				break
			}
		}
	}

	if in.MaxCapacity <= 0 {
		errs = append(errs, FieldError{"maxCapacity", "Max capacity must be a positive number"})
	}

	return errs
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
