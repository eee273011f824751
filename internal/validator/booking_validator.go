package validator

import (
	"regexp"
	"strings"
	"time"
)

// フィールド単位のエラー。submit時にまとめて返す。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, ", ")
}

// 予約フォームの入力。日付は"2006-01-02"。
type BookingInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	BookingDate     string
	Notes           string
}

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-\s()]{10,15}$`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

// ValidateBooking は顧客フィールドを全部チェックして、まとめてエラーを返す。
// 1件でもNGなら注文は作らない。
func ValidateBooking(in BookingInput, now time.Time) FieldErrors {
	var errs FieldErrors

	name := strings.TrimSpace(in.CustomerName)
	switch {
	case name == "":
		errs = append(errs, FieldError{"customerName", "Full name is required"})
	case len(name) < 2:
		errs = append(errs, FieldError{"customerName", "Name must be at least 2 characters"})
	case len(name) > 100:
		errs = append(errs, FieldError{"customerName", "Name must be less than 100 characters"})
	case !nameRe.MatchString(name):
		errs = append(errs, FieldError{"customerName", "Name can only contain letters, spaces, hyphens, and apostrophes"})
	}

	email := strings.TrimSpace(in.CustomerEmail)
	switch {
	case email == "":
		errs = append(errs, FieldError{"customerEmail", "Email is required"})
	case len(email) > 255:
		errs = append(errs, FieldError{"customerEmail", "Email must be less than 255 characters"})
	case !emailRe.MatchString(email):
		errs = append(errs, FieldError{"customerEmail", "Please enter a valid email address"})
	}

	phone := strings.TrimSpace(in.CustomerPhone)
	digits := len(digitRe.FindAllString(phone, -1))
	switch {
	case phone == "":
		errs = append(errs, FieldError{"customerPhone", "Phone number is required"})
	case !phoneRe.MatchString(phone) || digits < 10 || digits > 15:
		errs = append(errs, FieldError{"customerPhone", "Phone number must contain 10-15 digits"})
	}

	address := strings.TrimSpace(in.CustomerAddress)
	switch {
	case address == "":
		errs = append(errs, FieldError{"customerAddress", "Address is required"})
	case len(address) < 5:
		errs = append(errs, FieldError{"customerAddress", "Address must be at least 5 characters"})
	case len(address) > 500:
		errs = append(errs, FieldError{"customerAddress", "Address must be less than 500 characters"})
	}

	//日付は今日以降だけ受ける
	d, err := time.Parse("2006-01-02", strings.TrimSpace(in.BookingDate))
	if err != nil {
		errs = append(errs, FieldError{"bookingDate", "Please select a valid date"})
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if d.Before(today) {
			errs = append(errs, FieldError{"bookingDate", "Booking date must be today or in the future"})
		}
	}

	if len(in.Notes) > 1000 {
		errs = append(errs, FieldError{"notes", "Notes must be less than 1000 characters"})
	}

	return errs
}
