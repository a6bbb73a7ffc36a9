package domain

import (
	"fmt"
	"strings"
)

// Form is the contact and shipping data a customer submits at checkout.
type Form struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Zip     string
}

// Trimmed returns the form with surrounding whitespace removed from every field.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Address: strings.TrimSpace(f.Address),
		City:    strings.TrimSpace(f.City),
		Zip:     strings.TrimSpace(f.Zip),
	}
}

// ValidationError names the first field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: %s %s", e.Field, e.Reason)
}

// SubmissionError means the order store did not accept the order. The cart is
// left as it was.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return "checkout: order submission failed: " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error { return e.Err }
