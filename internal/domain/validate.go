package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const minNameLength = 3

// minPrice is the smallest accepted price.
var minPrice = decimal.New(1, -2)

// Validate applies every field rule to the submitted input and returns one
// message per offending field; an empty map means the input is valid. The
// price and pricePresent arguments come from ParsePrice, so a malformed
// price never reaches this function. All rules are evaluated so violations
// are reported together rather than one at a time.
func Validate(input ProductInput, price decimal.Decimal, pricePresent bool) map[string]string {
	errors := make(map[string]string)

	trimmedName := strings.TrimSpace(input.Name)
	if trimmedName == "" {
		errors["name"] = "Name is required"
	} else if utf8.RuneCountInString(trimmedName) < minNameLength {
		errors["name"] = "Name must be at least 3 characters"
	}

	if !pricePresent {
		errors["price"] = "Price is required"
	} else if price.LessThan(minPrice) {
		errors["price"] = "Price must be greater than 0"
	}

	return errors
}
