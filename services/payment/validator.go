// Package payment holds the stateless per-field validators the booking
// flow runs at the final wizard step. Each validator returns an empty
// string when the field is valid, or a human-readable message.
package payment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	digitsOnly  = regexp.MustCompile(`^\d+$`)
	nameAllowed = regexp.MustCompile(`^[a-zA-Z ]+$`)
)

// bankAccountLengths declares the valid account-number lengths per bank.
// Banks without an entry fall back to the generic 8-12 digit rule.
var bankAccountLengths = map[string][]int{
	"metro-national": {10},
	"harbor-bank":    {9, 10},
	"union-first":    {11, 12},
	"coastal-credit": {8},
}

// bankNames maps bank ids to their display names for the masked
// payment projection.
var bankNames = map[string]string{
	"metro-national": "Metro National",
	"harbor-bank":    "Harbor Bank",
	"union-first":    "Union First",
	"coastal-credit": "Coastal Credit Union",
}

// ValidateCardNumber requires 13-19 digits passing the Luhn checksum.
func ValidateCardNumber(number string) string {
	cleaned := stripSpaces(number)
	if cleaned == "" {
		return "Card number is required"
	}
	if !digitsOnly.MatchString(cleaned) || len(cleaned) < 13 || len(cleaned) > 19 {
		return "Card number must be 13 to 19 digits"
	}
	if !luhnValid(cleaned) {
		return "Card number is invalid"
	}
	return ""
}

// ValidateExpiry requires MM/YY with a month in 1-12 that is not already
// in the past relative to the current month.
func ValidateExpiry(expiry string) string {
	return validateExpiryAt(expiry, time.Now())
}

func validateExpiryAt(expiry string, now time.Time) string {
	if strings.TrimSpace(expiry) == "" {
		return "Expiry date is required"
	}
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return "Expiry must be in MM/YY format"
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return "Expiry month is invalid"
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return "Expiry year is invalid"
	}
	year += 2000
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return "Card has expired"
	}
	return ""
}

// ValidateCVV checks length by brand: 4 digits for American Express,
// 3 for everything else.
func ValidateCVV(cvv, brand string) string {
	if cvv == "" {
		return "CVV is required"
	}
	want := 3
	if brand == BrandAmex {
		want = 4
	}
	if !digitsOnly.MatchString(cvv) || len(cvv) != want {
		return fmt.Sprintf("CVV must be %d digits", want)
	}
	return ""
}

// ValidateCardholderName requires at least 3 characters, letters and
// spaces only.
func ValidateCardholderName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Cardholder name is required"
	}
	if len(trimmed) < 3 {
		return "Cardholder name is too short"
	}
	if !nameAllowed.MatchString(trimmed) {
		return "Cardholder name may only contain letters and spaces"
	}
	return ""
}

// ValidateBankSelection requires a bank to have been chosen.
func ValidateBankSelection(bankID string) string {
	if strings.TrimSpace(bankID) == "" {
		return "Please select a bank"
	}
	return ""
}

// ValidateAccountNumber checks the account length against the selected
// bank's declared lengths, falling back to a generic 8-12 digit rule.
func ValidateAccountNumber(account, bankID string) string {
	cleaned := stripSpaces(account)
	if cleaned == "" {
		return "Account number is required"
	}
	if !digitsOnly.MatchString(cleaned) {
		return "Account number must contain digits only"
	}
	if lengths, ok := bankAccountLengths[bankID]; ok {
		for _, l := range lengths {
			if len(cleaned) == l {
				return ""
			}
		}
		return "Account number length is not valid for the selected bank"
	}
	if len(cleaned) < 8 || len(cleaned) > 12 {
		return "Account number must be 8 to 12 digits"
	}
	return ""
}

// ValidateBranchCode requires exactly 6 digits.
func ValidateBranchCode(branch string) string {
	cleaned := stripSpaces(branch)
	if cleaned == "" {
		return "Branch code is required"
	}
	if !digitsOnly.MatchString(cleaned) || len(cleaned) != 6 {
		return "Branch code must be exactly 6 digits"
	}
	return ""
}

// BankName returns the display name for a bank id, or the id itself when
// no display name is declared.
func BankName(bankID string) string {
	if name, ok := bankNames[bankID]; ok {
		return name
	}
	return bankID
}

func stripSpaces(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "-", "")
}

// luhnValid runs the Luhn checksum over a digits-only string.
func luhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
