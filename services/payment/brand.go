package payment

import (
	"strconv"
	"strings"

	"nestly/models"
)

// Card brands recognized from leading digits.
const (
	BrandVisa       = "Visa"
	BrandMastercard = "Mastercard"
	BrandAmex       = "American Express"
	BrandDiscover   = "Discover"
	BrandUnknown    = "Card"
)

// DetectBrand derives the card brand from the number's leading digits.
// The brand feeds the CVV length rule and the masked projection.
func DetectBrand(number string) string {
	n := stripSpaces(number)
	if len(n) < 2 || !digitsOnly.MatchString(n[:2]) {
		return BrandUnknown
	}
	two, _ := strconv.Atoi(n[:2])
	switch {
	case n[0] == '4':
		return BrandVisa
	case two >= 51 && two <= 55, two >= 22 && two <= 27:
		return BrandMastercard
	case two == 34, two == 37:
		return BrandAmex
	case strings.HasPrefix(n, "6011"), two == 65:
		return BrandDiscover
	}
	return BrandUnknown
}

// MaskCard reduces a validated card to its persisted projection: brand
// plus the last four digits. The full number never leaves this call.
func MaskCard(number string) models.MaskedPayment {
	n := stripSpaces(number)
	last4 := n
	if len(n) > 4 {
		last4 = n[len(n)-4:]
	}
	return models.MaskedPayment{
		Method: models.PaymentMethodCard,
		Brand:  DetectBrand(number),
		Last4:  last4,
	}
}

// MaskAccount reduces a validated bank account to bank name plus the last
// four account digits.
func MaskAccount(bankID, account string) models.MaskedPayment {
	n := stripSpaces(account)
	last4 := n
	if len(n) > 4 {
		last4 = n[len(n)-4:]
	}
	return models.MaskedPayment{
		Method:   models.PaymentMethodBank,
		BankName: BankName(bankID),
		Last4:    last4,
	}
}

// ValidateInput runs every validator required for the chosen payment
// method and returns a map of field name to error message. An empty map
// means the payment input is valid.
func ValidateInput(in models.PaymentInput) map[string]string {
	errs := make(map[string]string)
	switch in.Method {
	case models.PaymentMethodBank:
		if msg := ValidateBankSelection(in.BankID); msg != "" {
			errs["bankId"] = msg
		}
		if msg := ValidateAccountNumber(in.AccountNumber, in.BankID); msg != "" {
			errs["accountNumber"] = msg
		}
		if msg := ValidateBranchCode(in.BranchCode); msg != "" {
			errs["branchCode"] = msg
		}
	default:
		if msg := ValidateCardNumber(in.CardNumber); msg != "" {
			errs["cardNumber"] = msg
		}
		if msg := ValidateExpiry(in.Expiry); msg != "" {
			errs["expiry"] = msg
		}
		if msg := ValidateCVV(in.CVV, DetectBrand(in.CardNumber)); msg != "" {
			errs["cvv"] = msg
		}
		if msg := ValidateCardholderName(in.CardholderName); msg != "" {
			errs["cardholderName"] = msg
		}
	}
	return errs
}

// Mask produces the masked projection for a validated payment input.
func Mask(in models.PaymentInput) models.MaskedPayment {
	if in.Method == models.PaymentMethodBank {
		return MaskAccount(in.BankID, in.AccountNumber)
	}
	return MaskCard(in.CardNumber)
}
