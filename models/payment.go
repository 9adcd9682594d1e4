package models

// PaymentInput carries the raw payment fields submitted at the final
// wizard step. It only ever lives inside a single confirm request: it is
// never written to the session cache or any repository.
type PaymentInput struct {
	Method         string `json:"method"` // "card" or "bank"
	CardNumber     string `json:"cardNumber,omitempty"`
	Expiry         string `json:"expiry,omitempty"` // MM/YY
	CVV            string `json:"cvv,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
	BankID         string `json:"bankId,omitempty"`
	AccountNumber  string `json:"accountNumber,omitempty"`
	BranchCode     string `json:"branchCode,omitempty"`
}

// MaskedPayment is the only payment shape that survives submission:
// brand plus last four digits, or bank name plus last four account
// digits. Full numbers are discarded the moment validation passes.
type MaskedPayment struct {
	Method   string `bson:"method" json:"method"`
	Brand    string `bson:"brand,omitempty" json:"brand,omitempty"`
	Last4    string `bson:"last4" json:"last4"`
	BankName string `bson:"bankName,omitempty" json:"bankName,omitempty"`
}

// Payment method values.
const (
	PaymentMethodCard = "card"
	PaymentMethodBank = "bank"
)
