// Package epc serializes a payment request into the EPC069-12 text
// payload that EPC QR codes carry.
package epc

import (
	"strings"

	"github.com/birdpay/go-moneybird-epcqr/moneybird/model"
)

// The first four elements of the payload are constant for a SEPA Credit
// Transfer request.
const (
	serviceTag         = "BCD"
	version            = "002"
	characterSet       = "1"
	identificationCode = "SCT"
)

// Build serializes a payment request into the ten-field, newline-joined
// EPC069-12 payload. Every field is emitted even when empty; the purpose
// code (ninth field) is always empty because an invoice gives no way to
// tell a goods purchase from a services one.
//
// EPC069-12 also caps field lengths (name 70, IBAN 34, remittance 140);
// those caps are not enforced here.
func Build(req *model.PaymentRequest) string {

	data := []string{
		serviceTag,
		version,
		characterSet,
		identificationCode,
		req.BeneficiaryBic,
		req.BeneficiaryName,
		req.BeneficiaryIban,
		req.CurrencyCode + req.Amount, // e.g. EUR25.00
		"", // purpose of transfer (optional AT-44 code)
		req.RemittanceText,
	}

	return strings.Join(data, "\n")
}
