package payment

import (
	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/birdpay/go-moneybird-epcqr/moneybird/model"
)

// ErrInvoicePaid is returned for invoices that are already settled; no
// payment payload is generated for them.
var ErrInvoicePaid = errors.New("invoice already paid")

var validate = validator.New()

const defaultCurrency = "EUR"

// Normalize maps a raw purchase invoice onto a strict PaymentRequest.
//
// The beneficiary name falls back from the SEPA account name to the
// company name, the currency defaults to EUR, and the amount is passed
// through exactly as the API formatted it. An invoice without an IBAN or
// any usable name fails normalization.
func Normalize(inv *model.PurchaseInvoice) (*model.PaymentRequest, error) {

	if inv.State == model.StatePaid {
		return nil, ErrInvoicePaid
	}

	name := inv.Contact.SepaIbanAccountName
	if name == "" {
		name = inv.Contact.CompanyName
	}

	currency := inv.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	req := &model.PaymentRequest{
		BeneficiaryBic:  inv.Contact.SepaBic,
		BeneficiaryName: name,
		BeneficiaryIban: inv.Contact.SepaIban,
		CurrencyCode:    currency,
		Amount:          inv.TotalPriceInclTaxBase,
		RemittanceText:  "Invoice " + inv.Reference,
	}

	if err := validate.Struct(req); err != nil {
		return nil, errors.Wrap(err, "incomplete payment request")
	}

	log.Debugf("normalized invoice %s into payment request for %s", inv.Reference, req.BeneficiaryIban)

	return req, nil
}
