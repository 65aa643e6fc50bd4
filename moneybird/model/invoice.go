package model

// PurchaseInvoice is the raw record returned by the purchase-invoice
// endpoint. Only the payment-relevant fields are mapped; the API returns
// many more, which are ignored on decode.
type PurchaseInvoice struct {
	ID                    string  `json:"id"`
	Reference             string  `json:"reference"`
	State                 string  `json:"state"`
	Currency              string  `json:"currency"`
	TotalPriceInclTaxBase string  `json:"total_price_incl_tax_base"`
	Contact               Contact `json:"contact"`
}

// Contact is the invoice's counterparty sub-record. The sepa_* fields are
// optional in the API and may come back empty.
type Contact struct {
	CompanyName         string `json:"company_name"`
	SepaIban            string `json:"sepa_iban"`
	SepaBic             string `json:"sepa_bic"`
	SepaIbanAccountName string `json:"sepa_iban_account_name"`
}

// StatePaid marks an invoice that has already been settled; such invoices
// never get a payment payload.
const StatePaid = "paid"

// PaymentRequest is the normalized payment-request shape fed to the EPC
// payload builder. Immutable once built. BeneficiaryBic may be empty;
// the required fields are enforced during normalization.
type PaymentRequest struct {
	BeneficiaryBic  string
	BeneficiaryName string `validate:"required"`
	BeneficiaryIban string `validate:"required"`
	CurrencyCode    string `validate:"required,len=3"`
	Amount          string
	RemittanceText  string
}
