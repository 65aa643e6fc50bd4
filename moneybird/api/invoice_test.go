package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birdpay/go-moneybird-epcqr/moneybird"
)

const invoiceBody = `{
	"id": "414048551976831475",
	"reference": "2024-001",
	"state": "open",
	"currency": "EUR",
	"total_price_incl_tax_base": "25.00",
	"contact": {
		"company_name": "Acme BV",
		"sepa_iban": "NL00BANK123",
		"sepa_bic": "ABCDEF12",
		"sepa_iban_account_name": "Acme Holding BV"
	}
}`

func TestPurchaseInvoice(t *testing.T) {

	var gotPath, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(invoiceBody))
	}))
	defer srv.Close()

	service := NewInvoiceService(New(moneybird.Environment(srv.URL)))

	inv, err := service.PurchaseInvoice(context.Background(), "123", "456", "secret-token")
	require.NoError(t, err)

	assert.Equal(t, "/v2/123/documents/purchase_invoices/456", gotPath)
	assert.Equal(t, "Bearer secret-token", gotAuth)

	assert.Equal(t, "2024-001", inv.Reference)
	assert.Equal(t, "open", inv.State)
	assert.Equal(t, "25.00", inv.TotalPriceInclTaxBase)
	assert.Equal(t, "NL00BANK123", inv.Contact.SepaIban)
	assert.Equal(t, "Acme Holding BV", inv.Contact.SepaIbanAccountName)
}

func TestPurchaseInvoice_NotFound(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer srv.Close()

	service := NewInvoiceService(New(moneybird.Environment(srv.URL)))

	_, err := service.PurchaseInvoice(context.Background(), "123", "456", "secret-token")
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
}

func TestPurchaseInvoice_UndecodableBody(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reference": `))
	}))
	defer srv.Close()

	service := NewInvoiceService(New(moneybird.Environment(srv.URL)))

	_, err := service.PurchaseInvoice(context.Background(), "123", "456", "secret-token")
	assert.Error(t, err)
}
