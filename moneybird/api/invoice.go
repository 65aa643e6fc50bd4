package api

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/birdpay/go-moneybird-epcqr/moneybird"
	"github.com/birdpay/go-moneybird-epcqr/moneybird/model"
)

type InvoiceService interface {
	PurchaseInvoice(ctx context.Context, administrationID, documentID, token string) (*model.PurchaseInvoice, error)
}

type invoice struct {
	client Client
}

func NewInvoiceService(client Client) InvoiceService {
	return &invoice{client: client}
}

// PurchaseInvoice retrieves a single purchase invoice for the given
// administration, authenticated with the administration's bearer token.
func (i *invoice) PurchaseInvoice(ctx context.Context, administrationID, documentID, token string) (*model.PurchaseInvoice, error) {

	log.Debugf("fetching purchase invoice %s for administration %s", documentID, administrationID)

	res := &model.PurchaseInvoice{}
	endpoint := fmt.Sprintf("/%s/%s/documents/purchase_invoices/%s", moneybird.APIVersion, administrationID, documentID)

	err := i.client.GetJson(ctx, endpoint, token, res)
	if err != nil {
		return nil, err
	}

	return res, nil
}
