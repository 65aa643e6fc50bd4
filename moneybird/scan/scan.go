// Package scan wires credential resolution, invoice retrieval,
// normalization and payload building into a single best-effort pipeline.
// Every failure is terminal for the current run; nothing is retried.
package scan

import (
	"context"
	"regexp"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/birdpay/go-moneybird-epcqr/moneybird/api"
	"github.com/birdpay/go-moneybird-epcqr/moneybird/credential"
	"github.com/birdpay/go-moneybird-epcqr/moneybird/epc"
	"github.com/birdpay/go-moneybird-epcqr/moneybird/mutex"
	"github.com/birdpay/go-moneybird-epcqr/moneybird/payment"
)

var logger = logrus.WithField("component", "moneybird.scan")

var invoicePath = regexp.MustCompile(`^/(\d+)/documents/(\d+)$`)

// MatchInvoicePath reports whether a location path points at a single
// purchase invoice, and if so extracts the administration and document
// ids from its two numeric segments.
func MatchInvoicePath(path string) (administrationID, documentID string, ok bool) {
	m := invoicePath.FindStringSubmatch(path)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Encoder turns the finished payload into an image, typically a QR PNG.
type Encoder func(payload string) ([]byte, error)

// Publisher hands the encoded image to whatever displays it.
type Publisher func(image []byte) error

type Scanner struct {
	credentials *credential.Store
	invoices    api.InvoiceService
	encode      Encoder
	publish     Publisher

	locks mutex.KeyedMutex[string]
}

func NewScanner(credentials *credential.Store, invoices api.InvoiceService, encode Encoder, publish Publisher) *Scanner {
	return &Scanner{
		credentials: credentials,
		invoices:    invoices,
		encode:      encode,
		publish:     publish,
	}
}

// Run executes one scan for the given location path. A path that is not
// an invoice page and an invoice that is already paid are both silent
// no-ops; every other failure aborts the run with a log line and no
// output. Runs for the same path are serialized, so a double trigger
// cannot interleave two pipelines for one invoice.
func (s *Scanner) Run(ctx context.Context, path string) error {

	administrationID, documentID, ok := MatchInvoicePath(path)
	if !ok {
		return nil
	}

	s.locks.Lock(path)
	defer s.locks.Unlock(path)

	token, err := s.credentials.Resolve(ctx, administrationID)
	if err != nil {
		logger.Warnf("no usable API token for administration %s: %v", administrationID, err)
		return err
	}

	inv, err := s.invoices.PurchaseInvoice(ctx, administrationID, documentID, token)
	if err != nil {
		logger.Errorf("invoice %s/%s retrieval failed: %v", administrationID, documentID, err)
		return err
	}

	req, err := payment.Normalize(inv)
	if errors.Is(err, payment.ErrInvoicePaid) {
		logger.Debugf("invoice %s is already paid, nothing to do", documentID)
		return nil
	}
	if err != nil {
		logger.Warnf("invoice %s cannot be normalized: %v", documentID, err)
		return err
	}

	image, err := s.encode(epc.Build(req))
	if err != nil {
		logger.Errorf("payload encoding failed: %v", err)
		return errors.Wrap(err, "encode payload")
	}

	return s.publish(image)
}
