package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/birdpay/go-moneybird-epcqr/moneybird"
	"github.com/birdpay/go-moneybird-epcqr/moneybird/api"
	"github.com/birdpay/go-moneybird-epcqr/moneybird/config"
	"github.com/birdpay/go-moneybird-epcqr/moneybird/credential"
	"github.com/birdpay/go-moneybird-epcqr/moneybird/scan"
	"github.com/birdpay/go-moneybird-epcqr/moneybird/util"
	"github.com/birdpay/go-moneybird-epcqr/png"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	if level, err := log.ParseLevel(cfg.Logger.Level); err == nil {
		log.SetLevel(level)
	}
	if util.DebugEnabled() {
		log.SetLevel(log.DebugLevel)
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go-moneybird-epcqr /{administrationId}/documents/{documentId}")
		os.Exit(2)
	}
	path := os.Args[1]

	_, documentID, ok := scan.MatchInvoicePath(path)
	if !ok {
		log.Fatalf("%s is not a purchase invoice path", path)
	}

	httpClient := &http.Client{
		Timeout: cfg.API.Timeout,
	}

	store := credential.NewStore(credential.NewFileSource(cfg.Scan.CredentialsFile))
	invoices := api.NewInvoiceService(api.NewWithHTTPClient(moneybird.Environment(cfg.API.BaseURL), httpClient))

	out := filepath.Join(cfg.Scan.OutputDir, documentID+".png")

	scanner := scan.NewScanner(store, invoices, png.Qr, func(image []byte) error {
		log.Infof("writing EPC QR code to %s", out)
		return os.WriteFile(out, image, 0644)
	})

	ctx := context.Background()

	if err := scanner.Run(ctx, path); err != nil && !cfg.Scan.Watch {
		os.Exit(1)
	}

	if cfg.Scan.Watch {
		log.Infof("watching %s, rescanning on change", cfg.Scan.CredentialsFile)
		err := scan.Watch(ctx, cfg.Scan.CredentialsFile, cfg.Scan.WatchDebounce, func() {
			_ = scanner.Run(context.Background(), path)
		})
		if err != nil {
			log.Fatalf("credential watch stopped: %v", err)
		}
	}
}
