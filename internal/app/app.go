// Package app wires the store together: configuration, catalog loading, the
// interactive view, the receipt log, and the per-order checkout session.
package app

import (
	"context"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/minimart/checkout/internal/console"
	"github.com/minimart/checkout/internal/domain/catalog"
	"github.com/minimart/checkout/internal/loader"
	"github.com/minimart/checkout/internal/receiptlog"
)

// Run builds all dependencies and runs checkout sessions until the operator
// is done. It is the single wiring point of the application.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config) error {
	ctx = zctx.Base(ctx, lg)

	now, err := cfg.clock()
	if err != nil {
		return err
	}

	rows, promos, err := loader.Load(ctx, cfg.ProductsFile, cfg.PromotionsFile)
	if err != nil {
		return errors.Wrap(err, "load definitions")
	}

	cat, err := catalog.New(rows, promos)
	if err != nil {
		return errors.Wrap(err, "build catalog")
	}
	lg.Info("catalog ready",
		zap.Int("products", cat.Len()),
		zap.Int("promotions", len(promos)),
	)

	var rlog *receiptlog.Log
	if cfg.ReceiptLog != "" {
		rlog, err = receiptlog.Open(cfg.ReceiptLog)
		if err != nil {
			return err
		}
		defer func() { _ = rlog.Close() }()
	}

	view := console.NewView(os.Stdin, os.Stdout)
	session := NewSession(cat, view, rlog, now)
	return session.Run(ctx)
}
