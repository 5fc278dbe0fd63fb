package app

import (
	"context"
	"io"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/minimart/checkout/internal/console"
	"github.com/minimart/checkout/internal/domain/catalog"
	"github.com/minimart/checkout/internal/domain/order"
	"github.com/minimart/checkout/internal/receiptlog"
)

// Session runs consecutive orders against one catalog. Stock consumed by a
// completed order stays consumed for the rest of the session.
type Session struct {
	catalog  *catalog.Catalog
	view     *console.View
	log      *receiptlog.Log
	now      func() time.Time
	pipeline *order.Pipeline
}

// NewSession builds a session with the pipeline's confirmation hooks bound
// to the interactive view. log may be nil.
func NewSession(cat *catalog.Catalog, view *console.View, log *receiptlog.Log, now func() time.Time) *Session {
	return &Session{
		catalog: cat,
		view:    view,
		log:     log,
		now:     now,
		pipeline: order.NewPipeline(order.Confirmers{
			FreeItems:  view.ConfirmFreeItems,
			FullPrice:  view.ConfirmFullPrice,
			Membership: view.ConfirmMembership,
		}),
	}
}

// Run processes orders until the operator declines another one or input
// ends. User-shaped errors re-prompt for a fresh order; anything else is
// fatal for the session.
func (s *Session) Run(ctx context.Context) error {
	lg := zctx.From(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.view.ShowCatalog(s.catalog)

		receipt, err := s.oneOrder(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				lg.Info("input closed, ending session")
				return nil
			}
			return err
		}

		s.view.ShowReceipt(receipt)
		lg.Info("order completed",
			zap.String("receipt_id", receipt.ID),
			zap.Int("total_quantity", receipt.TotalQuantity),
			zap.String("amount_due", receipt.FinalTotal().String()),
		)

		if s.log != nil {
			if err := s.log.Append(receipt); err != nil {
				return errors.Wrap(err, "append receipt log")
			}
		}

		if !s.view.ConfirmAnotherOrder() {
			return nil
		}
	}
}

// oneOrder reads, validates, and processes a single order, re-prompting
// while the failure is user-recoverable. An aborted order never touches
// catalog stock, so retrying starts from a clean slate.
func (s *Session) oneOrder(ctx context.Context) (*order.Receipt, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		items, err := s.view.ReadOrder()
		if err != nil {
			if order.IsUserError(err) {
				s.view.ShowError(err)
				continue
			}
			return nil, err
		}

		octx, err := order.NewContext(s.now(), items, s.catalog)
		if err == nil {
			err = s.pipeline.Run(octx)
		}
		if err != nil {
			if order.IsUserError(err) {
				s.view.ShowError(err)
				continue
			}
			return nil, err
		}
		return octx.Receipt(), nil
	}
}
