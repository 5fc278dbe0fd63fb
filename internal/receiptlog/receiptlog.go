// Package receiptlog appends completed receipts to a JSON-lines audit file.
package receiptlog

import (
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/minimart/checkout/internal/domain/order"
)

const dateLayout = "2006-01-02"

// Log is an append-only receipt sink. One JSON object per line.
type Log struct {
	f *os.File
}

// Open opens (or creates) the log file for appending.
func Open(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open receipt log")
	}
	return &Log{f: f}, nil
}

// Append encodes the receipt and writes it as one line.
func (l *Log) Append(r *order.Receipt) error {
	var e jx.Encoder
	encodeReceipt(&e, r)

	if _, err := l.f.Write(append(e.Bytes(), '\n')); err != nil {
		return errors.Wrap(err, "write receipt")
	}
	return nil
}

// Close flushes and closes the underlying file.
func (l *Log) Close() error {
	return l.f.Close()
}

func encodeReceipt(e *jx.Encoder, r *order.Receipt) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(r.ID)
	e.FieldStart("date")
	e.Str(r.Date.Format(dateLayout))

	e.FieldStart("lines")
	e.ArrStart()
	for _, line := range r.Lines {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(line.Name)
		e.FieldStart("quantity")
		e.Int(line.Quantity)
		e.FieldStart("total")
		e.Str(line.Total.String())
		e.ObjEnd()
	}
	e.ArrEnd()

	e.FieldStart("free")
	e.ArrStart()
	for _, free := range r.Free {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(free.Name)
		e.FieldStart("quantity")
		e.Int(free.Quantity)
		e.ObjEnd()
	}
	e.ArrEnd()

	e.FieldStart("total_quantity")
	e.Int(r.TotalQuantity)
	e.FieldStart("total")
	e.Str(r.Total.String())
	e.FieldStart("promotion_discount")
	e.Str(r.PromotionDiscount.String())
	e.FieldStart("membership_discount")
	e.Str(r.MembershipDiscount.String())
	e.FieldStart("final_total")
	e.Str(r.FinalTotal().String())
	e.ObjEnd()
}
