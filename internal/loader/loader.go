// Package loader reads the delimited catalog and promotion definition files.
// Files are comma-separated with a header row; fields are trimmed and must
// be non-blank. Files ending in .gz are decompressed transparently.
package loader

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/minimart/checkout/internal/domain/catalog"
)

const (
	delimiter = ","
	// noPromotion marks a regular stock row in the products file.
	noPromotion = "null"
	dateLayout  = "2006-01-02"
)

// Sentinel errors for malformed definition files.
var (
	ErrEmptyFile  = errors.New("definition file has no data rows")
	ErrBlankField = errors.New("blank field in definition file")
)

// Load reads both definition files concurrently and returns the raw catalog
// rows and promotions. Any malformed line is a construction error; no order
// processing can proceed without a valid catalog.
func Load(ctx context.Context, productsPath, promotionsPath string) ([]catalog.Row, []*catalog.Promotion, error) {
	var (
		rows   []catalog.Row
		promos []*catalog.Promotion
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows, err = LoadProducts(ctx, productsPath)
		return err
	})
	g.Go(func() (err error) {
		promos, err = LoadPromotions(ctx, promotionsPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	zctx.From(ctx).Info("definitions loaded",
		zap.Int("product_rows", len(rows)),
		zap.Int("promotions", len(promos)),
	)
	return rows, promos, nil
}

// LoadProducts reads catalog rows: name,price,quantity,promotion. The
// promotion field holds the literal "null" for regular stock.
func LoadProducts(ctx context.Context, path string) ([]catalog.Row, error) {
	var rows []catalog.Row
	err := eachRecord(ctx, path, 4, func(fields []string) error {
		price, err := decimal.NewFromString(fields[1])
		if err != nil {
			return errors.Wrapf(err, "price of %s", fields[0])
		}
		quantity, err := strconv.Atoi(fields[2])
		if err != nil {
			return errors.Wrapf(err, "quantity of %s", fields[0])
		}

		promotion := fields[3]
		if strings.EqualFold(promotion, noPromotion) {
			promotion = ""
		}
		rows = append(rows, catalog.Row{
			Name:      fields[0],
			Price:     price,
			Quantity:  quantity,
			Promotion: promotion,
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "load products from %s", path)
	}
	return rows, nil
}

// LoadPromotions reads promotion rows: name,buy,get,start,end with dates in
// 2006-01-02 form.
func LoadPromotions(ctx context.Context, path string) ([]*catalog.Promotion, error) {
	var promos []*catalog.Promotion
	err := eachRecord(ctx, path, 5, func(fields []string) error {
		buy, err := strconv.Atoi(fields[1])
		if err != nil {
			return errors.Wrapf(err, "buy quantity of %s", fields[0])
		}
		get, err := strconv.Atoi(fields[2])
		if err != nil {
			return errors.Wrapf(err, "get quantity of %s", fields[0])
		}
		starts, err := time.Parse(dateLayout, fields[3])
		if err != nil {
			return errors.Wrapf(err, "start date of %s", fields[0])
		}
		ends, err := time.Parse(dateLayout, fields[4])
		if err != nil {
			return errors.Wrapf(err, "end date of %s", fields[0])
		}

		promo, err := catalog.NewPromotion(fields[0], buy, get, starts, ends)
		if err != nil {
			return err
		}
		promos = append(promos, promo)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "load promotions from %s", path)
	}
	return promos, nil
}

// eachRecord streams the file line by line, skips the header, splits on the
// delimiter, validates the field count and blankness, and hands the trimmed
// fields to fn.
func eachRecord(ctx context.Context, path string, fieldCount int, fn func(fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open")
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return errors.Wrap(err, "create gzip reader")
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	scanner := bufio.NewScanner(r)
	line := 0
	records := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		if line == 1 {
			continue // header
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			return errors.Wrapf(ErrBlankField, "line %d is empty", line)
		}

		fields := strings.Split(text, delimiter)
		if len(fields) != fieldCount {
			return errors.Errorf("line %d: expected %d fields, got %d", line, fieldCount, len(fields))
		}
		for i, field := range fields {
			fields[i] = strings.TrimSpace(field)
			if fields[i] == "" {
				return errors.Wrapf(ErrBlankField, "line %d field %d", line, i+1)
			}
		}

		if err := fn(fields); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		records++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "scan")
	}
	if records == 0 {
		return ErrEmptyFile
	}
	return nil
}
