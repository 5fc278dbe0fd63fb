package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/minimart/checkout/internal/domain/catalog"
	"github.com/minimart/checkout/internal/domain/order"
)

// View drives the operator terminal: it renders the catalog and receipts and
// asks the pipeline's confirmation questions. Malformed answers are retried
// here, so the checkout core always receives a final yes or no.
type View struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewView creates a View reading answers from in and writing to out.
func NewView(in io.Reader, out io.Writer) *View {
	return &View{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ReadOrder prompts for and parses one order line.
func (v *View) ReadOrder() ([]order.Item, error) {
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, "Enter the products and quantities to buy (e.g. [cola-2],[chips-1]).")
	line, err := v.readLine()
	if err != nil {
		return nil, err
	}
	return ParseOrder(line)
}

// ConfirmFreeItems asks whether to add free promotional units.
func (v *View) ConfirmFreeItems(name string, quantity int) bool {
	return v.confirm(fmt.Sprintf(
		"%s qualifies for %d more free unit(s). Add them? (Y/N)", name, quantity))
}

// ConfirmFullPrice asks whether to buy promotion-uncovered units anyway.
func (v *View) ConfirmFullPrice(name string, quantity int) bool {
	return v.confirm(fmt.Sprintf(
		"%d unit(s) of %s are not covered by the promotion. Buy them at full price? (Y/N)",
		quantity, name))
}

// ConfirmMembership asks the single per-order membership question.
func (v *View) ConfirmMembership() bool {
	return v.confirm("Apply the membership discount? (Y/N)")
}

// ConfirmAnotherOrder asks whether to start another order.
func (v *View) ConfirmAnotherOrder() bool {
	return v.confirm("Thank you. Would you like to order anything else? (Y/N)")
}

// confirm prompts until it gets a parseable Y/N answer. A closed input
// stream counts as no.
func (v *View) confirm(prompt string) bool {
	for {
		fmt.Fprintln(v.out)
		fmt.Fprintln(v.out, prompt)
		line, err := v.readLine()
		if err != nil {
			return false
		}
		answer, err := ParseYesNo(line)
		if err != nil {
			v.ShowError(err)
			continue
		}
		return answer
	}
}

// ShowCatalog prints the stock listing, one line per pool, promotional
// batches first the way the source files list them.
func (v *View) ShowCatalog(c *catalog.Catalog) {
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, "Welcome to Minimart. Here is what we have in stock:")
	fmt.Fprintln(v.out)
	for _, p := range c.Products() {
		if p.Promo != nil {
			fmt.Fprintf(v.out, "- %s %s %s %s\n",
				p.Name, FormatMoney(p.Promo.Price), stockLabel(p.Promo.Quantity), p.Promotion.Name)
		}
		if p.Normal != nil {
			fmt.Fprintf(v.out, "- %s %s %s\n",
				p.Name, FormatMoney(p.Normal.Price), stockLabel(p.Normal.Quantity))
		}
	}
}

// ShowReceipt prints the final bill.
func (v *View) ShowReceipt(r *order.Receipt) {
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, "==============W Minimart==============")
	fmt.Fprintf(v.out, "%-20s %5s %10s\n", "Product", "Qty", "Price")
	for _, line := range r.Lines {
		fmt.Fprintf(v.out, "%-20s %5d %10s\n", line.Name, line.Quantity, FormatMoney(line.Total))
	}
	if len(r.Free) > 0 {
		fmt.Fprintln(v.out, "==============Free Items==============")
		for _, free := range r.Free {
			fmt.Fprintf(v.out, "%-20s %5d\n", free.Name, free.Quantity)
		}
	}
	fmt.Fprintln(v.out, "======================================")
	fmt.Fprintf(v.out, "%-20s %5d %10s\n", "Total", r.TotalQuantity, FormatMoney(r.Total))
	fmt.Fprintf(v.out, "%-20s %16s\n", "Promotion discount", "-"+FormatMoney(r.PromotionDiscount))
	fmt.Fprintf(v.out, "%-20s %16s\n", "Membership discount", "-"+FormatMoney(r.MembershipDiscount))
	fmt.Fprintf(v.out, "%-20s %16s\n", "Amount due", FormatMoney(r.FinalTotal()))
}

// ShowError reports a recoverable problem to the operator.
func (v *View) ShowError(err error) {
	fmt.Fprintf(v.out, "[ERROR] %s. Please try again.\n", err)
}

func (v *View) readLine() (string, error) {
	if !v.in.Scan() {
		if err := v.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(v.in.Text()), nil
}

func stockLabel(quantity int) string {
	if quantity == 0 {
		return "out of stock"
	}
	return fmt.Sprintf("%d in stock", quantity)
}

// FormatMoney renders a whole-number amount with thousands separators.
func FormatMoney(d decimal.Decimal) string {
	s := d.Truncate(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
