// Package console implements the interactive boundary of the store: order
// text parsing, yes/no prompts with built-in retry, and catalog and receipt
// rendering. The checkout core never touches raw input itself.
package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minimart/checkout/internal/domain/order"
)

const (
	itemOpen      = "["
	itemClose     = "]"
	itemSeparator = ","
	quantitySep   = "-"
)

// ParseError indicates order text that does not match the
// [name-quantity],[name-quantity] grammar. It is user-recoverable.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid order input %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == order.ErrValidation
}

// ParseOrder parses free-form order text such as "[cola-3],[chips-1]" into
// request items. Quantities must parse as integers; names may themselves
// contain hyphens, so the quantity is taken after the last one.
func ParseOrder(input string) ([]order.Item, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, &ParseError{Input: input, Reason: "empty order"}
	}

	parts := strings.Split(trimmed, itemSeparator)
	items := make([]order.Item, 0, len(parts))
	for _, part := range parts {
		item, err := parseItem(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func parseItem(part string) (order.Item, error) {
	if !strings.HasPrefix(part, itemOpen) || !strings.HasSuffix(part, itemClose) {
		return order.Item{}, &ParseError{Input: part, Reason: "items must be wrapped in brackets"}
	}

	body := part[len(itemOpen) : len(part)-len(itemClose)]
	sep := strings.LastIndex(body, quantitySep)
	if sep <= 0 || sep == len(body)-1 {
		return order.Item{}, &ParseError{Input: part, Reason: "expected name-quantity"}
	}

	name := strings.TrimSpace(body[:sep])
	quantity, err := strconv.Atoi(strings.TrimSpace(body[sep+1:]))
	if err != nil {
		return order.Item{}, &ParseError{Input: part, Reason: "quantity is not a number"}
	}
	if name == "" {
		return order.Item{}, &ParseError{Input: part, Reason: "product name is empty"}
	}
	return order.Item{Name: name, Quantity: quantity}, nil
}

// ParseYesNo parses a strict Y/N answer. Only uppercase Y and N are
// accepted after trimming surrounding whitespace.
func ParseYesNo(input string) (bool, error) {
	switch strings.TrimSpace(input) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, &ParseError{Input: input, Reason: "answer must be Y or N"}
	}
}
