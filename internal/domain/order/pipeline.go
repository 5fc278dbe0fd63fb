package order

// ItemConfirm asks the operator a yes/no question about a product and a
// quantity. Implementations may retry internally on malformed answers; the
// pipeline treats the returned value as final.
type ItemConfirm func(name string, quantity int) bool

// Confirm asks the operator a single global yes/no question.
type Confirm func() bool

// Stage is one step of the checkout pipeline. Stages mutate the context in
// place; returning an error aborts the run with no later stage executed.
type Stage func(*Context) error

// Confirmers bundles the interactive confirmation hooks the stages need.
type Confirmers struct {
	// FreeItems asks whether to add free promotional units to the order.
	FreeItems ItemConfirm
	// FullPrice asks whether to buy units the promotion cannot cover at
	// the normal price.
	FullPrice ItemConfirm
	// Membership asks once per order whether to apply the membership
	// discount.
	Membership Confirm
}

// Pipeline is the fixed stage sequence for one order. The order is load
// bearing: quantities are only final after both confirmation stages, and no
// stock is committed before that point.
type Pipeline struct {
	stages []Stage
}

// NewPipeline assembles the standard checkout pipeline.
func NewPipeline(c Confirmers) *Pipeline {
	return &Pipeline{stages: []Stage{
		ValidateStock,
		OfferPromotionalItems(c.FreeItems),
		ResolvePromotionalShortfall(c.FullPrice),
		ApplyMembership(c.Membership),
		ReduceInventory,
		BuildReceipt,
	}}
}

// Run executes every stage in order against the context. On error the
// context is abandoned; catalog stock is only mutated once all confirmation
// stages have completed, so an aborted order leaves the catalog untouched.
func (p *Pipeline) Run(octx *Context) error {
	for _, stage := range p.stages {
		if err := stage(octx); err != nil {
			return err
		}
	}
	return nil
}
