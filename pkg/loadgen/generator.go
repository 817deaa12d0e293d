// Package loadgen produces deterministic order-book workloads: seeded
// streams of add/amend/cancel/best operations over a bounded price grid.
// The same seed yields the same stream, so the efficient book and the
// naive baseline can be driven with identical input.
package loadgen

import (
	"math/rand"

	"github.com/nikolaydubina/fpdecimal"

	"github.com/tidefall/ladderbook/pkg/book"
)

// Kind is the operation kind of a generated Op.
type Kind int

// Operation kinds
const (
	OpAdd Kind = iota
	OpAmend
	OpCancel
	OpBest
)

// String returns kind as string
func (k Kind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpAmend:
		return "amend"
	case OpCancel:
		return "cancel"
	case OpBest:
		return "best"
	default:
		return "unknown"
	}
}

// Op is one generated operation. It carries plain values, not orders, so
// applying the same stream to two books never shares order pointers.
type Op struct {
	Kind     Kind
	ID       int64
	Side     book.Side
	Price    fpdecimal.Decimal
	Quantity fpdecimal.Decimal
}

// Generator emits a reproducible operation stream. It tracks which
// identifiers are still live so amends and cancels target real orders.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	nextID int64
	live   []int64
}

// NewGenerator creates a Generator for the given workload config.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Next returns the next operation in the stream.
func (g *Generator) Next() Op {
	r := g.rng.Float64()

	switch {
	case r < g.cfg.CancelRatio && len(g.live) > 0:
		return g.cancel()
	case r < g.cfg.CancelRatio+g.cfg.AmendRatio && len(g.live) > 0:
		return g.amend()
	case r < g.cfg.CancelRatio+g.cfg.AmendRatio+g.cfg.BestRatio:
		return g.best()
	default:
		return g.add()
	}
}

// Stream materializes cfg.Operations operations.
func (g *Generator) Stream() []Op {
	ops := make([]Op, g.cfg.Operations)
	for i := range ops {
		ops[i] = g.Next()
	}
	return ops
}

// Live returns how many generated orders have not been canceled yet.
func (g *Generator) Live() int {
	return len(g.live)
}

func (g *Generator) add() Op {
	g.nextID++
	id := g.nextID
	g.live = append(g.live, id)

	side := book.Bid
	if g.rng.Float64() < 0.5 {
		side = book.Ask
	}

	tick := g.rng.Intn(g.cfg.PriceLevels)
	price := fpdecimal.FromFloat(g.cfg.BasePrice + float64(tick)*g.cfg.PriceStep)

	return Op{
		Kind:     OpAdd,
		ID:       id,
		Side:     side,
		Price:    price,
		Quantity: g.quantity(),
	}
}

func (g *Generator) amend() Op {
	id := g.live[g.rng.Intn(len(g.live))]
	return Op{
		Kind:     OpAmend,
		ID:       id,
		Quantity: g.quantity(),
	}
}

func (g *Generator) cancel() Op {
	i := g.rng.Intn(len(g.live))
	id := g.live[i]
	g.live[i] = g.live[len(g.live)-1]
	g.live = g.live[:len(g.live)-1]
	return Op{
		Kind: OpCancel,
		ID:   id,
	}
}

func (g *Generator) best() Op {
	side := book.Bid
	if g.rng.Float64() < 0.5 {
		side = book.Ask
	}
	return Op{
		Kind: OpBest,
		Side: side,
	}
}

func (g *Generator) quantity() fpdecimal.Decimal {
	return fpdecimal.FromInt(1 + g.rng.Intn(g.cfg.MaxQuantity))
}

// Apply runs one operation against a book. Add errors other than duplicate
// rejection are returned; not-found amends and cancels are routine.
func Apply(k book.Keeper, op Op) error {
	switch op.Kind {
	case OpAdd:
		o, err := book.NewOrder(op.ID, op.Side, op.Quantity, op.Price)
		if err != nil {
			return err
		}
		return k.Add(o)
	case OpAmend:
		k.Amend(op.ID, op.Quantity)
	case OpCancel:
		k.Cancel(op.ID)
	case OpBest:
		k.Best(op.Side)
	}
	return nil
}
