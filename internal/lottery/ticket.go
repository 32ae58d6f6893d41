// Package lottery draws unique ticket numbers from a bounded range.
package lottery

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/tartampluch/go-greeter/internal/config"
)

// Validation failures. QuantityError also matches ErrQuantityTooLarge.
var (
	ErrMinOutOfRange    = errors.New(config.ErrMinOutOfRange)
	ErrMaxOutOfRange    = errors.New(config.ErrMaxOutOfRange)
	ErrEqualBounds      = errors.New(config.ErrEqualBounds)
	ErrInvertedBounds   = errors.New(config.ErrInvertedBounds)
	ErrNegativeQuantity = errors.New(config.ErrNegativeQuantity)
	ErrQuantityTooLarge = errors.New(config.ErrQuantityTooLarge)
)

// QuantityError is returned when more unique numbers are requested than the range holds.
type QuantityError struct {
	Requested int
	Available int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("%s: requested %d, range holds %d", config.ErrQuantityTooLarge, e.Requested, e.Available)
}

func (e *QuantityError) Is(target error) bool {
	return target == ErrQuantityTooLarge
}

// Drawer draws tickets inside the inclusive bounds [Min, Max].
type Drawer struct {
	Min  int        // Lowest number a caller may ask for.
	Max  int        // Highest number a caller may ask for.
	Rand *rand.Rand // Source of randomness; nil uses a runtime-seeded PCG.
}

// NewDrawer returns a Drawer with the default 1..1000 bounds.
func NewDrawer(rng *rand.Rand) *Drawer {
	return &Drawer{
		Min:  config.DefaultTicketMin,
		Max:  config.DefaultTicketMax,
		Rand: rng,
	}
}

// Draw returns quantity distinct numbers from [min, max], sorted ascending.
func Draw(rng *rand.Rand, min, max, quantity int) ([]int, error) {
	return NewDrawer(rng).Draw(min, max, quantity)
}

// Draw returns quantity distinct numbers from [min, max], sorted ascending.
// The requested range must lie within the drawer's bounds.
func (d *Drawer) Draw(min, max, quantity int) ([]int, error) {
	if err := d.validate(min, max, quantity); err != nil {
		return nil, err
	}

	rng := d.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	// Partial Fisher-Yates over the candidate range: the first 'quantity'
	// slots end up holding a uniform sample without replacement.
	pool := make([]int, max-min+1)
	for i := range pool {
		pool[i] = min + i
	}
	for i := 0; i < quantity; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	picked := slices.Clone(pool[:quantity])
	slices.Sort(picked)

	slog.Debug(config.MsgTicketDrawn,
		config.LogKeyComponent, config.CompLottery,
		config.LogKeyMin, min,
		config.LogKeyMax, max,
		config.LogKeyQuantity, quantity)

	return picked, nil
}

func (d *Drawer) validate(min, max, quantity int) error {
	switch {
	case min < d.Min:
		return fmt.Errorf("%w %d", ErrMinOutOfRange, d.Min)
	case max > d.Max:
		return fmt.Errorf("%w %d", ErrMaxOutOfRange, d.Max)
	case min == max:
		return ErrEqualBounds
	case min > max:
		return ErrInvertedBounds
	case quantity < 0:
		return ErrNegativeQuantity
	}

	if available := max - min + 1; available < quantity {
		return &QuantityError{Requested: quantity, Available: available}
	}
	return nil
}
