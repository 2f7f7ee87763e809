package wavedraw

import "fmt"

// DecodeError reports a cycle string that could not be decoded into a
// CycleState sequence. Position is the byte offset of the offending symbol
// and Symbol is the symbol itself. A repeat or break symbol with no
// preceding state in the same string fails with this error at its position.
type DecodeError struct {
	Position int
	Symbol   rune
}

func (e *DecodeError) Error() string {
	if e.Symbol == '.' || e.Symbol == '|' {
		return fmt.Sprintf("wavedraw: symbol %q at position %d has no previous state to extend", e.Symbol, e.Position)
	}
	return fmt.Sprintf("wavedraw: unknown cycle symbol %q at position %d", e.Symbol, e.Position)
}

// CapacityError reports a figure dimension that exceeds the numeric range
// the layout engine budgets for it. Quantity names the dimension ("line" or
// "cycle"), Count the observed value and Limit the largest representable one.
type CapacityError struct {
	Quantity string
	Count    int
	Limit    int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("wavedraw: %s count %d exceeds the layout capacity of %d", e.Quantity, e.Count, e.Limit)
}
