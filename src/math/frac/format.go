package frac

import "fmt"

// String renders the fraction as "W N/D" when a whole part is present and
// "N/D" otherwise. No reduction is applied; simplify first for canonical
// output.
func (f Frac) String() string {
	if f.Whole != 0 {
		return fmt.Sprintf("%d %d/%d", f.Whole, f.Num, f.Den)
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}
