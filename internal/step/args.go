package step

// Pair is a command-line flag and its value. A Pair whose value is unset is
// dropped when flattened instead of being passed empty.
type Pair struct {
	Flag  string
	Value *string
}

// Present reports whether the pair will be emitted.
func (p Pair) Present() bool {
	return p.Value != nil
}

// Flag returns a pair that is always emitted.
func Flag(flag, value string) Pair {
	return Pair{Flag: flag, Value: &value}
}

// OptionalFlag returns a pair emitted only when value is set.
func OptionalFlag(flag string, value *string) Pair {
	return Pair{Flag: flag, Value: value}
}

// Pairs is an ordered list of flags.
type Pairs []Pair

// Flatten renders the present pairs as flag, value, flag, value... keeping
// their order.
func (ps Pairs) Flatten() []string {
	out := make([]string, 0, 2*len(ps))
	for _, p := range ps {
		if !p.Present() {
			continue
		}
		out = append(out, p.Flag, *p.Value)
	}
	return out
}
