package block

// Map transforms the output of b with fn. Failures of b or fn propagate.
func Map[In, Out, T any](b Block[In, Out], fn func(Out) (T, error)) Block[In, T] {
	return derive(b, func(input In) (T, error) {
		out, err := b.Call(input)
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(out)
	})
}

// MapInput transforms the output of b with fn, which also receives the input
// b was called with. Use it to normalize an output by some property of the input.
func MapInput[In, Out, T any](b Block[In, Out], fn func(In, Out) (T, error)) Block[In, T] {
	return derive(b, func(input In) (T, error) {
		out, err := b.Call(input)
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(input, out)
	})
}

// Optional wraps the output of b as a possibly absent value. The output is
// always present; use it to feed blocks expecting optional outputs.
func Optional[In, Out any](b Block[In, Out]) Block[In, *Out] {
	return derive(b, func(input In) (*Out, error) {
		out, err := b.Call(input)
		if err != nil {
			return nil, err
		}
		return &out, nil
	})
}

// Unwrap produces def() whenever b produces an absent value.
func Unwrap[In, T any](b Block[In, *T], def func() T) Block[In, T] {
	return derive(b, func(input In) (T, error) {
		out, err := b.Call(input)
		if err != nil {
			var zero T
			return zero, err
		}
		if out == nil {
			return def(), nil
		}
		return *out, nil
	})
}

// Pair associates an input with the output it produced.
type Pair[In, Out any] struct {
	Input  In
	Output Out
}

// ForEach lifts b over a sequence of inputs, executed in order. The first
// failure aborts the whole sequence.
func ForEach[In, Out any](b Block[In, Out]) Block[[]In, []Pair[In, Out]] {
	return Block[[]In, []Pair[In, Out]]{
		label: b.label,
		tag:   b.tag,
		run: func(inputs []In) ([]Pair[In, Out], error) {
			pairs := make([]Pair[In, Out], 0, len(inputs))
			for _, input := range inputs {
				out, err := b.Call(input)
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, Pair[In, Out]{Input: input, Output: out})
			}
			return pairs, nil
		},
	}
}
