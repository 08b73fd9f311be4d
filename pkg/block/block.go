// Package block provides Block, the composable unit of work every benchmark
// is built from, and the combinators that derive new blocks from existing ones.
//
// Blocks are immutable values. Every combinator returns a new Block wrapping
// the source by value, so a Block can be shared and reused freely.
package block

import "errors"

// ErrEmptyBlock is returned when calling a Block that has no function.
var ErrEmptyBlock = errors.New("block has no function")

// Void is the input type of blocks that take no input.
type Void = struct{}

// Tag is an opaque marker attached to a Block. The empty Tag means untagged.
type Tag string

// Baseline marks the reference case of a study.
const Baseline Tag = "Baseline"

// Block is a labeled, optionally tagged, function from In to Out that may fail.
type Block[In, Out any] struct {
	label string
	tag   Tag
	run   func(In) (Out, error)
}

// New returns a Block running fn.
func New[In, Out any](label string, fn func(In) (Out, error)) Block[In, Out] {
	return Block[In, Out]{label: label, run: fn}
}

// Always returns a Block that ignores its input and always produces value.
func Always[In, Out any](label string, value Out) Block[In, Out] {
	return New(label, func(In) (Out, error) {
		return value, nil
	})
}

// Label returns the name of the block.
func (b Block[In, Out]) Label() string { return b.label }

// Tag returns the tag of the block.
func (b Block[In, Out]) Tag() Tag { return b.tag }

// WithLabel returns a copy of b with the given label.
func (b Block[In, Out]) WithLabel(label string) Block[In, Out] {
	b.label = label
	return b
}

// WithTag returns a copy of b with the given tag.
func (b Block[In, Out]) WithTag(tag Tag) Block[In, Out] {
	b.tag = tag
	return b
}

// Call runs the block with input.
func (b Block[In, Out]) Call(input In) (Out, error) {
	if b.run == nil {
		var zero Out
		return zero, ErrEmptyBlock
	}
	return b.run(input)
}

// Result labels the output of one block execution.
type Result[T any] struct {
	Label  string
	Tag    Tag
	Result T
}

// Labeled wraps the output of b in a Result carrying b's label and tag.
func Labeled[In, Out any](b Block[In, Out]) Block[In, Result[Out]] {
	return derive(b, func(input In) (Result[Out], error) {
		out, err := b.Call(input)
		if err != nil {
			return Result[Out]{}, err
		}
		return Result[Out]{Label: b.label, Tag: b.tag, Result: out}, nil
	})
}

// derive builds a Block that keeps the label and tag of src.
func derive[In, Out, T any](src Block[In, Out], fn func(In) (T, error)) Block[In, T] {
	return Block[In, T]{label: src.label, tag: src.tag, run: fn}
}
