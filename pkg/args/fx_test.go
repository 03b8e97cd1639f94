// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package args_test

import (
	"errors"
	"iter"
	"math"
	"slices"

	"github.com/paramunit/paramunit/pkg/args"
)

// TestCase holds the static factory fixtures.  It is registered so its
// factories are invocable without a test instance.
type TestCase struct{}

func init() { args.Register(TestCase{}) }

// --- invalid ---------------------------------------------------------

func (TestCase) IllegalReturnType() any { return -1 }

var errFactoryBody = errors.New("factory body failed")

func (TestCase) Failing() (iter.Seq[string], error) {
	return nil, errFactoryBody
}

// --- push sequences --------------------------------------------------

func (TestCase) StringSeq() iter.Seq[string] {
	return slices.Values([]string{"foo", "bar"})
}

func (TestCase) Float64Seq() iter.Seq[float64] {
	return slices.Values([]float64{1.2, 3.4})
}

func (TestCase) Int64Seq() iter.Seq[int64] {
	return slices.Values([]int64{1, 2})
}

func (TestCase) IntSeq() iter.Seq[int] {
	return slices.Values([]int{1, 2})
}

func (TestCase) ArgumentsSeq() iter.Seq[args.Arguments] {
	return slices.Values([]args.Arguments{
		args.Of("foo"), args.Of("bar")})
}

func (TestCase) MixedSeq() iter.Seq[any] {
	return slices.Values([]any{
		[]any{"foo", 42}, "bar", args.Of("baz", 23)})
}

// --- channels --------------------------------------------------------

func (TestCase) StringChan() <-chan string {
	ch := make(chan string, 2)
	ch <- "foo"
	ch <- "bar"
	close(ch)
	return ch
}

func (TestCase) IntChan() chan int {
	ch := make(chan int, 2)
	ch <- 1
	ch <- 2
	close(ch)
	return ch
}

// --- iterator --------------------------------------------------------

// sliceIterator implements args.Iterator over a fixed element slice.
type sliceIterator struct {
	elements []any
	next     int
}

func (i *sliceIterator) Next() (any, bool) {
	if i.next >= len(i.elements) {
		return nil, false
	}
	element := i.elements[i.next]
	i.next++
	return element, true
}

func (TestCase) StringIterator() args.Iterator {
	return &sliceIterator{elements: []any{"foo", "bar"}}
}

// --- ready-made rows -------------------------------------------------

func (TestCase) ArgumentsSlice() []args.Arguments {
	return []args.Arguments{args.Of("foo", 42), args.Of("bar", 23)}
}

func (TestCase) RowSlice() [][]any {
	return [][]any{{42, "bar"}, {"foo", 'A'}}
}

// --- object slices ---------------------------------------------------

func (TestCase) AnySlice() []any { return []any{42, "bar"} }

func (TestCase) StringSlice() []string { return []string{"foo", "bar"} }

// --- scalar slices ---------------------------------------------------

func (TestCase) BoolSlice() []bool { return []bool{true, false} }

func (TestCase) Int8Slice() []int8 { return []int8{1, math.MinInt8} }

func (TestCase) ByteSlice() []byte { return []byte{1, math.MaxUint8} }

func (TestCase) RuneSlice() []rune { return []rune{1, 'A'} }

func (TestCase) Int16Slice() []int16 {
	return []int16{47, math.MinInt16}
}

func (TestCase) IntSlice() []int { return []int{47, math.MinInt} }

func (TestCase) Int64Slice() []int64 {
	return []int64{47, math.MinInt64}
}

func (TestCase) Float32Slice() []float32 {
	return []float32{1, math.SmallestNonzeroFloat32}
}

func (TestCase) Float64Slice() []float64 {
	return []float64{1, math.SmallestNonzeroFloat64}
}

// NonStaticCase is deliberately not registered: its factory is only
// invocable bound to a live instance.
type NonStaticCase struct {
	prefix string
}

func (c *NonStaticCase) Rows() iter.Seq[string] {
	return slices.Values([]string{c.prefix + "foo", c.prefix + "bar"})
}

// DefaultNameCase exercises the default factory reference derivation:
// the factory method's name equals the test method's name.
type DefaultNameCase struct{}

func init() { args.Register(DefaultNameCase{}) }

func (DefaultNameCase) TestStrings() iter.Seq[string] {
	return slices.Values([]string{"foo", "bar"})
}

// ExternalFactories holds factories referenced with an explicit
// qualified type name.
type ExternalFactories struct{}

func init() {
	args.Register(ExternalFactories{})
	args.RegisterAs(
		args.TypeName(ExternalFactories{})+"$Nested", nestedFactories{})
}

func (ExternalFactories) Strings() iter.Seq[string] {
	return slices.Values([]string{"string1", "string2"})
}

type nestedFactories struct{}

func (nestedFactories) Strings() iter.Seq[string] {
	return slices.Values([]string{"nested string1", "nested string2"})
}
