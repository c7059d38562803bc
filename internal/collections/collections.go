// Package collections holds eager, non-mutating sequence operations over slices.
package collections

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrEmptySequence is returned by operations that need at least one element.
var ErrEmptySequence = errors.New("empty sequence")

// Map applies `fn` to each element of `ts` and returns the results in the same order.
//
// Example:
//
//	Map([]int{1, 2, 3}, strconv.Itoa)
//	=> []string{"1", "2", "3"}
func Map[T, V any](ts []T, fn func(T) V) []V {
	result := make([]V, len(ts))
	for i, t := range ts {
		result[i] = fn(t)
	}
	return result
}

// Filter returns the elements of `ts` for which `predicate` holds, keeping their relative order.
//
// Example:
//
//	Filter([]int{1, 2, 3, 4}, func(x int) bool { return x%2 == 0 })
//	=> []int{2, 4}
func Filter[T any](ts []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(ts))
	for _, elem := range ts {
		if predicate(elem) {
			result = append(result, elem)
		}
	}
	return result
}

// FlatMap expands each element of `ts` with `fn` and concatenates the expansions in source order.
//
// Example:
//
//	FlatMap([]int{1, 2}, func(x int) []int { return []int{x, x} })
//	=> []int{1, 1, 2, 2}
func FlatMap[T, V any](ts []T, fn func(T) []V) []V {
	result := []V{}
	for _, t := range ts {
		result = append(result, fn(t)...)
	}
	return result
}

// Reduce folds `ts` from left to right, starting from `seed`.
//
// Example:
//
//	Reduce([]string{"a", "b"}, ">", func(acc, s string) string { return acc + s })
//	=> ">ab"
func Reduce[T, A any](ts []T, seed A, fn func(A, T) A) A {
	acc := seed
	for _, t := range ts {
		acc = fn(acc, t)
	}
	return acc
}

// ReduceFirst folds `ts` from left to right, seeded with its first element.
func ReduceFirst[T any](ts []T, fn func(T, T) T) (T, error) {
	first, err := First(ts)
	if err != nil {
		return first, fmt.Errorf("reducing: %w", err)
	}
	return Reduce(ts[1:], first, fn), nil
}

// Sorted returns a stably sorted copy of `ts`. The input is left untouched.
func Sorted[T any](ts []T, compare func(a, b T) int) []T {
	result := slices.Clone(ts)
	slices.SortStableFunc(result, compare)
	return result
}

// Comparing builds a comparator ordering elements by the key `key` extracts.
//
// Example:
//
//	byCity := Comparing(func(c Customer) string { return c.City })
func Comparing[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Reversed inverts a comparator.
func Reversed[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// MaxBy returns the greatest element of `ts` under `compare`. Ties resolve to the earliest element.
func MaxBy[T any](ts []T, compare func(a, b T) int) (T, error) {
	if len(ts) == 0 {
		var zero T
		return zero, fmt.Errorf("max: %w", ErrEmptySequence)
	}
	return slices.MaxFunc(ts, compare), nil
}

// MinBy returns the least element of `ts` under `compare`. Ties resolve to the earliest element.
func MinBy[T any](ts []T, compare func(a, b T) int) (T, error) {
	if len(ts) == 0 {
		var zero T
		return zero, fmt.Errorf("min: %w", ErrEmptySequence)
	}
	return slices.MinFunc(ts, compare), nil
}

// AllMatch reports whether every element satisfies `predicate`. True for an empty sequence.
func AllMatch[T any](ts []T, predicate func(T) bool) bool {
	for _, t := range ts {
		if !predicate(t) {
			return false
		}
	}
	return true
}

// AnyMatch reports whether at least one element satisfies `predicate`. False for an empty sequence.
func AnyMatch[T any](ts []T, predicate func(T) bool) bool {
	return slices.ContainsFunc(ts, predicate)
}

// NoneMatch reports whether no element satisfies `predicate`. True for an empty sequence.
func NoneMatch[T any](ts []T, predicate func(T) bool) bool {
	return AllMatch(ts, Not(predicate))
}

// Not negates a predicate.
func Not[T any](predicate func(T) bool) func(T) bool {
	return func(t T) bool {
		return !predicate(t)
	}
}

// First returns the first element of `ts`.
func First[T any](ts []T) (T, error) {
	if len(ts) == 0 {
		var zero T
		return zero, fmt.Errorf("first: %w", ErrEmptySequence)
	}
	return ts[0], nil
}

// Last returns the last element of `ts`.
func Last[T any](ts []T) (T, error) {
	if len(ts) == 0 {
		var zero T
		return zero, fmt.Errorf("last: %w", ErrEmptySequence)
	}
	return ts[len(ts)-1], nil
}

// ForEach runs `action` on each element in order.
func ForEach[T any](ts []T, action func(T)) {
	for _, t := range ts {
		action(t)
	}
}

// Number is the set of element types Sum accepts.
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Sum adds up `ts`. Zero for an empty sequence.
func Sum[T Number](ts []T) T {
	var zero T
	return Reduce(ts, zero, func(acc, t T) T { return acc + t })
}
