// Package algoprim is a small library of classic algorithm primitives:
// comparison sorts, index searches and numeric approximations, written to be
// read as much as to be run.
//
// 🚀 What is algoprim?
//
//	A generic, dependency-light toolbox that brings together:
//		• Sorting: bubble, selection, insertion, quicksort (Lomuto), mergesort
//		• Searching: linear, binary, range-bounded binary, first occurrence
//		• Approximation: Newton–Raphson square root, Taylor sine/cosine/ln
//		• Calculator extras: powers, factorials, nCr/nPr, Fibonacci, mean, stddev
//		• Sequence generation: deterministic random, ordered and few-unique inputs
//
// ✨ Why algoprim?
//
//   - Explicit failures – NaN in a sort, sqrt(-1) and ln(0) return sentinel
//     errors instead of silently producing garbage
//   - No deep recursion – quicksort, mergesort and binary search run on
//     explicit work lists, so adversarial inputs cannot exhaust the stack
//   - Diagnostics – comparison, swap and move counters on request
//   - Pure Go generics over golang.org/x/exp/constraints.Ordered
//
// Packages:
//
//	sorting/  five in-place sorts, Partition, Merge, Sort dispatcher, Stats
//	search/   LinearSearch, BinarySearch, RecursiveBinarySearch, FirstOccurrence
//	approx/   Sqrt, Sin, Cos, Ln with tolerance/term options
//	calc/     Power, Factorial, Combinations, Permutations, Fibonacci, Mean, StdDev, Evaluate
//	seqgen/   seeded test and benchmark inputs
//
// The algoprim command (cmd/algoprim) exposes all of the above, plus a
// parallel benchmark runner and YAML scenarios:
//
//	algoprim sort --algo bubble 5 3 1 4 2
//	algoprim approx sqrt 2
//	algoprim bench --size 10000 --parallel 4
//	algoprim run examples/grades.yaml examples/combinatorics.yaml
//
//	go get github.com/katalvlaran/algoprim
package algoprim
