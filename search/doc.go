// SPDX-License-Identifier: MIT

// Package search locates a target value's index in a slice.
//
//   - LinearSearch            front-to-back scan, no ordering precondition
//   - BinarySearch            iterative halving over a sorted slice
//   - RecursiveBinarySearch   halving confined to a caller-supplied range
//   - FirstOccurrence         leftmost match among duplicates
//
// Every function returns NotFound (-1) when the target is absent.
//
// The binary variants assume seq is already in non-decreasing order (for
// example the output of package sorting). The precondition is NOT checked:
// unsorted input yields a logically wrong index, never a panic.
//
// FirstOccurrence walks left from whatever match BinarySearch finds, so it
// costs O(log n + k) for k copies of the target. This linear tail is kept
// as part of the contract.
package search
