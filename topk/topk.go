/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package topk computes exact order statistics of in-memory slices: the k-th
// largest item and the k largest items.
//
// Selection uses median-of-medians pivots with a three-way partition, so it
// runs in worst case linear time on any input order, including inputs with
// many duplicates. All functions work on a private copy; the caller's slice
// is never modified. Items that compare equal are interchangeable and their
// relative order in the results is unspecified.
package topk

import (
	"cmp"
	"slices"

	"github.com/orderstat/orderstat-go/common"
	"github.com/orderstat/orderstat-go/internal"
)

// KthLargest returns the k-th largest item of seq, with k = 1 for the largest.
// It returns ErrRankOutOfRange unless 1 <= k <= len(seq).
func KthLargest[T cmp.Ordered](seq []T, k int) (T, error) {
	return KthLargestFunc(seq, k, cmp.Compare[T])
}

// KthSmallest returns the k-th smallest item of seq, with k = 1 for the smallest.
func KthSmallest[T cmp.Ordered](seq []T, k int) (T, error) {
	return KthLargestFunc(seq, k, common.OrderedComparator[T](true))
}

// TopK returns the min(k, len(seq)) largest items of seq in descending order.
// A k <= 0 is not an error: it yields an empty slice, as does an empty seq.
func TopK[T cmp.Ordered](seq []T, k int) []T {
	top, _ := TopKFunc(seq, k, cmp.Compare[T])
	return top
}

// KthLargestFunc is KthLargest for items ordered by compare.
func KthLargestFunc[T any](seq []T, k int, compare common.CompareFn[T]) (T, error) {
	if compare == nil {
		return *new(T), ErrNoCompareFn
	}
	if err := CheckRank(k, len(seq)); err != nil {
		return *new(T), err
	}
	work := slices.Clone(seq)
	idx, err := internal.Select(work, 0, len(work)-1, k-1, compare)
	if err != nil {
		return *new(T), err
	}
	return work[idx], nil
}

// TopKFunc is TopK for items ordered by compare.
func TopKFunc[T any](seq []T, k int, compare common.CompareFn[T]) ([]T, error) {
	if compare == nil {
		return nil, ErrNoCompareFn
	}
	k = min(k, len(seq))
	if k <= 0 {
		return []T{}, nil
	}
	work := slices.Clone(seq)
	if k < len(work) {
		if _, err := internal.Select(work, 0, len(work)-1, k-1, compare); err != nil {
			return nil, err
		}
	}
	// selection only bands the prefix, it does not order it
	top := work[:k]
	slices.SortFunc(top, common.Reverse(compare))
	if k < len(work) {
		top = slices.Clone(top)
	}
	return top, nil
}
