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

package internal

import "github.com/orderstat/orderstat-go/common"

const groupSize = 5

// MedianOfMedians returns an index in [l, r] whose item is the median of the
// medians of consecutive groups of five. At least ~30% of the range is >= it
// and at least ~30% is <= it, whatever the input order.
//
// Ranges shorter than five are sorted descending and the middle index is
// returned; for even sizes that is the lower of the two middle indices.
// Group medians are swapped into a prefix starting at l, so arr[l..r] is
// reordered.
func MedianOfMedians[T any](arr []T, l int, r int, compare common.CompareFn[T]) int {
	if r-l+1 < groupSize {
		insertionSortDesc(arr, l, r, compare)
		return l + (r-l)/2
	}

	numGroups := 0
	for i := l; i <= r; i += groupSize {
		hi := min(i+groupSize-1, r)
		insertionSortDesc(arr, i, hi, compare)
		med := i + (hi-i)/2
		slot := l + numGroups
		arr[med], arr[slot] = arr[slot], arr[med]
		numGroups++
	}

	mid := l + (numGroups-1)/2
	return selectRange(arr, l, l+numGroups-1, mid, compare)
}

// insertionSortDesc sorts arr[lo..hi] (inclusive) in descending order.
func insertionSortDesc[T any](arr []T, lo int, hi int, compare common.CompareFn[T]) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && compare(arr[j], arr[j-1]) > 0; j-- {
			arr[j], arr[j-1] = arr[j-1], arr[j]
		}
	}
}
