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

package baseline

import (
	"cmp"
	"container/heap"
	"slices"

	"github.com/orderstat/orderstat-go/topk"
	"golang.org/x/exp/constraints"
)

// PartialSortKth orders only the first k positions of a copy of seq.
func PartialSortKth[T constraints.Ordered](seq []T, k int) (T, error) {
	if err := topk.CheckRank(k, len(seq)); err != nil {
		return *new(T), err
	}
	work := slices.Clone(seq)
	partialSort(work, k)
	return work[k-1], nil
}

// PartialSortTopK returns the sorted prefix produced by a partial sort.
func PartialSortTopK[T constraints.Ordered](seq []T, k int) []T {
	k = clampK(k, len(seq))
	if k == 0 {
		return []T{}
	}
	work := slices.Clone(seq)
	partialSort(work, k)
	return slices.Clone(work[:k])
}

// partialSort leaves the k largest items of arr in arr[:k], sorted descending.
// arr[:k] is kept as a min-heap while the rest of arr is scanned.
func partialSort[T constraints.Ordered](arr []T, k int) {
	h := &prefixHeap[T]{items: arr[:k]}
	heap.Init(h)
	for i := k; i < len(arr); i++ {
		if cmp.Less(h.items[0], arr[i]) {
			arr[i], h.items[0] = h.items[0], arr[i]
			heap.Fix(h, 0)
		}
	}
	slices.SortFunc(arr[:k], descending[T])
}

// prefixHeap is a min-heap laid over a prefix of the slice being sorted.
type prefixHeap[T constraints.Ordered] struct {
	items []T
}

func (h *prefixHeap[T]) Len() int           { return len(h.items) }
func (h *prefixHeap[T]) Less(i, j int) bool { return cmp.Less(h.items[i], h.items[j]) }
func (h *prefixHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *prefixHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *prefixHeap[T]) Pop() any {
	n := len(h.items)
	x := h.items[n-1]
	h.items = h.items[:n-1]
	return x
}
