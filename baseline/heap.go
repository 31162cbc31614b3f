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

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/orderstat/orderstat-go/topk"
	"golang.org/x/exp/constraints"
)

// HeapKth keeps the k largest items seen so far in a min-heap; once seq is
// consumed the heap root is the k-th largest.
func HeapKth[T constraints.Ordered](seq []T, k int) (T, error) {
	if err := topk.CheckRank(k, len(seq)); err != nil {
		return *new(T), err
	}
	h := boundedMinHeap(seq, k)
	root, _ := h.Peek()
	return root.(T), nil
}

// HeapTopK drains the bounded min-heap from the smallest retained item up.
func HeapTopK[T constraints.Ordered](seq []T, k int) []T {
	k = clampK(k, len(seq))
	if k == 0 {
		return []T{}
	}
	h := boundedMinHeap(seq, k)
	top := make([]T, h.Size())
	for i := len(top) - 1; i >= 0; i-- {
		v, _ := h.Pop()
		top[i] = v.(T)
	}
	return top
}

func boundedMinHeap[T constraints.Ordered](seq []T, k int) *binaryheap.Heap {
	h := binaryheap.NewWith(func(a, b interface{}) int {
		return cmp.Compare(a.(T), b.(T))
	})
	for _, v := range seq {
		if h.Size() < k {
			h.Push(v)
			continue
		}
		// evict the current minimum once capacity is exceeded
		if root, _ := h.Peek(); cmp.Less(root.(T), v) {
			h.Pop()
			h.Push(v)
		}
	}
	return h
}
