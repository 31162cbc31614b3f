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
	"slices"

	"github.com/orderstat/orderstat-go/topk"
	"github.com/wangjohn/quickselect"
	"golang.org/x/exp/constraints"
)

// QuickSelectKth runs Hoare's randomized selection on a copy of seq. Expected
// time is linear, the worst case is quadratic.
func QuickSelectKth[T constraints.Ordered](seq []T, k int) (T, error) {
	if err := topk.CheckRank(k, len(seq)); err != nil {
		return *new(T), err
	}
	work := slices.Clone(seq)
	if err := quickselect.QuickSelect(quickselect.Reverse(orderedSlice[T](work)), k); err != nil {
		return *new(T), err
	}
	return slices.MinFunc(work[:k], cmp.Compare[T]), nil
}

// QuickSelectTopK moves the k largest items to the front with randomized
// selection, then sorts them.
func QuickSelectTopK[T constraints.Ordered](seq []T, k int) []T {
	k = clampK(k, len(seq))
	if k == 0 {
		return []T{}
	}
	work := slices.Clone(seq)
	// k is within (0, len], QuickSelect cannot fail
	_ = quickselect.QuickSelect(quickselect.Reverse(orderedSlice[T](work)), k)
	top := slices.Clone(work[:k])
	slices.SortFunc(top, descending[T])
	return top
}

// orderedSlice attaches quickselect.Interface to a slice in ascending order.
type orderedSlice[T constraints.Ordered] []T

func (s orderedSlice[T]) Len() int           { return len(s) }
func (s orderedSlice[T]) Less(i, j int) bool { return cmp.Less(s[i], s[j]) }
func (s orderedSlice[T]) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
