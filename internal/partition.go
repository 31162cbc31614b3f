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

// Partition3Way rearranges arr[l..r] (inclusive) around the item at index p
// into three descending bands: items greater than the pivot, items equal to
// it and items less than it.
//
// The returned index tells the caller where the target rank k landed:
//   - the first index of the equal band, when k is in the greater band,
//   - k itself, when k is in the equal band (the answer is pinned),
//   - the last index of the equal band, when k is in the less band.
func Partition3Way[T any](arr []T, l int, r int, p int, k int, compare common.CompareFn[T]) int {
	// the pivot is copied before it is moved, comparisons never see arr[r]
	pivot := arr[p]
	arr[p], arr[r] = arr[r], arr[p]

	store := l
	for i := l; i < r; i++ {
		if compare(arr[i], pivot) > 0 {
			arr[store], arr[i] = arr[i], arr[store]
			store++
		}
	}

	storeEq := store
	for i := store; i < r; i++ {
		if compare(arr[i], pivot) == 0 {
			arr[storeEq], arr[i] = arr[i], arr[storeEq]
			storeEq++
		}
	}

	arr[r], arr[storeEq] = arr[storeEq], arr[r]

	if k < store {
		return store
	}
	if k <= storeEq {
		return k
	}
	return storeEq
}
