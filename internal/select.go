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

import (
	"errors"
	"fmt"

	"github.com/orderstat/orderstat-go/common"
)

var ErrRankOutOfRange = errors.New("rank out of range")

// Select reorders arr[l..r] so that arr[k] holds the item that would be at
// index k if arr[l..r] were sorted in descending order. Items before k are
// >= arr[k] and items after k are <= arr[k]; neither side is sorted.
// k is an index into arr, not an offset from l.
//
// Selection is deterministic and runs in worst case linear time.
func Select[T any](arr []T, l int, r int, k int, compare common.CompareFn[T]) (int, error) {
	if l < 0 || r >= len(arr) || l > r {
		return 0, fmt.Errorf("%w: range [%d, %d] outside of [0, %d)", ErrRankOutOfRange, l, r, len(arr))
	}
	if k < l || k > r {
		return 0, fmt.Errorf("%w: k must be >= %d and <= %d: %d", ErrRankOutOfRange, l, r, k)
	}
	return selectRange(arr, l, r, k, compare), nil
}

func selectRange[T any](arr []T, l int, r int, k int, compare common.CompareFn[T]) int {
	for l != r {
		if k < l || k > r {
			panic(fmt.Sprintf("select: internal inconsistency, k=%d outside of [%d, %d]", k, l, r))
		}
		p := MedianOfMedians(arr, l, r, compare)
		p = Partition3Way(arr, l, r, p, k, compare)
		if p == k {
			return k
		}
		if k < p {
			r = p - 1
		} else {
			l = p + 1
		}
	}
	return l
}
