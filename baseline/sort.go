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

// Package baseline holds the reference order statistics the selection core is
// checked and benchmarked against. Every function honors the topk contract:
// k is 1-based, Kth functions fail with topk.ErrRankOutOfRange unless
// 1 <= k <= len(seq), TopK functions return min(k, len(seq)) items in
// descending order (empty for k <= 0), and the caller's slice is never modified.
package baseline

import (
	"cmp"
	"slices"

	"github.com/orderstat/orderstat-go/topk"
	"golang.org/x/exp/constraints"
)

// SortKth sorts a copy of seq in descending order and indexes it.
func SortKth[T constraints.Ordered](seq []T, k int) (T, error) {
	if err := topk.CheckRank(k, len(seq)); err != nil {
		return *new(T), err
	}
	work := slices.Clone(seq)
	slices.SortFunc(work, descending[T])
	return work[k-1], nil
}

// SortTopK sorts a copy of seq in descending order and truncates it.
func SortTopK[T constraints.Ordered](seq []T, k int) []T {
	k = clampK(k, len(seq))
	if k == 0 {
		return []T{}
	}
	work := slices.Clone(seq)
	slices.SortFunc(work, descending[T])
	return work[:k:k]
}

func descending[T constraints.Ordered](a, b T) int {
	return cmp.Compare(b, a)
}

func clampK(k int, n int) int {
	return max(0, min(k, n))
}
