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
	"cmp"
	"slices"
	"strconv"
	"testing"

	"github.com/orderstat/orderstat-go/common"
	"github.com/orderstat/orderstat-go/internal/datagen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	testCases := []struct {
		name     string
		arr      []int
		lo       int
		hi       int
		k        int
		expected int
	}{
		{
			name:     "third largest",
			arr:      []int{3, 1, 4, 1, 5, 9, 2, 6},
			lo:       0,
			hi:       7,
			k:        2,
			expected: 5,
		},
		{
			name:     "find maximum",
			arr:      []int{3, 1, 4, 1, 5, 9, 2, 6},
			lo:       0,
			hi:       7,
			k:        0,
			expected: 9,
		},
		{
			name:     "find minimum",
			arr:      []int{3, 1, 4, 1, 5, 9, 2, 6},
			lo:       0,
			hi:       7,
			k:        7,
			expected: 1,
		},
		{
			name:     "single element array",
			arr:      []int{42},
			lo:       0,
			hi:       0,
			k:        0,
			expected: 42,
		},
		{
			name:     "two element array - first",
			arr:      []int{3, 5},
			lo:       0,
			hi:       1,
			k:        0,
			expected: 5,
		},
		{
			name:     "two element array - second",
			arr:      []int{3, 5},
			lo:       0,
			hi:       1,
			k:        1,
			expected: 3,
		},
		{
			name:     "already sorted array",
			arr:      []int{1, 2, 3, 4, 5},
			lo:       0,
			hi:       4,
			k:        1,
			expected: 4,
		},
		{
			name:     "reverse sorted array",
			arr:      []int{5, 4, 3, 2, 1},
			lo:       0,
			hi:       4,
			k:        3,
			expected: 2,
		},
		{
			name:     "array with duplicates",
			arr:      []int{5, 5, 5, 1},
			lo:       0,
			hi:       3,
			k:        1,
			expected: 5,
		},
		{
			name:     "all equal",
			arr:      []int{7, 7, 7, 7},
			lo:       0,
			hi:       3,
			k:        1,
			expected: 7,
		},
		{
			name:     "partial range - middle elements",
			arr:      []int{9, 8, 7, 6, 5, 4, 3, 2, 1},
			lo:       2,
			hi:       6,
			k:        4,
			expected: 5,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			arrCopy := slices.Clone(tc.arr)

			idx, err := Select(arrCopy, tc.lo, tc.hi, tc.k, cmp.Compare[int])
			require.NoError(t, err)

			assert.Equal(t, tc.k, idx)
			assert.Equal(t, tc.expected, arrCopy[idx], "want: %v\ngot: %v", tc.expected, arrCopy[idx])
			assertRankPartitioned(t, arrCopy[tc.lo:tc.hi+1], tc.k-tc.lo, cmp.Compare[int])
		})
	}
}

func TestSelectFloat64(t *testing.T) {
	arr := []float64{3.14, 1.41, 2.71, 0.57, 1.61}
	idx, err := Select(arr, 0, 4, 2, cmp.Compare[float64])
	assert.NoError(t, err)
	assert.Equal(t, 1.61, arr[idx])
}

func TestSelectString(t *testing.T) {
	arr := []string{"dog", "cat", "elephant", "ant", "bear"}
	idx, err := Select(arr, 0, 4, 2, cmp.Compare[string])
	assert.NoError(t, err)
	assert.Equal(t, "cat", arr[idx])
}

func TestSelectOutOfRange(t *testing.T) {
	arr := []int{1, 2, 3, 4}
	testCases := []struct {
		name string
		lo   int
		hi   int
		k    int
	}{
		{name: "k before range", lo: 1, hi: 3, k: 0},
		{name: "k after range", lo: 0, hi: 2, k: 3},
		{name: "negative lo", lo: -1, hi: 3, k: 0},
		{name: "hi past the end", lo: 0, hi: 4, k: 0},
		{name: "inverted range", lo: 3, hi: 1, k: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Select(arr, tc.lo, tc.hi, tc.k, cmp.Compare[int])
			assert.ErrorIs(t, err, ErrRankOutOfRange)
		})
	}
	_, err := Select([]int{}, 0, 0, 0, cmp.Compare[int])
	assert.ErrorIs(t, err, ErrRankOutOfRange)
}

func TestSelectEveryRank(t *testing.T) {
	for name, gen := range datagen.Named() {
		for _, n := range []int{1, 2, 4, 5, 6, 24, 25, 26, 101} {
			t.Run(name+"/n="+strconv.Itoa(n), func(t *testing.T) {
				src := gen(n)
				sorted := slices.Clone(src)
				slices.SortFunc(sorted, common.OrderedComparator[int64](true))
				for k := 0; k < n; k++ {
					arr := slices.Clone(src)
					idx, err := Select(arr, 0, n-1, k, cmp.Compare[int64])
					require.NoError(t, err)
					require.Equal(t, sorted[k], arr[idx], "k=%d", k)
					assertRankPartitioned(t, arr, k, cmp.Compare[int64])
					slices.Sort(arr)
					require.Equal(t, slices.Sorted(slices.Values(src)), arr, "selection must permute, not drop items")
				}
			})
		}
	}
}

func TestSelectDeterministic(t *testing.T) {
	src := datagen.Uniform(5000, 100, datagen.DefaultSeed)
	first := slices.Clone(src)
	second := slices.Clone(src)
	_, err := Select(first, 0, len(first)-1, 1234, cmp.Compare[int64])
	require.NoError(t, err)
	_, err = Select(second, 0, len(second)-1, 1234, cmp.Compare[int64])
	require.NoError(t, err)
	assert.Equal(t, datagen.Digest(first), datagen.Digest(second))
}

func TestSelectLinearComparisons(t *testing.T) {
	const n = 20000
	for name, gen := range datagen.Named() {
		t.Run(name, func(t *testing.T) {
			for _, k := range []int{0, n / 4, n / 2, n - 1} {
				arr := gen(n)
				comparisons := 0
				counting := func(a, b int64) int {
					comparisons++
					return cmp.Compare(a, b)
				}
				_, err := Select(arr, 0, n-1, k, counting)
				require.NoError(t, err)
				assert.LessOrEqual(t, comparisons, 32*n, "k=%d", k)
			}
		})
	}
}

// assertRankPartitioned checks that arr[:k] >= arr[k] >= arr[k+1:].
func assertRankPartitioned[T any](t *testing.T, arr []T, k int, compare common.CompareFn[T]) {
	t.Helper()
	for i := 0; i < k; i++ {
		assert.GreaterOrEqual(t, compare(arr[i], arr[k]), 0, "index %d before k=%d", i, k)
	}
	for i := k + 1; i < len(arr); i++ {
		assert.LessOrEqual(t, compare(arr[i], arr[k]), 0, "index %d after k=%d", i, k)
	}
}

func BenchmarkSelect(b *testing.B) {
	sizes := []int{100, 10000, 1000000}

	for _, size := range sizes {
		b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
			original := datagen.Permutation(size, datagen.DefaultSeed)
			arr := make([]int64, size)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(arr, original)
				_, _ = Select(arr, 0, size-1, size/2, cmp.Compare[int64])
			}
		})
	}
}
