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

// Package datagen builds deterministic inputs for selection tests and
// benchmarks: sorted runs, plateaus, patterns that defeat naive pivot rules,
// and murmur3-driven pseudo-random values and permutations.
package datagen

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
	"golang.org/x/exp/constraints"
)

const DefaultSeed = uint64(9001)

type Number interface {
	constraints.Integer | constraints.Float
}

// Generator produces an input of length n.
type Generator func(n int) []int64

// Ascending returns 1, 2, ..., n.
func Ascending[T Number](n int) []T {
	arr := make([]T, n)
	for i := range arr {
		arr[i] = T(i + 1)
	}
	return arr
}

// Descending returns n, n-1, ..., 1.
func Descending[T Number](n int) []T {
	arr := make([]T, n)
	for i := range arr {
		arr[i] = T(n - i)
	}
	return arr
}

// AllEqual returns n copies of v.
func AllEqual[T Number](n int, v T) []T {
	arr := make([]T, n)
	for i := range arr {
		arr[i] = v
	}
	return arr
}

// OrganPipe rises to the middle and falls back: 1, 2, ..., m, ..., 2, 1.
func OrganPipe[T Number](n int) []T {
	arr := make([]T, n)
	for i := range arr {
		arr[i] = T(min(i, n-1-i) + 1)
	}
	return arr
}

// Sawtooth repeats the ascending run 0..period-1.
func Sawtooth[T Number](n int, period int) []T {
	if period < 1 {
		period = 1
	}
	arr := make([]T, n)
	for i := range arr {
		arr[i] = T(i % period)
	}
	return arr
}

// MedianOfThreeKiller returns a Musser style sequence that drives a
// median-of-three quickselect into quadratic time.
func MedianOfThreeKiller[T Number](n int) []T {
	arr := make([]T, n)
	m := n - n%2
	k := m / 2
	for i := 1; i <= k; i++ {
		if i%2 == 1 {
			arr[i-1] = T(i)
			arr[i] = T(k + i)
		}
		arr[k+i-1] = T(2 * i)
	}
	if m != n {
		arr[n-1] = T(n)
	}
	return arr
}

// Uniform returns n values in [0, bound) derived from murmur3 hashes of the
// index, so the same seed always yields the same slice.
func Uniform(n int, bound int64, seed uint64) []int64 {
	if bound < 1 {
		bound = 1
	}
	arr := make([]int64, n)
	for i := range arr {
		arr[i] = int64(hashIndex(uint64(i), seed) % uint64(bound))
	}
	return arr
}

// Permutation returns a shuffle of 1..n. The Fisher-Yates swaps draw from
// murmur3 hashes of the position.
func Permutation(n int, seed uint64) []int64 {
	arr := Ascending[int64](n)
	for i := n - 1; i > 0; i-- {
		j := int(hashIndex(uint64(i), seed) % uint64(i+1))
		arr[i], arr[j] = arr[j], arr[i]
	}
	return arr
}

// Named lists every generator the adversarial tests and benchmarks run.
func Named() map[string]Generator {
	return map[string]Generator{
		"ascending":   Ascending[int64],
		"descending":  Descending[int64],
		"all_equal":   func(n int) []int64 { return AllEqual[int64](n, 7) },
		"organ_pipe":  OrganPipe[int64],
		"sawtooth":    func(n int) []int64 { return Sawtooth[int64](n, 16) },
		"mo3_killer":  MedianOfThreeKiller[int64],
		"few_values":  func(n int) []int64 { return Uniform(n, 4, DefaultSeed) },
		"uniform":     func(n int) []int64 { return Uniform(n, int64(n)*4+1, DefaultSeed) },
		"permutation": func(n int) []int64 { return Permutation(n, DefaultSeed) },
	}
}

// Digest fingerprints the exact layout of arr with xxhash.
func Digest(arr []int64) uint64 {
	var scratch [8]byte
	h := xxhash.New()
	for _, v := range arr {
		binary.LittleEndian.PutUint64(scratch[:], uint64(v))
		_, _ = h.Write(scratch[:])
	}
	return h.Sum64()
}

func hashIndex(i uint64, seed uint64) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], i)
	return murmur3.SeedSum64(seed, scratch[:])
}
