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

package main

import (
	"cmp"
	"slices"

	"github.com/orderstat/orderstat-go/baseline"
	"github.com/orderstat/orderstat-go/topk"
)

const defaultMethod = "select"

type method[T cmp.Ordered] struct {
	kth  func(seq []T, k int) (T, error)
	topK func(seq []T, k int) []T
}

func newMethods[T cmp.Ordered]() map[string]method[T] {
	return map[string]method[T]{
		defaultMethod: {kth: topk.KthLargest[T], topK: topk.TopK[T]},
		"sort":        {kth: baseline.SortKth[T], topK: baseline.SortTopK[T]},
		"partial":     {kth: baseline.PartialSortKth[T], topK: baseline.PartialSortTopK[T]},
		"heap":        {kth: baseline.HeapKth[T], topK: baseline.HeapTopK[T]},
		"quickselect": {kth: baseline.QuickSelectKth[T], topK: baseline.QuickSelectTopK[T]},
	}
}

var (
	intMethods   = newMethods[int64]()
	floatMethods = newMethods[float64]()
)

func methodNames() []string {
	names := make([]string, 0, len(intMethods))
	for name := range intMethods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
