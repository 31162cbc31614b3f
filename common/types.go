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

package common

import "cmp"

// CompareFn defines a total order over C. It returns a negative number when
// a < b, zero when a and b are equal and a positive number when a > b.
type CompareFn[C any] func(a, b C) int

// OrderedComparator returns cmp.Compare for C, or its reverse.
// Floating point NaNs compare equal to each other and below every other value.
func OrderedComparator[C cmp.Ordered](reverseOrder bool) CompareFn[C] {
	if reverseOrder {
		return func(a, b C) int {
			return cmp.Compare(b, a)
		}
	}
	return cmp.Compare[C]
}

// Reverse returns a comparator ordering items opposite to compare.
func Reverse[C any](compare CompareFn[C]) CompareFn[C] {
	return func(a, b C) int {
		return compare(b, a)
	}
}
