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

package topk

import (
	"errors"
	"fmt"

	"github.com/orderstat/orderstat-go/internal"
)

var (
	// ErrRankOutOfRange is returned when k is not a valid 1-based rank of the input.
	ErrRankOutOfRange = internal.ErrRankOutOfRange
	// ErrNoCompareFn is returned by the Func variants when the comparator is nil.
	ErrNoCompareFn = errors.New("no compare function provided")
)

// CheckRank returns ErrRankOutOfRange unless 1 <= k <= n.
func CheckRank(k int, n int) error {
	if n == 0 {
		return fmt.Errorf("%w: operation is undefined for empty input: k=%d", ErrRankOutOfRange, k)
	}
	if k < 1 || k > n {
		return fmt.Errorf("%w: k must be >= 1 and <= %d: %d", ErrRankOutOfRange, n, k)
	}
	return nil
}
