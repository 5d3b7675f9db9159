// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command matpool multiplies matrices with the pooled dispatcher.
//
// Usage:
//
//	matpool multiply --a "{1 2 3, 4 5 6}" --b "{7 8, 9 10, 11 12}"
//	matpool multiply --type float64 --sequential --a "{0.5}" --b "{4}"
//	matpool bench --size 128 --runs 5 --workers 8
//	matpool info
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
