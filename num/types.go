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

// Package num holds the element-type constraints shared by the vector and
// matrix packages, plus the runtime configuration they read from the
// environment.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-matpool/num"
//
//	func Sum[T num.Number](xs []T) T {
//	    var s T
//	    for _, x := range xs {
//	        s += x
//	    }
//	    return s
//	}
package num

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is a constraint for every type that can be a matrix element.
// All members have a zero value, copy semantics, and support +, * and +=.
type Number interface {
	Floats | Integers
}

// Kind classifies a Number type for parsing and formatting.
type Kind int

const (
	KindSigned Kind = iota
	KindUnsigned
	KindFloat
)

// KindOf reports which family T belongs to.
func KindOf[T Number]() Kind {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return KindFloat
	case uint, uint8, uint16, uint32, uint64:
		return KindUnsigned
	case int, int8, int16, int32, int64:
		return KindSigned
	}
	// Named types (~T) fall through the switch above; probe arithmetic instead.
	one := T(1)
	if one/2 != 0 {
		return KindFloat
	}
	if zero-one > zero {
		return KindUnsigned
	}
	return KindSigned
}
