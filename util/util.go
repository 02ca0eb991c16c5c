package util

import (
	"golang.org/x/exp/constraints"
)

// Unique drops repeated values, keeping the first occurrence of each.
func Unique[A comparable](vals []A) []A {
	res := make([]A, 0, len(vals))
	seen := make(map[A]bool, len(vals))
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			res = append(res, v)
		}
	}
	return res
}

// FilterNegative drops the -1 "not found" markers from index lookups.
func FilterNegative[A constraints.Signed](nums []A) []A {
	res := make([]A, 0, len(nums))
	for _, v := range nums {
		if v >= 0 {
			res = append(res, v)
		}
	}
	return res
}

func Contains[A comparable](vals []A, v A) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
