package controller

import "sort"

// UniqueValues projects a slice through pick, drops empties and duplicates,
// and returns the survivors sorted. Category and subcategory dropdowns are
// both built with it.
func UniqueValues[T any](items []T, pick func(T) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, item := range items {
		v := pick(item)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
