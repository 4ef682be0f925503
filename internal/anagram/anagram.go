// internal/anagram/anagram.go

// Package anagram generates letter permutations of a word.
//
// Permutations returns every arrangement of positions, so a word with repeated
// letters yields repeated strings. Callers that want distinct anagrams pass the
// result through Unique.
package anagram

import "sort"

// Permutations returns every arrangement of the characters of word, using each
// character exactly once. Words of zero or one character come back unchanged as
// a single-element slice.
//
// The character removed at position i is prepended to every permutation of the
// remaining characters, and positions are visited first to last. The result has
// len(word)! entries and costs O(n!·n) time and memory.
func Permutations(word string) []string {
	return permute([]rune(word))
}

func permute(chars []rune) []string {
	if len(chars) <= 1 {
		return []string{string(chars)}
	}

	var result []string
	rest := make([]rune, 0, len(chars)-1)
	for i, ch := range chars {
		rest = rest[:0]
		rest = append(rest, chars[:i]...)
		rest = append(rest, chars[i+1:]...)

		for _, tail := range permute(rest) {
			result = append(result, string(ch)+tail)
		}
	}
	return result
}

// Unique collapses duplicate permutations and returns the distinct strings in
// sorted order.
func Unique(perms []string) []string {
	seen := make(map[string]struct{}, len(perms))
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
