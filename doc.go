/*
Package trie provides a prefix tree for vocabulary lookups. Words are
inserted once and then queried for exact membership, for being a prefix
of some inserted word, and for autocomplete suggestions.

Listings are deterministic: children are walked in ascending rune order and
a word is listed before the longer words it is a prefix of.
*/
package trie
