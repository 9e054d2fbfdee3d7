/*
Package doubleset implements DoubleSet, a multiset of integers in which
every member occurs once or twice.

A DoubleSet is written as a list of member/count entries

	{{1: 2}, {-3: 1}, {0: 1}}

and keeps its members in insertion order. Two sets can be added, where
counts saturate at two, or subtracted, where members whose count drops
below one disappear:

	{{1: 2}, {2: 1}} + {{1: 1}, {2: 1}, {-3: 1}} = {{1: 2}, {2: 2}, {-3: 1}}
	{{1: 2}, {2: 1}, {4: 1}} - {{1: 1}, {2: 2}, {-3: 1}} = {{1: 1}, {4: 1}}
*/
package doubleset
