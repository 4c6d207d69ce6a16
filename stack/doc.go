// Package stack provides Unique, a LIFO stack that additionally offers
// O(1) membership testing and rejects duplicate elements.
//
// Unique backs Tarjan's strongly-connected-components walk in package
// scc, where the "is this vertex still on the open recursion path?" test
// must be constant time, but it is a general-purpose container: the
// sequence and its membership set are kept identical at all times, and
// every element on the stack is unique.
//
// Operations:
//
//	Push(x)      // O(1); ErrDuplicateElement if x is already present
//	Pop()        // O(1); ErrEmptyStack if empty
//	Peek()       // O(1); ErrEmptyStack if empty
//	Contains(x)  // O(1)
//	Len()        // O(1)
//
// Errors:
//
//	ErrDuplicateElement – pushing a present element, or constructing
//	                      from a sequence containing repeats
//	ErrEmptyStack       – popping or peeking an empty stack
//
// Unique is not safe for concurrent use.
package stack
