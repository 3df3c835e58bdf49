/*
Package linear implements the classic linear data structures in pure Go:
a doubly linked list with O(1) positional insert and remove, a bounded stack,
a bounded queue, a queue built from two stacks and a stack tracking its
minimum in O(1).
*/
package linear
