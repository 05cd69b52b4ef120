package datastruct

import "iter"

// An intrusive linked list is a data structure where the nodes are
// self-contained and manage their own links to other nodes.
type IntrusiveLinkedList[T any] struct {
	First *Node[T]
	Last  *Node[T]

	len int
}

type Node[T any] struct {
	Next *Node[T]
	Prev *Node[T]
	Data T
}

func NewIntrusiveLinkedList[T any]() *IntrusiveLinkedList[T] {
	return &IntrusiveLinkedList[T]{}
}

// NewNode wraps data in a detached node.
func NewNode[T any](data T) *Node[T] {
	return &Node[T]{Data: data}
}

// Len returns the number of linked nodes.
func (l *IntrusiveLinkedList[T]) Len() int {
	return l.len
}

// Insert a new node after an existing node.
func (l *IntrusiveLinkedList[T]) InsertAfter(node *Node[T], newNode *Node[T]) {
	newNode.Prev = node
	newNode.Next = node.Next
	if next := node.Next; next != nil {
		next.Prev = newNode
	} else {
		l.Last = newNode
	}
	node.Next = newNode
	l.len++
}

// Insert a new node at the end of the list.
func (l *IntrusiveLinkedList[T]) Append(newNode *Node[T]) {
	if last := l.Last; last != nil {
		l.InsertAfter(last, newNode)
		return
	}
	newNode.Prev = nil
	newNode.Next = nil
	l.First = newNode
	l.Last = newNode
	l.len++
}

// All yields the values front to back.
func (l *IntrusiveLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.First; node != nil; node = node.Next {
			if !yield(node.Data) {
				return
			}
		}
	}
}
