// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import "github.com/gogpu/renderres"

// lruNode is a node in a doubly-linked LRU list.
// The node stores the identity for O(1) deletion from the shard map.
type lruNode struct {
	id   renderres.BindGroupID
	prev *lruNode
	next *lruNode
}

// lruList is a doubly-linked list for LRU eviction.
// The list is not thread-safe; the owning shard handles locking.
//
// The head is the most recently used, tail is least recently used.
type lruList struct {
	head *lruNode
	tail *lruNode
	len  int
}

// newLRUList creates an empty LRU list.
func newLRUList() *lruList {
	return &lruList{}
}

// Len returns the number of nodes in the list.
func (l *lruList) Len() int {
	return l.len
}

// PushFront adds a new node at the front (most recently used).
// Returns the created node for later access.
func (l *lruList) PushFront(id renderres.BindGroupID) *lruNode {
	node := &lruNode{id: id}
	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.len++
	return node
}

// MoveToFront moves an existing node to the front (most recently used).
func (l *lruList) MoveToFront(node *lruNode) {
	if node == nil || node == l.head {
		return
	}

	l.unlink(node)

	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// Remove removes a node from the list.
func (l *lruList) Remove(node *lruNode) {
	if node == nil {
		return
	}
	l.unlink(node)
}

// RemoveOldest removes and returns the identity of the least recently
// used node. Returns false if the list is empty.
func (l *lruList) RemoveOldest() (renderres.BindGroupID, bool) {
	if l.tail == nil {
		return 0, false
	}

	node := l.tail
	l.unlink(node)
	return node.id, true
}

// Clear removes all nodes from the list.
func (l *lruList) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// unlink removes a node from the list and clears its pointers.
func (l *lruList) unlink(node *lruNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	node.prev = nil
	node.next = nil
	l.len--
}
