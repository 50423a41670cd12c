// Package fwdlist provides a generic singly-linked list which owns its nodes
// exclusively and sorts itself in place with a stable merge sort.
/*
A list never shares nodes with another list. Nodes move between lists only
through Split and Merge, which relink existing nodes, and Clone, which
allocates a fresh chain.
*/
package fwdlist
