// Package container provides an optional, thin keyed index over already
// connected nodes. It mediates nothing about adjacency — a node from
// package node or package cnode is fully functional without ever being
// inserted into one — it only adds key-indexed lookup and iteration over
// a set of node handles a caller wants to keep track of collectively.
//
// Grounded in core.Graph's private vertices map (core/types.go,
// core/methods_vertices.go) in the teacher, generalized from "a graph's
// internal vertex table" to "a standalone index any caller can build over
// self-contained nodes."
package container
