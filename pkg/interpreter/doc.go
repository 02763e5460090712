// Package interpreter evaluates Java fragments (expressions, statements and method
// declarations) against a global scope that persists between fragments. Method bodies
// resolve free names through the caller's scope chain, so scoping is dynamic rather than
// lexical.
package interpreter
