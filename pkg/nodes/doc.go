/*
Package nodes provides the built-in dialogue nodes.

A Line displays its text and continues to a fixed successor. A Choice displays
a prompt followed by its options, in the order they were inserted, then reads
lines from the console until one matches a label exactly (after trimming
surrounding whitespace). The matched option decides the successor.
*/
package nodes
