/*
Package domain contains the core types of the Parley dialogue engine.

It defines node identifiers, the reserved sentinel ids, the outcome of edge
creation, lifecycle events and the sentinel errors shared by every other
package. This package is kept pure and free of I/O.

# Key Entities

  - NodeID: unsigned key of a node. 0 ends a conversation, 1 starts it.
  - ConnectResult: outcome of connecting two nodes of a dialogue.
  - NodeInfo: a read-only description of a node, used for introspection.
  - LifecycleHooks: callbacks fired while a dialogue is traversed.
*/
package domain
