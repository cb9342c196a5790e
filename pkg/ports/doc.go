/*
Package ports defines the interfaces between the Parley dialogue core and the outside world.

# Key Interfaces

  - Console: the line-oriented output and input boundary (text terminal, NDJSON pipe, tests).
  - Node: the polymorphic unit of dialogue. It emits its content and reports its successor.
  - Describer: optional introspection implemented by the built-in nodes.
*/
package ports
