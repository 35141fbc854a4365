/*
Package covault defines the types and interfaces shared by all covault
packages.

covault is an embeddable quorum vault: a fixed set of co-owners must
collectively approve a proposed transfer before it executes. The root
package holds only the building blocks - addresses, the key-value store
contracts with savepoint semantics, and the Persistent serialization
interface. The engine itself lives in x/multisig, balances in x/cash,
storage primitives in store and orm.
*/
package covault
