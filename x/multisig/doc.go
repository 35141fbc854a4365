/*
Package multisig implements the quorum vault engine.

A Vault is created once with a fixed owner set and an activation
threshold. Owners submit transactions (destination, amount, opaque
payload), confirm or revoke their approval, and finally execute once
enough confirmations are collected. Execution performs the single
external call through an Executor and commits the executed mark only
if that call succeeds; on failure every staged change is rolled back
and the transaction stays eligible for a later attempt.

All state changing operations are serialized through the vault and an
engine wide guard rejects any mutation attempted while the external
call is in flight, so a callee cannot re-enter the vault to execute
the same transaction twice.
*/
package multisig
