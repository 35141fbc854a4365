/*
Package cash keeps the balance book: one Set of coins per address.

The Controller moves value between accounts with basic sanity checks
(positive amounts, sufficient funds) and issues new coins into an
account. It is intentionally unaware of who authorized a transfer -
authorization is the job of the calling extension.
*/
package cash
