/*
Package nftoken implements a minimal non fungible token ledger.

Tokens are grouped into collections. A collection has a single owner who
is the only account allowed to issue new tokens into it. Each token is
identified by its collection and a token ID that is unique within that
collection.

An owner can grant an operator the right to transfer all of their tokens
within a collection. Approvals are bound to the granting owner, so once a
token changes hands the new owner has to approve the operator again. This
is what the marketplace relies on: sellers approve the marketplace
operator, and the approval dies together with their ownership.

The Controller type exposes ownership lookup and transfer to other
extensions without going through message dispatch.
*/
package nftoken
