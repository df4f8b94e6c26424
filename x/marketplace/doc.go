/*
Package marketplace implements a fixed-price NFT marketplace with escrowed
bids, autonomous offer expiration and owner administrated governance.

Sellers list tokens through sell offers. Each offer is unique per
(collection, token) pair and carries a fixed asking price and a lifetime.
When the lifetime elapses a scheduled cron task removes the offer without
any user interaction.

Buyers either purchase at the asking price or place an escrowed bid that
the token owner can accept. All payments are settled through x/cash with a
configurable percentage fee collected for the marketplace owner.

The marketplace never takes custody of tokens. It operates on them through
an operator identity that sellers must approve in the token ledger, and it
re-queries ownership on every state transition so that off-market
transfers invalidate stale offers instead of being silently overridden.
*/
package marketplace
