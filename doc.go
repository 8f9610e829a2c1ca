// Package access is the access-control and identity-verification core of
// the agency platform: credential verification, signed stateless session
// tokens, and the zone decision table that routes every request to the area
// its role permits.
//
// Zones and decisions:
//   - Every request path classifies into one of five zones (admin,
//     dashboard, portal, auth pages, public). Decide evaluates exactly one
//     zone rule per request and returns Allow, DenyUnauthenticated, or a
//     redirect to the caller's permitted zone.
//   - Roles and zones are closed types so the decision table is checked
//     exhaustively by the test suite instead of string matching.
//
// Sessions:
//   - Login verifies a credential pair against the store and mints a signed
//     token embedding role and tenant id, so no request after login needs a
//     store round-trip. Tokens that are expired, tampered, or malformed all
//     decode to the same ErrTokenInvalid.
//
// Webhooks:
//   - The webhook subpackage verifies inbound payload authenticity with a
//     keyed digest over the raw bytes and constant-time comparison, then
//     dispatches by event type. Unknown event types are acknowledged.
package access
