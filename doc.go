// Package tracker implements an in-memory paper-trading portfolio: users
// register with a starting cash balance, buy and sell positions at an
// operator-supplied price, and review their trade history.
//
// The core functionalities include:
//   - User Registry: registering accounts under unique usernames and
//     authenticating them, with salted password hashes.
//   - Trading: atomic buy/sell operations that validate funds and share
//     counts before mutating anything, so an account is never left in a
//     partially updated state.
//   - Cash Management: deposits and withdrawals on top of the fixed
//     starting balance.
//   - Bookkeeping: an append-only, chronological transaction log per
//     account, and a holdings view that never contains empty positions.
//
// All money flows through an exact decimal type; there is no floating
// point anywhere in a balance. State lives for the lifetime of the
// process only. This package serves as the foundational logic for the
// `ptk` command-line tool.
package tracker
