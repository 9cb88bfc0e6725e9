package tracker

import (
	"slices"
	"strings"
	"sync"
)

// startingCash is credited to every account at registration.
var startingCash = mustMoney("10000.00", DefaultCurrency)

// Account holds one user's cash, positions and trade history.
//
// The Registry owns every account and is its sole mutator. The mutators
// below do arithmetic and bookkeeping only, no validation: callers
// guarantee the post-conditions (cash never negative, holding quantities
// always strictly positive) before calling them.
type Account struct {
	mu sync.Mutex // serializes all operations and snapshots on this account

	username     string
	passwordHash []byte
	cash         Money
	holdings     map[string]*Holding
	transactions []Transaction
}

func newAccount(username string, passwordHash []byte) *Account {
	return &Account{
		username:     username,
		passwordHash: passwordHash,
		cash:         startingCash,
		holdings:     make(map[string]*Holding),
	}
}

// Username returns the account's immutable identity.
func (a *Account) Username() string { return a.username }

// CashBalance returns the account's current cash.
func (a *Account) CashBalance() Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cash
}

// Holdings returns a snapshot of the account's positions, in ascending
// ticker order.
func (a *Account) Holdings() []Holding {
	a.mu.Lock()
	defer a.mu.Unlock()
	hs := make([]Holding, 0, len(a.holdings))
	for _, h := range a.holdings {
		hs = append(hs, *h)
	}
	slices.SortFunc(hs, func(x, y Holding) int { return strings.Compare(x.Ticker, y.Ticker) })
	return hs
}

// Holding returns the position for ticker, if the account holds one.
func (a *Account) Holding(ticker string) (Holding, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	h, ok := a.holdings[normalizeTicker(ticker)]
	if !ok {
		return Holding{}, false
	}
	return *h, true
}

// Transactions returns a snapshot of the account's history, oldest first.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.transactions)
}

// mutators, callers hold a.mu

func (a *Account) addCash(m Money)      { a.cash = a.cash.Add(m) }
func (a *Account) subtractCash(m Money) { a.cash = a.cash.Sub(m) }

// addHoldingQuantity creates the holding if absent, otherwise adds delta
// to the existing quantity. Removal goes through removeHolding.
func (a *Account) addHoldingQuantity(ticker string, delta int64) {
	if h, ok := a.holdings[ticker]; ok {
		h.Quantity += delta
		return
	}
	a.holdings[ticker] = &Holding{Ticker: ticker, Quantity: delta}
}

func (a *Account) removeHolding(ticker string) { delete(a.holdings, ticker) }

func (a *Account) appendTransaction(tx Transaction) {
	a.transactions = append(a.transactions, tx)
}

// normalizeTicker maps a user-supplied ticker to its canonical map key.
func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
