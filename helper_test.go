package tracker

import "testing"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// mustRegister registers a user and fails the test on error.
func mustRegister(t *testing.T, r *Registry, username, password string) *Account {
	t.Helper()
	a, err := r.Register(username, password)
	if err != nil {
		t.Fatalf("Register(%q) error = %v", username, err)
	}
	return a
}

// mustBuy buys and fails the test on error.
func mustBuy(t *testing.T, r *Registry, a *Account, ticker string, qty int64, price Money) {
	t.Helper()
	if err := r.Buy(a, ticker, qty, price); err != nil {
		t.Fatalf("Buy(%s, %d, %s) error = %v", ticker, qty, price, err)
	}
}

// mustSell sells and fails the test on error.
func mustSell(t *testing.T, r *Registry, a *Account, ticker string, qty int64, price Money) {
	t.Helper()
	if err := r.Sell(a, ticker, qty, price); err != nil {
		t.Fatalf("Sell(%s, %d, %s) error = %v", ticker, qty, price, err)
	}
}
