package tracker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// The error kinds every operation can fail with. All of them are
// expected, recoverable and caller-visible; match with errors.Is.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNoSuchHolding      = errors.New("no shares of that stock owned")
	ErrInsufficientShares = errors.New("insufficient shares")
)

// Registry is the process-wide store mapping usernames to accounts.
//
// It is an explicit object rather than package state so tests (or a
// multi-tenant embedding) can run several independent registries.
// Accounts are only ever added; there is no deletion.
//
// Every operation either fully succeeds or fails with one of the error
// kinds above and zero state mutation: validation happens entirely
// before the first write.
type Registry struct {
	mu       sync.RWMutex
	accounts map[string]*Account

	now func() time.Time // swapped out in tests
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		accounts: make(map[string]*Account),
		now:      time.Now,
	}
}

// Register creates a new account under username with the fixed starting
// cash balance. It fails with ErrUsernameTaken if the username already
// exists; a taken username stays taken forever, so retrying after a
// success always fails.
func (r *Registry) Register(username, password string) (*Account, error) {
	if username == "" {
		return nil, errors.New("username is empty")
	}
	if password == "" {
		return nil, errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[username]; ok {
		return nil, fmt.Errorf("username %q: %w", username, ErrUsernameTaken)
	}
	a := newAccount(username, hash)
	r.accounts[username] = a
	return a, nil
}

// Login returns the account registered under username. It fails with
// ErrUserNotFound for an unknown username and ErrInvalidCredentials for
// a wrong password. Login never mutates state.
func (r *Registry) Login(username, password string) (*Account, error) {
	r.mu.RLock()
	a, ok := r.accounts[username]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, ErrUserNotFound)
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// Buy purchases quantity shares of ticker at price per share, debiting
// exactly quantity×price from the account's cash. It fails with
// ErrInsufficientFunds when the total cost exceeds the available cash.
func (r *Registry) Buy(a *Account, ticker string, quantity int64, price Money) error {
	if err := checkTrade(ticker, quantity, price); err != nil {
		return err
	}
	ticker = normalizeTicker(ticker)
	total := price.MulInt(quantity)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cash.LessThan(total) {
		return fmt.Errorf("buy %d %s: %w: need %s, have %s",
			quantity, ticker, ErrInsufficientFunds, total, a.cash)
	}
	a.subtractCash(total)
	a.appendTransaction(newTrade(TxBuy, ticker, quantity, price, total, r.now()))
	a.addHoldingQuantity(ticker, quantity)
	return nil
}

// Sell sells quantity shares of ticker at price per share, crediting
// exactly quantity×price to the account's cash. It fails with
// ErrNoSuchHolding when the account owns no shares of ticker at all, and
// with ErrInsufficientShares when it owns some but fewer than quantity.
// Selling a position down to zero removes it from the holdings entirely.
func (r *Registry) Sell(a *Account, ticker string, quantity int64, price Money) error {
	if err := checkTrade(ticker, quantity, price); err != nil {
		return err
	}
	ticker = normalizeTicker(ticker)

	a.mu.Lock()
	defer a.mu.Unlock()
	h, ok := a.holdings[ticker]
	if !ok {
		return fmt.Errorf("sell %s: %w", ticker, ErrNoSuchHolding)
	}
	if h.Quantity < quantity {
		return fmt.Errorf("sell %s: %w: own %d, tried to sell %d",
			ticker, ErrInsufficientShares, h.Quantity, quantity)
	}
	if h.Quantity == quantity {
		a.removeHolding(ticker)
	} else {
		a.addHoldingQuantity(ticker, -quantity)
	}
	saleValue := price.MulInt(quantity)
	a.addCash(saleValue)
	a.appendTransaction(newTrade(TxSell, ticker, quantity, price, saleValue, r.now()))
	return nil
}

// Deposit credits amount to the account's cash.
func (r *Registry) Deposit(a *Account, amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit amount must be positive, got %s", amount)
	}
	if err := checkCurrency(amount); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.addCash(amount)
	a.appendTransaction(newCashMovement(TxDeposit, amount, r.now()))
	return nil
}

// Withdraw debits amount from the account's cash. It fails with
// ErrInsufficientFunds when amount exceeds the available cash, so cash
// never goes negative.
func (r *Registry) Withdraw(a *Account, amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("withdrawal amount must be positive, got %s", amount)
	}
	if err := checkCurrency(amount); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cash.LessThan(amount) {
		return fmt.Errorf("withdraw: %w: need %s, have %s", ErrInsufficientFunds, amount, a.cash)
	}
	a.subtractCash(amount)
	a.appendTransaction(newCashMovement(TxWithdraw, amount, r.now()))
	return nil
}

// checkTrade guards the caller contract on buy/sell arguments. The
// front-end validates first, so a failure here is a programming error on
// the caller's side, but it surfaces as an error, never a panic.
func checkTrade(ticker string, quantity int64, price Money) error {
	if normalizeTicker(ticker) == "" {
		return errors.New("ticker is empty")
	}
	if quantity < 1 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if !price.IsPositive() {
		return fmt.Errorf("price must be positive, got %s", price)
	}
	return checkCurrency(price)
}

// checkCurrency rejects amounts in any currency other than the one
// accounts are denominated in, so a bad caller gets an error instead of
// the currency-mismatch panic deep inside Money arithmetic. The weak ""
// currency is accepted, it combines with anything.
func checkCurrency(m Money) error {
	if c := m.Currency(); c != "" && c != DefaultCurrency {
		return fmt.Errorf("unsupported currency %q, accounts are denominated in %s", c, DefaultCurrency)
	}
	return nil
}
