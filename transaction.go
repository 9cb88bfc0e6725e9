package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TxKind is a typed string identifying what a transaction did.
type TxKind string

// Transaction kinds recorded in an account's history.
const (
	TxBuy      TxKind = "BUY"
	TxSell     TxKind = "SELL"
	TxDeposit  TxKind = "DEPOSIT"
	TxWithdraw TxKind = "WITHDRAW"
)

// Transaction is the immutable record of one completed operation on an
// account. It is never edited or removed once appended.
//
// BUY and SELL carry Ticker, Quantity and Price (per share); DEPOSIT and
// WITHDRAW carry only Amount. Amount is always the total cash moved.
type Transaction struct {
	ID       uuid.UUID
	Kind     TxKind
	Ticker   string
	Quantity int64
	Price    Money // per share, zero for cash movements
	Amount   Money // total cash moved
	Time     time.Time
}

// newTrade records a completed buy or sell.
func newTrade(kind TxKind, ticker string, quantity int64, price, amount Money, at time.Time) Transaction {
	return Transaction{
		ID:       uuid.New(),
		Kind:     kind,
		Ticker:   ticker,
		Quantity: quantity,
		Price:    price,
		Amount:   amount,
		Time:     at,
	}
}

// newCashMovement records a completed deposit or withdrawal.
func newCashMovement(kind TxKind, amount Money, at time.Time) Transaction {
	return Transaction{
		ID:     uuid.New(),
		Kind:   kind,
		Amount: amount,
		Time:   at,
	}
}

// ShortID returns the first eight hex digits of the transaction ID,
// enough to identify one record in a rendered history.
func (t Transaction) ShortID() string {
	return t.ID.String()[:8]
}

func (t Transaction) String() string {
	switch t.Kind {
	case TxBuy, TxSell:
		return fmt.Sprintf("[%s] %s %d shares of %s at %s each",
			t.Time.Format("2006-01-02"), t.Kind, t.Quantity, t.Ticker, t.Price)
	default:
		return fmt.Sprintf("[%s] %s %s", t.Time.Format("2006-01-02"), t.Kind, t.Amount)
	}
}
