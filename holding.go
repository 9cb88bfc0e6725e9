package tracker

import "fmt"

// Holding represents an account's current position in one instrument.
//
// A holding only exists while its quantity is strictly positive: selling
// the last share removes the entry instead of leaving it at zero.
type Holding struct {
	Ticker   string
	Quantity int64
}

func (h Holding) String() string {
	return fmt.Sprintf("%s: %d shares", h.Ticker, h.Quantity)
}
