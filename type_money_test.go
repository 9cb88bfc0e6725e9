package tracker

import "testing"

func TestMoney_Arithmetic(t *testing.T) {
	if got := USD(0.1).Add(USD(0.2)); !got.Equal(USD(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want exactly 0.3", got)
	}
	if got := USD(150.75).MulInt(4); !got.Equal(USD(603)) {
		t.Errorf("150.75 × 4 = %s, want $603.00", got)
	}
	if got := USD(100).Sub(USD(99.99)); !got.Equal(USD(0.01)) {
		t.Errorf("100 - 99.99 = %s, want exactly 0.01", got)
	}
}

func TestMoney_Comparisons(t *testing.T) {
	if !USD(50).LessThan(USD(100)) {
		t.Error("50 < 100 is false")
	}
	if USD(100).LessThan(USD(100)) {
		t.Error("100 < 100 is true")
	}
	if !USD(100).GreaterThanOrEqual(USD(100)) {
		t.Error("100 >= 100 is false")
	}
	if !USD(-1).IsNegative() || !USD(1).IsPositive() || !USD(0).IsZero() {
		t.Error("sign predicates are wrong")
	}
}

func TestMoney_String(t *testing.T) {
	if got := USD(1234.56).String(); got != "$1,234.56" {
		t.Errorf("String() = %q, want $1,234.56", got)
	}
	if got := USD(10000).String(); got != "$10,000.00" {
		t.Errorf("String() = %q, want $10,000.00", got)
	}
}

func TestMoney_StringRoundsSubCentForDisplay(t *testing.T) {
	m := mustMoney("10.005", "USD")
	if got := m.String(); got != "$10.01" {
		t.Errorf("String() = %q, want $10.01 (half away from zero)", got)
	}
	if got := mustMoney("10.004", "USD").String(); got != "$10.00" {
		t.Errorf("String() = %q, want $10.00", got)
	}
	// Display rounding never touches the stored value.
	if got := m.MulInt(2); !got.Equal(mustMoney("20.01", "USD")) {
		t.Errorf("10.005 × 2 = %s, want exactly 20.01", got)
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := USD(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if got := USD(5).SignedString(); got != "+$5.00" {
		t.Errorf("SignedString(5) = %q, want +$5.00", got)
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("150.75", "USD")
	if err != nil {
		t.Fatalf("ParseMoney error = %v", err)
	}
	if !m.Equal(USD(150.75)) {
		t.Errorf("ParseMoney = %s, want $150.75", m)
	}

	if _, err := ParseMoney("abc", "USD"); err == nil {
		t.Error("ParseMoney(abc) succeeded")
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	// The zero Money combines with any currency.
	if got := (Money{}).Add(USD(5)); got.Currency() != "USD" || !got.Equal(USD(5)) {
		t.Errorf("zero + $5 = %s %s", got, got.Currency())
	}
}
