package musou

// Ledger is the score, which doubles as the currency spent on abilities.
type Ledger struct {
	balance int
}

// NewLedger creates a ledger holding start.
func NewLedger(start int) *Ledger {
	return &Ledger{balance: start}
}

// Balance returns the current score.
func (l *Ledger) Balance() int {
	return l.balance
}

// Add credits n points.
func (l *Ledger) Add(n int) {
	l.balance += n
}

// CanAfford reports whether the balance covers cost.
func (l *Ledger) CanAfford(cost int) bool {
	return l.balance >= cost
}

// Spend deducts cost if the balance covers it and reports whether it did.
func (l *Ledger) Spend(cost int) bool {
	if !l.CanAfford(cost) {
		return false
	}
	l.balance -= cost
	return true
}

// Charge deducts cost unconditionally. The balance may go negative.
func (l *Ledger) Charge(cost int) {
	l.balance -= cost
}
