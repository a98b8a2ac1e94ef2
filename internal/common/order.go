package common

// Order is the identity and mutable state of one resting or in-flight
// order. Once RemainingQuantity reaches zero the order must not appear in
// either the book or the order index.
type Order struct {
	ID                uint64
	Side              Side
	Price             uint64 // tick units; 0 denotes a market order
	OriginalQuantity  uint64
	RemainingQuantity uint64
	TimeInForce       TimeInForce
	PostOnly          bool
	// Sequence is assigned the moment an order rests; it is the tiebreaker
	// for orders sharing a price level, though FIFO append already makes
	// the ordering implicit.
	Sequence uint64
}

// IsMarket reports whether the order carries no limit price.
func (o Order) IsMarket() bool {
	return o.Price == 0
}
