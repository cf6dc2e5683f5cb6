package common

type Side int

const (
	UnknownSide Side = iota
	Buy
	Sell
)

var sideNames = map[Side]string{
	Buy:  "BUY",
	Sell: "SELL",
}

// ParseSide maps a wire side tag to a Side. Anything other than BUY or SELL
// is UnknownSide; callers decide what an unknown side means.
func ParseSide(tag string) Side {
	switch tag {
	case "BUY":
		return Buy
	case "SELL":
		return Sell
	}
	return UnknownSide
}

func (s Side) String() string {
	if name, ok := sideNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Opposite returns the other side. UnknownSide has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case Buy:
		return Sell
	case Sell:
		return Buy
	}
	return UnknownSide
}

type TradeKind int

const (
	// Fills are produced by a venue order allocating against resting orders.
	TradeFill TradeKind = iota
	// Flush trades close out resting liquidity left at the end of a session.
	TradeFlush
)

func (k TradeKind) String() string {
	if k == TradeFlush {
		return "flush"
	}
	return "fill"
}
