package wire

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"allocator/internal/common"
)

type MessageType int

const (
	Ignored MessageType = iota
	Declare
	Venue
	Finish
)

var messageTypeNames = map[MessageType]string{
	Ignored: "ignored",
	Declare: "DF",
	Venue:   "VE",
	Finish:  "FINISH",
}

func (t MessageType) String() string { return messageTypeNames[t] }

type Message interface {
	GetType() MessageType
}

// Line format constants
const (
	fieldSep      = "\t"
	finishMarker  = "FINISH"
	orderFieldLen = 6 // tag, message id, side, size, price, product
)

// Generic message type. Finish and ignored lines carry nothing else.
type BaseMessage struct {
	TypeOf MessageType
}

func (m BaseMessage) GetType() MessageType {
	return m.TypeOf
}

// OrderMessage is a DF or VE line.
type OrderMessage struct {
	BaseMessage
	MessageID string
	Side      common.Side
	Size      int64
	Price     decimal.Decimal
	Product   string
}

func (m OrderMessage) Order() common.Order {
	return common.Order{
		MessageID: m.MessageID,
		Side:      m.Side,
		Size:      m.Size,
		Price:     m.Price,
		Product:   m.Product,
	}
}

// ParseMessage classifies one input line.
//
// The end-of-session marker must be the whole line. Any line whose leading
// token is not DF or VE is ignored, including one that merely starts with
// FINISH. DF and VE lines must carry six tab-separated fields with an
// integer size and a decimal price; extra fields are ignored. Side tags are
// not validated here.
func ParseMessage(line string) (Message, error) {
	line = strings.TrimSuffix(line, "\r")
	if line == finishMarker {
		return BaseMessage{TypeOf: Finish}, nil
	}

	parts := strings.Split(line, fieldSep)
	switch parts[0] {
	case "DF":
		return parseOrder(Declare, parts)
	case "VE":
		return parseOrder(Venue, parts)
	default:
		return BaseMessage{TypeOf: Ignored}, nil
	}
}

func parseOrder(typeOf MessageType, parts []string) (OrderMessage, error) {
	if len(parts) < orderFieldLen {
		return OrderMessage{}, errors.Wrapf(ErrMalformedMessage, "%s line has %d fields, want %d", typeOf, len(parts), orderFieldLen)
	}

	m := OrderMessage{BaseMessage: BaseMessage{TypeOf: typeOf}}
	m.MessageID = parts[1]
	m.Side = common.ParseSide(parts[2])

	size, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return OrderMessage{}, errors.Wrapf(ErrInvalidSize, "%s %s size %q", typeOf, m.MessageID, parts[3])
	}
	m.Size = size

	price, err := decimal.NewFromString(parts[4])
	if err != nil {
		return OrderMessage{}, errors.Wrapf(ErrInvalidPrice, "%s %s price %q", typeOf, m.MessageID, parts[4])
	}
	m.Price = price
	m.Product = parts[5]

	return m, nil
}
