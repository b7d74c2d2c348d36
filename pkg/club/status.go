package club

// ClientStatus is the lifecycle status of a client or a placement.
type ClientStatus string

const (
	StatusNew      ClientStatus = "new"
	StatusRenewed  ClientStatus = "renewed" // first renewal after enrollment
	StatusReturned ClientStatus = "returned"
	StatusActive   ClientStatus = "active"
	StatusCanceled ClientStatus = "canceled"
)

// PayStatus is the derived payment status of a client.
type PayStatus string

const (
	PayPending PayStatus = "pending"
	PayActive  PayStatus = "active"
	PayDebt    PayStatus = "debt"
)
