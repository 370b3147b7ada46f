package entities

type PaymentStatusType string

const (
	PaymentAuthorized PaymentStatusType = "authorized"
	PaymentCaptured   PaymentStatusType = "captured"
	PaymentFailed     PaymentStatusType = "failed"
	PaymentRefunded   PaymentStatusType = "refunded"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

// PaymentEvent - событие платёжного провайдера из Kafka.
type PaymentEvent struct {
	OrderID string
	Status  PaymentStatusType
}
