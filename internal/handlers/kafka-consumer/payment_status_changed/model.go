package payment_status_changed

// statusEvent - формат сообщения платёжного провайдера в топике
// payment.status.changed.
type statusEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
