package entities

import "time"

// DeliverySlot - одно предстоящее окно доставки. Считается заново на каждый
// запрос от текущего времени, нигде не сохраняется.
type DeliverySlot struct {
	Day    DeliveryDay
	Date   time.Time
	Cutoff time.Time
}

type SlotAvailability struct {
	Slot       DeliverySlot
	Offered    bool
	PastCutoff bool
	Available  bool
	Remaining  *int64
}

// Availability - агрегированный ответ по почтовому индексу: либо зона с
// полным набором слотов, либо Serviceable=false без зоны. Частичных ответов не бывает.
type Availability struct {
	PostalCode  string
	Serviceable bool
	Zone        *DeliveryZone
	Slots       []SlotAvailability
}
