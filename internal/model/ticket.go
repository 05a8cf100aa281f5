package model

// Ticket 历史工单记录（只读展示，不做校验）
type Ticket struct {
	ID           int64  `json:"id"`
	TicketNumber string `json:"ticketNumber"`
	Topic        string `json:"topic"`
	Sentiment    string `json:"sentiment"`
	Priority     string `json:"priority"`
	Response     string `json:"response"`
}
