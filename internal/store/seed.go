package store

import "github.com/supportbot/copilot-go/internal/model"

// DefaultTickets 内置的示例工单
func DefaultTickets() []model.Ticket {
	return []model.Ticket{
		{
			ID:           1,
			TicketNumber: "TKT-2024-001",
			Topic:        "Login Issue",
			Sentiment:    "Negative",
			Priority:     "High",
			Response:     "Please try clearing your browser cache and cookies, then attempt to log in again.",
		},
		{
			ID:           2,
			TicketNumber: "TKT-2024-002",
			Topic:        "Feature Request",
			Sentiment:    "Positive",
			Priority:     "Low",
			Response:     "Thank you for your suggestion! We have forwarded this to our product team for consideration.",
		},
		{
			ID:           3,
			TicketNumber: "TKT-2024-003",
			Topic:        "Data Export",
			Sentiment:    "Neutral",
			Priority:     "Medium",
			Response:     "You can export your data by navigating to Settings > Export Data. The process may take a few minutes.",
		},
		{
			ID:           4,
			TicketNumber: "TKT-2024-004",
			Topic:        "Billing Question",
			Sentiment:    "Neutral",
			Priority:     "Medium",
			Response:     "Your current plan includes unlimited queries. The next billing cycle starts on the 15th of next month.",
		},
		{
			ID:           5,
			TicketNumber: "TKT-2024-005",
			Topic:        "Performance Issue",
			Sentiment:    "Negative",
			Priority:     "High",
			Response:     "We are investigating this performance issue. Our engineering team will provide an update within 24 hours.",
		},
		{
			ID:           6,
			TicketNumber: "TKT-2024-006",
			Topic:        "Integration Help",
			Sentiment:    "Neutral",
			Priority:     "Medium",
			Response:     "Please refer to our API documentation at docs.atlan.com/api. You can also schedule a call with our integration team.",
		},
		{
			ID:           7,
			TicketNumber: "TKT-2024-007",
			Topic:        "Account Setup",
			Sentiment:    "Positive",
			Priority:     "Low",
			Response:     "Welcome to Atlan! Your account has been successfully set up. Check your email for next steps.",
		},
		{
			ID:           8,
			TicketNumber: "TKT-2024-008",
			Topic:        "Data Security",
			Sentiment:    "Neutral",
			Priority:     "High",
			Response:     "Your data is encrypted both at rest and in transit. We comply with SOC 2 Type II and GDPR standards.",
		},
	}
}
