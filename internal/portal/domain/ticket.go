package domain

import "time"

// Ticket statuses. Tickets are created open; further lifecycle transitions
// are out of scope of the API surface.
const (
	TicketStatusOpen = "open"
)

// Ticket is a support request filed by an authenticated user. IDs are ULIDs;
// tickets are created concurrently and have no ordering contract with user
// ids.
type Ticket struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
