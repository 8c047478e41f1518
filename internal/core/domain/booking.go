package domain

import "time"

// BookingStatus is the lifecycle state reported by the backend. The client
// only displays it; transitions are owned server-side.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingAccepted  BookingStatus = "ACCEPTED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking is a customer's booking, or from the technician's side a job
// request. Read-only on the client.
type Booking struct {
	ID                 int64         `json:"id"`
	BookingNumber      string        `json:"bookingNumber"`
	UserID             int64         `json:"userId"`
	TechnicianID       int64         `json:"technicianId"`
	Status             BookingStatus `json:"status"`
	ScheduledDateTime  time.Time     `json:"scheduledDateTime"`
	ServiceDescription string        `json:"serviceDescription,omitempty"`
	ServiceAddress     string        `json:"serviceAddress,omitempty"`
	EstimatedPrice     float64       `json:"estimatedPrice,omitempty"`
	FinalPrice         float64       `json:"finalPrice,omitempty"`
	PaymentStatus      string        `json:"paymentStatus,omitempty"`
}
