package handlers

// HandlerBundle groups the handler sets registered by the route layer.
type HandlerBundle struct {
	User         *UserHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
}
