package handlers

// HandlerBundle aggregates the handlers the route registrar wires up.
type HandlerBundle struct {
	Cart      *CartHandler
	Plans     *PlanHandler
	Coupons   *CouponHandler
	Addresses *AddressHandler
}
