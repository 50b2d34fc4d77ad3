package billboard

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// Selector picks the next message. Customers are drawn with a probability proportional to their
// payment, the previously shown customer is never drawn twice in a row, and alternating customers switch
// between their scroll and static message on every display.
type Selector struct {
	catalog *Catalog
	rnd     *rand.Rand
	last    int
	counter uint
}

// NewSelector starts with the final customer of the table marked as last shown.
func NewSelector(c *Catalog, rnd *rand.Rand) *Selector {
	return &Selector{
		catalog: c,
		rnd:     rnd,
		last:    len(c.Customers) - 1,
	}
}

// Next returns the customer and message to display. It does not change the selection state, call
// Shown once the message has been displayed.
func (s *Selector) Next() (Customer, Message) {
	c := s.NextCustomer()
	return c, s.MessageFor(c)
}

// NextCustomer draws a customer by weight, excluding the last shown one.
func (s *Selector) NextCustomer() Customer {
	customers := s.catalog.Customers
	if len(customers) == 0 {
		return Customer{}
	}

	total := 0
	for i, c := range customers {
		if i != s.last {
			total += c.Payment
		}
	}
	if total <= 0 {
		log.Debugf("No weight left besides customer %d, falling back to the first customer", s.last)
		return customers[0]
	}

	draw := s.rnd.Intn(total)
	cumulative := 0
	for i, c := range customers {
		if i == s.last {
			continue
		}
		cumulative += c.Payment
		if draw < cumulative {
			return c
		}
	}
	return customers[0]
}

// MessageFor picks one of the customer's messages. Alternating customers get their scroll message on
// even display counts and their static message on odd ones; everyone else gets a uniform draw.
func (s *Selector) MessageFor(c Customer) Message {
	variants := s.catalog.MessagesFor(c.ID)
	if len(variants) == 0 {
		if len(s.catalog.Messages) == 0 {
			return Message{}
		}
		return s.catalog.Messages[0]
	}

	if c.Alternating {
		want := ModeScroll
		if s.counter%2 == 1 {
			want = ModeStatic
		}
		for _, m := range variants {
			if m.Mode == want {
				return m
			}
		}
		return variants[s.counter%uint(len(variants))]
	}

	return variants[s.rnd.Intn(len(variants))]
}

// Shown records that a message of c has been displayed.
func (s *Selector) Shown(c Customer) {
	for i, customer := range s.catalog.Customers {
		if customer.ID == c.ID {
			s.last = i
			break
		}
	}
	s.counter++
}

// Last returns the most recently shown customer.
func (s *Selector) Last() Customer {
	if s.last < 0 || s.last >= len(s.catalog.Customers) {
		return Customer{}
	}
	return s.catalog.Customers[s.last]
}

// Counter is the number of messages shown so far.
func (s *Selector) Counter() uint {
	return s.counter
}
