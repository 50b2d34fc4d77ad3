// Package billboard holds the advertising catalog and decides which message is shown next.
package billboard

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Mode is the way a message is presented on the display.
type Mode int

const (
	ModeStatic Mode = iota
	ModeScroll
	ModeBlink
)

func (m Mode) String() string {
	switch m {
	case ModeStatic:
		return "static"
	case ModeScroll:
		return "scroll"
	case ModeBlink:
		return "blink"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the mode names used in the configuration. "text" is an alias for static.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "static", "text":
		return ModeStatic, nil
	case "scroll":
		return ModeScroll, nil
	case "blink":
		return ModeBlink, nil
	}
	return ModeStatic, fmt.Errorf("unknown display mode %q", s)
}

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*m = parsed
	return nil
}

func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// Customer is a paying advertiser. Payment doubles as the selection weight.
type Customer struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Payment     int    `yaml:"payment"`
	Color       uint32 `yaml:"color"`
	Alternating bool   `yaml:"alternating"`
}

// Message is one advertisement.
type Message struct {
	Text     string `yaml:"text"`
	Mode     Mode   `yaml:"mode"`
	Customer string `yaml:"customer"`
}

// Catalog is the fixed set of customers and their messages. Table order matters for selection.
type Catalog struct {
	Customers []Customer `yaml:"customers"`
	Messages  []Message  `yaml:"messages"`
}

var ErrNoCustomers = errors.New("catalog has no customers")

// Validate checks that the catalog can be used by a Selector.
func (c *Catalog) Validate() error {
	if len(c.Customers) == 0 {
		return ErrNoCustomers
	}

	seen := make(map[string]bool)
	for i, customer := range c.Customers {
		if customer.ID == "" {
			return fmt.Errorf("id of customer must be specified for entry %d", i)
		}
		if seen[customer.ID] {
			return fmt.Errorf("customer %s is listed more than once", customer.ID)
		}
		seen[customer.ID] = true
		if customer.Payment <= 0 {
			return fmt.Errorf("payment of customer %s must be positive", customer.ID)
		}
	}

	for i, m := range c.Messages {
		if m.Text == "" {
			return fmt.Errorf("text of message must be specified for entry %d", i)
		}
		if !seen[m.Customer] {
			return fmt.Errorf("message %d refers to unknown customer %q", i, m.Customer)
		}
	}

	for _, customer := range c.Customers {
		messages := c.MessagesFor(customer.ID)
		if len(messages) == 0 {
			log.Warnf("Customer %s has no messages", customer.ID)
		}
		if customer.Alternating && (!hasMode(messages, ModeScroll) || !hasMode(messages, ModeStatic)) {
			return fmt.Errorf("alternating customer %s needs both a scroll and a static message", customer.ID)
		}
	}

	return nil
}

// MessagesFor returns the messages of a customer in catalog order.
func (c *Catalog) MessagesFor(id string) []Message {
	var messages []Message
	for _, m := range c.Messages {
		if m.Customer == id {
			messages = append(messages, m)
		}
	}
	return messages
}

// Customer looks up a customer by id.
func (c *Catalog) Customer(id string) (Customer, bool) {
	for _, customer := range c.Customers {
		if customer.ID == id {
			return customer, true
		}
	}
	return Customer{}, false
}

func hasMode(messages []Message, mode Mode) bool {
	for _, m := range messages {
		if m.Mode == mode {
			return true
		}
	}
	return false
}
