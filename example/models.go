// Package example holds sample model types and the codec file generated for
// them by the jasonify command.
package example

//go:generate go run github.com/reoring/jasonify/cmd/jasonify generate --pkg .

// Status is the lifecycle state of an order.
type Status string

const (
	StatusOpen    Status = "open"
	StatusShipped Status = "shipped"
)

// Address is a postal address.
//
//jasonify:json
type Address struct {
	Street string  `json:"street"`
	City   string  `json:"city"`
	Zip    *string `json:"zip"`
}

// Customer places orders. The email is only readable through Email.
//
//jasonify:json
type Customer struct {
	Name    string   `json:"name"`
	Address *Address `json:"address"`
	Tags    []string `json:"tags"`
	email   string
}

// NewCustomer returns a customer with the given name and email.
func NewCustomer(name, email string) Customer {
	return Customer{Name: name, email: email}
}

// Email returns the customer's email address.
func (c Customer) Email() string { return c.email }

//jasonify:json
type Line struct {
	SKU   string  `json:"sku"`
	Qty   int32   `json:"qty"`
	Price float32 `json:"price"`
	Gift  bool    `json:"gift"`
}

//jasonify:json
type Order struct {
	ID       string            `json:"id"`
	Status   Status            `json:"status"`
	Customer Customer          `json:"customer"`
	Lines    []Line            `json:"lines"`
	Batches  [][]Line          `json:"batches"`
	Attrs    map[string]string `json:"attrs"`
	Discount *float64          `json:"discount"`
	Checksum [4]byte           `json:"checksum"`
	Payload  []byte            `json:"payload"`
	Total    float64           `json:"total"`
	Cache    map[string]any    `json:"-"`
}

// Grid exercises fixed arrays, nested maps and a list of maps.
//
//jasonify:json
type Grid struct {
	Cells   [2][3]int16                `json:"cells"`
	Index   map[Status]map[string]uint `json:"index"`
	Groups  []map[string]Line          `json:"groups"`
	Weights []*float64                 `json:"weights"`
}

//jasonify:json
type Empty struct{}
