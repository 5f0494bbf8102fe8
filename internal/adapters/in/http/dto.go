package http

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Setting is a single key/value pair.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SetSettingRequest is the body of PUT /api/v1/settings/:key.
type SetSettingRequest struct {
	Value string `json:"value"`
}

// Report is an assembled report.
type Report struct {
	Format  string `json:"format"`
	Header  string `json:"header"`
	Content string `json:"content"`
	Footer  string `json:"footer"`
	Text    string `json:"text"`
}

// Product is one order line.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	Products     []Product `json:"products"`
	DeliveryCost float64   `json:"deliveryCost"`
	Discount     float64   `json:"discount"`
}

// CloneOrderRequest is the optional body of POST /api/v1/orders/:id/clone.
// A missing discount keeps the source's value.
type CloneOrderRequest struct {
	Discount *float64 `json:"discount"`
}

// OrderCreated is returned by order creation and cloning.
type OrderCreated struct {
	ID string `json:"id"`
}

// Order is the read model of an order.
type Order struct {
	ID           string    `json:"id"`
	Products     []Product `json:"products"`
	DeliveryCost float64   `json:"deliveryCost"`
	Discount     float64   `json:"discount"`
	Total        float64   `json:"total"`
	Text         string    `json:"text"`
}
