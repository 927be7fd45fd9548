package entity

import "encoding/json"

// FlexString decodes backend fields that arrive as either a JSON string or a
// number. Malformed values degrade to the empty string rather than failing —
// receipt display must not block on backend inconsistency.
type FlexString string

func (s FlexString) String() string {
	return string(s)
}

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = FlexString(num.String())
		return nil
	}
	*s = ""
	return nil
}

// SaleResponseItem is a line item as the backend returns it. Name variants
// (camelCase, snake_case, bare) coexist because different backend code paths
// populate different fields.
type SaleResponseItem struct {
	ID          FlexString `json:"id,omitempty"`
	ProductID   FlexString `json:"productId,omitempty"`
	ProductName string     `json:"productName,omitempty"`
	RawName     string     `json:"product_name,omitempty"`
	Name        string     `json:"name,omitempty"`
	Price       float64    `json:"price,omitempty"`
	Quantity    int        `json:"quantity,omitempty"`
	Total       float64    `json:"total,omitempty"`
}

// CustomerDetail is the nested customer object under _raw.
type CustomerDetail struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// TableDetail is the nested table object under _raw.
type TableDetail struct {
	Number string `json:"number,omitempty"`
}

// RawSale is the untranslated snake_case sub-object some backend responses
// nest under "_raw". Fields here win over their camelCase counterparts.
type RawSale struct {
	ReceiptNumber  string          `json:"receipt_number,omitempty"`
	CustomerDetail *CustomerDetail `json:"customer_detail,omitempty"`
	TableDetail    *TableDetail    `json:"table_detail,omitempty"`
}

// SaleResponse is the backend's sale-creation response. It may carry fields
// in normalized camelCase, nested raw snake_case under _raw, or both.
type SaleResponse struct {
	ID            FlexString         `json:"id,omitempty"`
	Outlet        FlexString         `json:"outlet,omitempty"`
	ReceiptNumber string             `json:"receiptNumber,omitempty"`
	Items         []SaleResponseItem `json:"items,omitempty"`
	Subtotal      float64            `json:"subtotal,omitempty"`
	Tax           float64            `json:"tax,omitempty"`
	Discount      float64            `json:"discount,omitempty"`
	Total         float64            `json:"total,omitempty"`
	CustomerName  string             `json:"customerName,omitempty"`
	CustomerPhone string             `json:"customerPhone,omitempty"`
	TableName     string             `json:"tableName,omitempty"`
	CreatedAt     string             `json:"createdAt,omitempty"`
	Raw           *RawSale           `json:"_raw,omitempty"`
}

// ReceiptItem is a single line item on the canonical receipt.
type ReceiptItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Receipt is the canonical, template-ready representation of a completed
// sale, independent of whichever response shape produced it. It is a value
// object composed at normalization time, not a stored record.
type Receipt struct {
	ReceiptNumber string        `json:"receiptNumber"`
	Items         []ReceiptItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	CustomerName  string        `json:"customerName,omitempty"`
	CustomerPhone string        `json:"customerPhone,omitempty"`
	TableName     string        `json:"tableName,omitempty"`
	CreatedAt     string        `json:"createdAt"`
}
