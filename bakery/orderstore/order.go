// Package orderstore persists bakery orders as a single flat table in which
// each row carries the order's scalar fields plus its line items encoded as
// suffix-numbered columns (item_name_line_1, quantity_line_1, price_line_1,
// item_name_line_2, ...). The column set widens as orders with more line
// items than previously seen are inserted; rows with fewer items leave the
// extra suffix cells empty.
package orderstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotFound = errors.New("order not found")
	ErrStorage  = errors.New("order storage failure")
)

// Order holds the scalar fields of one order. All values are free text;
// validation (contact number present, address for delivery orders) is a
// caller concern.
type Order struct {
	OrderID       string `json:"order_id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	UserID        string `json:"user_id"`
	ContactNumber string `json:"contact_number"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	ItemOrdered   string `json:"item_ordered"`
	DeliveryNotes string `json:"delivery_notes"`
	OrderType     string `json:"order_type"`
}

// LineItem is one product line within an order.
type LineItem struct {
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Row is one persisted record: column name to cell value. An empty or
// absent value means null; line-item columns beyond a row's item count are
// always null.
type Row map[string]string

// Detail is a structured order reconstructed from a flat row. Raw keeps
// the row itself for traceability.
type Detail struct {
	Order     Order      `json:"order"`
	LineItems []LineItem `json:"line_items"`
	Raw       Row        `json:"raw_data"`
}

// Store is the order persistence contract. Update treats a nil items slice
// as "leave line items alone"; a non-nil slice (including an empty one)
// fully replaces the order's existing line items.
type Store interface {
	Create(ctx context.Context, order Order, items []LineItem) (string, error)
	GetByCustomer(ctx context.Context, userID string) ([]Row, error)
	GetByID(ctx context.Context, orderID string) (Row, error)
	GetAll(ctx context.Context) ([]Row, error)
	Update(ctx context.Context, orderID string, order Order, items []LineItem) error
	Delete(ctx context.Context, orderID string) error
	GetWithLineItems(ctx context.Context, orderID string) (Detail, error)
}

// scalarColumns fixes the column order for the scalar part of every row.
var scalarColumns = []string{
	"order_id",
	"name",
	"address",
	"user_id",
	"contact_number",
	"date",
	"time",
	"item_ordered",
	"delivery_notes",
	"order_type",
}

func (o Order) scalars() map[string]string {
	return map[string]string{
		"order_id":       o.OrderID,
		"name":           o.Name,
		"address":        o.Address,
		"user_id":        o.UserID,
		"contact_number": o.ContactNumber,
		"date":           o.Date,
		"time":           o.Time,
		"item_ordered":   o.ItemOrdered,
		"delivery_notes": o.DeliveryNotes,
		"order_type":     o.OrderType,
	}
}

func orderFromRow(r Row) Order {
	return Order{
		OrderID:       r["order_id"],
		Name:          r["name"],
		Address:       r["address"],
		UserID:        r["user_id"],
		ContactNumber: r["contact_number"],
		Date:          r["date"],
		Time:          r["time"],
		ItemOrdered:   r["item_ordered"],
		DeliveryNotes: r["delivery_notes"],
		OrderType:     r["order_type"],
	}
}

func lineColumn(field string, n int) string {
	return fmt.Sprintf("%s_line_%d", field, n)
}

func (li LineItem) cells(n int) map[string]string {
	return map[string]string{
		lineColumn("item_name", n): li.ItemName,
		lineColumn("quantity", n):  strconv.Itoa(li.Quantity),
		lineColumn("price", n):     strconv.FormatFloat(li.Price, 'f', -1, 64),
	}
}

func (r Row) clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
