package orderstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// PostgresStore is the normalized alternative to the flat CSV table: one
// orders table plus one line-items table keyed by order id and position.
// It satisfies the same Store contract; reads synthesize the flat Row shape
// so callers see identical column names either way.
type PostgresStore struct {
	db *bun.DB
}

var _ Store = (*PostgresStore)(nil)

type orderRecord struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	OrderID       string `bun:"order_id,pk"`
	Name          string `bun:"name"`
	Address       string `bun:"address"`
	UserID        string `bun:"user_id"`
	ContactNumber string `bun:"contact_number"`
	Date          string `bun:"date"`
	Time          string `bun:"time"`
	ItemOrdered   string `bun:"item_ordered"`
	DeliveryNotes string `bun:"delivery_notes"`
	OrderType     string `bun:"order_type"`
	Seq           int64  `bun:"seq,autoincrement"`
}

type lineItemRecord struct {
	bun.BaseModel `bun:"table:order_line_items,alias:li"`

	ID       int64   `bun:"id,pk,autoincrement"`
	OrderID  string  `bun:"order_id,notnull"`
	Position int     `bun:"position,notnull"`
	ItemName string  `bun:"item_name"`
	Quantity int     `bun:"quantity"`
	Price    float64 `bun:"price"`
}

// NewPostgresStore connects via the bun pgdriver and ensures the schema
// exists.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	s := &PostgresStore{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ensure schema: %v", ErrStorage, err)
	}
	return s, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*orderRecord)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}
	if _, err := s.db.NewCreateTable().
		Model((*lineItemRecord)(nil)).
		IfNotExists().
		ForeignKey(`("order_id") REFERENCES "orders" ("order_id") ON DELETE CASCADE`).
		Exec(ctx); err != nil {
		return err
	}
	return nil
}

func recordFromOrder(o Order) orderRecord {
	return orderRecord{
		OrderID:       o.OrderID,
		Name:          o.Name,
		Address:       o.Address,
		UserID:        o.UserID,
		ContactNumber: o.ContactNumber,
		Date:          o.Date,
		Time:          o.Time,
		ItemOrdered:   o.ItemOrdered,
		DeliveryNotes: o.DeliveryNotes,
		OrderType:     o.OrderType,
	}
}

func (rec orderRecord) toOrder() Order {
	return Order{
		OrderID:       rec.OrderID,
		Name:          rec.Name,
		Address:       rec.Address,
		UserID:        rec.UserID,
		ContactNumber: rec.ContactNumber,
		Date:          rec.Date,
		Time:          rec.Time,
		ItemOrdered:   rec.ItemOrdered,
		DeliveryNotes: rec.DeliveryNotes,
		OrderType:     rec.OrderType,
	}
}

func (s *PostgresStore) Create(ctx context.Context, order Order, items []LineItem) (string, error) {
	if order.OrderID == "" {
		order.OrderID = uuid.NewString()
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		rec := recordFromOrder(order)
		if _, err := tx.NewInsert().Model(&rec).Exec(ctx); err != nil {
			return err
		}
		return insertLineItems(ctx, tx, order.OrderID, items)
	})
	if err != nil {
		return "", fmt.Errorf("%w: create order: %v", ErrStorage, err)
	}
	return order.OrderID, nil
}

func insertLineItems(ctx context.Context, tx bun.Tx, orderID string, items []LineItem) error {
	if len(items) == 0 {
		return nil
	}
	recs := make([]lineItemRecord, 0, len(items))
	for i, item := range items {
		recs = append(recs, lineItemRecord{
			OrderID:  orderID,
			Position: i + 1,
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	_, err := tx.NewInsert().Model(&recs).Exec(ctx)
	return err
}

func (s *PostgresStore) GetByCustomer(ctx context.Context, userID string) ([]Row, error) {
	var recs []orderRecord
	if err := s.db.NewSelect().
		Model(&recs).
		Where("user_id = ?", userID).
		Order("seq ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("%w: select by customer: %v", ErrStorage, err)
	}
	return s.flattenAll(ctx, recs)
}

func (s *PostgresStore) GetByID(ctx context.Context, orderID string) (Row, error) {
	rec := new(orderRecord)
	err := s.db.NewSelect().
		Model(rec).
		Where("order_id = ?", orderID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: order_id=%s", ErrNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: select by id: %v", ErrStorage, err)
	}
	return s.flatten(ctx, *rec)
}

func (s *PostgresStore) GetAll(ctx context.Context) ([]Row, error) {
	var recs []orderRecord
	if err := s.db.NewSelect().
		Model(&recs).
		Order("seq ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("%w: select all: %v", ErrStorage, err)
	}
	return s.flattenAll(ctx, recs)
}

func (s *PostgresStore) Update(ctx context.Context, orderID string, order Order, items []LineItem) error {
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		rec := recordFromOrder(order)
		rec.OrderID = orderID
		res, err := tx.NewUpdate().
			Model(&rec).
			Column("name", "address", "user_id", "contact_number",
				"date", "time", "item_ordered", "delivery_notes", "order_type").
			WherePK().
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: order_id=%s", ErrNotFound, orderID)
		}

		if items == nil {
			return nil
		}
		if _, err := tx.NewDelete().
			Model((*lineItemRecord)(nil)).
			Where("order_id = ?", orderID).
			Exec(ctx); err != nil {
			return err
		}
		return insertLineItems(ctx, tx, orderID, items)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: update order: %v", ErrStorage, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, orderID string) error {
	res, err := s.db.NewDelete().
		Model((*orderRecord)(nil)).
		Where("order_id = ?", orderID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: delete order: %v", ErrStorage, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete order: %v", ErrStorage, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: order_id=%s", ErrNotFound, orderID)
	}
	return nil
}

func (s *PostgresStore) GetWithLineItems(ctx context.Context, orderID string) (Detail, error) {
	rec := new(orderRecord)
	err := s.db.NewSelect().
		Model(rec).
		Where("order_id = ?", orderID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return Detail{}, fmt.Errorf("%w: order_id=%s", ErrNotFound, orderID)
	}
	if err != nil {
		return Detail{}, fmt.Errorf("%w: select by id: %v", ErrStorage, err)
	}

	items, err := s.lineItemsFor(ctx, orderID)
	if err != nil {
		return Detail{}, err
	}

	row, err := s.flatten(ctx, *rec)
	if err != nil {
		return Detail{}, err
	}

	return Detail{
		Order:     rec.toOrder(),
		LineItems: items,
		Raw:       row,
	}, nil
}

func (s *PostgresStore) lineItemsFor(ctx context.Context, orderID string) ([]LineItem, error) {
	var recs []lineItemRecord
	if err := s.db.NewSelect().
		Model(&recs).
		Where("order_id = ?", orderID).
		Order("position ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("%w: select line items: %v", ErrStorage, err)
	}
	items := make([]LineItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, LineItem{
			ItemName: rec.ItemName,
			Quantity: rec.Quantity,
			Price:    rec.Price,
		})
	}
	return items, nil
}

// flatten renders the normalized order as a flat suffix-keyed Row, the
// shape CSVStore rows have.
func (s *PostgresStore) flatten(ctx context.Context, rec orderRecord) (Row, error) {
	items, err := s.lineItemsFor(ctx, rec.OrderID)
	if err != nil {
		return nil, err
	}

	row := make(Row, len(scalarColumns)+3*len(items))
	for col, val := range rec.toOrder().scalars() {
		if val != "" {
			row[col] = val
		}
	}
	for i, item := range items {
		for col, val := range item.cells(i + 1) {
			if val != "" {
				row[col] = val
			}
		}
	}
	return row, nil
}

func (s *PostgresStore) flattenAll(ctx context.Context, recs []orderRecord) ([]Row, error) {
	rows := make([]Row, 0, len(recs))
	for _, rec := range recs {
		row, err := s.flatten(ctx, rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
