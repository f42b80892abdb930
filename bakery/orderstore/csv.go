package orderstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CSVStore keeps the whole order table in memory and rewrites the backing
// file after every mutation. One store instance per backing file: there is
// no cross-process locking, and two processes sharing a file will clobber
// each other last-writer-wins. The mutex only serializes goroutines within
// this process.
type CSVStore struct {
	path string

	mu      sync.Mutex
	columns []string
	rows    []Row
	loadErr error
}

var _ Store = (*CSVStore)(nil)

// NewCSVStore loads the table at path. A missing file means an empty table.
// An unreadable or corrupt file also degrades to an empty table so the
// process can start, but the load error is logged and kept available via
// LoadError so operators can notice before the next write overwrites the
// bad file.
func NewCSVStore(path string) *CSVStore {
	s := &CSVStore{path: path}
	if err := s.load(); err != nil {
		s.loadErr = fmt.Errorf("%w: %v", ErrStorage, err)
		log.Error().Err(err).Str("path", path).
			Msg("order table unreadable, starting with empty table; next write will replace the file")
	}
	return s
}

// LoadError reports whether construction degraded to an empty table.
func (s *CSVStore) LoadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

func (s *CSVStore) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) && record[i] != "" {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	s.columns = header
	s.rows = rows
	return nil
}

func (s *CSVStore) persist() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: open for write: %v", ErrStorage, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(s.columns); err != nil {
		f.Close()
		return fmt.Errorf("%w: write header: %v", ErrStorage, err)
	}
	record := make([]string, len(s.columns))
	for _, row := range s.rows {
		for i, col := range s.columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("%w: write row: %v", ErrStorage, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("%w: flush: %v", ErrStorage, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close: %v", ErrStorage, err)
	}
	return nil
}

// ensureColumn registers a column, widening every existing row implicitly
// (absent cells read as null), matching an outer-join column add.
func (s *CSVStore) ensureColumn(name string) {
	for _, col := range s.columns {
		if col == name {
			return
		}
	}
	s.columns = append(s.columns, name)
}

// Create appends one flat row for the order and persists the table. A fresh
// order id is assigned when the order carries none. Manually supplied ids
// are not checked for uniqueness; callers must not reuse identifiers.
func (s *CSVStore) Create(_ context.Context, order Order, items []LineItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.OrderID == "" {
		order.OrderID = uuid.NewString()
	}

	row := make(Row, len(scalarColumns)+3*len(items))
	for col, val := range order.scalars() {
		if val != "" {
			row[col] = val
		}
	}
	for _, col := range scalarColumns {
		s.ensureColumn(col)
	}
	for i, item := range items {
		for col, val := range item.cells(i + 1) {
			s.ensureColumn(col)
			if val != "" {
				row[col] = val
			}
		}
	}

	s.rows = append(s.rows, row)
	if err := s.persist(); err != nil {
		return "", err
	}
	return order.OrderID, nil
}

// GetByCustomer returns all rows whose user_id matches exactly, in
// insertion order.
func (s *CSVStore) GetByCustomer(_ context.Context, userID string) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Row
	for _, row := range s.rows {
		if row["user_id"] == userID {
			out = append(out, row.clone())
		}
	}
	return out, nil
}

// GetByID returns the first row matching order_id, or ErrNotFound.
func (s *CSVStore) GetByID(_ context.Context, orderID string) (Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row["order_id"] == orderID {
			return row.clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: order_id=%s", ErrNotFound, orderID)
}

func (s *CSVStore) GetAll(_ context.Context) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Row, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row.clone())
	}
	return out, nil
}

// Update overwrites the matching row's scalar fields (only columns that
// already exist). When items is non-nil the order's line items are fully
// replaced: every *_line_* cell of the row is cleared first, then the new
// items written, widening the table if the new count exceeds anything seen
// before. A nil items slice leaves line items untouched.
func (s *CSVStore) Update(_ context.Context, orderID string, order Order, items []LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, row := range s.rows {
		if row["order_id"] == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: order_id=%s", ErrNotFound, orderID)
	}

	known := make(map[string]struct{}, len(s.columns))
	for _, col := range s.columns {
		known[col] = struct{}{}
	}

	row := s.rows[idx]
	for col, val := range order.scalars() {
		if col == "order_id" {
			continue
		}
		if _, ok := known[col]; !ok {
			continue
		}
		if val == "" {
			delete(row, col)
		} else {
			row[col] = val
		}
	}

	if items != nil {
		for col := range row {
			if IsLineColumn(col) {
				delete(row, col)
			}
		}
		for i, item := range items {
			for col, val := range item.cells(i + 1) {
				s.ensureColumn(col)
				if val != "" {
					row[col] = val
				}
			}
		}
	}

	return s.persist()
}

// Delete removes every row matching order_id (exactly one, given the
// uniqueness invariant) and persists. ErrNotFound when nothing matched.
func (s *CSVStore) Delete(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.rows[:0]
	for _, row := range s.rows {
		if row["order_id"] != orderID {
			kept = append(kept, row)
		}
	}
	removed := len(s.rows) - len(kept)
	s.rows = kept
	if removed == 0 {
		return fmt.Errorf("%w: order_id=%s", ErrNotFound, orderID)
	}
	return s.persist()
}

// GetWithLineItems fetches the flat row and splits it into order scalars
// plus decoded line items, keeping the raw row for traceability.
func (s *CSVStore) GetWithLineItems(ctx context.Context, orderID string) (Detail, error) {
	row, err := s.GetByID(ctx, orderID)
	if err != nil {
		return Detail{}, err
	}
	return Detail{
		Order:     orderFromRow(row),
		LineItems: ExtractLineItems(row),
		Raw:       row,
	}, nil
}
