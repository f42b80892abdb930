package orderstore

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const lineSeparator = "_line_"

var lineItemFields = []string{"item_name", "quantity", "price"}

// IsLineColumn reports whether a column name carries a line-item cell.
func IsLineColumn(name string) bool {
	_, ok := lineSuffix(name)
	return ok
}

// lineSuffix extracts the numeric suffix of a line-item column. Columns
// whose suffix is not an integer are ignored rather than treated as errors;
// the file may have been edited by hand.
func lineSuffix(name string) (int, bool) {
	idx := strings.LastIndex(name, lineSeparator)
	if idx < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(name[idx+len(lineSeparator):])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractLineItems rebuilds the ordered line items encoded in a flat row.
// Suffix numbers are collected, sorted ascending, and each suffix with at
// least one non-empty cell yields one LineItem; absent cells leave the
// corresponding field at its zero value. A suffix whose three cells are all
// empty contributes nothing - tolerated, but logged, since it usually means
// an upstream write went wrong.
func ExtractLineItems(row Row) []LineItem {
	seen := map[int]struct{}{}
	for col := range row {
		if !IsLineColumn(col) {
			continue
		}
		if n, ok := lineSuffix(col); ok {
			seen[n] = struct{}{}
		}
	}

	suffixes := make([]int, 0, len(seen))
	for n := range seen {
		suffixes = append(suffixes, n)
	}
	sort.Ints(suffixes)

	items := make([]LineItem, 0, len(suffixes))
	for _, n := range suffixes {
		item, populated := lineItemAt(row, n)
		if !populated {
			log.Warn().
				Int("line", n).
				Str("order_id", row["order_id"]).
				Msg("line-item suffix present with no data, dropping")
			continue
		}
		items = append(items, item)
	}
	return items
}

func lineItemAt(row Row, n int) (LineItem, bool) {
	var item LineItem
	populated := false

	if v := row[lineColumn("item_name", n)]; v != "" {
		item.ItemName = v
		populated = true
	}
	if v := row[lineColumn("quantity", n)]; v != "" {
		item.Quantity = parseQuantity(v, n, row["order_id"])
		populated = true
	}
	if v := row[lineColumn("price", n)]; v != "" {
		item.Price = parsePrice(v, n, row["order_id"])
		populated = true
	}
	return item, populated
}

// parseQuantity accepts integer literals and, leniently, float literals
// (a hand-edited file or a pandas-written one may carry "2.0").
func parseQuantity(raw string, n int, orderID string) int {
	if q, err := strconv.Atoi(raw); err == nil {
		return q
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	log.Warn().
		Str("value", raw).
		Int("line", n).
		Str("order_id", orderID).
		Msg("unparseable quantity cell, using zero")
	return 0
}

func parsePrice(raw string, n int, orderID string) float64 {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	log.Warn().
		Str("value", raw).
		Int("line", n).
		Str("order_id", orderID).
		Msg("unparseable price cell, using zero")
	return 0
}
