package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Layout holds the zero-based column offsets of a customer row.
type Layout struct {
	CustomerID         int
	Name               int
	DeliveryDays       int
	Area               int
	RequiredBottles    int
	OutstandingBottles int
	OpeningBalance     int
	Phone              int
}

// DefaultLayout is the layout of the Water Data workbook.
func DefaultLayout() Layout {
	return Layout{
		CustomerID:         COL_CUSTOMER_ID,
		Name:               COL_NAME,
		DeliveryDays:       COL_DELIVERY_DAYS,
		Area:               COL_AREA,
		RequiredBottles:    COL_REQUIRED_BOTTLES,
		OutstandingBottles: COL_OUTSTANDING_BOTTLES,
		OpeningBalance:     COL_OPENING_BALANCE,
		Phone:              COL_PHONE,
	}
}

// Customer is one spreadsheet row after coercion. String fields are unescaped.
type Customer struct {
	ID                 string
	Name               string
	Address            string
	DeliveryDays       []string
	RequiredBottles    int
	OutstandingBottles int
	OpeningBalance     Balance
	Phone              string // empty means NULL
}

// Email is the login derived from the customer id.
func (c Customer) Email() string {
	return c.ID + "@" + EMAIL_DOMAIN
}

// Password is the initial password derived from the customer id.
func (c Customer) Password() string {
	return PASSWORD_PREFIX + c.ID
}

// Balance is an opening balance. A zero Balance is the "no value" default and
// renders as 0; a parsed one renders with a decimal point, or in exponent form
// outside [1e-4, 1e16).
type Balance struct {
	Value  float64
	Parsed bool
}

func (b Balance) String() string {
	if !b.Parsed {
		return "0"
	}
	e := strconv.FormatFloat(b.Value, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err == nil && b.Value != 0 && (exp < -4 || exp >= 16) {
		return e
	}
	s := strconv.FormatFloat(b.Value, 'f', -1, 64)
	if strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

// rowDefaults records which fields of a row fell back to a default value.
type rowDefaults struct {
	id, name, required, outstanding, balance, days bool
}

// parseCustomer reads a row by fixed offsets. rowIndex is the zero-based row
// position inside its sheet and only feeds the synthesized id.
func parseCustomer(row []string, rowIndex int, layout Layout, days DayTable) (Customer, rowDefaults) {
	var d rowDefaults
	c := Customer{
		ID:      Cell(row, layout.CustomerID),
		Name:    Cell(row, layout.Name),
		Address: Cell(row, layout.Area),
		Phone:   Cell(row, layout.Phone),
	}
	if c.ID == "" {
		c.ID = fmt.Sprintf("CUST-%d", rowIndex)
		d.id = true
	}
	if c.Name == "" {
		c.Name = "Unknown"
		d.name = true
	}

	c.DeliveryDays = days.Expand(Cell(row, layout.DeliveryDays))
	d.days = len(c.DeliveryDays) == 0

	c.RequiredBottles, d.required = parseCount(Cell(row, layout.RequiredBottles), 1)
	c.OutstandingBottles, d.outstanding = parseCount(Cell(row, layout.OutstandingBottles), 0)
	c.OpeningBalance, d.balance = parseBalance(Cell(row, layout.OpeningBalance))
	return c, d
}

// parseCount accepts only decimal digits (any script, so "٣" is 3); "-3",
// "2.5" and "" all give def. The second return value reports whether def was
// used.
func parseCount(s string, def int) (int, bool) {
	if s == "" {
		return def, true
	}
	n := 0
	for _, r := range s {
		d, ok := digitValue(r)
		if !ok || n > (math.MaxInt-d)/10 {
			return def, true
		}
		n = n*10 + d
	}
	return n, false
}

// digitValue returns the value of a Unicode decimal digit. Every Nd range
// is made of whole 0-9 runs, so the offset from the range start gives it.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	for _, rg := range unicode.Nd.R16 {
		lo, hi := rune(rg.Lo), rune(rg.Hi)
		if rg.Stride == 1 && r >= lo && r <= hi {
			return int(r-lo) % 10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		lo, hi := rune(rg.Lo), rune(rg.Hi)
		if rg.Stride == 1 && r >= lo && r <= hi {
			return int(r-lo) % 10, true
		}
	}
	return 0, false
}

func parseBalance(s string) (Balance, bool) {
	if s == "" {
		return Balance{}, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Balance{}, true
	}
	return Balance{Value: v, Parsed: true}, false
}
