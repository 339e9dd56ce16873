package common

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

var ErrEmptyArea = errors.New("target area is empty")

const bannerRule = "-- ====================================================="

// Summary counts what happened while generating one area. It exists purely for
// visibility: defaulted fields are still written silently into the SQL.
type Summary struct {
	Area                 string
	Matched              int
	DefaultedIDs         int
	DefaultedNames       int
	DefaultedRequired    int
	DefaultedOutstanding int
	DefaultedBalances    int
	EmptyDeliveryDays    int
	// DuplicateIDs lists customer ids seen on more than one matched row. The
	// later row's upsert is the one that sticks in the database.
	DuplicateIDs []string
}

func (s *Summary) add(d rowDefaults) {
	s.Matched++
	if d.id {
		s.DefaultedIDs++
	}
	if d.name {
		s.DefaultedNames++
	}
	if d.required {
		s.DefaultedRequired++
	}
	if d.outstanding {
		s.DefaultedOutstanding++
	}
	if d.balance {
		s.DefaultedBalances++
	}
	if d.days {
		s.EmptyDeliveryDays++
	}
}

// Log prints the summary with the standard logger.
func (s Summary) Log() {
	log.Printf("%s: %d customers (defaulted: id=%d name=%d required=%d outstanding=%d balance=%d, no delivery days=%d)",
		s.Area, s.Matched, s.DefaultedIDs, s.DefaultedNames, s.DefaultedRequired,
		s.DefaultedOutstanding, s.DefaultedBalances, s.EmptyDeliveryDays)
	for _, id := range s.DuplicateIDs {
		log.Printf("%s: customer id %s appears more than once, last row wins", s.Area, id)
	}
}

// Transformer turns water data rows into seed SQL. Its layout and day table
// are copied on construction and never change afterwards.
type Transformer struct {
	layout Layout
	days   DayTable
}

func NewTransformer(layout Layout, days DayTable) *Transformer {
	return &Transformer{
		layout: layout,
		days:   append(DayTable(nil), days...),
	}
}

// MatchCustomers scans every sheet for rows whose area cell contains area,
// ignoring case. This is a substring match on purpose: "Chishti Nagar" also
// selects "Chishti Nagar Block 2".
func (t *Transformer) MatchCustomers(wb *Workbook, area string) ([]Customer, Summary) {
	summary := Summary{Area: area}
	target := strings.ToLower(area)
	seen := make(map[string]int)

	var customers []Customer
	for _, sheet := range wb.Sheets {
		for idx, row := range sheet.Rows {
			if !strings.Contains(strings.ToLower(Cell(row, t.layout.Area)), target) {
				continue
			}
			c, d := parseCustomer(row, idx, t.layout, t.days)
			summary.add(d)
			seen[c.ID]++
			if seen[c.ID] == 2 {
				summary.DuplicateIDs = append(summary.DuplicateIDs, c.ID)
			}
			customers = append(customers, c)
		}
	}
	return customers, summary
}

// GenerateSQLForArea renders the seed script for one area: the area upsert
// followed by a customer and user upsert per matched row, all inside a single
// DO block.
func (t *Transformer) GenerateSQLForArea(wb *Workbook, area string) (string, Summary, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		return "", Summary{}, ErrEmptyArea
	}
	customers, summary := t.MatchCustomers(wb, area)
	return RenderAreaSQL(area, customers), summary, nil
}

// AreaCode is the natural key of an area: "Chishti Nagar" -> "CHISHTI_NAGAR".
func AreaCode(area string) string {
	return strings.ReplaceAll(strings.ToUpper(area), " ", "_")
}

// RenderAreaSQL builds the script text for an area and its customers.
func RenderAreaSQL(area string, customers []Customer) string {
	blocks := []string{
		bannerRule,
		"-- IMPORT DATA FOR AREA: " + area,
		bannerRule,
		fmt.Sprintf(areaBlock, quote(area), quote(AreaCode(area))),
	}
	for _, c := range customers {
		blocks = append(blocks, customerBlock(c))
	}
	blocks = append(blocks, "END $$;")
	return strings.Join(blocks, "\n")
}

const areaBlock = `
DO $$
DECLARE
    v_area_id UUID;
    v_cust_id UUID;
    v_area_name TEXT := %s;
    v_area_code TEXT := %s;
BEGIN
    -- Ensure area exists
    INSERT INTO areas (area_id, name)
    VALUES (v_area_code, v_area_name)
    ON CONFLICT (area_id) DO UPDATE SET name = EXCLUDED.name
    RETURNING id INTO v_area_id;
`

const customerTemplate = `
    -- Customer: %[1]s (%[2]s)
    INSERT INTO customers (customer_id, name, email, phone, address, area_id, delivery_days, required_bottles, outstanding_bottles, opening_balance, current_balance)
    VALUES (%[3]s, %[4]s, %[5]s, %[6]s, %[7]s, v_area_id, %[8]s, %[9]d, %[10]d, %[11]s, %[11]s)
    ON CONFLICT (customer_id) DO UPDATE SET
        name = EXCLUDED.name,
        phone = EXCLUDED.phone,
        address = EXCLUDED.address,
        area_id = EXCLUDED.area_id
    RETURNING id INTO v_cust_id;

    IF v_cust_id IS NOT NULL THEN
        INSERT INTO users (user_id, email, password, name, role, phone, customer_id)
        VALUES (%[3]s, %[5]s, %[12]s, %[4]s, %[13]s, %[6]s, v_cust_id)
        ON CONFLICT (user_id) DO UPDATE SET
            email = EXCLUDED.email,
            password = EXCLUDED.password,
            customer_id = EXCLUDED.customer_id;
    END IF;
`

func customerBlock(c Customer) string {
	phone := "NULL"
	if c.Phone != "" {
		phone = quote(c.Phone)
	}
	return fmt.Sprintf(customerTemplate,
		escape(c.Name),
		escape(c.ID),
		quote(c.ID),
		quote(c.Name),
		quote(c.Email()),
		phone,
		quote(c.Address),
		daysArray(c.DeliveryDays),
		c.RequiredBottles,
		c.OutstandingBottles,
		c.OpeningBalance.String(),
		quote(c.Password()),
		quote(USER_ROLE),
	)
}

// daysArray renders a text[] literal; an empty list becomes '{}'.
func daysArray(days []string) string {
	if len(days) == 0 {
		return "'{}'"
	}
	quoted := make([]string, len(days))
	for i, d := range days {
		quoted[i] = quote(d)
	}
	return "ARRAY[" + strings.Join(quoted, ", ") + "]"
}

// escape doubles single quotes. Nothing else is escaped; input is trusted.
func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func quote(s string) string {
	return "'" + escape(s) + "'"
}
