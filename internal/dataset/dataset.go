// Package dataset synthesizes domain-shaped row sets for the mocked query
// backend. Each dataset type has a fixed column schema; values are randomized
// per call but structurally deterministic.
package dataset

import (
	"math/rand/v2"
)

// Type identifies one of the supported dataset shapes.
type Type string

const (
	Employees        Type = "employees"
	UserAnalytics    Type = "userAnalytics"
	SalesData        Type = "salesData"
	Inventory        Type = "inventory"
	CustomerOrders   Type = "customerOrders"
	FinancialMetrics Type = "financialMetrics"
)

// Types returns all supported dataset types in a stable order.
func Types() []Type {
	return []Type{Employees, SalesData, Inventory, CustomerOrders, UserAnalytics, FinancialMetrics}
}

// Valid reports whether t is a known dataset type.
func (t Type) Valid() bool {
	switch t {
	case Employees, UserAnalytics, SalesData, Inventory, CustomerOrders, FinancialMetrics:
		return true
	}
	return false
}

// Row is a single result row: column name to scalar value
// (string, int, float64, bool, or nil).
type Row map[string]any

// Columns returns the ordered column schema for a dataset type.
// Unknown types get a minimal generic schema.
func Columns(t Type) []string {
	switch t {
	case Employees:
		return []string{
			"employeeID", "lastName", "firstName", "title", "titleOfCourtesy",
			"birthDate", "hireDate", "address", "city", "region", "postalCode",
			"country", "homePhone", "extension", "photo", "notes", "reportsTo", "photoPath",
		}
	case UserAnalytics:
		return []string{
			"user_id", "name", "email", "total_sessions", "avg_session_duration",
			"total_spent", "orders_count", "last_active", "status", "customer_segment",
			"registration_date", "is_premium",
		}
	case SalesData:
		return []string{
			"sale_id", "product_name", "category", "quantity", "unit_price",
			"revenue", "cost", "profit", "profit_margin", "sale_date",
			"customer_id", "sales_rep", "region", "payment_method",
		}
	case Inventory:
		return []string{
			"product_id", "product_name", "category", "current_stock", "reorder_level",
			"max_stock", "unit_cost", "total_value", "supplier", "last_restocked",
			"is_low_stock", "days_since_last_order", "warehouse_location",
		}
	case CustomerOrders:
		return []string{
			"order_id", "customer_name", "customer_email", "order_date", "order_value",
			"items_count", "shipping_address", "order_status", "payment_status",
			"shipping_method", "customer_segment", "loyalty_points", "discount_applied",
		}
	case FinancialMetrics:
		return []string{
			"period_id", "period_name", "revenue", "expenses", "profit",
			"profit_margin", "gross_margin", "operating_margin", "customer_count",
			"avg_order_value", "customer_acquisition_cost", "customer_lifetime_value",
			"churn_rate", "period_start", "period_end",
		}
	default:
		return []string{"id", "name", "value"}
	}
}

// Generator produces randomized row sets. The zero value is not usable;
// create instances with NewGenerator.
type Generator struct {
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source, allowing deterministic generation in tests.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// NewGenerator creates a Generator with a time-seeded random source unless
// overridden via WithRand.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns exactly count rows of the given dataset type. An unknown
// type falls back to the employees shape; Generate never fails.
func (g *Generator) Generate(t Type, count int) []Row {
	if count < 0 {
		count = 0
	}
	switch t {
	case UserAnalytics:
		return g.userAnalytics(count)
	case SalesData:
		return g.salesData(count)
	case Inventory:
		return g.inventory(count)
	case CustomerOrders:
		return g.customerOrders(count)
	case FinancialMetrics:
		return g.financialMetrics(count)
	default:
		return g.employees(count)
	}
}
