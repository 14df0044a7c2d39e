package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var productCategories = []string{
	"Electronics", "Clothing", "Home & Garden", "Sports & Outdoors",
	"Books", "Automotive", "Health & Beauty", "Toys & Games",
	"Food & Beverages", "Jewelry", "Tools & Hardware", "Pet Supplies",
}

var customerSegments = []string{"Premium", "Standard", "Basic", "Enterprise"}

var userStatuses = []string{"Active", "Inactive", "Pending", "Suspended"}

var orderStatuses = []string{"Completed", "Pending", "Cancelled", "Shipped", "Delivered"}

var firstNames = []string{"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Lisa", "James", "Maria"}

var lastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "company.com", "business.org"}

func (g *Generator) pick(values []string) string {
	return values[g.rng.IntN(len(values))]
}

func (g *Generator) firstName() string { return g.pick(firstNames) }

func (g *Generator) lastName() string { return g.pick(lastNames) }

func (g *Generator) fullName() string {
	return g.firstName() + " " + g.lastName()
}

func (g *Generator) email(name string) string {
	clean := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s%d@%s", clean, g.rng.IntN(999), g.pick(emailDomains))
}

func (g *Generator) phone() string {
	return fmt.Sprintf("(%d) 555-%d", g.rng.IntN(900)+100, g.rng.IntN(9000)+1000)
}

func (g *Generator) streetAddress() string {
	return fmt.Sprintf("%d %s", g.rng.IntN(9999)+1, g.pick(streets))
}

// date returns a random ISO date (YYYY-MM-DD) within [start, end].
func (g *Generator) date(start, end string) string {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		s = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil || e.Before(s) {
		e = s.AddDate(1, 0, 0)
	}
	span := e.Sub(s)
	return s.Add(time.Duration(g.rng.Int64N(int64(span) + 1))).Format("2006-01-02")
}

func (g *Generator) userAnalytics(count int) []Row {
	rows := make([]Row, 0, count)
	for i := 0; i < count; i++ {
		name := g.fullName()
		totalSpent := round2(g.rng.Float64()*10000 + 10)
		lastActive := g.date("2024-01-01", "2024-12-31")
		rows = append(rows, Row{
			"user_id":              fmt.Sprintf("USER-%06d", i+1),
			"name":                 name,
			"email":                g.email(name),
			"total_sessions":       g.rng.IntN(200) + 1,
			"avg_session_duration": round2(g.rng.Float64()*3600 + 30),
			"total_spent":          totalSpent,
			"orders_count":         int(totalSpent/(g.rng.Float64()*50+25)) + 1,
			"last_active":          lastActive,
			"status":               g.pick(userStatuses),
			"customer_segment":     g.pick(customerSegments),
			"registration_date":    g.date("2020-01-01", lastActive),
			"is_premium":           g.rng.Float64() > 0.6,
		})
	}
	return rows
}

func (g *Generator) salesData(count int) []Row {
	salesRegions := []string{"North", "South", "East", "West", "Central", "International"}
	paymentMethods := []string{"Credit Card", "Debit Card", "PayPal", "Bank Transfer", "Cash", "Crypto"}

	rows := make([]Row, 0, count)
	for i := 0; i < count; i++ {
		quantity := g.rng.IntN(20) + 1
		unitPrice := g.rng.Float64()*1000 + 10
		revenue := float64(quantity) * unitPrice
		cost := revenue * (0.2 + g.rng.Float64()*0.6)
		profit := revenue - cost
		rows = append(rows, Row{
			"sale_id":        fmt.Sprintf("SALE-%08d", i+1),
			"product_name":   fmt.Sprintf("%s Item %d", g.pick(productCategories), i+1),
			"category":       g.pick(productCategories),
			"quantity":       quantity,
			"unit_price":     round2(unitPrice),
			"revenue":        round2(revenue),
			"cost":           round2(cost),
			"profit":         round2(profit),
			"profit_margin":  roundN(profit/revenue, 3),
			"sale_date":      g.date("2023-01-01", "2024-12-31"),
			"customer_id":    fmt.Sprintf("CUST-%d", g.rng.IntN(50000)+1),
			"sales_rep":      g.fullName(),
			"region":         g.pick(salesRegions),
			"payment_method": g.pick(paymentMethods),
		})
	}
	return rows
}

func (g *Generator) inventory(count int) []Row {
	rows := make([]Row, 0, count)
	for i := 0; i < count; i++ {
		currentStock := g.rng.IntN(2000) + 1
		reorderLevel := int(float64(currentStock) * (0.1 + g.rng.Float64()*0.3))
		rows = append(rows, Row{
			"product_id":            fmt.Sprintf("INV-%06d", i+1),
			"product_name":          fmt.Sprintf("%s Product %d", g.pick(productCategories), i+1),
			"category":              g.pick(productCategories),
			"current_stock":         currentStock,
			"reorder_level":         reorderLevel,
			"max_stock":             currentStock + g.rng.IntN(1000),
			"unit_cost":             round2(g.rng.Float64()*200 + 5),
			"total_value":           round2(float64(currentStock) * (g.rng.Float64()*200 + 5)),
			"supplier":              fmt.Sprintf("Supplier %d", g.rng.IntN(50)+1),
			"last_restocked":        g.date("2024-01-01", "2024-12-31"),
			"is_low_stock":          currentStock <= reorderLevel,
			"days_since_last_order": g.rng.IntN(60) + 1,
			"warehouse_location":    fmt.Sprintf("Warehouse %c", 'A'+rune(g.rng.IntN(8))),
		})
	}
	return rows
}

func (g *Generator) customerOrders(count int) []Row {
	shippingMethods := []string{"Standard", "Express", "Overnight", "Same Day", "International"}

	rows := make([]Row, 0, count)
	for i := 0; i < count; i++ {
		name := g.fullName()
		orderValue := g.rng.Float64()*5000 + 10
		paymentStatus := "Paid"
		if g.rng.Float64() <= 0.15 {
			paymentStatus = "Pending"
		}
		rows = append(rows, Row{
			"order_id":         fmt.Sprintf("ORD-%08d", i+1),
			"customer_name":    name,
			"customer_email":   g.email(name),
			"order_date":       g.date("2023-01-01", "2024-12-31"),
			"order_value":      round2(orderValue),
			"items_count":      g.rng.IntN(20) + 1,
			"shipping_address": fmt.Sprintf("%s, City %d", g.streetAddress(), g.rng.IntN(200)+1),
			"order_status":     g.pick(orderStatuses),
			"payment_status":   paymentStatus,
			"shipping_method":  g.pick(shippingMethods),
			"customer_segment": g.pick(customerSegments),
			"loyalty_points":   int(orderValue / (g.rng.Float64()*20 + 5)),
			"discount_applied": round2(orderValue * g.rng.Float64() * 0.3),
		})
	}
	return rows
}

func (g *Generator) financialMetrics(count int) []Row {
	rows := make([]Row, 0, count)
	for i := 0; i < count; i++ {
		revenue := g.rng.Float64()*2000000 + 100000
		expenses := revenue * (0.5 + g.rng.Float64()*0.4)
		profit := revenue - expenses
		rows = append(rows, Row{
			"period_id":                 fmt.Sprintf("PERIOD-%04d", i+1),
			"period_name":               fmt.Sprintf("Q%d %d", i/3+1, 2023+i/4),
			"revenue":                   round2(revenue),
			"expenses":                  round2(expenses),
			"profit":                    round2(profit),
			"profit_margin":             roundN(profit/revenue, 4),
			"gross_margin":              roundN(1-(expenses*(0.6+g.rng.Float64()*0.3))/revenue, 4),
			"operating_margin":          roundN(profit/revenue, 4),
			"customer_count":            g.rng.IntN(20000) + 1000,
			"avg_order_value":           round2(revenue / float64(g.rng.IntN(20000)+1000)),
			"customer_acquisition_cost": round2(g.rng.Float64()*500 + 25),
			"customer_lifetime_value":   round2(g.rng.Float64()*5000 + 250),
			"churn_rate":                roundN(g.rng.Float64()*0.25, 4),
			"period_start":              g.date("2023-01-01", "2024-12-31"),
			"period_end":                g.date("2023-01-01", "2024-12-31"),
		})
	}
	return rows
}

func round2(v float64) float64 { return roundN(v, 2) }

func roundN(v float64, places int) float64 {
	pow := math.Pow10(places)
	return math.Round(v*pow) / pow
}

func intString(v int) string { return strconv.Itoa(v) }
