package catalog

import (
	"math/rand/v2"

	"github.com/leapstack-labs/sqlbench/internal/dataset"
)

// randomCount returns a value in [min, max] inclusive.
func randomCount(rng *rand.Rand, min, max int) int {
	return rng.IntN(max-min+1) + min
}

// sampleQueries builds the built-in catalog. Order is significant: the
// matcher's substring and keyword strategies pick the first hit in this order.
func sampleQueries(rng *rand.Rand) []QueryDefinition {
	return []QueryDefinition{
		{
			ID:   "employee-list",
			Name: "Employee List",
			QueryText: `SELECT
  employeeID,
  firstName,
  lastName,
  title,
  titleOfCourtesy,
  city,
  country,
  homePhone,
  extension
FROM employees
ORDER BY lastName, firstName;`,
			Description: "Basic employee directory with contact information",
			Category:    "hr",
			Complexity:  Basic,
			Dataset:     DatasetSpec{Type: dataset.Employees, Count: randomCount(rng, 8, 15)},
		},
		{
			ID:   "employee-hierarchy",
			Name: "Employee Hierarchy",
			QueryText: `SELECT
  e.employeeID,
  e.firstName,
  e.lastName,
  e.title,
  e.reportsTo,
  m.firstName as managerFirstName,
  m.lastName as managerLastName,
  m.title as managerTitle
FROM employees e
LEFT JOIN employees m ON e.reportsTo = m.employeeID
ORDER BY e.reportsTo, e.lastName;`,
			Description: "Employee reporting structure and management hierarchy",
			Category:    "hr",
			Complexity:  Intermediate,
			Dataset:     DatasetSpec{Type: dataset.Employees, Count: randomCount(rng, 8, 15)},
		},
		{
			ID:   "employee-by-country",
			Name: "Employees by Country",
			QueryText: `SELECT
  country,
  COUNT(*) as employeeCount,
  GROUP_CONCAT(CONCAT(firstName, ' ', lastName) ORDER BY lastName) as employees
FROM employees
GROUP BY country
ORDER BY employeeCount DESC;`,
			Description: "Employee distribution by country with names",
			Category:    "analytics",
			Complexity:  Intermediate,
			Dataset:     DatasetSpec{Type: dataset.Employees, Count: randomCount(rng, 8, 15)},
		},
		{
			ID:   "employee-tenure",
			Name: "Employee Tenure Analysis",
			QueryText: `SELECT
  employeeID,
  firstName,
  lastName,
  title,
  hireDate,
  DATEDIFF(CURDATE(), hireDate) as daysEmployed,
  ROUND(DATEDIFF(CURDATE(), hireDate) / 365.25, 1) as yearsEmployed,
  CASE
    WHEN DATEDIFF(CURDATE(), hireDate) > 365 THEN 'Long-term'
    WHEN DATEDIFF(CURDATE(), hireDate) > 180 THEN 'Mid-term'
    ELSE 'New'
  END as tenureCategory
FROM employees
ORDER BY daysEmployed DESC;`,
			Description: "Employee tenure analysis with hire dates and categories",
			Category:    "hr",
			Complexity:  Intermediate,
			Dataset:     DatasetSpec{Type: dataset.Employees, Count: randomCount(rng, 8, 15)},
		},
		{
			ID:   "employee-age-analysis",
			Name: "Employee Age Analysis",
			QueryText: `SELECT
  employeeID,
  firstName,
  lastName,
  birthDate,
  TIMESTAMPDIFF(YEAR, birthDate, CURDATE()) as age,
  title,
  city,
  country
FROM employees
ORDER BY age DESC;`,
			Description: "Employee age distribution and demographics",
			Category:    "hr",
			Complexity:  Intermediate,
			Dataset:     DatasetSpec{Type: dataset.Employees, Count: randomCount(rng, 8, 15)},
		},
		{
			ID:   "sales-representatives",
			Name: "Sales Representatives",
			QueryText: `SELECT
  employeeID,
  firstName,
  lastName,
  title,
  city,
  country,
  homePhone,
  extension,
  hireDate
FROM employees
WHERE title LIKE '%Sales%'
ORDER BY lastName;`,
			Description: "All employees with sales-related titles",
			Category:    "operations",
			Complexity:  Basic,
			Dataset:     DatasetSpec{Type: dataset.Employees, Count: randomCount(rng, 8, 15)},
		},
		{
			ID:   "us-employees",
			Name: "US Employees",
			QueryText: `SELECT
  employeeID,
  firstName,
  lastName,
  title,
  city,
  region,
  postalCode,
  homePhone,
  extension
FROM employees
WHERE country = 'USA'
ORDER BY region, city, lastName;`,
			Description: "All employees based in the United States",
			Category:    "operations",
			Complexity:  Basic,
			Dataset:     DatasetSpec{Type: dataset.Employees, Count: randomCount(rng, 8, 15)},
		},
		{
			ID:   "uk-employees",
			Name: "UK Employees",
			QueryText: `SELECT
  employeeID,
  firstName,
  lastName,
  title,
  city,
  postalCode,
  homePhone,
  extension,
  hireDate
FROM employees
WHERE country = 'UK'
ORDER BY city, lastName;`,
			Description: "All employees based in the United Kingdom",
			Category:    "operations",
			Complexity:  Basic,
			Dataset:     DatasetSpec{Type: dataset.Employees, Count: randomCount(rng, 8, 15)},
		},
		{
			ID:   "employee-contact-info",
			Name: "Employee Contact Information",
			QueryText: `SELECT
  employeeID,
  CONCAT(firstName, ' ', lastName) as fullName,
  title,
  address,
  city,
  region,
  postalCode,
  country,
  homePhone,
  extension
FROM employees
ORDER BY lastName, firstName;`,
			Description: "Complete employee contact information",
			Category:    "hr",
			Complexity:  Basic,
			Dataset:     DatasetSpec{Type: dataset.Employees, Count: randomCount(rng, 8, 15)},
		},
		{
			ID:   "employee-titles-summary",
			Name: "Employee Titles Summary",
			QueryText: `SELECT
  title,
  COUNT(*) as employeeCount,
  GROUP_CONCAT(CONCAT(firstName, ' ', lastName) ORDER BY lastName) as employees
FROM employees
GROUP BY title
ORDER BY employeeCount DESC, title;`,
			Description: "Summary of employees by job title",
			Category:    "analytics",
			Complexity:  Intermediate,
			Dataset:     DatasetSpec{Type: dataset.Employees, Count: randomCount(rng, 8, 15)},
		},
		{
			ID:   "sales-performance",
			Name: "Sales Performance Analysis",
			QueryText: `SELECT
  sales_rep,
  COUNT(*) as total_sales,
  SUM(revenue) as total_revenue,
  AVG(profit_margin) as avg_profit_margin,
  region
FROM sales_data
GROUP BY sales_rep, region
ORDER BY total_revenue DESC;`,
			Description: "Sales performance analysis by representative and region",
			Category:    "analytics",
			Complexity:  Intermediate,
			Dataset:     DatasetSpec{Type: dataset.SalesData, Count: randomCount(rng, 50, 150)},
		},
		{
			ID:   "inventory-status",
			Name: "Inventory Status Report",
			QueryText: `SELECT
  product_name,
  category,
  current_stock,
  reorder_level,
  is_low_stock,
  warehouse_location
FROM inventory
WHERE is_low_stock = true
ORDER BY current_stock ASC;`,
			Description: "Low stock inventory items requiring reorder",
			Category:    "inventory",
			Complexity:  Basic,
			Dataset:     DatasetSpec{Type: dataset.Inventory, Count: randomCount(rng, 30, 80)},
		},
		{
			ID:   "customer-orders",
			Name: "Customer Orders Summary",
			QueryText: `SELECT
  customer_name,
  COUNT(*) as order_count,
  SUM(order_value) as total_spent,
  AVG(order_value) as avg_order_value,
  customer_segment
FROM customer_orders
GROUP BY customer_name, customer_segment
ORDER BY total_spent DESC;`,
			Description: "Customer order summary with spending analysis",
			Category:    "customer",
			Complexity:  Intermediate,
			Dataset:     DatasetSpec{Type: dataset.CustomerOrders, Count: randomCount(rng, 40, 100)},
		},
		{
			ID:   "user-analytics",
			Name: "User Analytics Dashboard",
			QueryText: `SELECT
  customer_segment,
  COUNT(*) as user_count,
  AVG(total_sessions) as avg_sessions,
  AVG(total_spent) as avg_spent,
  SUM(CASE WHEN is_premium THEN 1 ELSE 0 END) as premium_users
FROM user_analytics
GROUP BY customer_segment
ORDER BY avg_spent DESC;`,
			Description: "User analytics summary by customer segment",
			Category:    "analytics",
			Complexity:  Intermediate,
			Dataset:     DatasetSpec{Type: dataset.UserAnalytics, Count: randomCount(rng, 25, 60)},
		},
		{
			ID:   "financial-quarterly",
			Name: "Quarterly Financial Metrics",
			QueryText: `SELECT
  period_name,
  revenue,
  profit,
  profit_margin,
  customer_count,
  avg_order_value
FROM financial_metrics
ORDER BY period_name;`,
			Description: "Quarterly financial performance metrics",
			Category:    "financial",
			Complexity:  Basic,
			Dataset:     DatasetSpec{Type: dataset.FinancialMetrics, Count: randomCount(rng, 8, 16)},
		},
	}
}
