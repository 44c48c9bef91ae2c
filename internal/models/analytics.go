package models

// SalesAnalytics summarizes revenue over the reporting window
type SalesAnalytics struct {
	TotalRevenue      float64 `json:"totalRevenue" db:"total_revenue"`
	TotalSales        int     `json:"totalSales" db:"total_sales"`
	AverageOrderValue float64 `json:"averageOrderValue" db:"average_order_value"`
}

// InventoryAnalytics summarizes stock across all inventory
type InventoryAnalytics struct {
	TotalItems    int     `json:"totalItems" db:"total_items"`
	TotalValue    float64 `json:"totalValue" db:"total_value"`
	TotalCost     float64 `json:"totalCost" db:"total_cost"`
	LowStockItems int     `json:"lowStockItems" db:"low_stock_items"`
}

// ProfitLoss derives gross profit from inventory value and cost
type ProfitLoss struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCost    float64 `json:"totalCost"`
	GrossProfit  float64 `json:"grossProfit"`
	ProfitMargin float64 `json:"profitMargin"`
}

// CustomerAnalytics counts customers, active meaning purchased within
// the reporting window
type CustomerAnalytics struct {
	TotalCustomers  int `json:"totalCustomers" db:"total_customers"`
	ActiveCustomers int `json:"activeCustomers" db:"active_customers"`
}

// MonthlyTrend is one calendar-month revenue bucket
type MonthlyTrend struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// MonthlyRevenueRow is the raw year+month aggregation result before
// the bucket label is rendered
type MonthlyRevenueRow struct {
	Year    int     `db:"year"`
	Month   int     `db:"month"`
	Revenue float64 `db:"revenue"`
}

// AlertItem is the trimmed jewelry projection returned by stock alerts
type AlertItem struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	SKU      string `json:"sku" db:"sku"`
	Category string `json:"category" db:"category"`
	Quantity int    `json:"quantity" db:"quantity"`
}

// TopSellingItem aggregates sale line items per jewelry record
type TopSellingItem struct {
	JewelryID   int64   `json:"jewelryId" db:"jewelry_id"`
	JewelryName string  `json:"jewelryItemName" db:"jewelry_name"`
	Quantity    int     `json:"quantity" db:"quantity"`
	Revenue     float64 `json:"revenue" db:"revenue"`
}

// CategoryCount is one bucket of a distribution breakdown
type CategoryCount struct {
	Category string `json:"category" db:"category"`
	Count    int    `json:"count" db:"count"`
}

// Analytics is the full reporting payload
type Analytics struct {
	Sales      SalesReport     `json:"sales"`
	Inventory  InventoryReport `json:"inventory"`
	ProfitLoss ProfitLoss      `json:"profitLoss"`
	Customer   CustomerReport  `json:"customer"`
	Trends     TrendReport     `json:"monthlyTrends"`
	TopSelling TopSellingList  `json:"topSelling"`
}

// SalesReport extends the revenue aggregates with the individual sales
// slot clients expect; it is returned empty for now
type SalesReport struct {
	SalesAnalytics
	Sales []Sale `json:"sales"`
}

// CustomerReport extends the customer counts with the new/returning
// split
type CustomerReport struct {
	CustomerAnalytics
	NewCustomers       int `json:"newCustomers"`
	ReturningCustomers int `json:"returningCustomers"`
}

// TrendReport wraps the monthly revenue series
type TrendReport struct {
	Trends []MonthlyTrend `json:"trends"`
}

// TopSellingList wraps the best-seller ranking
type TopSellingList struct {
	Items []TopSellingItem `json:"items"`
}

// InventoryReport extends the inventory aggregates with breakdowns
type InventoryReport struct {
	InventoryAnalytics
	InStock            int            `json:"inStock"`
	CategoryBreakdown  map[string]int `json:"categoryBreakdown"`
	MetalTypeBreakdown map[string]int `json:"metalTypeBreakdown"`
}
