package api

// KPI is a single headline indicator card
type KPI struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"` // "up" or "down"
	Color  string `json:"color"`
	Emoji  string `json:"emoji"`
}

// KPIs is the payload of GET /analytics/kpi
type KPIs struct {
	KPIData []KPI `json:"kpiData"`
}

// CustomerSegment groups customers by accumulated purchases
type CustomerSegment struct {
	Segment    string  `json:"segment"`
	Count      int     `json:"count"`
	Percentage int     `json:"percentage"`
	Revenue    float64 `json:"revenue"`
	Emoji      string  `json:"emoji"`
}

// CustomerSegments is the payload of GET /analytics/customer-segments
type CustomerSegments struct {
	CustomerSegments []CustomerSegment `json:"customerSegments"`
}

// SalesDay holds the aggregated sales for one calendar day
type SalesDay struct {
	Date      string  `json:"date"`
	Sales     float64 `json:"sales"`
	Orders    int64   `json:"orders"`
	Customers int64   `json:"customers"`
}

// SalesTrends is the payload of GET /analytics/sales-trends
type SalesTrends struct {
	SalesData []SalesDay `json:"salesData"`
}

// DashboardStats is the payload of GET /dashboard/stats
type DashboardStats struct {
	TotalProducts    int64   `json:"totalProducts"`
	ActiveProducts   int64   `json:"activeProducts"`
	LowStockProducts int64   `json:"lowStockProducts"`
	TotalCustomers   int64   `json:"totalCustomers"`
	ActiveCustomers  int64   `json:"activeCustomers"`
	MonthlyRevenue   float64 `json:"monthlyRevenue"`
	MonthlySales     int64   `json:"monthlySales"`
	DailyRevenue     float64 `json:"dailyRevenue"`
	DailySales       int64   `json:"dailySales"`
	TotalUsers       int64   `json:"totalUsers"`
}

// Activity is one entry of the recent activity feed
type Activity struct {
	Type     string `json:"type"`     // e.g. "stock", "sale", "customer"
	Message  string `json:"message"`
	Time     string `json:"time"`
	Priority string `json:"priority"` // "high", "medium" or "low"
}

// RecentActivity is the payload of GET /dashboard/recent-activity
type RecentActivity struct {
	Activities []Activity `json:"activities"`
	LastUpdate string     `json:"lastUpdate"`
}
