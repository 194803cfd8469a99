package finance

// Report is the consolidated financial report over the transaction and
// vehicle tables. All metrics are zero on an empty store.
type Report struct {
	TotalRevenue          float64 `json:"total_revenue"`
	TotalOperationalCosts float64 `json:"total_operational_costs"`
	TotalProfit           float64 `json:"total_profit"`
	AverageMileage        float64 `json:"average_mileage"`
}
