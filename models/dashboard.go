package models

// CardData holds the numbers shown in the dashboard summary cards.
// Amounts are in cents.
type CardData struct {
	NumberOfInvoices  int64 `json:"number_of_invoices"`
	NumberOfCustomers int64 `json:"number_of_customers"`
	TotalPaid         int64 `json:"total_paid_invoices"`
	TotalPending      int64 `json:"total_pending_invoices"`
}

// DashboardPage is the view model of the dashboard overview.
type DashboardPage struct {
	Cards          CardData        `json:"cards"`
	LatestInvoices []LatestInvoice `json:"latest_invoices"`
}
