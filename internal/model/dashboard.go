package model

// DashboardSummary is the landing-page aggregate, derived on demand from the
// individual repositories.
type DashboardSummary struct {
	TotalPatients       int `json:"total_patients"`
	AdmittedPatients    int `json:"admitted_patients"`
	AppointmentsToday   int `json:"appointments_today"`
	LowStockMedications int `json:"low_stock_medications"`
	PendingLabOrders    int `json:"pending_lab_orders"`
	UnreadNotifications int `json:"unread_notifications"`
}
