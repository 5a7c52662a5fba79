package domain

import "time"

// NetworkStats aggregates the headline numbers of the operations dashboard
type NetworkStats struct {
	TotalLocations    int     `json:"total_locations"`
	ActiveRoutes      int     `json:"active_routes"`
	CriticalShortages int     `json:"critical_shortages"`
	TotalValue        float64 `json:"total_value"`
}

// CriticalAlert flags a line whose stock fell under half of its demand
type CriticalAlert struct {
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	ItemName     string `json:"item_name"`
	Stock        int    `json:"stock"`
	Demand       int    `json:"demand"`
}

// NetworkOverview is the payload served to the dashboard header and alert panel
type NetworkOverview struct {
	Stats       NetworkStats    `json:"stats"`
	Alerts      []CriticalAlert `json:"alerts"`
	Headline    string          `json:"headline"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// SystemStatus is one row of the system health monitor
type SystemStatus struct {
	Name        string    `json:"name"`
	Status      string    `json:"status"` // operational, warning, critical
	Uptime      float64   `json:"uptime"`
	Performance float64   `json:"performance"`
	LastCheck   time.Time `json:"last_check"`
}

// IntegrationStatus is one row of the integration panel
type IntegrationStatus struct {
	Name     string `json:"name"`
	Status   string `json:"status"` // connected, warning, error
	LastSync string `json:"last_sync"`
	Health   int    `json:"health"`
}

// DemandPrediction is one row of the predictive analytics panel
type DemandPrediction struct {
	Item            string `json:"item"`
	CurrentStock    int    `json:"current_stock"`
	PredictedDemand int    `json:"predicted_demand"`
	Timeframe       string `json:"timeframe"`
	Confidence      int    `json:"confidence"`
	Action          string `json:"action"`
	Risk            string `json:"risk"`
}
