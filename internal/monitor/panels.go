package monitor

import "github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"

// Integrations returns the static connector rows. No external system is contacted.
func Integrations() []domain.IntegrationStatus {
	return []domain.IntegrationStatus{
		{Name: "SAP ERP", Status: "connected", LastSync: "2 min ago", Health: 98},
		{Name: "Oracle WMS", Status: "connected", LastSync: "1 min ago", Health: 95},
		{Name: "Salesforce CRM", Status: "connected", LastSync: "5 min ago", Health: 92},
		{Name: "Amazon Marketplace", Status: "warning", LastSync: "15 min ago", Health: 78},
		{Name: "Shopify Store", Status: "connected", LastSync: "3 min ago", Health: 96},
		{Name: "FedEx API", Status: "connected", LastSync: "1 min ago", Health: 99},
		{Name: "UPS Tracking", Status: "error", LastSync: "45 min ago", Health: 45},
		{Name: "Weather Service", Status: "connected", LastSync: "10 min ago", Health: 88},
	}
}

// Predictions returns the static 7-day demand outlook
func Predictions() []domain.DemandPrediction {
	return []domain.DemandPrediction{
		{Item: "Wireless Headphones", CurrentStock: 229, PredictedDemand: 340, Timeframe: "Next 7 days", Confidence: 92, Action: "Increase stock by 35%", Risk: "medium"},
		{Item: "Bluetooth Speaker", CurrentStock: 185, PredictedDemand: 120, Timeframe: "Next 7 days", Confidence: 87, Action: "Redistribute excess stock", Risk: "low"},
		{Item: "Phone Charger", CurrentStock: 445, PredictedDemand: 520, Timeframe: "Next 7 days", Confidence: 94, Action: "Reorder 100 units", Risk: "high"},
		{Item: "Smart Watch", CurrentStock: 200, PredictedDemand: 180, Timeframe: "Next 7 days", Confidence: 89, Action: "Maintain current levels", Risk: "low"},
	}
}
