package domain

import "strings"

// LocationKind classifies a network node
type LocationKind string

const (
	KindStore        LocationKind = "store"
	KindWarehouse    LocationKind = "warehouse"
	KindDistribution LocationKind = "distribution"
)

// Priority ranks a recommended route
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RouteStatus is the lifecycle state of a route.
// Completed routes leave the active set, so RouteCompleted is never observed there.
type RouteStatus string

const (
	RouteRecommended RouteStatus = "recommended"
	RouteInTransit   RouteStatus = "in-transit"
	RouteCompleted   RouteStatus = "completed"
)

// TransferOrigin tells whether a transfer was entered by an operator or came from a recommendation
type TransferOrigin string

const (
	OriginManual TransferOrigin = "manual"
	OriginAI     TransferOrigin = "ai"
)

// TransferStatus is the state recorded in the history log
type TransferStatus string

const (
	TransferCompleted TransferStatus = "completed"
	TransferInTransit TransferStatus = "in-transit"
)

var locationKinds = map[string]LocationKind{
	"store":        KindStore,
	"warehouse":    KindWarehouse,
	"distribution": KindDistribution,
}

// ParseLocationKind returns the kind for a given label (case-insensitive).
func ParseLocationKind(label string) (LocationKind, bool) {
	kind, ok := locationKinds[strings.ToLower(strings.TrimSpace(label))]

	return kind, ok
}

// ParseTransferOrigin returns the origin for a given label (case-insensitive).
func ParseTransferOrigin(label string) (TransferOrigin, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "manual":
		return OriginManual, true
	case "ai":
		return OriginAI, true
	}

	return "", false
}
