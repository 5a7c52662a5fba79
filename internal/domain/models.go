package domain

import "time"

// Location is a node of the supply network (store, warehouse or distribution center)
type Location struct {
	ID        string          `json:"id" db:"id"`
	Name      string          `json:"name" db:"name"`
	Kind      LocationKind    `json:"type" db:"kind"`
	Address   string          `json:"address" db:"address"`
	X         float64         `json:"x" db:"x"`
	Y         float64         `json:"y" db:"y"`
	Inventory []InventoryLine `json:"inventory" db:"-"`
}

// Line returns the inventory line for itemName and whether it exists
func (l Location) Line(itemName string) (InventoryLine, bool) {
	for _, line := range l.Inventory {
		if line.ItemName == itemName {
			return line, true
		}
	}
	return InventoryLine{}, false
}

// Clone returns a deep copy so callers can't reach the owner's inventory slice
func (l Location) Clone() Location {
	c := l
	c.Inventory = append([]InventoryLine(nil), l.Inventory...)
	return c
}

// InventoryLine holds stock, demand and target levels for one item at one location
type InventoryLine struct {
	ItemName string `json:"itemName" db:"item_name"`
	Stock    int    `json:"stock" db:"stock"`
	Demand   int    `json:"demand" db:"demand"`
	Optimal  int    `json:"optimal" db:"optimal"`
}

// Balance is stock minus demand; positive values are surplus margin, negative values deficit
func (l InventoryLine) Balance() int {
	return l.Stock - l.Demand
}

// FillRatio is stock over the optimal target
func (l InventoryLine) FillRatio() float64 {
	if l.Optimal <= 0 {
		return 0
	}
	return float64(l.Stock) / float64(l.Optimal)
}

// Route is a proposed or in-progress goods movement between two locations for one item
type Route struct {
	ID            string      `json:"id"`
	From          string      `json:"from"`
	To            string      `json:"to"`
	Item          string      `json:"item"`
	Quantity      int         `json:"quantity"`
	Priority      Priority    `json:"priority"`
	Status        RouteStatus `json:"status"`
	EstimatedTime string      `json:"estimatedTime"`
	Cost          float64     `json:"cost"`
}

// TransferRequest asks for quantity units of ItemName to move between two locations
type TransferRequest struct {
	FromLocationID string `json:"fromLocationId" binding:"required"`
	ToLocationID   string `json:"toLocationId" binding:"required"`
	ItemName       string `json:"itemName" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
}

// TransferRecord is an immutable entry of the transfer history log
type TransferRecord struct {
	ID           string         `json:"id"`
	FromLocation string         `json:"fromLocation"`
	ToLocation   string         `json:"toLocation"`
	Item         string         `json:"item"`
	Quantity     int            `json:"quantity"`
	Timestamp    time.Time      `json:"timestamp"`
	Type         TransferOrigin `json:"type"`
	Status       TransferStatus `json:"status"`
}

// TransferOption describes an item that can be moved out of a location and its upper bound
type TransferOption struct {
	ItemName    string `json:"itemName"`
	MaxQuantity int    `json:"maxQuantity"`
	Demand      int    `json:"demand"`
	Optimal     int    `json:"optimal"`
}
