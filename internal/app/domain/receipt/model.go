// Package receipt defines the receipt domain model together with the two
// pure core operations on it: admissibility (Validate) and scoring (Points).
package receipt

// Receipt is a purchase record submitted for scoring. Field names follow the
// wire format. A receipt is immutable once accepted.
type Receipt struct {
	Retailer     string `json:"retailer"`
	PurchaseDate string `json:"purchaseDate"`
	PurchaseTime string `json:"purchaseTime"`
	Items        []Item `json:"items"`
	Total        string `json:"total"`
}

// Item is a single line entry within a receipt.
type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}
