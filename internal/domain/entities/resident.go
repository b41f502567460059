package entities

// Resident is a unit owner/tenant registered by the condo administration.
//
// Storage model (DynamoDB):
//   - PK: condo_id
//   - SK: id
//
// Residents are referenced by billing operations but never mutated by them.

type Resident struct {
	ID      string `json:"id"`
	CondoID string `json:"condo_id"`
	Name    string `json:"name"`
	Unit    string `json:"unit"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}
