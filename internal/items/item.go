// Package items owns the item collection: an open-schema record type
// and a store over the DynamoDB table that holds it.
package items

// Item is one record in the collection. The schema is open: clients
// send whatever attributes they like, and only "id" (the table's hash
// key) has fixed meaning. Values are generic JSON values, so numeric
// attributes always surface as float64 and encode as plain JSON
// numbers.
type Item map[string]any

// ID returns the item's key, or "" when the id attribute is missing
// or not a string.
func (it Item) ID() string {
	id, _ := it["id"].(string)
	return id
}
