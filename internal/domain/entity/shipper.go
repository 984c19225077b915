package entity

// Shipper representa una transportadora; el nombre es único en la tabla.
type Shipper struct {
	ID    int64
	Name  string
	Phone string
}
