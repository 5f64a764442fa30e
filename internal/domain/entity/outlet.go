package entity

// Outlet representa una sucursal física del restaurante.
// El outlet central despacha a los demás.
type Outlet struct {
	ID        string
	Name      string
	Address   string
	IsCentral bool
}
