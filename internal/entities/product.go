package entities

type Product struct {
	SkuID    string
	Name     string
	Price    int
	Discount int
	Stock    int
}
