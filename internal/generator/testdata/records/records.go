package records

type Money float64

type Book struct {
	Title   string
	Pages   int
	Price   *Money
	Authors []string
	isbn    string
}
