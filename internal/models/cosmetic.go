package model

// Cosmetic est une entrée du catalogue d'objets cosmétiques. Le catalogue
// est une constante de compilation, jamais persisté en base.
type Cosmetic struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Cost  int    `json:"cost"`
}
