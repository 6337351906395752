package entity

// Product represents a product record returned by the metadata API.
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// ProductMapping indexa os produtos da API pelo seu ID numérico.
type ProductMapping map[int]Product
