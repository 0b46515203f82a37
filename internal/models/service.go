package models

type Service struct {
	Name  string  `json:"nome"`
	Price float64 `json:"preco"`
}
