package models

type Room struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Club struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
