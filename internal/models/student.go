package models

type Student struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// MaxNameLength mirrors the VARCHAR(100) name columns of students, rooms and clubs.
const MaxNameLength = 100
