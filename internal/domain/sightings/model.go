package sightings

import "time"

// Sighting es un avistamiento: pertenece a exactamente un User y
// referencia exactamente un Animal. UserID y AnimalID son inmutables
// después de la creación; ninguna operación expuesta los toca.
type Sighting struct {
	ID        string
	Title     string
	Body      string
	UserID    string
	AnimalID  string
	Likes     int
	ImagePath string // key en el bucket (sin el prefijo "sightings/"); vacío = sin imagen
	CreatedAt time.Time
}
