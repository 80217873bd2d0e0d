package animals

// Animal es un registro taxonómico de referencia. Read-mostly,
// sin dueño: se carga por seed y no pasa por el ownership guard.
type Animal struct {
	ID      string
	Name    string
	Genus   string
	Species string
	GName   string // nombre común ("given name") usado por el seed original
	Image   string // URL representativa
	Kingdom string
	Phylum  string
	Order   string
	Family  string
	Cls     string // clase taxonómica; "cls" porque "class" es palabra reservada en el schema original
}
