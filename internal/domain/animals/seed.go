package animals

// SeedData es el catálogo taxonómico inicial. Lo carga cmd/seed;
// las imágenes apuntan a la galería pública del FWS.
func SeedData() []Animal {
	return []Animal{
		{
			Name:    "Red Tailed Hawk",
			Genus:   "Buteo",
			Species: "jamaicensis",
			GName:   "Red Tailed Hawk",
			Image:   "https://digitalmedia.fws.gov/digital/api/singleitem/image/natdiglib/11386/default.jpg?highlightTerms=red%20hawk",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Order:   "Accipitriformes",
			Family:  "Accipitridae",
			Cls:     "Aves",
		},
		{
			Name:    "Coyote",
			Genus:   "Canis",
			Species: "latrans",
			GName:   "Coyote",
			Image:   "https://digitalmedia.fws.gov/digital/api/singleitem/image/natdiglib/11774/default.jpg?highlightTerms=coyote",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Order:   "Carnivora",
			Family:  "Canidae",
			Cls:     "Mammalia",
		},
		{
			Name:    "Great Horned Owl",
			Genus:   "Bubo",
			Species: "virginianus",
			GName:   "Great Horned Owl",
			Image:   "https://digitalmedia.fws.gov/digital/api/singleitem/image/natdiglib/12828/default.jpg?highlightTerms=great%20owl",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Order:   "Strigiformes",
			Family:  "Strigidae",
			Cls:     "Aves",
		},
		{
			Name:    "Eastern Screech Owl",
			Genus:   "Megascops",
			Species: "asio",
			GName:   "Eastern Screech Owl",
			Image:   "https://digitalmedia.fws.gov/digital/api/singleitem/image/natdiglib/7450/default.jpg?highlightTerms=Screech%20owl",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Order:   "Strigiformes",
			Family:  "Strigidae",
			Cls:     "Aves",
		},
		{
			Name:    "Bald Eagle",
			Genus:   "Haliaeetus",
			Species: "leucocephalus",
			GName:   "Bald Eagle",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Order:   "Accipitriformes",
			Family:  "Accipitridae",
			Cls:     "Aves",
		},
		{
			Name:    "Harp Seal",
			Genus:   "Pagophilus",
			Species: "groenlandicus",
			GName:   "Harp Seal",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Order:   "Carnivora",
			Family:  "Phocidae",
			Cls:     "Mammalia",
		},
		{
			Name:    "Grey Seal",
			Genus:   "Halichoerus",
			Species: "grypus",
			GName:   "Grey Seal",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Order:   "Carnivora",
			Family:  "Phocidae",
			Cls:     "Mammalia",
		},
		{
			Name:    "Opossum",
			Genus:   "Didelphis",
			Species: "virginiana",
			GName:   "Opossum",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Order:   "Didelphimorphia",
			Family:  "Didelphidae",
			Cls:     "Mammalia",
		},
		{
			Name:    "Eastern Gray Squirrel",
			Genus:   "Sciurus",
			Species: "carolinensis",
			GName:   "Eastern Gray Squirrel",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Order:   "Rodentia",
			Family:  "Sciuridae",
			Cls:     "Mammalia",
		},
		{
			Name:    "Osprey",
			Genus:   "Pandion",
			Species: "haliaetus",
			GName:   "Osprey",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Order:   "Accipitriformes",
			Family:  "Pandionidae",
			Cls:     "Aves",
		},
		{
			Name:    "Peregrine Falcon",
			Genus:   "Falco",
			Species: "peregrinus",
			GName:   "Peregrine Falcon",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Order:   "Falconiformes",
			Family:  "Falconidae",
			Cls:     "Aves",
		},
		{
			Name:    "Raccoon",
			Genus:   "Procyon",
			Species: "lotor",
			GName:   "Raccoon",
			Kingdom: "Animalia",
			Phylum:  "Chordata",
			Order:   "Carnivora",
			Family:  "Procyonidae",
			Cls:     "Mammalia",
		},
	}
}
