package storage

import "github.com/getcomicd/comicd/pkg/comic"

// SeedComics returns the three comics every fresh store starts with.
func SeedComics() []comic.Comic {
	return []comic.Comic{
		{
			ID:          1,
			Title:       "Batman: The Dark Knight Returns",
			Author:      "Frank Miller",
			Year:        1986,
			Publisher:   "DC Comics",
			Genre:       "Superhero",
			Description: "An aged Bruce Wayne dons the cape once more in a Gotham that has moved on without him.",
		},
		{
			ID:          2,
			Title:       "Watchmen",
			Author:      "Alan Moore",
			Year:        1986,
			Publisher:   "DC Comics",
			Genre:       "Superhero",
			Description: "Retired masked heroes are drawn back together when one of their own is murdered.",
		},
		{
			ID:          3,
			Title:       "Maus",
			Author:      "Art Spiegelman",
			Year:        1991,
			Publisher:   "Pantheon Books",
			Genre:       "Biography",
			Description: "A survivor's account of the Holocaust, retold with mice and cats.",
		},
	}
}
