package tmdb

import "fmt"

// Gender is the TMDB gender code carried on person records.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderFemale
	GenderMale
	GenderNonBinary
)

func (g Gender) String() string {
	switch g {
	case GenderFemale:
		return "female"
	case GenderMale:
		return "male"
	case GenderNonBinary:
		return "non-binary"
	default:
		return "unknown"
	}
}

// Person is the detail record returned by GET /person/{id}.
type Person struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	AlsoKnownAs        []string `json:"also_known_as"`
	Biography          string   `json:"biography"`
	Birthday           string   `json:"birthday"`
	Deathday           string   `json:"deathday"`
	Gender             Gender   `json:"gender"`
	Homepage           string   `json:"homepage"`
	IMDBID             string   `json:"imdb_id"`
	KnownForDepartment string   `json:"known_for_department"`
	PlaceOfBirth       string   `json:"place_of_birth"`
	Popularity         float64  `json:"popularity"`
	ProfilePath        string   `json:"profile_path"`
	Adult              bool     `json:"adult"`
}

// String renders the fixed profile template shown to callers. Missing
// optional fields render as blanks.
func (p Person) String() string {
	return fmt.Sprintf("ID: %d\nName: %s\nDate of Birth: %s\nPlace of Birth: %s\nBiography: %s",
		p.ID, p.Name, p.Birthday, p.PlaceOfBirth, p.Biography)
}

// Movie is one entry of a discover response.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	BackdropPath     string  `json:"backdrop_path"`
	PosterPath       string  `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	GenreIDs         []int64 `json:"genre_ids"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
}

// ReleaseYear extracts the 4-digit year from the release date, or "" when
// the date is too short to carry one.
func (m Movie) ReleaseYear() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// Label renders the movie as "Title (YYYY)", dropping the parenthesized
// year when the release date is absent.
func (m Movie) Label() string {
	year := m.ReleaseYear()
	if year == "" {
		return m.Title
	}
	return fmt.Sprintf("%s (%s)", m.Title, year)
}
