package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/movieshelf/internal/models"
)

// sampleMovies стартовый каталог для демонстрационной базы
var sampleMovies = []models.Movie{
	{
		Title:       "Inception",
		Director:    "Christopher Nolan",
		ReleaseDate: "2010-07-16",
		Rating:      8.8,
		Description: "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		Poster:      "https://example.com/inception.jpg",
		Trailer:     "https://example.com/inception-trailer.mp4",
	},
	{
		Title:       "The Dark Knight",
		Director:    "Christopher Nolan",
		ReleaseDate: "2008-07-18",
		Rating:      9.0,
		Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		Poster:      "https://example.com/dark-knight.jpg",
		Trailer:     "https://example.com/dark-knight-trailer.mp4",
	},
	{
		Title:       "Pulp Fiction",
		Director:    "Quentin Tarantino",
		ReleaseDate: "1994-10-14",
		Rating:      8.9,
		Description: "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
		Poster:      "https://example.com/pulp-fiction.jpg",
		Trailer:     "https://example.com/pulp-fiction-trailer.mp4",
	},
	{
		Title:       "Inglourious Basterds",
		Director:    "Quentin Tarantino",
		ReleaseDate: "2009-08-21",
		Rating:      8.3,
		Description: "In Nazi-occupied France during World War II, a plan to assassinate Nazi leaders by a group of Jewish U.S. soldiers coincides with a theatre owner's vengeful plans for the same.",
		Poster:      "https://example.com/inglourious-basterds.jpg",
		Trailer:     "https://example.com/inglourious-basterds-trailer.mp4",
	},
	{
		Title:       "Jurassic Park",
		Director:    "Steven Spielberg",
		ReleaseDate: "1993-06-11",
		Rating:      8.1,
		Description: "A pragmatic paleontologist visiting an almost complete theme park is tasked with protecting a couple of kids after a power failure causes the park's cloned dinosaurs to run loose.",
		Poster:      "https://example.com/jurassic-park.jpg",
		Trailer:     "https://example.com/jurassic-park-trailer.mp4",
	},
	{
		Title:       "Schindler's List",
		Director:    "Steven Spielberg",
		ReleaseDate: "1994-02-04",
		Rating:      9.0,
		Description: "In German-occupied Poland during World War II, industrialist Oskar Schindler gradually becomes concerned for his Jewish workforce after witnessing their persecution by the Nazis.",
		Poster:      "https://example.com/schindlers-list.jpg",
		Trailer:     "https://example.com/schindlers-list-trailer.mp4",
	},
	{
		Title:       "Avatar",
		Director:    "James Cameron",
		ReleaseDate: "2009-12-18",
		Rating:      7.8,
		Description: "A paraplegic Marine dispatched to the moon Pandora on a unique mission becomes torn between following his orders and protecting the world he feels is his home.",
		Poster:      "https://example.com/avatar.jpg",
		Trailer:     "https://example.com/avatar-trailer.mp4",
	},
	{
		Title:       "Titanic",
		Director:    "James Cameron",
		ReleaseDate: "1997-12-19",
		Rating:      7.9,
		Description: "A seventeen-year-old aristocrat falls in love with a kind but poor artist aboard the luxurious, ill-fated R.M.S. Titanic.",
		Poster:      "https://example.com/titanic.jpg",
		Trailer:     "https://example.com/titanic-trailer.mp4",
	},
	{
		Title:       "The Departed",
		Director:    "Martin Scorsese",
		ReleaseDate: "2006-10-06",
		Rating:      8.5,
		Description: "An undercover cop and a mole in the police attempt to identify each other while infiltrating an Irish gang in South Boston.",
		Poster:      "https://example.com/the-departed.jpg",
		Trailer:     "https://example.com/the-departed-trailer.mp4",
	},
	{
		Title:       "Goodfellas",
		Director:    "Martin Scorsese",
		ReleaseDate: "1990-09-19",
		Rating:      8.7,
		Description: "The story of Henry Hill and his life in the mob, covering his relationship with his wife Karen Hill and his mob partners Jimmy Conway and Tommy DeVito in the Italian-American crime syndicate.",
		Poster:      "https://example.com/goodfellas.jpg",
		Trailer:     "https://example.com/goodfellas-trailer.mp4",
	},
}

// SeedMovies заполняет пустой каталог примерами и возвращает число добавленных фильмов.
// Непустой каталог не изменяется.
func (s *Storage) SeedMovies(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for i := range sampleMovies {
		if _, err := s.CreateMovie(ctx, &sampleMovies[i]); err != nil {
			return i, fmt.Errorf("failed to seed %q: %w", sampleMovies[i].Title, err)
		}
	}

	return len(sampleMovies), nil
}
