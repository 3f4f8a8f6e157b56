// Package catalog строит представление локального каталога для просмотра:
// фильтрация, сортировка и постраничный вывод.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/iudanet/movieshelf/internal/models"
)

// Варианты сортировки
const (
	SortNone           = ""
	SortTitleAsc       = "titleAsc"
	SortTitleDesc      = "titleDesc"
	SortRatingAsc      = "ratingAsc"
	SortRatingDesc     = "ratingDesc"
	SortClassification = "classification"
)

// DefaultPerPage размер страницы по умолчанию
const DefaultPerPage = 5

// SortOptions допустимые значения сортировки
var SortOptions = []string{SortTitleAsc, SortTitleDesc, SortRatingAsc, SortRatingDesc, SortClassification}

var classOrder = map[string]int{
	models.ClassOldie:  0,
	models.ClassIconic: 1,
	models.ClassNewGen: 2,
}

// Query параметры представления
type Query struct {
	Sort     string
	Title    string // подстрока названия без учёта регистра
	Director string // подстрока имени режиссёра без учёта регистра
	Page     int    // номер страницы с 1
	PerPage  int    // 0 означает DefaultPerPage
}

// Page страница представления
type Page struct {
	Movies  []*models.Movie
	Total   int             // записей после фильтрации
	Page    int
	PerPage int
	Pages   int
}

// ValidateSort проверяет вариант сортировки
func ValidateSort(option string) error {
	if option == SortNone {
		return nil
	}
	for _, o := range SortOptions {
		if o == option {
			return nil
		}
	}
	return fmt.Errorf("unknown sort option %q, expected one of: %s", option, strings.Join(SortOptions, ", "))
}

// View фильтрует, сортирует и режет на страницы. Входной срез не меняется.
func View(movies []*models.Movie, q Query) (*Page, error) {
	if err := ValidateSort(q.Sort); err != nil {
		return nil, err
	}

	filtered := Filter(movies, q.Title, q.Director)
	Sort(filtered, q.Sort)
	return Paginate(filtered, q.Page, q.PerPage), nil
}

// Filter отбирает записи по подстрокам названия и режиссёра
func Filter(movies []*models.Movie, title, director string) []*models.Movie {
	title = strings.ToLower(strings.TrimSpace(title))
	director = strings.ToLower(strings.TrimSpace(director))

	result := make([]*models.Movie, 0, len(movies))
	for _, m := range movies {
		if title != "" && !strings.Contains(strings.ToLower(m.Title), title) {
			continue
		}
		if director != "" && !strings.Contains(strings.ToLower(m.Director), director) {
			continue
		}
		result = append(result, m)
	}
	return result
}

// Sort сортирует срез на месте. Сортировка устойчивая: при равенстве
// ключей сохраняется исходный порядок.
func Sort(movies []*models.Movie, option string) {
	switch option {
	case SortTitleAsc, SortTitleDesc:
		col := collate.New(language.Und, collate.IgnoreCase)
		desc := option == SortTitleDesc
		sort.SliceStable(movies, func(i, j int) bool {
			if desc {
				return col.CompareString(movies[j].Title, movies[i].Title) < 0
			}
			return col.CompareString(movies[i].Title, movies[j].Title) < 0
		})
	case SortRatingAsc:
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].Rating < movies[j].Rating
		})
	case SortRatingDesc:
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].Rating > movies[j].Rating
		})
	case SortClassification:
		sort.SliceStable(movies, func(i, j int) bool {
			return classOrder[movies[i].Classification()] < classOrder[movies[j].Classification()]
		})
	}
}

// Paginate возвращает страницу page. Номер вне диапазона прижимается к краю.
func Paginate(movies []*models.Movie, page, perPage int) *Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	total := len(movies)
	pages := (total + perPage - 1) / perPage
	if pages == 0 {
		pages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}

	return &Page{
		Movies:  movies[start:end],
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   pages,
	}
}
