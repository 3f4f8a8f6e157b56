// Package cli команды интерактивного клиента каталога фильмов
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/movieshelf/internal/client/auth"
	"github.com/iudanet/movieshelf/internal/client/iocli"
	"github.com/iudanet/movieshelf/internal/client/live"
	"github.com/iudanet/movieshelf/internal/client/sync"
	"github.com/iudanet/movieshelf/internal/models"
	pkgapi "github.com/iudanet/movieshelf/pkg/api"
)

//go:generate moq -out deps_mock.go . Coordinator Replica Connectivity Ratings LiveChannel

// EnvPassword переменная окружения с паролем для неинтерактивного входа
const EnvPassword = "MOVIESHELF_PASSWORD"

// ErrUnknownCommand команда не распознана
var ErrUnknownCommand = errors.New("unknown command")

// Coordinator изменения каталога и синхронизация
type Coordinator interface {
	Mutate(ctx context.Context, m sync.Mutation, state sync.ConnectivityState) (*models.Movie, error)
	ReplayPending(ctx context.Context) (bool, error)
	Sync(ctx context.Context) (*sync.SyncResult, error)
	LastSync(ctx context.Context) int64
}

// Replica чтение локальной реплики
type Replica interface {
	GetAll(ctx context.Context) []*models.Movie
	Get(ctx context.Context, id int64) (*models.Movie, bool)
	PendingCounts(ctx context.Context) map[models.OperationKind]int
}

// Connectivity состояние связи с сервером
type Connectivity interface {
	Check(ctx context.Context) sync.ConnectivityState
	Run(ctx context.Context, onOnline func(ctx context.Context))
}

// Ratings оценки фильмов на сервере
type Ratings interface {
	RateMovie(ctx context.Context, id int64, score float64) (*pkgapi.RatingResponse, error)
	MyRatings(ctx context.Context) ([]*models.Rating, error)
}

// LiveChannel канал живых обновлений
type LiveChannel interface {
	Run(ctx context.Context, onConnect func(ctx context.Context)) error
	StartGeneration(ctx context.Context) error
	StopGeneration(ctx context.Context) error
}

// LiveFactory создает канал живых обновлений с обработчиками событий
type LiveFactory func(opts ...live.Option) (LiveChannel, error)

// Deps зависимости клиента
type Deps struct {
	IO           iocli.IO
	Auth         auth.Service
	Coordinator  Coordinator
	Replica      Replica
	Connectivity Connectivity
	Ratings      Ratings
	Live         LiveFactory
	Logger       *slog.Logger
}

// Cli выполняет команды пользователя
type Cli struct {
	io       iocli.IO
	auth     auth.Service
	coord    Coordinator
	replica  Replica
	monitor  Connectivity
	ratings  Ratings
	newLive  LiveFactory
	logger   *slog.Logger
	password func() string
}

// New создает Cli
func New(d Deps) *Cli {
	return &Cli{
		io:       d.IO,
		auth:     d.Auth,
		coord:    d.Coordinator,
		replica:  d.Replica,
		monitor:  d.Connectivity,
		ratings:  d.Ratings,
		newLive:  d.Live,
		logger:   d.Logger,
		password: func() string { return os.Getenv(EnvPassword) },
	}
}

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "add":
		return c.runAdd(ctx)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "rate":
		return c.runRate(ctx, args)
	case "ratings":
		return c.runRatings(ctx)
	case "watch":
		return c.runWatch(ctx, args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// PrintUsage печатает справку
func PrintUsage(out iocli.IO) {
	out.Println("movieshelf - offline-first movie catalog")
	out.Println()
	out.Println("Usage:")
	out.Println("  movieshelf [OPTIONS] COMMAND [ARGS]")
	out.Println()
	out.Println("Options:")
	out.Println("  --version          Show version information")
	out.Println("  --server URL       Server URL (default: http://localhost:8080)")
	out.Println("  --db PATH          Path to local database (default: movieshelf-client.db)")
	out.Println("  --verbose          Print debug logs to stderr")
	out.Println()
	out.Println("Commands:")
	out.Println("  register           Register new user")
	out.Println("  login              Login to server")
	out.Println("  logout             Logout and forget the local session")
	out.Println("  status             Show session, connectivity and pending changes")
	out.Println("  list [FLAGS]       List movies from the local catalog")
	out.Println("      --sort titleAsc|titleDesc|ratingAsc|ratingDesc|classification")
	out.Println("      --title TEXT --director TEXT --page N --per-page N")
	out.Println("  get <id>           Show movie details")
	out.Println("  add                Add a movie")
	out.Println("  update <id>        Edit a movie")
	out.Println("  delete <id>        Delete a movie")
	out.Println("  sync               Push pending changes and refresh the catalog")
	out.Println("  rate <id> <0-10>   Rate a movie")
	out.Println("  ratings            Show your ratings")
	out.Println("  watch [--generate] Follow movies created on the server")
	out.Println()
	out.Printf("The password is read from %s when set, otherwise prompted.\n", EnvPassword)
	out.Println("Changes made while offline are queued and sent on the next sync.")
}
