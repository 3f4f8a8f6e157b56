package sync

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/movieshelf/internal/client/api"
	"github.com/iudanet/movieshelf/internal/models"
)

func TestReplay_CreateUpdateDeleteNeverReachesServer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie("Alien")}, offline)
	require.NoError(t, err)
	_, err = env.coord.Mutate(ctx, Mutation{Kind: models.OpUpdate, ID: created.ID, Movie: newMovie("Alien 2")}, offline)
	require.NoError(t, err)
	_, err = env.coord.Mutate(ctx, Mutation{Kind: models.OpDelete, ID: created.ID}, offline)
	require.NoError(t, err)
	require.Len(t, env.replica.ListPending(ctx), 3)

	res, err := env.coord.Replay(ctx)
	require.NoError(t, err)
	assert.True(t, res.Drained)
	assert.Equal(t, 3, res.Dropped)
	assert.Zero(t, res.Synced)

	assert.Zero(t, env.remoteCalls())
	assert.Empty(t, env.replica.GetAll(ctx))
}

func TestReplay_CreateRewritesDependents(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie("Alien")}, offline)
	require.NoError(t, err)
	_, err = env.coord.Mutate(ctx, Mutation{Kind: models.OpUpdate, ID: created.ID, Movie: newMovie("Alien: Director's Cut")}, offline)
	require.NoError(t, err)

	res, err := env.coord.Replay(ctx)
	require.NoError(t, err)
	assert.True(t, res.Drained)
	assert.Equal(t, 2, res.Synced)

	// CREATE ушёл с исходными данными, UPDATE с ID сервера
	creates := env.remote.CreateMovieCalls()
	require.Len(t, creates, 1)
	assert.Equal(t, "Alien", creates[0].Movie.Title)

	updates := env.remote.UpdateMovieCalls()
	require.Len(t, updates, 1)
	assert.Equal(t, int64(101), updates[0].Id)
	assert.Equal(t, int64(101), updates[0].Movie.ID)

	assert.False(t, env.replica.Has(ctx, created.ID))
	local, ok := env.replica.Get(ctx, 101)
	require.True(t, ok)
	assert.Equal(t, "Alien: Director's Cut", local.Title)
	assert.False(t, local.IsOffline)

	remote, ok := env.catalog.get(101)
	require.True(t, ok)
	assert.Equal(t, "Alien: Director's Cut", remote.Title)
}

func TestReplay_ConnectivityFailureKeepsQueue(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedLocal(ctx, &models.Movie{ID: 7, Title: "Heat", Director: "Michael Mann", Description: "LA"})

	created, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie("Alien")}, offline)
	require.NoError(t, err)
	_, err = env.coord.Mutate(ctx, Mutation{Kind: models.OpUpdate, ID: created.ID, Movie: newMovie("Alien 2")}, offline)
	require.NoError(t, err)
	_, err = env.coord.Mutate(ctx, Mutation{Kind: models.OpUpdate, ID: 7, Movie: newMovie("Heat 2")}, offline)
	require.NoError(t, err)

	env.catalog.setDown(true)

	drained, err := env.coord.ReplayPending(ctx)
	require.NoError(t, err)
	assert.False(t, drained)

	// зависимый UPDATE не отправлялся, независимый попробовали
	assert.Len(t, env.remote.CreateMovieCalls(), 1)
	assert.Len(t, env.remote.UpdateMovieCalls(), 1)

	before := env.replica.ListPending(ctx)
	require.Len(t, before, 3)
	assert.Equal(t, models.OpCreate, before[0].Kind)
	assert.Equal(t, before[0].ID, before[1].DependsOn)
	assert.Equal(t, int64(7), before[2].MovieID)

	env.catalog.setDown(false)

	drained, err = env.coord.ReplayPending(ctx)
	require.NoError(t, err)
	assert.True(t, drained)

	heat, _ := env.catalog.get(7)
	assert.Equal(t, "Heat 2", heat.Title)
	alien, ok := env.catalog.get(101)
	require.True(t, ok)
	assert.Equal(t, "Alien 2", alien.Title)
}

func TestReplay_RejectedCreateDropsDependents(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.catalog.rejects["Alien"] = &api.StatusError{StatusCode: 400, Message: "description is required"}

	created, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie("Alien")}, offline)
	require.NoError(t, err)
	_, err = env.coord.Mutate(ctx, Mutation{Kind: models.OpUpdate, ID: created.ID, Movie: newMovie("Alien 2")}, offline)
	require.NoError(t, err)
	_, err = env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie("Heat")}, offline)
	require.NoError(t, err)

	res, err := env.coord.Replay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Dropped)
	assert.Equal(t, 1, res.Synced)
	assert.True(t, res.Drained)

	assert.Len(t, env.remote.CreateMovieCalls(), 2)
	assert.Empty(t, env.remote.UpdateMovieCalls())
	assert.False(t, env.replica.Has(ctx, created.ID))

	all := env.replica.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "Heat", all[0].Title)

	// повторное воспроизведение ничего не отправляет
	_, err = env.coord.Replay(ctx)
	require.NoError(t, err)
	assert.Len(t, env.remote.CreateMovieCalls(), 2)
}

func TestReplay_NotFoundIsNotRetried(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	// на сервере записей нет
	env.replica.Put(ctx, &models.Movie{ID: 7, Title: "Heat", Director: "Michael Mann", Description: "LA"})
	env.replica.Put(ctx, &models.Movie{ID: 8, Title: "Ronin", Director: "John Frankenheimer", Description: "Paris"})

	_, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpUpdate, ID: 7, Movie: newMovie("Heat 2")}, offline)
	require.NoError(t, err)
	_, err = env.coord.Mutate(ctx, Mutation{Kind: models.OpDelete, ID: 8}, offline)
	require.NoError(t, err)

	res, err := env.coord.Replay(ctx)
	require.NoError(t, err)
	assert.True(t, res.Drained)
	// удаление уже удалённой записи считается успехом
	assert.Equal(t, 1, res.Synced)
	assert.Equal(t, 1, res.Dropped)
	assert.False(t, env.replica.Has(ctx, 7))

	_, err = env.coord.Replay(ctx)
	require.NoError(t, err)
	assert.Len(t, env.remote.UpdateMovieCalls(), 1)
	assert.Len(t, env.remote.DeleteMovieCalls(), 1)
}

func TestReplay_DanglingDependencyIsDropped(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.replica.Put(ctx, &models.Movie{ID: -5, Title: "Orphan", Director: "d", Description: "x", IsOffline: true})
	env.replica.Enqueue(ctx, models.PendingOperation{
		Kind:      models.OpUpdate,
		MovieID:   -5,
		DependsOn: "missing-create",
		Movie:     &models.Movie{ID: -5, Title: "Orphan 2", Director: "d", Description: "x"},
	})

	res, err := env.coord.Replay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Dropped)
	assert.True(t, res.Drained)
	assert.Zero(t, env.remoteCalls())
}

func TestReplay_UnauthorizedStops(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.catalog.rejects["Alien"] = &api.StatusError{StatusCode: 401}

	_, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie("Alien")}, offline)
	require.NoError(t, err)
	_, err = env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie("Heat")}, offline)
	require.NoError(t, err)

	drained, err := env.coord.ReplayPending(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.False(t, drained)

	assert.Len(t, env.remote.CreateMovieCalls(), 1)
	assert.Len(t, env.replica.ListPending(ctx), 2)
}

func TestReplay_IsSerialized(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	slow := env.remote.CreateMovieFunc
	env.remote.CreateMovieFunc = func(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
		time.Sleep(20 * time.Millisecond)
		return slow(ctx, movie)
	}

	for _, title := range []string{"Alien", "Heat", "Ronin"} {
		_, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie(title)}, offline)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.coord.Replay(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, env.remote.CreateMovieCalls(), 3)
	assert.Empty(t, env.replica.ListPending(ctx))
	assert.Len(t, env.replica.GetAll(ctx), 3)
}

func TestReplay_MutationOfResolvedTempID(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie("Alien")}, offline)
	require.NoError(t, err)

	_, err = env.coord.Replay(ctx)
	require.NoError(t, err)

	// вызывающий ещё держит временный ID
	updated, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpUpdate, ID: created.ID, Movie: newMovie("Aliens")}, online)
	require.NoError(t, err)
	assert.Equal(t, int64(101), updated.ID)

	remote, _ := env.catalog.get(101)
	assert.Equal(t, "Aliens", remote.Title)
}

// snapshot сводит реплику к сравнимому виду: ID -> заголовок и флаг offline
func snapshot(ctx context.Context, env *testEnv) map[int64]string {
	out := make(map[int64]string)
	for _, m := range env.replica.GetAll(ctx) {
		out[m.ID] = fmt.Sprintf("%s|%s|%t", m.Title, m.Director, m.IsOffline)
	}
	return out
}

func TestReplay_ConvergesWithOnlineExecution(t *testing.T) {
	ctx := context.Background()

	run := func(state ConnectivityState) *testEnv {
		env := newTestEnv(t)
		env.seedLocal(ctx, &models.Movie{ID: 7, Title: "Heat", Director: "Michael Mann", Description: "LA"})
		env.seedLocal(ctx, &models.Movie{ID: 8, Title: "Ronin", Director: "John Frankenheimer", Description: "Paris"})

		alien, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie("Alien")}, state)
		require.NoError(t, err)
		blade, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie("Blade Runner")}, state)
		require.NoError(t, err)

		steps := []Mutation{
			{Kind: models.OpUpdate, ID: alien.ID, Movie: newMovie("Alien 2")},
			{Kind: models.OpDelete, ID: 8},
			{Kind: models.OpUpdate, ID: 7, Movie: &models.Movie{Title: "Heat 2", Director: "Michael Mann", Description: "LA"}},
			{Kind: models.OpDelete, ID: blade.ID},
		}
		for _, m := range steps {
			_, err := env.coord.Mutate(ctx, m, state)
			require.NoError(t, err)
		}
		return env
	}

	direct := run(online)
	assert.Empty(t, direct.replica.ListPending(ctx))

	replayed := run(offline)
	drained, err := replayed.coord.ReplayPending(ctx)
	require.NoError(t, err)
	assert.True(t, drained)
	assert.Empty(t, replayed.replica.ListPending(ctx))

	assert.Equal(t, snapshot(ctx, direct), snapshot(ctx, replayed))
	assert.Equal(t, map[int64]string{
		7:   "Heat 2|Michael Mann|false",
		101: "Alien 2|Ridley Scott|false",
	}, snapshot(ctx, replayed))
}

func TestReplay_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie("Alien")}, offline)
	require.NoError(t, err)
	_, err = env.coord.Mutate(ctx, Mutation{Kind: models.OpUpdate, ID: created.ID, Movie: newMovie("Aliens")}, offline)
	require.NoError(t, err)

	drained, err := env.coord.ReplayPending(ctx)
	require.NoError(t, err)
	assert.True(t, drained)
	calls := env.remoteCalls()
	before := snapshot(ctx, env)

	drained, err = env.coord.ReplayPending(ctx)
	require.NoError(t, err)
	assert.True(t, drained)

	assert.Equal(t, calls, env.remoteCalls())
	assert.Equal(t, before, snapshot(ctx, env))
	assert.Empty(t, env.replica.ListPending(ctx))
}

func TestReplay_DeleteWhileCreateInFlight(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created, err := env.coord.Mutate(ctx, Mutation{Kind: models.OpCreate, Movie: newMovie("Alien")}, offline)
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	createMovie := env.remote.CreateMovieFunc
	env.remote.CreateMovieFunc = func(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
		once.Do(func() { close(entered) })
		<-release
		return createMovie(ctx, movie)
	}

	done := make(chan *ReplayResult, 1)
	go func() {
		res, err := env.coord.Replay(ctx)
		assert.NoError(t, err)
		done <- res
	}()

	<-entered
	// сервер ещё не ответил на CREATE, временный ID не разрешён
	_, err = env.coord.Mutate(ctx, Mutation{Kind: models.OpDelete, ID: created.ID}, online)
	require.NoError(t, err)
	assert.False(t, env.replica.Has(ctx, created.ID))
	close(release)

	res := <-done
	assert.Equal(t, 1, res.Synced)
	assert.Equal(t, 1, res.Remaining)
	assert.Empty(t, env.replica.GetAll(ctx))

	pending := env.replica.ListPending(ctx)
	require.Len(t, pending, 1)
	assert.Equal(t, models.OpDelete, pending[0].Kind)
	assert.Equal(t, int64(101), pending[0].MovieID)
	assert.Empty(t, pending[0].DependsOn)

	drained, err := env.coord.ReplayPending(ctx)
	require.NoError(t, err)
	assert.True(t, drained)

	_, onServer := env.catalog.get(101)
	assert.False(t, onServer)
	assert.Empty(t, env.replica.GetAll(ctx))
}

func TestReplay_DeleteRemovesLocalCopy(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.catalog.seed(&models.Movie{ID: 7, Title: "Heat", Director: "Michael Mann", Description: "LA"})

	// локальная копия появилась уже после постановки удаления в очередь
	env.replica.Enqueue(ctx, models.PendingOperation{Kind: models.OpDelete, MovieID: 7})
	env.replica.Put(ctx, &models.Movie{ID: 7, Title: "Heat", Director: "Michael Mann", Description: "LA"})

	drained, err := env.coord.ReplayPending(ctx)
	require.NoError(t, err)
	assert.True(t, drained)

	assert.False(t, env.replica.Has(ctx, 7))
	_, onServer := env.catalog.get(7)
	assert.False(t, onServer)
}
