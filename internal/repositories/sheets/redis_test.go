package sheets

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hindren/qudprops/internal/engine"
	qerr "github.com/hindren/qudprops/internal/errors"
	"github.com/hindren/qudprops/internal/uuid"
)

func newTestRepo(t *testing.T, ttl time.Duration) (*redisRepo, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	repo, err := NewRedisRepository(&RedisRepoConfig{
		Client: client,
		IDs:    &uuid.Sequence{Prefix: "run"},
		TTL:    ttl,
	})
	require.NoError(t, err)
	return repo.(*redisRepo), mock
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestNewRedisRepository_Validation(t *testing.T) {
	_, err := NewRedisRepository(nil)
	assert.Error(t, err)

	_, err = NewRedisRepository(&RedisRepoConfig{})
	assert.Error(t, err)
}

func TestPut(t *testing.T) {
	ctx := context.Background()
	sheet := engine.PropertySheet{"id": "Snapjaw", "av": 3}

	repo, mock := newTestRepo(t, time.Hour)
	mock.ExpectSet("sheet:Snapjaw", mustJSON(t, sheet), time.Hour).SetVal("OK")

	require.NoError(t, repo.Put(ctx, "Snapjaw", sheet))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPut_RequiresName(t *testing.T) {
	repo, _ := newTestRepo(t, 0)
	err := repo.Put(context.Background(), "", engine.PropertySheet{})
	assert.True(t, qerr.IsInvalidArgument(err))
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	sheet := engine.PropertySheet{"id": "Snapjaw", "strength": "14"}

	repo, mock := newTestRepo(t, 0)
	mock.ExpectGet("sheet:Snapjaw").SetVal(string(mustJSON(t, sheet)))

	got, err := repo.Get(ctx, "Snapjaw")
	require.NoError(t, err)
	assert.Equal(t, "Snapjaw", got["id"])
	assert.Equal(t, "14", got["strength"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotCached(t *testing.T) {
	repo, mock := newTestRepo(t, 0)
	mock.ExpectGet("sheet:Nobody").RedisNil()

	_, err := repo.Get(context.Background(), "Nobody")
	require.Error(t, err)
	assert.True(t, qerr.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newTestRepo(t, 0)
	mock.ExpectDel("sheet:Snapjaw").SetVal(1)

	require.NoError(t, repo.Delete(context.Background(), "Snapjaw"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPutSnapshot(t *testing.T) {
	ctx := context.Background()
	sheets := map[string]engine.PropertySheet{
		"Dagger":  {"id": "Dagger", "pv": 6},
		"Snapjaw": {"id": "Snapjaw", "av": 3},
	}

	repo, mock := newTestRepo(t, time.Hour)
	// fields are written in sorted entity order
	mock.ExpectHSet("sheetrun:run-1", "Dagger", mustJSON(t, sheets["Dagger"])).SetVal(1)
	mock.ExpectHSet("sheetrun:run-1", "Snapjaw", mustJSON(t, sheets["Snapjaw"])).SetVal(1)
	mock.ExpectExpire("sheetrun:run-1", time.Hour).SetVal(true)

	runID, err := repo.PutSnapshot(ctx, sheets)
	require.NoError(t, err)
	assert.Equal(t, "run-1", runID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPutSnapshot_Empty(t *testing.T) {
	repo, _ := newTestRepo(t, 0)
	_, err := repo.PutSnapshot(context.Background(), nil)
	assert.True(t, qerr.IsInvalidArgument(err))
}

func TestGetSnapshot(t *testing.T) {
	ctx := context.Background()

	repo, mock := newTestRepo(t, 0)
	mock.ExpectHGetAll("sheetrun:run-1").SetVal(map[string]string{
		"Snapjaw": string(mustJSON(t, engine.PropertySheet{"id": "Snapjaw"})),
	})

	got, err := repo.GetSnapshot(ctx, "run-1")
	require.NoError(t, err)
	require.Contains(t, got, "Snapjaw")
	assert.Equal(t, "Snapjaw", got["Snapjaw"]["id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSnapshot_Missing(t *testing.T) {
	repo, mock := newTestRepo(t, 0)
	mock.ExpectHGetAll("sheetrun:run-404").SetVal(map[string]string{})

	_, err := repo.GetSnapshot(context.Background(), "run-404")
	require.Error(t, err)
	assert.True(t, qerr.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
