package portfolio

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_InitSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStoreWithPool(mock, "")

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS portfolio")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	assert.NoError(t, store.InitSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Import(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStoreWithPool(mock, "portfolio")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO portfolio (techstack, link)")).
		WithArgs("Go", "https://example.com/go").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO portfolio (techstack, link)")).
		WithArgs("Python", "https://example.com/py").
		WillReturnError(errors.New("constraint"))

	n, err := store.Import(context.Background(), []Entry{
		{Techstack: "Go", Link: "https://example.com/go"},
		{Techstack: "Python", Link: "https://example.com/py"},
	})
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Query(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStoreWithPool(mock, "portfolio")

	rows := pgxmock.NewRows([]string{"techstack", "link"}).
		AddRow("Go, PostgreSQL", "https://example.com/go").
		AddRow("React", "https://example.com/react")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT techstack, link FROM portfolio ORDER BY id")).
		WillReturnRows(rows)

	links, err := store.Query(context.Background(), []string{"Go"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/go"}, links)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStoreWithPool(mock, "portfolio")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT techstack, link FROM portfolio")).
		WillReturnError(errors.New("connection refused"))

	_, err = store.Query(context.Background(), []string{"Go"}, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
