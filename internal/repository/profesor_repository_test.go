package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-escolar/escuela-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func profesorRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id_profesor", "nombre", "genero", "email", "direccion", "telefono", "dni",
		"situacion_revista", "activo", "created_at", "updated_at",
	})
}

func TestProfesorRepositoryListActivos(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProfesorRepository(db)

	dni := "30111222"
	mock.ExpectQuery(regexp.QuoteMeta("FROM profesor WHERE activo = TRUE ORDER BY nombre ASC")).
		WillReturnRows(profesorRows().
			AddRow(1, "Ana García", nil, "ana@escuela.edu", nil, nil, dni, "Titular", true, time.Now(), time.Now()).
			AddRow(2, "Benito Ruiz", nil, "benito@escuela.edu", nil, nil, nil, "Suplente", true, time.Now(), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("FROM profesor_materia pm")).
		WillReturnRows(sqlmock.NewRows([]string{"id_profesor", "id_materia", "nombre", "descripcion"}).
			AddRow(1, 10, "Matemática", nil))

	profesores, err := repo.ListActivos(context.Background())
	require.NoError(t, err)
	require.Len(t, profesores, 2)
	assert.Equal(t, "Ana García", profesores[0].Nombre)
	require.Len(t, profesores[0].Materias, 1)
	assert.Equal(t, "Matemática", profesores[0].Materias[0].Nombre)
	assert.Empty(t, profesores[1].Materias)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfesorRepositoryFindActivoByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProfesorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id_profesor = $1 AND activo = TRUE")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindActivoByID(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfesorRepositoryExistsActivoByDNI(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProfesorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM profesor WHERE dni = $1 AND activo = TRUE LIMIT 1")).
		WithArgs("30111222").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.ExistsActivoByDNI(context.Background(), "30111222", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("AND id_profesor <> $2")).
		WithArgs("30111222", int64(5)).
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.ExistsActivoByDNI(context.Background(), "30111222", 5)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfesorRepositoryCreateAssignsMaterias(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProfesorRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profesor")).
		WithArgs("Ana García", nil, "ana@escuela.edu", nil, nil, nil, "Suplente", true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id_profesor"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profesor_materia (id_profesor, id_materia) VALUES ($1, $2)")).
		WithArgs(int64(7), int64(10)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	profesor := &models.Profesor{
		Nombre:           "Ana García",
		Email:            "ana@escuela.edu",
		SituacionRevista: models.SituacionSuplente,
		Activo:           true,
	}
	require.NoError(t, repo.Create(context.Background(), profesor, []int64{10}))
	assert.Equal(t, int64(7), profesor.IDProfesor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfesorRepositoryReplaceMateriasIsTransactional(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProfesorRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM profesor_materia WHERE id_profesor = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profesor_materia")).
		WithArgs(int64(7), int64(11)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceMaterias(context.Background(), 7, []int64{11}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfesorRepositoryReplaceMateriasRollsBackOnInsertFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProfesorRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM profesor_materia")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profesor_materia")).
		WithArgs(int64(7), int64(11)).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.ReplaceMaterias(context.Background(), 7, []int64{11})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfesorRepositoryDesactivar(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProfesorRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE profesor SET activo = FALSE")).
		WithArgs(int64(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Desactivar(context.Background(), 7))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE profesor SET activo = FALSE")).
		WithArgs(int64(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Desactivar(context.Background(), 7), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
