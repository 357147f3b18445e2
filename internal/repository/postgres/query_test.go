package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuilderNoConditions(t *testing.T) {
	q := &queryBuilder{}

	query, args := q.Build("SELECT * FROM pacientes")
	assert.Equal(t, "SELECT * FROM pacientes", query)
	assert.Nil(t, args)
}

func TestQueryBuilderPlaceholderNumbering(t *testing.T) {
	q := &queryBuilder{}
	q.Eq("estado", "activo")
	q.ILike("nombre", "Mar")
	q.Between("creado_en", time.Time{}, time.Time{})
	q.GTE("fecha_ingreso", time.Time{})
	q.LTE("fecha_salida", time.Time{})

	query, args := q.Build("SELECT * FROM admisiones")
	assert.Equal(t,
		"SELECT * FROM admisiones WHERE estado = $1 AND nombre ILIKE $2 AND creado_en BETWEEN $3 AND $4 AND fecha_ingreso >= $5 AND fecha_salida <= $6",
		query)
	assert.Len(t, args, 6)
	assert.Equal(t, "%Mar%", args[1])
}

func TestQueryBuilderPaginate(t *testing.T) {
	q := &queryBuilder{}
	q.Eq("estado", "activo")

	query, _ := q.Build("SELECT * FROM pacientes")
	query, args := q.Paginate(query, 50, 10)

	assert.Equal(t, "SELECT * FROM pacientes WHERE estado = $1 LIMIT $2 OFFSET $3", query)
	assert.Equal(t, []interface{}{"activo", 50, 10}, args)
}
