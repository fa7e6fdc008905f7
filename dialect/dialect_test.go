package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yocontra/sequelize/dialect"
)

func TestAll(t *testing.T) {
	t.Parallel()

	all := dialect.All()
	assert.Equal(t, []string{
		dialect.SQLite,
		dialect.MariaDB,
		dialect.MySQL,
		dialect.Postgres,
		dialect.MSSQL,
	}, all)
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, d := range dialect.All() {
		assert.True(t, dialect.Valid(d), "dialect %s", d)
	}
	assert.False(t, dialect.Valid("oracle"))
	assert.False(t, dialect.Valid(""))
	assert.False(t, dialect.Valid("POSTGRES"))
}
