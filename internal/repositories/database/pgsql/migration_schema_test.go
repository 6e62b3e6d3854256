package pgsql

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initSchemaPath = "../../../../migrations/000001_init_schema.up.sql"

// MarkCompleted writes updated_at, which the shared select list never reads,
// so both column sets are checked against the DDL.
func TestExchangeOperationsDDLCoversRepositoryColumns(t *testing.T) {
	ddl, err := os.ReadFile(initSchemaPath)
	require.NoError(t, err)

	block := extractCreateTable(t, string(ddl), "exchange_operations")

	columns := append(selectListColumns(operationColumns), "updated_at")
	for _, column := range columns {
		assert.True(t, declaresColumn(block, column), "exchange_operations DDL is missing column %q", column)
	}
}

func extractCreateTable(t *testing.T, ddl, table string) string {
	t.Helper()
	start := strings.Index(ddl, "CREATE TABLE "+table+" (")
	require.NotEqual(t, -1, start, "no CREATE TABLE statement for %s", table)
	rest := ddl[start:]
	end := strings.Index(rest, ");")
	require.NotEqual(t, -1, end, "unterminated CREATE TABLE statement for %s", table)
	return rest[:end]
}

var sqlIdentifier = regexp.MustCompile(`[a-z_]+`)

// selectListColumns extracts the column names from a select list, ignoring
// COALESCE wrappers.
func selectListColumns(list string) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, ident := range sqlIdentifier.FindAllString(strings.ToLower(list), -1) {
		if ident == "coalesce" || seen[ident] {
			continue
		}
		seen[ident] = true
		columns = append(columns, ident)
	}
	return columns
}

func declaresColumn(block, column string) bool {
	lines := strings.Split(block, "\n")
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == column {
			return true
		}
	}
	return false
}
