package db

import (
	"fmt"
	"regexp"

	"github.com/abdul-hamid-achik/verity/packages/core/compare"
	"github.com/abdul-hamid-achik/verity/packages/core/failure"
	"github.com/abdul-hamid-achik/verity/packages/core/represent"
)

// TestingT is re-exported so callers need only this package.
type TestingT = failure.TestingT

type tHelper interface{ Helper() }

// Table and column names are interpolated into SQL, so restrict them
// to plain identifiers.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// TableAssert asserts on the state of one table.
type TableAssert struct {
	t      TestingT
	client *Client
	table  string
	desc   string
	opts   represent.Options
}

// ThatTable begins an assertion chain on a table.
func ThatTable(t TestingT, client *Client, table string) *TableAssert {
	return &TableAssert{
		t:      t,
		client: client,
		table:  table,
		opts:   represent.Default(),
	}
}

// As sets a description included in failure messages.
func (a *TableAssert) As(format string, args ...any) *TableAssert {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

func (a *TableAssert) fail(f *failure.Failure) {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	failure.Report(a.t, f.WithDescription(a.desc))
}

func (a *TableAssert) rowCount() (int64, bool) {
	if !identPattern.MatchString(a.table) {
		a.fail(failure.New("invalid table name %q", a.table))
		return 0, false
	}

	result, err := a.client.Query("SELECT COUNT(*) AS n FROM " + a.table)
	if err != nil {
		a.fail(failure.New("failed to count rows in %q: %v", a.table, err))
		return 0, false
	}
	if len(result.Rows) == 0 {
		a.fail(failure.New("count query on %q returned no rows", a.table))
		return 0, false
	}

	n, ok := compare.ToFloat64(result.Rows[0]["n"])
	if !ok {
		a.fail(failure.New("count query on %q returned non-numeric value %v", a.table, result.Rows[0]["n"]))
		return 0, false
	}
	return int64(n), true
}

// HasRowCount asserts the table has exactly n rows.
func (a *TableAssert) HasRowCount(n int64) *TableAssert {
	if got, ok := a.rowCount(); ok && got != n {
		a.fail(failure.New("expected table %q to have %d row(s) but found %d", a.table, n, got))
	}
	return a
}

// IsEmpty asserts the table has no rows.
func (a *TableAssert) IsEmpty() *TableAssert {
	if got, ok := a.rowCount(); ok && got != 0 {
		a.fail(failure.New("expected table %q to be empty but found %d row(s)", a.table, got))
	}
	return a
}

// IsNotEmpty asserts the table has at least one row.
func (a *TableAssert) IsNotEmpty() *TableAssert {
	if got, ok := a.rowCount(); ok && got == 0 {
		a.fail(failure.New("expected table %q not to be empty", a.table))
	}
	return a
}

// HasColumns asserts the table's result set contains every given column.
func (a *TableAssert) HasColumns(columns ...string) *TableAssert {
	if !identPattern.MatchString(a.table) {
		a.fail(failure.New("invalid table name %q", a.table))
		return a
	}

	result, err := a.client.Query("SELECT * FROM " + a.table + " LIMIT 1")
	if err != nil {
		a.fail(failure.New("failed to read columns of %q: %v", a.table, err))
		return a
	}

	have := make(map[string]bool, len(result.Columns))
	for _, c := range result.Columns {
		have[c] = true
	}

	var missing []string
	for _, c := range columns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		a.fail(failure.New("table %q is missing column(s) %v", a.table, missing).
			WithDetail("columns present: %v", result.Columns))
	}
	return a
}

// ContainsRow asserts some row matches every column/value pair given.
func (a *TableAssert) ContainsRow(values map[string]any) *TableAssert {
	if !identPattern.MatchString(a.table) {
		a.fail(failure.New("invalid table name %q", a.table))
		return a
	}
	if len(values) == 0 {
		a.fail(failure.New("ContainsRow requires at least one column value"))
		return a
	}

	result, err := a.client.Query("SELECT * FROM " + a.table)
	if err != nil {
		a.fail(failure.New("failed to read table %q: %v", a.table, err))
		return a
	}

	for _, row := range result.Rows {
		if rowMatches(row, values) {
			return a
		}
	}

	a.fail(failure.New("expected table %q to contain a row matching %s",
		a.table, a.opts.Format(values)).
		WithDetail("rows scanned: %d", len(result.Rows)))
	return a
}

func rowMatches(row, values map[string]any) bool {
	for col, want := range values {
		got, ok := row[col]
		if !ok || !compare.EqualValues(got, want) {
			return false
		}
	}
	return true
}

// QueryAssert asserts on the result of an arbitrary query.
type QueryAssert struct {
	t      TestingT
	client *Client
	query  string
	args   []any
	desc   string
	opts   represent.Options
}

// ThatQuery begins an assertion chain on a query's result.
func ThatQuery(t TestingT, client *Client, query string, args ...any) *QueryAssert {
	return &QueryAssert{
		t:      t,
		client: client,
		query:  query,
		args:   args,
		opts:   represent.Default(),
	}
}

// As sets a description included in failure messages.
func (a *QueryAssert) As(format string, args ...any) *QueryAssert {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

func (a *QueryAssert) fail(f *failure.Failure) {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	failure.Report(a.t, f.WithDescription(a.desc))
}

func (a *QueryAssert) run() (*QueryResult, bool) {
	result, err := a.client.Query(a.query, a.args...)
	if err != nil {
		a.fail(failure.New("query failed: %v", err).WithDetail("query: %s", a.query))
		return nil, false
	}
	return result, true
}

// ReturnsRows asserts the query returns exactly n rows.
func (a *QueryAssert) ReturnsRows(n int) *QueryAssert {
	if result, ok := a.run(); ok && len(result.Rows) != n {
		a.fail(failure.New("expected query to return %d row(s) but got %d", n, len(result.Rows)).
			WithDetail("query: %s", a.query))
	}
	return a
}

// ReturnsNoRows asserts the query returns an empty result set.
func (a *QueryAssert) ReturnsNoRows() *QueryAssert {
	return a.ReturnsRows(0)
}

// ReturnsValue asserts the first column of the first row equals
// expected, with numeric coercion.
func (a *QueryAssert) ReturnsValue(expected any) *QueryAssert {
	result, ok := a.run()
	if !ok {
		return a
	}
	if len(result.Rows) == 0 || len(result.Columns) == 0 {
		a.fail(failure.New("expected query to return a value but result is empty").
			WithDetail("query: %s", a.query))
		return a
	}

	got := result.Rows[0][result.Columns[0]]
	if !compare.EqualValues(got, expected) {
		a.fail(failure.ShouldBeEqual(got, expected, a.opts).
			WithDetail("query: %s", a.query))
	}
	return a
}
