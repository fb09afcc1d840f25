package sqlparse

import (
	"reflect"
	"testing"
)

func TestExtractTables(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want []RawTable
	}{
		{name: "empty", in: "", want: nil},
		{
			name: "single",
			in:   "CREATE TABLE users (id INT, name VARCHAR(32))",
			want: []RawTable{{Name: "users", FieldsSQL: "id INT, name VARCHAR(32)"}},
		},
		{
			name: "lowercase_keyword",
			in:   "create table users (id int)",
			want: []RawTable{{Name: "users", FieldsSQL: "id int"}},
		},
		{
			name: "no_space_before_paren",
			in:   "CREATE TABLE users(id INT)",
			want: []RawTable{{Name: "users", FieldsSQL: "id INT"}},
		},
		{
			name: "schema_qualified",
			in:   "CREATE TABLE public.orders (order_id INT)",
			want: []RawTable{{Name: "public.orders", FieldsSQL: "order_id INT"}},
		},
		{
			name: "if_not_exists",
			in:   "CREATE TABLE IF NOT EXISTS logs (msg TEXT)",
			want: []RawTable{{Name: "logs", FieldsSQL: "msg TEXT"}},
		},
		{
			name: "nested_parens",
			in:   "CREATE TABLE t (price NUMERIC(10,2), created TIMESTAMP DEFAULT (now()))",
			want: []RawTable{{Name: "t", FieldsSQL: "price NUMERIC(10,2), created TIMESTAMP DEFAULT (now())"}},
		},
		{
			name: "multiple_in_order",
			in:   "CREATE TABLE a (x INT) CREATE TABLE b (y INT)CREATE TABLE c (z INT)",
			want: []RawTable{
				{Name: "a", FieldsSQL: "x INT"},
				{Name: "b", FieldsSQL: "y INT"},
				{Name: "c", FieldsSQL: "z INT"},
			},
		},
		{
			name: "skips_unnamed_groups",
			in:   "INSERT INTO a (x) VALUES (1) CREATE TABLE b (y INT)",
			want: []RawTable{{Name: "b", FieldsSQL: "y INT"}},
		},
		{
			name: "trailing_partial_discarded",
			in:   "CREATE TABLE a (x INT) CREATE TABLE b (y VARCHAR(3)",
			want: []RawTable{{Name: "a", FieldsSQL: "x INT"}},
		},
		{
			name: "stray_close_paren",
			in:   ") CREATE TABLE a (x INT)",
			want: []RawTable{{Name: "a", FieldsSQL: "x INT"}},
		},
		{
			name: "alter_table_only",
			in:   "ALTER TABLE ONLY public.users ADD CONSTRAINT users_pkey PRIMARY KEY (id)",
			want: nil,
		},
		{
			name: "only_before_name",
			in:   "CREATE TABLE ONLY logs (msg TEXT)",
			want: []RawTable{{Name: "logs", FieldsSQL: "msg TEXT"}},
		},
		{
			name: "pg_dump_mixed",
			in:   "ALTER TABLE ONLY public.users ADD CONSTRAINT users_pkey PRIMARY KEY (id) CREATE TABLE public.orders (id INT)",
			want: []RawTable{{Name: "public.orders", FieldsSQL: "id INT"}},
		},
		{
			name: "missing_name",
			in:   "CREATE TABLE (x INT)",
			want: nil,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractTables(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ExtractTables(%q)\n got  %#v\n want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestScannerStates(t *testing.T) {
	t.Parallel()

	s := &tableScanner{}
	steps := []struct {
		in   string
		want scanState
	}{
		{"CREATE TABLE t ", stateOutside},
		{"(", stateInTable},
		{"a VARCHAR(", stateInFieldLength},
		{"3", stateInFieldLength},
		{")", stateInTable},
		{")", stateOutside},
	}
	for _, st := range steps {
		for _, r := range st.in {
			s.step(r)
		}
		if s.state != st.want {
			t.Fatalf("after %q state = %s, want %s", st.in, s.state, st.want)
		}
	}
	if len(s.tables) != 1 || s.tables[0].Name != "t" {
		t.Fatalf("tables = %#v", s.tables)
	}
}
