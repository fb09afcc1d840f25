package cmd

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

const usersSQL = "CREATE TABLE users (\n  id SERIAL,\n  user_name VARCHAR(50) NOT NULL,\n  PRIMARY KEY (id)\n);"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerateStdin(t *testing.T) {
	got, err := run(t, usersSQL, "generate", "--casing", "2", "--getter", "1", "--setter", "1")
	if err != nil {
		t.Fatal(err)
	}
	want := "public class Users\n{\n" +
		"    public int Id { public get; public set; }\n" +
		"    public string User_Name { public get; public set; }\n" +
		"}\n"
	if got != want {
		t.Fatalf("got\n%q\nwant\n%q", got, want)
	}
}

func TestGenerateFiles(t *testing.T) {
	dir := t.TempDir()
	in1 := filepath.Join(dir, "users.sql")
	in2 := filepath.Join(dir, "orders.ddl")
	if err := os.WriteFile(in1, []byte(usersSQL), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(in2, []byte("CREATE TABLE public.orders (order_id BIGINT NOT NULL);"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "models")

	if _, err := run(t, "", "generate", "--lang", "go", "--workers", "2", "-o", out, in1, in2); err != nil {
		t.Fatal(err)
	}
	users, err := os.ReadFile(filepath.Join(out, "users.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(users), "type Users struct") {
		t.Fatalf("users.go = %s", users)
	}
	orders, err := os.ReadFile(filepath.Join(out, "orders.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(orders), "type Orders struct") {
		t.Fatalf("orders.go = %s", orders)
	}
}

func TestGenerateSameBaseName(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"a", "b"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	in1 := filepath.Join(dir, "a", "schema.sql")
	in2 := filepath.Join(dir, "b", "schema.sql")
	if err := os.WriteFile(in1, []byte(usersSQL), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(in2, []byte("CREATE TABLE orders (id INT);"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")

	_, err := run(t, "", "generate", "-o", out, in1, in2)
	if err == nil || !strings.Contains(err.Error(), "schema.cs") {
		t.Fatalf("err = %v, want duplicate output error", err)
	}
	if _, err := os.Stat(filepath.Join(out, "schema.cs")); !os.IsNotExist(err) {
		t.Fatalf("schema.cs should not be written, stat err = %v", err)
	}

	// 输出到标准输出时不会冲突
	got, err := run(t, "", "generate", in1, in2)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "public class Users") || !strings.Contains(got, "public class Orders") {
		t.Fatalf("stdout = %s", got)
	}
}

func TestGenerateConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	cfg := `{"lang": "csharp", "options": {"add_namespace": true, "namespace": "Shop", "include_nullable_types": true}}`
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := run(t, "CREATE TABLE t (n INT)", "--config", cfgPath, "generate", "--namespace-name", "Store")
	if err != nil {
		t.Fatal(err)
	}
	want := "namespace Store\n{\n    public class T\n    {\n        public int? n;\n    }\n}\n"
	if got != want {
		t.Fatalf("got\n%q\nwant\n%q", got, want)
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := run(t, usersSQL, "generate", "--lang", "cobol"); err == nil {
		t.Fatal("want error for unknown language")
	}
	if _, err := run(t, usersSQL, "generate", "--getter", "9"); err == nil {
		t.Fatal("want error for invalid getter")
	}
	if _, err := run(t, usersSQL, "--log-level", "loud", "generate"); err == nil {
		t.Fatal("want error for invalid log level")
	}
	if _, err := run(t, "", "generate", filepath.Join(t.TempDir(), "missing.sql")); err == nil {
		t.Fatal("want error for missing input")
	}
}

func TestFetchSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("CREATE TABLE items (id INTEGER PRIMARY KEY, title VARCHAR(20) NOT NULL)"); err != nil {
		t.Fatal(err)
	}
	_ = db.Close()

	ddl, err := run(t, "", "fetch", "--driver", "sqlite", "--dsn", path, "--ddl-only")
	if err != nil {
		t.Fatal(err)
	}
	if ddl != "CREATE TABLE items (id INTEGER PRIMARY KEY, title VARCHAR(20) NOT NULL);\n" {
		t.Fatalf("ddl = %q", ddl)
	}

	got, err := run(t, "", "fetch", "--driver", "sqlite", "--dsn", path, "--casing", "1")
	if err != nil {
		t.Fatal(err)
	}
	want := "public class Items\n{\n    public int Id;\n    public string Title;\n}\n"
	if got != want {
		t.Fatalf("got\n%q\nwant\n%q", got, want)
	}
}
