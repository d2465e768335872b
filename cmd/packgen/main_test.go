package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// workspace runs a command in an empty directory against the built-in
// catalog.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("PACKGEN_CATALOG_DRIVER", "memory")
	t.Setenv("PACKGEN_OUTPUT_DIR", "out")
	t.Cleanup(func() {
		only, plain, verbose, quiet, configPath = nil, false, false, false, ""
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})
	return dir
}

func TestGenerateWritesSelectedPacks(t *testing.T) {
	dir := workspace(t)

	rootCmd.SetArgs([]string{"generate", "--plain", "--quiet", "--only", "no-bake"})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", "proteincookies-no-bake-pack.pdf"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	entries, _ := os.ReadDir(filepath.Join(dir, "out"))
	if len(entries) != 1 {
		t.Fatalf("expected only the selected pack, found %d files", len(entries))
	}
}

func TestGenerateUnknownPack(t *testing.T) {
	workspace(t)

	rootCmd.SetArgs([]string{"--plain", "--quiet", "--only", "vegan"})
	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected an error for an unknown pack key")
	}
}

func TestPacksListsMissingRecipes(t *testing.T) {
	workspace(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"packs", "--quiet"})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("packs: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"starter",
		"3 of 3 recipes resolve -> proteincookies-no-bake-pack.pdf",
		"missing: double-chocolate-protein-cookies, oatmeal-raisin-protein-cookies",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestImportBuildsSQLiteCatalog(t *testing.T) {
	dir := workspace(t)
	catalog := `{"recipes":[{"slug":"bites","title":"Bites","protein":8,"ingredients":["rolled oats"],"instructions":[{"step":"Roll","text":"Roll."}]}]}`
	if err := os.WriteFile(filepath.Join(dir, "recipes.json"), []byte(catalog), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"import", "--quiet", "--from", "recipes.json", "--to", "recipes.db"})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out.String(), "imported 1 recipes into recipes.db") {
		t.Fatalf("unexpected output: %s", out.String())
	}

	// The new database serves a generate run.
	t.Setenv("PACKGEN_CATALOG_DRIVER", "sqlite")
	t.Setenv("PACKGEN_CATALOG_PATH", "recipes.db")
	t.Setenv("PACKGEN_PACKS_PATH", "packs.yaml")
	if err := os.WriteFile(filepath.Join(dir, "packs.yaml"), []byte("packs:\n  - key: solo\n    title: Solo\n    recipes: [bites]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rootCmd.SetArgs([]string{"--plain", "--quiet"})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("generate from sqlite: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "proteincookies-solo-pack.pdf")); err != nil {
		t.Fatalf("expected output: %v", err)
	}
}

func TestOpenLogFile(t *testing.T) {
	dir := t.TempDir()

	f, err := openLogFile(filepath.Join(dir, "logs", "nested", "packgen.log"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	f.Close()

	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = openLogFile(filepath.Join(blocker, "packgen.log"))
	if err == nil || !strings.Contains(err.Error(), "creating log directory") {
		t.Fatalf("expected a directory error, got %v", err)
	}
}
