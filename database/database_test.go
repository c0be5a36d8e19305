package database

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fulldump/biff"
)

func TestDatabase(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		dir := filepath.Join(t.TempDir(), "data")
		db := NewDatabase(&Config{
			Dir:           dir,
			FlushInterval: time.Hour,
		})
		defer db.Stop()

		biff.AssertEqual(db.GetStatus(), StatusOpening)
		biff.AssertNil(db.Load())
		biff.AssertEqual(db.GetStatus(), StatusOperating)

		a.Alternative("Create store", func(a *biff.A) {
			s, err := db.CreateStore("users")
			biff.AssertNil(err)
			biff.AssertEqual(s.Filename, filepath.Join(dir, "users.json"))
			biff.AssertEqual(db.ListStores(), []string{"users"})

			a.Alternative("Create again", func(a *biff.A) {
				_, err := db.CreateStore("users")
				biff.AssertTrue(errors.Is(err, ErrStoreAlreadyExists))
			})

			a.Alternative("Get store", func(a *biff.A) {
				got, err := db.GetStore("users")
				biff.AssertNil(err)
				biff.AssertTrue(got == s)
			})

			a.Alternative("Drop store", func(a *biff.A) {
				s.Push("hello")
				s.Flush()

				biff.AssertNil(db.DropStore("users"))
				biff.AssertEqual(db.ListStores(), []string{})

				_, err := os.Stat(s.Filename)
				biff.AssertTrue(os.IsNotExist(err))
			})

			a.Alternative("Stop persists", func(a *biff.A) {
				s.Push(map[string]any{"name": "Sara"})
				biff.AssertNil(db.Stop())
				biff.AssertEqual(db.GetStatus(), StatusClosing)

				reloaded := NewDatabase(&Config{Dir: dir})
				defer reloaded.Stop()
				biff.AssertNil(reloaded.Load())

				users, err := reloaded.GetStore("users")
				biff.AssertNil(err)
				first, _ := users.First()
				biff.AssertEqual(first, map[string]any{"name": "Sara"})
			})
		})

		a.Alternative("Invalid names", func(a *biff.A) {
			for _, name := range []string{"", "../escape", "a/b", ".hidden"} {
				_, err := db.CreateStore(name)
				biff.AssertNotNil(err)
			}
		})

		a.Alternative("Missing store", func(a *biff.A) {
			_, err := db.GetStore("nope")
			biff.AssertTrue(errors.Is(err, ErrStoreNotFound))
			biff.AssertTrue(errors.Is(db.DropStore("nope"), ErrStoreNotFound))
		})
	})
}

func TestDatabase_LoadAfterStop(t *testing.T) {

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.json"), []byte(`[1,2,3]`), 0666)

	db := NewDatabase(&Config{Dir: dir})
	biff.AssertNil(db.Stop())

	biff.AssertNil(db.Load())
	biff.AssertEqual(db.GetStatus(), StatusClosing)
	biff.AssertEqual(db.ListStores(), []string{})

	content, err := os.ReadFile(filepath.Join(dir, "a.json"))
	biff.AssertNil(err)
	biff.AssertEqual(strings.TrimSpace(string(content)), `[1,2,3]`)
}

func TestDatabase_LoadIgnoresOtherFiles(t *testing.T) {

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.json"), []byte(`[1,2,3]`), 0666)
	os.WriteFile(filepath.Join(dir, "b.json"), []byte(`garbage`), 0666)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`ignored`), 0666)
	os.Mkdir(filepath.Join(dir, "subdir.json"), 0755)

	db := NewDatabase(&Config{Dir: dir})
	defer db.Stop()

	biff.AssertNil(db.Load())
	biff.AssertEqual(db.ListStores(), []string{"a", "b"})

	a, _ := db.GetStore("a")
	biff.AssertEqual(a.Len(), 3)
	b, _ := db.GetStore("b")
	biff.AssertEqual(b.Len(), 0)
}
