// Package migrations applies the embedded schema migrations with goose.
//
// The SQL files carry a {{prefix}} placeholder instead of hardcoded table
// names, mirroring how the repositories interpolate the per-environment
// prefix (dev_, test_, prod_) into their queries. The placeholder is
// substituted when goose reads each file, so one set of migrations serves
// every environment sharing a database.
package migrations

import (
	"bytes"
	"database/sql"
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate brings the schema up to date for the given table prefix
func Migrate(db *sql.DB, tablePrefix string) error {
	goose.SetBaseFS(&prefixFS{base: embedMigrations, prefix: tablePrefix})
	goose.SetTableName(tablePrefix + "goose_db_version")

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// prefixFS serves the embedded migrations with {{prefix}} substituted.
type prefixFS struct {
	base   embed.FS
	prefix string
}

func (p *prefixFS) Open(name string) (fs.File, error) {
	f, err := p.base.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		return f, nil
	}

	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return nil, err
	}
	data = bytes.ReplaceAll(data, []byte("{{prefix}}"), []byte(p.prefix))

	return &memFile{Reader: bytes.NewReader(data), info: info}, nil
}

func (p *prefixFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return p.base.ReadDir(name)
}

// memFile is a read-only in-memory file over substituted contents.
type memFile struct {
	*bytes.Reader
	info fs.FileInfo
}

func (m *memFile) Stat() (fs.FileInfo, error) { return &memFileInfo{m.info, m.Size()}, nil }
func (m *memFile) Close() error               { return nil }

// memFileInfo overrides the size, which changes with substitution.
type memFileInfo struct {
	fs.FileInfo
	size int64
}

func (i *memFileInfo) Size() int64 { return i.size }
