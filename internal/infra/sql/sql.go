package sql

import "context"

type Database interface {
	Open() error
	Close()
	Up(migrationsPath string) error
	Command(string) error
	Query(context.Context, string, ...any) ([][]byte, error)
}
