package archive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/FrankX3M/check-positions/core"
)

// Archive wraps a BadgerDB instance storing finalized reports.
type Archive struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLoggerAdapter adapts slog.Logger to the badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open opens a report archive at the specified path.
// Creates the directory if it doesn't exist.
func Open(path string, inMemory bool) (*Archive, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(path, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(path)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", path)
		}
		opts = badger.DefaultOptions(path)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Archive{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// SaveReport stores a finalized report and returns its ID.
// A zero ID is assigned from the payload content; a zero CreatedAt is set to
// the current time. The report is validated before storage.
func (a *Archive) SaveReport(ctx context.Context, report *core.Report) (core.ID, error) {
	if report == nil {
		return 0, ErrNilReport
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	if report.Id == 0 {
		report.Id = core.IDFromContent(report.Payload)
	}
	if err := report.Validate(); err != nil {
		return 0, err
	}

	value := MarshalReport(report)
	indexValue := MarshalID(report.Id)

	err := a.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(makeReportKey(report.Id), value); err != nil {
			return err
		}
		return txn.Set(makeReportDateKey(report.CreatedAt, report.Id), indexValue)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to store report %d: %w", report.Id, err)
	}

	a.logger.Debug("report stored", "id", report.Id, "name", report.Name)
	return report.Id, nil
}

// GetReport retrieves a report by ID. Returns nil when the report does not exist.
func (a *Archive) GetReport(ctx context.Context, id core.ID) (*core.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var report *core.Report
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(makeReportKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, err := UnmarshalReport(val)
			if err != nil {
				return err
			}
			report = decoded
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load report %d: %w", id, err)
	}
	return report, nil
}

// RecentReports returns up to n reports, newest first.
func (a *Archive) RecentReports(ctx context.Context, n int) ([]*core.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}

	var ids []core.ID
	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.PrefetchValues = true

		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(reportDatePrefix + ":")
		// Seek past the end of the date index; reverse iteration then
		// walks newest entries first.
		seek := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix) && len(ids) < n; it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			id, err := UnmarshalID(val)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan date index: %w", err)
	}

	reports := make([]*core.Report, 0, len(ids))
	for _, id := range ids {
		report, err := a.GetReport(ctx, id)
		if err != nil {
			return nil, err
		}
		if report == nil {
			// Index entry without a record; skip rather than fail.
			a.logger.Warn("dangling date index entry", "id", id)
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Close closes the underlying database.
// The archive should not be used after calling Close.
func (a *Archive) Close() error {
	return a.db.Close()
}
