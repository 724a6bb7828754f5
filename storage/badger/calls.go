package badger

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/soniclabs/callscribe/core"
	"github.com/soniclabs/callscribe/storage"
)

// CallRepository implements storage.CallRepository for BadgerDB.
type CallRepository struct {
	backend *Backend
}

var _ storage.CallRepository = (*CallRepository)(nil)

// NewCallRepository creates a new CallRepository.
func NewCallRepository(backend *Backend) (*CallRepository, error) {
	return &CallRepository{backend: backend}, nil
}

// Close releases repository resources. The backend is owned by the
// caller and stays open.
func (r *CallRepository) Close() error {
	return nil
}

// CreateCall persists a new call record.
func (r *CallRepository) CreateCall(ctx context.Context, record *core.CallRecord) (*core.CallRecord, error) {
	if err := core.ValidateCallRecord(record); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if record.Id == "" {
			record.Id = uuid.NewString()
		}

		record.UploadedAt = time.Now().UTC()
		record.UpdatedAt = record.UploadedAt

		// A colliding ID means the caller supplied one that's in use
		key := makeCallRecordKey(record.Id)
		if _, err := tx.Get(key); err == nil {
			return storage.ErrDuplicateKey
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		// Store primary record
		value := storage.MarshalCallRecord(record)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Update upload-time index
		uploadedKey := makeCallUploadedKey(record.UploadedAt, record.Id)
		if err := tx.Set(uploadedKey, []byte(record.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	return record, err
}

// UpdateCallInsights attaches insights to an existing record.
func (r *CallRepository) UpdateCallInsights(ctx context.Context, id string, insights *core.Insights) (*core.CallRecord, error) {
	var result *core.CallRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCallRecordKey(id)

		record, err := r.readCallRecord(tx, key)
		if err != nil {
			return err
		}
		if record == nil {
			return storage.ErrNotFound
		}
		if record.Insights != nil {
			return storage.ErrInsightsAlreadySet
		}

		record.Insights = insights
		record.UpdatedAt = time.Now().UTC()

		value := storage.MarshalCallRecord(record)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		result = record
		return tx.Commit()
	}, true)

	return result, err
}

// GetCall retrieves a single call record by ID.
func (r *CallRepository) GetCall(ctx context.Context, id string) (*core.CallRecord, error) {
	var result *core.CallRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCallRecordKey(id)
		var err error
		result, err = r.readCallRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListCalls retrieves stored call records, most recent upload first.
func (r *CallRepository) ListCalls(ctx context.Context, limit int) ([]*core.CallRecord, error) {
	results := []*core.CallRecord{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent records first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key in the upload-time index
		startKey := makePartialCallUploadedKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))

		prefix := []byte(callUploadedPrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			if limit > 0 && count >= limit {
				break
			}

			key := iter.Item().Key()

			// Check if we're still in the upload-time index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			// Read the ID from the index
			var recordID string
			if err := iter.Item().Value(func(val []byte) error {
				recordID = string(val)
				return nil
			}); err != nil {
				return err
			}

			// Look up the full record
			recordKey := makeCallRecordKey(recordID)
			record, err := r.readCallRecord(tx, recordKey)
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// readCallRecord reads and deserializes a record within a transaction.
// Returns nil (not an error) if the key doesn't exist.
func (r *CallRepository) readCallRecord(tx *badger.Txn, key []byte) (*core.CallRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record *core.CallRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalCallRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
