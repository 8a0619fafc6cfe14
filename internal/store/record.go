package store

import (
	"context"
	"encoding/json"
	"fmt"

	"paperforge/ent"
	"paperforge/ent/record"
)

// Record keys for the three durable documents.
const (
	KeyMetadata  = "metadata"
	KeySections  = "sections"
	KeyKnowledge = "knowledge"
)

// RecordRepo reads and writes the independently keyed durable documents.
// Writes happen after every settled mutation; reads happen at startup for
// the restore-or-discard offer.
type RecordRepo interface {
	// Save marshals v and upserts it under key.
	Save(ctx context.Context, key string, v any) error

	// Load unmarshals the record under key into v. Returns (false, nil)
	// when no record exists.
	Load(ctx context.Context, key string, v any) (bool, error)

	// Any reports whether any of the three paper records exist.
	Any(ctx context.Context) (bool, error)

	// Clear deletes all three paper records (the discard choice).
	Clear(ctx context.Context) error
}

// recordRepo implements RecordRepo using the ent client.
type recordRepo struct {
	client *ent.Client
}

func (r *recordRepo) Save(ctx context.Context, key string, v any) error {
	dataMap, err := wrap(v)
	if err != nil {
		return fmt.Errorf("marshal record %q: %w", key, err)
	}

	n, err := r.client.Record.Update().
		Where(record.KeyEQ(key)).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update record %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Record.Create().
		SetKey(key).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create record %q: %w", key, err)
	}
	return nil
}

func (r *recordRepo) Load(ctx context.Context, key string, v any) (bool, error) {
	rec, err := r.client.Record.Query().
		Where(record.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("query record %q: %w", key, err)
	}

	b, err := json.Marshal(rec.Data["value"])
	if err != nil {
		return false, fmt.Errorf("marshal stored data %q: %w", key, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("unmarshal record %q: %w", key, err)
	}
	return true, nil
}

func (r *recordRepo) Any(ctx context.Context) (bool, error) {
	n, err := r.client.Record.Query().
		Where(record.KeyIn(KeyMetadata, KeySections, KeyKnowledge)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count records: %w", err)
	}
	return n > 0, nil
}

func (r *recordRepo) Clear(ctx context.Context) error {
	_, err := r.client.Record.Delete().
		Where(record.KeyIn(KeyMetadata, KeySections, KeyKnowledge)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	return nil
}

// wrap envelopes any payload under a "value" field so objects, arrays
// and bare strings all round-trip through the ent JSON column the same way.
func wrap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	return map[string]any{"value": raw}, nil
}
