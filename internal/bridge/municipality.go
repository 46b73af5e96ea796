package bridge

import (
	"context"
	"encoding/json"

	"baladi/internal/models/db_models"
)

// The hand-off uses two keys per municipality. The detail screen reads
// the "view" snapshot on mount; the list screen merges the "update"
// snapshot over its own record. Collapsing the keys would change merge
// semantics, so both are always written together on mutation.

func ViewKey(id string) string   { return "municipality:view:" + id }
func UpdateKey(id string) string { return "municipality:update:" + id }

type MunicipalityBridge struct {
	store Store
}

func NewMunicipalityBridge(store Store) *MunicipalityBridge {
	return &MunicipalityBridge{store: store}
}

// PublishView writes the view snapshot only, the side effect of
// navigating to a detail screen.
func (b *MunicipalityBridge) PublishView(ctx context.Context, m db_models.Municipality) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return b.store.Set(ctx, ViewKey(m.ID), payload)
}

// Publish writes both keys; every detail-screen mutation goes through
// here.
func (b *MunicipalityBridge) Publish(ctx context.Context, m db_models.Municipality) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := b.store.Set(ctx, ViewKey(m.ID), payload); err != nil {
		return err
	}
	return b.store.Set(ctx, UpdateKey(m.ID), payload)
}

// ReadView loads the detail screen's snapshot. A missing key or corrupt
// payload reads as absence, never as an error.
func (b *MunicipalityBridge) ReadView(ctx context.Context, id string) (db_models.Municipality, bool) {
	raw, err := b.store.Get(ctx, ViewKey(id))
	if err != nil {
		return db_models.Municipality{}, false
	}
	var m db_models.Municipality
	if err := json.Unmarshal(raw, &m); err != nil {
		return db_models.Municipality{}, false
	}
	return m, true
}

// MergeLatest overlays the pending update snapshot, if any, over base.
// Storage or parse failures collapse to "no update available".
func (b *MunicipalityBridge) MergeLatest(ctx context.Context, base db_models.Municipality) db_models.Municipality {
	raw, err := b.store.Get(ctx, UpdateKey(base.ID))
	if err != nil {
		return base
	}
	merged, err := MergeSnapshot(base, raw)
	if err != nil {
		return base
	}
	return merged
}

// MergeSnapshot shallow-merges a serialized snapshot over base: fields
// present in raw win, fields absent keep the base value. The merge is
// one-directional; nothing is written back.
func MergeSnapshot(base db_models.Municipality, raw []byte) (db_models.Municipality, error) {
	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(raw, &overlay); err != nil {
		return base, err
	}

	baseJSON, err := json.Marshal(base)
	if err != nil {
		return base, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(baseJSON, &fields); err != nil {
		return base, err
	}

	for k, v := range overlay {
		fields[k] = v
	}

	mergedJSON, err := json.Marshal(fields)
	if err != nil {
		return base, err
	}
	var merged db_models.Municipality
	if err := json.Unmarshal(mergedJSON, &merged); err != nil {
		return base, err
	}
	return merged, nil
}
