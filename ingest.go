package worldview

import (
	"errors"
	"fmt"
	"log"
	"math"
	"slices"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
)

var (
	// ErrMissingField is returned when a required record field is absent.
	ErrMissingField = errors.New("missing field")
	// ErrBadField is returned when a record field has the wrong type or an
	// unusable value.
	ErrBadField = errors.New("bad field")
	// ErrUnknownKind is returned when a record matches no kind, or more than one.
	ErrUnknownKind = errors.New("unknown entity kind")
)

// kindRule is a structural predicate over the fields of a loosely-typed record.
type kindRule struct {
	kind  Kind
	match func(f map[string]*structpb.Value) bool
}

// kindRules are written to be mutually exclusive; ProbeKind still rejects a
// record that satisfies more than one.
var kindRules = []kindRule{
	{KindPlayer, func(f map[string]*structpb.Value) bool {
		return isString(f["identity"]) && has(f, "positionX")
	}},
	{KindTree, func(f map[string]*structpb.Value) bool {
		return has(f, "treeType") && has(f, "health") && has(f, "posX")
	}},
	{KindStone, func(f map[string]*structpb.Value) bool {
		return has(f, "health") && has(f, "posX") && !has(f, "treeType") && !has(f, "identity")
	}},
	{KindCampfire, func(f map[string]*structpb.Value) bool {
		return isBool(f["isBurning"])
	}},
	{KindMushroom, func(f map[string]*structpb.Value) bool {
		return has(f, "respawnAt") && !has(f, "health") && !has(f, "itemDefId") && !has(f, "isBurning")
	}},
	{KindDroppedItem, func(f map[string]*structpb.Value) bool {
		return has(f, "itemDefId") && has(f, "quantity")
	}},
	{KindStorageBox, func(f map[string]*structpb.Value) bool {
		return has(f, "placedBy") && !has(f, "isBurning") && !has(f, "respawnAt")
	}},
}

// ProbeKind determines a record's kind from which fields it carries. A record
// that matches no rule or several rules is KindUnknown.
func ProbeKind(rec *structpb.Struct) Kind {
	f := rec.GetFields()
	found := KindUnknown
	for _, r := range kindRules {
		if !r.match(f) {
			continue
		}
		if found != KindUnknown {
			return KindUnknown
		}
		found = r.kind
	}
	return found
}

// DecodeRecord builds the typed entity of kind k from rec.
func DecodeRecord(k Kind, rec *structpb.Struct) (Entity, error) {
	f := rec.GetFields()
	switch k {
	case KindPlayer:
		p, err := decodePlayer(f)
		if err != nil {
			return nil, err
		}
		return p, nil
	case KindTree:
		id, pos, err := idAndPosition(f)
		if err != nil {
			return nil, err
		}
		health, err := numberField(f, "health")
		if err != nil {
			return nil, err
		}
		return &Tree{ID: id, Position: pos, Health: health, TreeType: stringOr(f, "treeType", "")}, nil
	case KindStone:
		id, pos, err := idAndPosition(f)
		if err != nil {
			return nil, err
		}
		health, err := numberField(f, "health")
		if err != nil {
			return nil, err
		}
		return &Stone{ID: id, Position: pos, Health: health}, nil
	case KindCampfire:
		id, pos, err := idAndPosition(f)
		if err != nil {
			return nil, err
		}
		return &Campfire{ID: id, Position: pos, IsBurning: f["isBurning"].GetBoolValue()}, nil
	case KindMushroom:
		id, pos, err := idAndPosition(f)
		if err != nil {
			return nil, err
		}
		respawn, err := optionalTime(f, "respawnAt")
		if err != nil {
			return nil, err
		}
		m := &Mushroom{ID: id, Position: pos}
		if respawn != 0 {
			m.RespawnAt = &respawn
		}
		return m, nil
	case KindDroppedItem:
		id, pos, err := idAndPosition(f)
		if err != nil {
			return nil, err
		}
		qty, err := numberField(f, "quantity")
		if err != nil {
			return nil, err
		}
		if qty < 0 || qty > math.MaxUint32 {
			return nil, fmt.Errorf("worldview: quantity %v: %w", qty, ErrBadField)
		}
		return &DroppedItem{ID: id, Position: pos, ItemDef: itemName(f["itemDefId"]), Quantity: uint32(qty)}, nil
	case KindStorageBox:
		id, pos, err := idAndPosition(f)
		if err != nil {
			return nil, err
		}
		return &StorageBox{ID: id, Position: pos, PlacedBy: stringOr(f, "placedBy", "")}, nil
	default:
		return nil, fmt.Errorf("worldview: decode %s: %w", k, ErrUnknownKind)
	}
}

// Decode probes the record's kind and decodes it.
func Decode(rec *structpb.Struct) (Entity, error) {
	k := ProbeKind(rec)
	if k == KindUnknown {
		return nil, fmt.Errorf("worldview: probe record: %w", ErrUnknownKind)
	}
	return DecodeRecord(k, rec)
}

func decodePlayer(f map[string]*structpb.Value) (*Player, error) {
	identity := f["identity"].GetStringValue()
	if identity == "" {
		return nil, fmt.Errorf("worldview: player identity: %w", ErrMissingField)
	}
	x, err := numberField(f, "positionX")
	if err != nil {
		return nil, err
	}
	y, err := numberField(f, "positionY")
	if err != nil {
		return nil, err
	}
	lastHit, err := optionalTime(f, "lastHitTime")
	if err != nil {
		return nil, err
	}
	jumpStart, err := optionalTime(f, "jumpStartTimeMs")
	if err != nil {
		return nil, err
	}
	health := 100.0
	if has(f, "health") {
		if health, err = numberField(f, "health"); err != nil {
			return nil, err
		}
	}
	return &Player{
		Identity:      identity,
		Username:      stringOr(f, "username", ""),
		Position:      Vec2{X: x, Y: y},
		Direction:     ParseDirection(stringOr(f, "direction", "")),
		Health:        health,
		IsDead:        f["isDead"].GetBoolValue(),
		LastHitTime:   lastHit,
		JumpStartTime: jumpStart,
		EquippedItem:  stringOr(f, "equippedItem", ""),
	}, nil
}

// DecodeCollection decodes one keyed collection of records of kind k. Records
// are visited in ascending key order so the result is the same every frame.
// Records that fail to decode are skipped and logged.
func DecodeCollection(k Kind, recs map[string]*structpb.Struct) []Entity {
	keys := make([]string, 0, len(recs))
	for key := range recs {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	out := make([]Entity, 0, len(recs))
	for _, key := range keys {
		e, err := DecodeRecord(k, recs[key])
		if err != nil {
			log.Printf("worldview: skipping %s %q: %v", k, key, err)
			continue
		}
		out = append(out, e)
	}
	return out
}

// DecodeSnapshot decodes one keyed collection per kind into a Snapshot.
func DecodeSnapshot(collections map[Kind]map[string]*structpb.Struct) Snapshot {
	var snap Snapshot
	for k, recs := range collections {
		for _, e := range DecodeCollection(k, recs) {
			snap.add(e)
		}
	}
	return snap
}

// add appends e to the collection of its kind.
func (s *Snapshot) add(e Entity) {
	switch v := e.(type) {
	case *Player:
		s.Players = append(s.Players, v)
	case *Tree:
		s.Trees = append(s.Trees, v)
	case *Stone:
		s.Stones = append(s.Stones, v)
	case *Campfire:
		s.Campfires = append(s.Campfires, v)
	case *Mushroom:
		s.Mushrooms = append(s.Mushrooms, v)
	case *DroppedItem:
		s.DroppedItems = append(s.DroppedItems, v)
	case *StorageBox:
		s.StorageBoxes = append(s.StorageBoxes, v)
	}
}

// --- field helpers ---

func has(f map[string]*structpb.Value, name string) bool {
	_, ok := f[name]
	return ok
}

func isString(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_StringValue)
	return ok
}

func isBool(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_BoolValue)
	return ok
}

func isNull(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_NullValue)
	return ok
}

// numberField reads a required finite number.
func numberField(f map[string]*structpb.Value, name string) (float64, error) {
	v, ok := f[name]
	if !ok || isNull(v) {
		return 0, fmt.Errorf("worldview: %s: %w", name, ErrMissingField)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || !finite(n.NumberValue) {
		return 0, fmt.Errorf("worldview: %s: %w", name, ErrBadField)
	}
	return n.NumberValue, nil
}

// optionalTime reads a millisecond timestamp that may be absent or null,
// returning 0 in that case. Timestamps too large for a float64 arrive as
// decimal strings.
func optionalTime(f map[string]*structpb.Value, name string) (int64, error) {
	v, ok := f[name]
	if !ok || isNull(v) {
		return 0, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		if !finite(k.NumberValue) {
			return 0, fmt.Errorf("worldview: %s: %w", name, ErrBadField)
		}
		return int64(k.NumberValue), nil
	case *structpb.Value_StringValue:
		t, err := strconv.ParseInt(k.StringValue, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("worldview: %s: %w", name, ErrBadField)
		}
		return t, nil
	default:
		return 0, fmt.Errorf("worldview: %s: %w", name, ErrBadField)
	}
}

// idAndPosition reads the numeric id and posX/posY shared by all non-player
// kinds.
func idAndPosition(f map[string]*structpb.Value) (uint64, Vec2, error) {
	id, err := idField(f["id"])
	if err != nil {
		return 0, Vec2{}, err
	}
	x, err := numberField(f, "posX")
	if err != nil {
		return 0, Vec2{}, err
	}
	y, err := numberField(f, "posY")
	if err != nil {
		return 0, Vec2{}, err
	}
	return id, Vec2{X: x, Y: y}, nil
}

// idField accepts ids as numbers or, when they exceed the exact float64
// range, as decimal strings.
func idField(v *structpb.Value) (uint64, error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := k.NumberValue
		if n < 0 || n != math.Trunc(n) || n > 1<<53 {
			return 0, fmt.Errorf("worldview: id %v: %w", n, ErrBadField)
		}
		return uint64(n), nil
	case *structpb.Value_StringValue:
		id, err := strconv.ParseUint(k.StringValue, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("worldview: id %q: %w", k.StringValue, ErrBadField)
		}
		return id, nil
	case nil:
		return 0, fmt.Errorf("worldview: id: %w", ErrMissingField)
	default:
		return 0, fmt.Errorf("worldview: id: %w", ErrBadField)
	}
}

func stringOr(f map[string]*structpb.Value, name, def string) string {
	if v, ok := f[name]; ok && isString(v) {
		return v.GetStringValue()
	}
	return def
}

// itemName turns an item definition reference into an asset name. Numeric
// definition ids are prefixed so they never collide with sprite names.
func itemName(v *structpb.Value) string {
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_NumberValue:
		return "item_" + strconv.FormatFloat(k.NumberValue, 'f', -1, 64)
	default:
		return ""
	}
}
