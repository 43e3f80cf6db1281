package main

import (
	"fmt"
	"log"
	"os"

	"github.com/phanxgames/worldview"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// collectionKinds maps the top-level keys of a world file to entity kinds.
var collectionKinds = map[string]worldview.Kind{
	"players":      worldview.KindPlayer,
	"trees":        worldview.KindTree,
	"stones":       worldview.KindStone,
	"campfires":    worldview.KindCampfire,
	"mushrooms":    worldview.KindMushroom,
	"droppedItems": worldview.KindDroppedItem,
	"storageBoxes": worldview.KindStorageBox,
}

// staticSource serves the same snapshot every frame.
type staticSource struct {
	snap worldview.Snapshot
}

func (s *staticSource) Snapshot() worldview.Snapshot {
	return s.snap
}

// loadWorld reads a JSON world file. Each top-level key holds one collection
// of records keyed by id. Keys not listed in collectionKinds are probed
// record by record.
func loadWorld(path string) (*staticSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("worldview-demo: failed to read world: %w", err)
	}
	var root structpb.Struct
	if err := protojson.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("worldview-demo: failed to parse world: %w", err)
	}

	collections := make(map[worldview.Kind]map[string]*structpb.Struct)
	for name, v := range root.GetFields() {
		recs := v.GetStructValue()
		if recs == nil {
			log.Printf("worldview-demo: collection %q is not an object, skipping", name)
			continue
		}
		k, known := collectionKinds[name]
		for key, rv := range recs.GetFields() {
			rec := rv.GetStructValue()
			if rec == nil {
				continue
			}
			rk := k
			if !known {
				if rk = worldview.ProbeKind(rec); rk == worldview.KindUnknown {
					log.Printf("worldview-demo: %s/%s matches no entity kind, skipping", name, key)
					continue
				}
			}
			if collections[rk] == nil {
				collections[rk] = make(map[string]*structpb.Struct)
			}
			collections[rk][name+"/"+key] = rec
		}
	}
	return &staticSource{snap: worldview.DecodeSnapshot(collections)}, nil
}
