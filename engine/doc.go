// Package engine runs one display refresh of a loot menu.
//
// A refresh reads the settings once, wraps every inventory slot and ground
// stack in an item.Entry, orders the entries with the configured comparator
// chain (or the fixed entry order when no sort order is configured) and
// renders the display records. Entries are not retained between refreshes.
//
// # Usage
//
//	eng := engine.New(func(o *engine.Options) {
//	    o.Services = item.Services{Resolver: w, Oracle: w}
//	    o.Settings = settings.NewStatic(settings.DefaultSettings())
//	})
//
//	view, err := eng.Refresh(engine.Request{
//	    Inventory: []engine.InventoryItem{{Entry: slot, Count: 3}},
//	    Ground:    []engine.GroundStack{{Handles: handles, Count: len(handles)}},
//	})
//	if err != nil {
//	    var lookupErr *comparator.LookupError
//	    if errors.As(err, &lookupErr) {
//	        // fix the configured sort order
//	    }
//	    return err
//	}
//
//	for _, r := range view.Records {
//	    fmt.Println(r.DisplayName, r.Value)
//	}
//
// # Concurrency
//
// An Engine is safe for concurrent use. Each Refresh builds its own entries;
// the entries of one View must not be shared across goroutines while their
// attributes are still being derived.
package engine
