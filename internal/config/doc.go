// Package config implements suzu's thread-safe JSON configuration store.
//
// A Store owns one nested document (objects, arrays and scalars), an optional
// backing file and a health flag. Values are addressed with slash-separated
// pointers in the style of RFC 6901:
//
//	/logfile          key "logfile" of the root object
//	/recent/0         first element of the "recent" array
//	/a~1b/c~0d        key "a/b", then key "c~d"
//
// Both "" and "/" address the root.
//
// Example config.json (comments and trailing commas are accepted):
//
//	{
//	    // where the application log goes
//	    "logfile": "suzu.log",
//	    "editor": {"grid": 16, "zoom": 1.0},
//	}
//
// # Usage
//
//	store := config.Open(path, config.WithFlushOnClose(true))
//	defer store.Close()
//
//	logfile := config.Convert(store.GetValue("/logfile"), "")
//	_ = store.SetValue("/editor/grid", config.FromNative(int32(8)))
//
// # Failure Semantics
//
// Nothing in this package panics at its callers. Reads that cannot be served
// return the discarded sentinel (Value.IsDiscarded). Writes, flushes and
// reloads return errors from the internal/errors package, and a failed write
// leaves the document unchanged. Open never fails outright; see Open for how
// unreadable and malformed files are handled, and LoadError for the reason.
//
// Convert never crosses numeric categories: an integer requested as a float
// (or the reverse) yields the fallback, not a converted number.
//
// # Thread Safety
//
// All Store methods are safe for concurrent use. Readers run in parallel;
// SetValue, Reset, Reload and SaveAs are exclusive. Flush holds only the read
// lock while writing the file, so reads continue during a flush and writes
// wait for it. Convert and FromNative work on copies and take no lock.
package config
