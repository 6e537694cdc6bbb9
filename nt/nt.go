// Package nt abstracts the real-time key-value table a Limelight publishes
// its telemetry on.
//
// The camera side exposes a table of typed scalar and array entries keyed by
// short strings ("tx", "botpose_wpiblue", ...). This package models only the
// capabilities the client needs: typed reads with caller-supplied defaults,
// typed writes, a flush, and timestamped array reads with a drainable change
// queue. Production code plugs in an adapter over the actual bus client;
// tests use MockTable.
package nt

// TimestampedDoubleArray couples a published double array with the server
// timestamp, in microseconds, at which it was published.
type TimestampedDoubleArray struct {
	// Timestamp is the server-side publish time in microseconds.
	Timestamp int64
	// Value is the published array.
	Value []float64
}

// Table is the typed key-value capability required from the underlying bus.
//
// Readers take a default that is returned when the key has never been
// published. Writers become visible to the camera side on its next poll;
// Flush forces immediate network transmission but is not required for
// correctness. Implementations must be safe for concurrent use.
type Table interface {
	// Double returns the double value at key, or def when absent.
	Double(key string, def float64) float64
	// Int returns the integer value at key, or def when absent.
	Int(key string, def int64) int64
	// String returns the string value at key, or def when absent.
	String(key string, def string) string
	// DoubleArray returns the double array at key, or def when absent.
	DoubleArray(key string, def []float64) []float64
	// StringArray returns the string array at key, or def when absent.
	StringArray(key string, def []string) []string

	// TimestampedDoubleArray returns the latest double array at key along
	// with its server timestamp. Absent keys yield a zero timestamp and an
	// empty value.
	TimestampedDoubleArray(key string) TimestampedDoubleArray
	// ReadQueueDoubleArray drains and returns every value published to key
	// since the previous call, oldest first.
	ReadQueueDoubleArray(key string) []TimestampedDoubleArray

	// SetDouble writes a double value to key.
	SetDouble(key string, value float64)
	// SetDoubleArray writes a double array to key.
	SetDoubleArray(key string, value []float64)

	// Flush forces immediate transmission of pending writes.
	Flush()
}

// DoubleEntry binds a table key and default for repeated double reads and
// writes, mirroring a subscribed entry on the bus.
type DoubleEntry struct {
	table Table
	key   string
	def   float64
}

// NewDoubleEntry creates a DoubleEntry for key with the given default.
func NewDoubleEntry(t Table, key string, def float64) DoubleEntry {
	return DoubleEntry{table: t, key: key, def: def}
}

// Get reads the current value.
func (e DoubleEntry) Get() float64 { return e.table.Double(e.key, e.def) }

// Set writes a new value.
func (e DoubleEntry) Set(v float64) { e.table.SetDouble(e.key, v) }

// IntEntry binds a table key and default for repeated integer reads.
type IntEntry struct {
	table Table
	key   string
	def   int64
}

// NewIntEntry creates an IntEntry for key with the given default.
func NewIntEntry(t Table, key string, def int64) IntEntry {
	return IntEntry{table: t, key: key, def: def}
}

// Get reads the current value.
func (e IntEntry) Get() int64 { return e.table.Int(e.key, e.def) }

// StringEntry binds a table key and default for repeated string reads.
type StringEntry struct {
	table Table
	key   string
	def   string
}

// NewStringEntry creates a StringEntry for key with the given default.
func NewStringEntry(t Table, key string, def string) StringEntry {
	return StringEntry{table: t, key: key, def: def}
}

// Get reads the current value.
func (e StringEntry) Get() string { return e.table.String(e.key, e.def) }

// DoubleArrayEntry binds a table key for repeated double-array reads and
// writes, including timestamped and queued reads.
type DoubleArrayEntry struct {
	table Table
	key   string
	def   []float64
}

// NewDoubleArrayEntry creates a DoubleArrayEntry for key with the given
// default.
func NewDoubleArrayEntry(t Table, key string, def []float64) DoubleArrayEntry {
	return DoubleArrayEntry{table: t, key: key, def: def}
}

// Get reads the current value.
func (e DoubleArrayEntry) Get() []float64 { return e.table.DoubleArray(e.key, e.def) }

// Set writes a new value.
func (e DoubleArrayEntry) Set(v []float64) { e.table.SetDoubleArray(e.key, v) }

// GetTimestamped reads the current value along with its server timestamp.
func (e DoubleArrayEntry) GetTimestamped() TimestampedDoubleArray {
	return e.table.TimestampedDoubleArray(e.key)
}

// ReadQueue drains every value published since the previous call.
func (e DoubleArrayEntry) ReadQueue() []TimestampedDoubleArray {
	return e.table.ReadQueueDoubleArray(e.key)
}

// StringArrayEntry binds a table key for repeated string-array reads.
type StringArrayEntry struct {
	table Table
	key   string
	def   []string
}

// NewStringArrayEntry creates a StringArrayEntry for key with the given
// default.
func NewStringArrayEntry(t Table, key string, def []string) StringArrayEntry {
	return StringArrayEntry{table: t, key: key, def: def}
}

// Get reads the current value.
func (e StringArrayEntry) Get() []string { return e.table.StringArray(e.key, e.def) }
