package nt

import "sync"

// MockTable is an in-memory Table for tests. It records every write in
// order and counts flushes so tests can assert on exactly which keys a
// client touched.
type MockTable struct {
	mu           sync.Mutex
	doubles      map[string]float64
	strings      map[string]string
	doubleArrays map[string][]float64
	stringArrays map[string][]string
	timestamps   map[string]int64
	queues       map[string][]TimestampedDoubleArray

	writtenKeys []string
	flushCount  int
}

// NewMockTable creates an empty MockTable.
func NewMockTable() *MockTable {
	return &MockTable{
		doubles:      make(map[string]float64),
		strings:      make(map[string]string),
		doubleArrays: make(map[string][]float64),
		stringArrays: make(map[string][]string),
		timestamps:   make(map[string]int64),
		queues:       make(map[string][]TimestampedDoubleArray),
	}
}

// Double returns the double at key, or def when absent.
func (m *MockTable) Double(key string, def float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.doubles[key]; ok {
		return v
	}
	return def
}

// Int returns the double at key truncated to an integer, or def when absent.
// The camera publishes integer-valued entries as numbers, so a single
// backing store suffices.
func (m *MockTable) Int(key string, def int64) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.doubles[key]; ok {
		return int64(v)
	}
	return def
}

// String returns the string at key, or def when absent.
func (m *MockTable) String(key string, def string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.strings[key]; ok {
		return v
	}
	return def
}

// DoubleArray returns a copy of the double array at key, or def when absent.
func (m *MockTable) DoubleArray(key string, def []float64) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.doubleArrays[key]; ok {
		return append([]float64(nil), v...)
	}
	return def
}

// StringArray returns a copy of the string array at key, or def when absent.
func (m *MockTable) StringArray(key string, def []string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.stringArrays[key]; ok {
		return append([]string(nil), v...)
	}
	return def
}

// TimestampedDoubleArray returns the latest array at key with its publish
// timestamp. Absent keys yield a zero timestamp and empty value.
func (m *MockTable) TimestampedDoubleArray(key string) TimestampedDoubleArray {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.doubleArrays[key]
	if !ok {
		return TimestampedDoubleArray{Value: []float64{}}
	}
	return TimestampedDoubleArray{
		Timestamp: m.timestamps[key],
		Value:     append([]float64(nil), v...),
	}
}

// ReadQueueDoubleArray drains the publish queue for key.
func (m *MockTable) ReadQueueDoubleArray(key string) []TimestampedDoubleArray {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := m.queues[key]
	m.queues[key] = nil
	return q
}

// SetDouble writes a double and records the key.
func (m *MockTable) SetDouble(key string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doubles[key] = value
	m.writtenKeys = append(m.writtenKeys, key)
}

// SetDoubleArray writes a double array and records the key.
func (m *MockTable) SetDoubleArray(key string, value []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doubleArrays[key] = append([]float64(nil), value...)
	m.writtenKeys = append(m.writtenKeys, key)
}

// Flush increments the flush counter.
func (m *MockTable) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushCount++
}

// SeedDouble preloads a double without recording a client write.
func (m *MockTable) SeedDouble(key string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doubles[key] = value
}

// SeedString preloads a string without recording a client write.
func (m *MockTable) SeedString(key string, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strings[key] = value
}

// SeedDoubleArray preloads a double array without recording a client write.
func (m *MockTable) SeedDoubleArray(key string, value []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doubleArrays[key] = append([]float64(nil), value...)
}

// SeedStringArray preloads a string array without recording a client write.
func (m *MockTable) SeedStringArray(key string, value []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stringArrays[key] = append([]string(nil), value...)
}

// Publish simulates the camera publishing an array at the given server
// timestamp (microseconds): it updates the latest value and appends to the
// key's change queue.
func (m *MockTable) Publish(key string, timestampMicros int64, value []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := append([]float64(nil), value...)
	m.doubleArrays[key] = v
	m.timestamps[key] = timestampMicros
	m.queues[key] = append(m.queues[key], TimestampedDoubleArray{
		Timestamp: timestampMicros,
		Value:     v,
	})
}

// WrittenKeys returns the keys written by the client, in write order.
func (m *MockTable) WrittenKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writtenKeys...)
}

// WriteCount returns the number of writes issued to key.
func (m *MockTable) WriteCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, k := range m.writtenKeys {
		if k == key {
			n++
		}
	}
	return n
}

// FlushCount returns the number of Flush calls.
func (m *MockTable) FlushCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushCount
}
