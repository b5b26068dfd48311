package storage

// MemKV is an in-memory KV used by tests.
type MemKV struct {
	data map[string][]byte
}

func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

func (kv *MemKV) Read(key string) ([]byte, bool, error) {
	value, ok := kv.data[key]
	return value, ok, nil
}

func (kv *MemKV) Write(key string, value []byte) error {
	kv.data[key] = append([]byte(nil), value...)
	return nil
}

func (kv *MemKV) Delete(key string) error {
	delete(kv.data, key)
	return nil
}

func (kv *MemKV) Close() error {
	return nil
}
