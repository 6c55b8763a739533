package cache

import (
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int]()
	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.entries == nil {
		t.Error("entries map not initialized")
	}
	if c.Size() != 0 {
		t.Errorf("expected size 0, got %d", c.Size())
	}
}

func TestSet(t *testing.T) {
	c := New[string, int]()

	c.Set("key1", 100)
	if c.Size() != 1 {
		t.Errorf("expected size 1, got %d", c.Size())
	}

	c.Set("key2", 200)
	if c.Size() != 2 {
		t.Errorf("expected size 2, got %d", c.Size())
	}

	c.Set("key1", 150)
	if c.Size() != 2 {
		t.Errorf("expected size 2 after overwrite, got %d", c.Size())
	}
}

func TestGet(t *testing.T) {
	c := New[string, int]()
	_, ok := c.Get("nonexistent")
	if ok {
		t.Error("expected ok=false for non-existent key")
	}

	c.Set("key1", 100)
	val, ok := c.Get("key1")
	if !ok {
		t.Error("expected ok=true for existing key")
	}
	if val != 100 {
		t.Errorf("expected value 100, got %d", val)
	}
}

func TestGetOrSet(t *testing.T) {
	c := New[string, *sync.Mutex]()

	calls := 0
	first := c.GetOrSet("item", func() *sync.Mutex {
		calls++
		return &sync.Mutex{}
	})
	second := c.GetOrSet("item", func() *sync.Mutex {
		calls++
		return &sync.Mutex{}
	})

	if first != second {
		t.Error("expected the same value for repeated GetOrSet on one key")
	}
	if calls != 1 {
		t.Errorf("expected create to run once, ran %d times", calls)
	}
	if c.Size() != 1 {
		t.Errorf("expected size 1, got %d", c.Size())
	}
}

func TestGetOrSetConcurrent(t *testing.T) {
	c := New[string, *sync.Mutex]()
	var wg sync.WaitGroup
	results := make([]*sync.Mutex, 100)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.GetOrSet("shared", func() *sync.Mutex {
				return &sync.Mutex{}
			})
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent GetOrSet returned different values for one key")
		}
	}
	if c.Size() != 1 {
		t.Errorf("expected size 1, got %d", c.Size())
	}
}

func TestDelete(t *testing.T) {
	c := New[string, int]()

	c.Delete("nonexistent")
	c.Set("key1", 100)
	c.Set("key2", 200)

	c.Delete("key1")
	if c.Size() != 1 {
		t.Errorf("expected size 1 after delete, got %d", c.Size())
	}

	_, ok := c.Get("key1")
	if ok {
		t.Error("expected key1 to be deleted")
	}

	val, ok := c.Get("key2")
	if !ok || val != 200 {
		t.Error("expected key2 to still exist with value 200")
	}
}

func TestKeys(t *testing.T) {
	c := New[string, int]()

	keys := c.Keys()
	if len(keys) != 0 {
		t.Errorf("expected 0 keys, got %d", len(keys))
	}

	c.Set("key1", 100)
	c.Set("key2", 200)
	c.Set("key3", 300)

	keys = c.Keys()
	if len(keys) != 3 {
		t.Errorf("expected 3 keys, got %d", len(keys))
	}

	keyMap := make(map[string]bool)
	for _, k := range keys {
		keyMap[k] = true
	}

	for _, expectedKey := range []string{"key1", "key2", "key3"} {
		if !keyMap[expectedKey] {
			t.Errorf("expected key %s not found in keys", expectedKey)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup
	numGoroutines := 100
	numOperations := 1000

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := id*numOperations + j
				c.Set(key, key)
			}
		}(i)
	}
	wg.Wait()

	expectedSize := numGoroutines * numOperations
	if c.Size() != expectedSize {
		t.Errorf("expected size %d after concurrent writes, got %d", expectedSize, c.Size())
	}

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := id*numOperations + j
				c.Delete(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Size() != 0 {
		t.Errorf("expected size 0 after concurrent deletes, got %d", c.Size())
	}
}
