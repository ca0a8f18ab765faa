package prefabs

import "testing"

func TestIsPrefabFile(t *testing.T) {
	tests := map[string]bool{
		"prefabs/towers.json":         true,
		"prefabs/target.YAML":         true,
		"prefabs/scripts/waves.tengo": true,
		"prefabs/.towers.json.swp":    false,
		"prefabs/readme.md":           false,
	}
	for path, want := range tests {
		if got := IsPrefabFile(path); got != want {
			t.Fatalf("IsPrefabFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherDrain(t *testing.T) {
	w := &Watcher{Events: make(chan string, 8)}
	w.Events <- "prefabs/towers.json"
	w.Events <- "/abs/prefabs/towers.json"
	w.Events <- "prefabs/world.yaml"

	got := w.Drain()
	if len(got) != 2 || got[0] != "towers.json" || got[1] != "world.yaml" {
		t.Fatalf("unexpected drain %v", got)
	}
	if again := w.Drain(); len(again) != 0 {
		t.Fatalf("expected empty drain, got %v", again)
	}

	var nilWatcher *Watcher
	if nilWatcher.Drain() != nil {
		t.Fatal("nil watcher drains nothing")
	}
}
