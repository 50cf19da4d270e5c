package coping

import "testing"

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("len = %d, want 6", len(all))
	}
	seen := make(map[string]bool)
	for _, tech := range all {
		if seen[tech.ID] {
			t.Errorf("duplicate id %s", tech.ID)
		}
		seen[tech.ID] = true
		if len(tech.Instructions) == 0 {
			t.Errorf("%s has no instructions", tech.Title)
		}
	}

	all[0].Title = "changed"
	if techniques[0].Title == "changed" {
		t.Error("All() exposed the catalog")
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{"1", "4-7-8 Breathing", false},
		{"quick walk", "Quick Walk", false},
		{" 6 ", "Playlist Power", false},
		{"nope", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := Find(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Find(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if got.Title != tt.want {
				t.Errorf("Find(%q) = %q, want %q", tt.key, got.Title, tt.want)
			}
		})
	}
}

func TestSession(t *testing.T) {
	tech, err := Find("1")
	if err != nil {
		t.Fatal(err)
	}
	s := NewSession(tech)

	if s.Prev() {
		t.Error("Prev() at the first step should fail")
	}
	if s.Current() != tech.Instructions[0] {
		t.Errorf("Current() = %q", s.Current())
	}

	steps := 1
	for s.Next() {
		steps++
	}
	if steps != len(tech.Instructions) {
		t.Errorf("walked %d steps, want %d", steps, len(tech.Instructions))
	}
	if !s.Done() {
		t.Error("Done() should be true on the last step")
	}
	if !s.Prev() || s.Step() != len(tech.Instructions)-2 {
		t.Errorf("Prev() left step at %d", s.Step())
	}
}
