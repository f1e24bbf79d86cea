package challenge

import (
	"encoding/json"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"BEGINNER", Beginner},
		{"beginner", Beginner},
		{"Intermediate", Intermediate},
		{"  ADVANCED  ", Advanced},
		{"expert", Expert},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if err != nil {
			t.Errorf("ParseLevel(%q): unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseLevel_UnknownFails(t *testing.T) {
	for _, name := range []string{"", "NOVICE", "MASTER", "beginner2"} {
		if _, err := ParseLevel(name); err == nil {
			t.Errorf("ParseLevel(%q): expected error, got nil", name)
		}
	}
}

func TestLevel_String(t *testing.T) {
	if got := Advanced.String(); got != "ADVANCED" {
		t.Errorf("Advanced.String() = %q, want ADVANCED", got)
	}
	if got := Level(0).String(); got != "Level(0)" {
		t.Errorf("Level(0).String() = %q, want Level(0)", got)
	}
}

func TestLevel_Ordering(t *testing.T) {
	levels := Levels()
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Fatalf("levels not strictly ascending: %v >= %v", levels[i-1], levels[i])
		}
	}
}

func TestLevel_NextCeiling(t *testing.T) {
	if got := Beginner.Next(); got != Intermediate {
		t.Errorf("Beginner.Next() = %v, want %v", got, Intermediate)
	}
	if got := Expert.Next(); got != Expert {
		t.Errorf("Expert.Next() = %v, want %v", got, Expert)
	}
}

func TestLevel_JSONRoundTrip(t *testing.T) {
	for _, l := range Levels() {
		data, err := json.Marshal(l)
		if err != nil {
			t.Fatalf("marshal %v: %v", l, err)
		}
		var back Level
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != l {
			t.Errorf("round trip %v = %v", l, back)
		}
	}
}

func TestLevel_UnmarshalUnknownFails(t *testing.T) {
	var l Level
	if err := json.Unmarshal([]byte(`"NOVICE"`), &l); err == nil {
		t.Error("unmarshal of unknown level name succeeded, want error")
	}
	if err := json.Unmarshal([]byte(`3`), &l); err == nil {
		t.Error("unmarshal of numeric level succeeded, want error")
	}
}

func TestLevel_MarshalInvalidFails(t *testing.T) {
	if _, err := json.Marshal(Level(99)); err == nil {
		t.Error("marshal of invalid level succeeded, want error")
	}
}
