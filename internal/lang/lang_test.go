package lang

import (
	"errors"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	tests := []struct {
		name  string
		lives string
		win   string
	}{
		{"english", "Lives", "You Win!"},
		{"french", "Vies", "Vous avez gagné !"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Load(tt.name)
			if err != nil {
				t.Fatalf("Load(%q) error: %v", tt.name, err)
			}
			if got := tbl.Text(KeyLives); got != tt.lives {
				t.Errorf("lives = %q, expected %q", got, tt.lives)
			}
			if got := tbl.Text(KeyYouWin); got != tt.win {
				t.Errorf("you_win = %q, expected %q", got, tt.win)
			}
			for _, k := range Keys {
				if tbl.Text(k) == k {
					t.Errorf("key %q not translated", k)
				}
			}
		})
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("klingon"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("expected ErrUnknownLanguage, got %v", err)
	}
	if tbl := MustLoad("klingon"); tbl.Name != Default {
		t.Errorf("MustLoad fallback = %q, expected %q", tbl.Name, Default)
	}
}

func TestParseShortTable(t *testing.T) {
	tbl := Parse("short", []byte("Punkte\r\nLeben\n"))
	if tbl.Text(KeyScore) != "Punkte" || tbl.Text(KeyLives) != "Leben" {
		t.Errorf("parsed = %q, %q", tbl.Text(KeyScore), tbl.Text(KeyLives))
	}
	if tbl.Text(KeyLevel) != KeyLevel {
		t.Errorf("missing key should fall back to key, got %q", tbl.Text(KeyLevel))
	}

	var nilTable *Table
	if nilTable.Text(KeyScore) != KeyScore {
		t.Error("nil table should return the key")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "english" || names[1] != "french" {
		t.Errorf("Names() = %v", names)
	}
	if DisplayName("french") != "français" || DisplayName("english") != "english" {
		t.Errorf("DisplayName mismatch: %q %q", DisplayName("french"), DisplayName("english"))
	}
}
