package assets

import "testing"

func TestParseAtlas(t *testing.T) {
	data, err := assetFS.ReadFile("images/robo_player_atlas.json")
	if err != nil {
		t.Fatal(err)
	}

	atlas, err := ParseAtlas("robo_player", data)
	if err != nil {
		t.Fatalf("ParseAtlas: %v", err)
	}

	names := atlas.FrameNames()
	want := []string{"robo_player_0", "robo_player_1", "robo_player_2", "robo_player_3"}
	if len(names) != len(want) {
		t.Fatalf("frames = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("frame %d = %s, want %s", i, names[i], want[i])
		}
	}

	r := atlas.Frames["robo_player_2"]
	if r.Min.X != 80 || r.Dx() != 40 || r.Dy() != 56 {
		t.Errorf("robo_player_2 = %v", r)
	}
	if !atlas.Has("robo_player_3") || atlas.Has("robo_player_4") {
		t.Error("Has reports the wrong frames")
	}
	if atlas.Frame("robo_player_0") != nil {
		t.Error("Frame should be nil until an image is attached")
	}
}

func TestParseAtlasErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"frames":`},
		{"no frames", `{"frames":{}}`},
		{"rotated frame", `{"frames":{"a":{"frame":{"x":0,"y":0,"w":1,"h":1},"rotated":true}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAtlas("test", []byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
